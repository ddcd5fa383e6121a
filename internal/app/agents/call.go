// Package agents contains the four structured agents of the simulation
// pipeline. Each agent wraps exactly one request/response cycle against the
// external model: build a prompt from typed input, issue the call, strip
// code-fence decoration, parse JSON, check the response schema, and
// materialize a typed result. The call/parse/check sequence is wrapped in a
// shared retry envelope; caller-input validation happens before it and is
// never retried.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/kaptinlin/jsonrepair"

	"futureyou/internal/domain"
)

// maxAttempts bounds one structured call, first try included.
const maxAttempts = 3

// BackoffFactory builds the retry schedule for one structured call.
// Tests inject a zero-interval schedule.
type BackoffFactory func() backoff.BackOff

// DefaultBackoff is the production schedule: exponential, starting at one
// second and capped at ten.
func DefaultBackoff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Second
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 0
	return b
}

// retryCall runs fn up to maxAttempts times. Any failure inside fn
// (transport, empty, malformed, schema) consumes retry budget; after the
// last attempt the error propagates unchanged.
func retryCall(ctx context.Context, newBackoff BackoffFactory, fn func() error) error {
	if newBackoff == nil {
		newBackoff = DefaultBackoff
	}
	b := backoff.WithContext(backoff.WithMaxRetries(newBackoff(), maxAttempts-1), ctx)
	return backoff.Retry(fn, b)
}

// generateText issues one model call and enforces the non-empty contract.
func generateText(ctx context.Context, llm domain.TextGenerator, model, prompt string) (string, error) {
	text, err := llm.GenerateText(ctx, model, prompt)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrEmptyResponse
	}
	return text, nil
}

// stripFences removes Markdown code-fence decoration from model output.
// Normalization only; never a failure.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// decodeJSON parses fenced-or-plain model text into a generic JSON value.
// When strict parsing fails it gives jsonrepair one chance to fix the text
// before declaring the response malformed.
func decodeJSON(raw string) (any, error) {
	cleaned := stripFences(raw)

	var v any
	err := json.Unmarshal([]byte(cleaned), &v)
	if err == nil {
		return v, nil
	}

	repaired, repErr := jsonrepair.JSONRepair(cleaned)
	if repErr != nil {
		return nil, &domain.MalformedResponseError{Raw: raw, Err: err}
	}
	var rv any
	if err2 := json.Unmarshal([]byte(repaired), &rv); err2 != nil {
		return nil, &domain.MalformedResponseError{Raw: raw, Err: err}
	}
	// Repair can turn arbitrary prose into a bare JSON string; only
	// container values count as a structured response.
	switch rv.(type) {
	case map[string]any, []any:
		return rv, nil
	}
	return nil, &domain.MalformedResponseError{Raw: raw, Err: err}
}

// asObject asserts the decoded response is a JSON object.
func asObject(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &domain.SchemaViolationError{Key: "response", Reason: "must be a JSON object"}
	}
	return m, nil
}

// asArray asserts the decoded response is a JSON array.
func asArray(v any) ([]any, error) {
	a, ok := v.([]any)
	if !ok {
		return nil, &domain.SchemaViolationError{Key: "response", Reason: "must be a JSON array"}
	}
	return a, nil
}
