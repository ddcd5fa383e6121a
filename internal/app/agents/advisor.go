package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"futureyou/internal/domain"
	"futureyou/internal/observability"
)

// minAdviceLen guards against truncated generations; anything shorter is
// retried, not accepted.
const minAdviceLen = 50

// Advisor turns the comparative analysis into a personalized free-text
// recommendation. The only agent whose output is not JSON.
type Advisor struct {
	llm        domain.TextGenerator
	model      string
	newBackoff BackoffFactory
}

func NewAdvisor(llm domain.TextGenerator, model string, newBackoff BackoffFactory) (*Advisor, error) {
	if llm == nil {
		return nil, errors.New("advisor: model client is required")
	}
	if model == "" {
		return nil, errors.New("advisor: model name is required")
	}
	return &Advisor{llm: llm, model: model, newBackoff: newBackoff}, nil
}

// GenerateAdvice returns trimmed advice text of at least minAdviceLen
// characters.
func (a *Advisor) GenerateAdvice(ctx context.Context, analysis *domain.AnalysisResult, dna *domain.DecisionDNA) (string, error) {
	if analysis == nil {
		return "", &domain.ValidationError{Field: "analysis", Reason: "missing required field"}
	}
	if dna == nil {
		return "", &domain.ValidationError{Field: "decision_dna", Reason: "missing required field"}
	}

	log := observability.LoggerFromContext(ctx).With("agent", "advisor")

	analysisJSON, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", fmt.Errorf("advisor: encode analysis: %w", err)
	}
	dnaJSON, err := json.MarshalIndent(dna, "", "  ")
	if err != nil {
		return "", fmt.Errorf("advisor: encode dna: %w", err)
	}
	prompt := fmt.Sprintf(advisorPromptTemplate, analysisJSON, dnaJSON)

	var advice string
	err = retryCall(ctx, a.newBackoff, func() error {
		text, err := generateText(ctx, a.llm, a.model, prompt)
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(text)
		if len(trimmed) < minAdviceLen {
			return fmt.Errorf("advice is %d characters: %w", len(trimmed), domain.ErrTruncatedResponse)
		}
		advice = trimmed
		return nil
	})
	if err != nil {
		log.Error("advice generation failed", "error", err)
		return "", fmt.Errorf("advisor: %w", err)
	}

	log.Info("advice generated", "length", len(advice))
	return advice, nil
}
