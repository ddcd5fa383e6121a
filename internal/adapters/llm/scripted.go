package llm

import (
	"context"
	"errors"
	"sync"

	"futureyou/internal/domain"
)

// Call records one request the scripted client received.
type Call struct {
	Model  string
	Prompt string
}

type scripted struct {
	text string
	err  error
}

// ScriptedClient is a deterministic TextGenerator for tests: responses are
// played back in the order they were enqueued. The last response is sticky:
// once reached it is returned for every further call, which keeps retry
// tests short.
type ScriptedClient struct {
	mu     sync.Mutex
	script []scripted
	calls  []Call
}

func NewScriptedClient() *ScriptedClient {
	return &ScriptedClient{}
}

// Reply enqueues a successful response.
func (c *ScriptedClient) Reply(text string) *ScriptedClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.script = append(c.script, scripted{text: text})
	return c
}

// Fail enqueues a transport-level failure.
func (c *ScriptedClient) Fail(err error) *ScriptedClient {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.script = append(c.script, scripted{err: err})
	return c
}

func (c *ScriptedClient) GenerateText(_ context.Context, model, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, Call{Model: model, Prompt: prompt})

	if len(c.script) == 0 {
		return "", errors.New("scripted client: no response scripted")
	}
	next := c.script[0]
	if len(c.script) > 1 {
		c.script = c.script[1:]
	}
	return next.text, next.err
}

// CallCount reports how many requests were issued so far.
func (c *ScriptedClient) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// Calls returns a copy of the recorded requests, in order.
func (c *ScriptedClient) Calls() []Call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Call(nil), c.calls...)
}

var _ domain.TextGenerator = (*ScriptedClient)(nil)
