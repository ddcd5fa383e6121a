package domain

import "context"

// TextGenerator defines how the core application talks to the external
// generative model: one prompt in, one text out. The service is treated as
// unreliable: it may return empty, malformed or transiently erroring text.
type TextGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// SessionBank stores session snapshots in process memory.
// Save overwrites any prior snapshot for the same id; Get never errors,
// it reports absence through the bool.
type SessionBank interface {
	Save(session *Session) error
	Get(id SessionID) (*Session, bool)
	History(userID UserID) []*Session
}

// DecisionTracker is the append-only log of decisions the user chose.
type DecisionTracker interface {
	Append(rec *DecisionRecord) error
	History() []*DecisionRecord
}
