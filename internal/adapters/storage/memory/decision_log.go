package memory

import (
	"sync"
	"time"

	"futureyou/internal/domain"
)

// DecisionLog is the append-only, in-memory record of decisions the user
// ultimately chose. NOT persistent; suitable for one process lifetime.
type DecisionLog struct {
	mu      sync.RWMutex
	records []*domain.DecisionRecord
	now     func() time.Time
}

func NewDecisionLog() *DecisionLog {
	return &DecisionLog{now: time.Now}
}

// Append adds a record, stamping the current time when none is set.
func (l *DecisionLog) Append(rec *domain.DecisionRecord) error {
	if rec == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if rec.Timestamp.IsZero() {
		rec.Timestamp = l.now()
	}
	cp := *rec
	l.records = append(l.records, &cp)
	return nil
}

// History returns the records in append order.
func (l *DecisionLog) History() []*domain.DecisionRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*domain.DecisionRecord, 0, len(l.records))
	for _, rec := range l.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out
}

var _ domain.DecisionTracker = (*DecisionLog)(nil)
