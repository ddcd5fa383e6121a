package memory

import (
	"sync"

	"futureyou/internal/domain"
)

// SessionBank keeps session snapshots in process memory. Save stores a deep
// copy, so mutating the live session afterwards does not touch the stored
// snapshot until it is re-saved.
type SessionBank struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*domain.Session
}

func NewSessionBank() *SessionBank {
	return &SessionBank{
		sessions: make(map[domain.SessionID]*domain.Session),
	}
}

// Save stores a snapshot under session.ID, overwriting any existing entry.
func (b *SessionBank) Save(session *domain.Session) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sessions[session.ID] = session.Clone()
	return nil
}

// Get returns a copy of the stored snapshot, or false when none exists.
func (b *SessionBank) Get(id domain.SessionID) (*domain.Session, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snap, ok := b.sessions[id]
	if !ok {
		return nil, false
	}
	return snap.Clone(), true
}

// History scans all snapshots and returns those owned by the user.
func (b *SessionBank) History(userID domain.UserID) []*domain.Session {
	b.mu.RLock()
	defer b.mu.RUnlock()

	var result []*domain.Session
	for _, snap := range b.sessions {
		if snap.Profile != nil && snap.Profile.UserID == string(userID) {
			result = append(result, snap.Clone())
		}
	}
	return result
}

var _ domain.SessionBank = (*SessionBank)(nil)
