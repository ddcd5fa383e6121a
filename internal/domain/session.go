package domain

// ConversationTurn is one role/text pair in a session's conversation log.
type ConversationTurn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Session is the aggregate record of one user's simulation run: the owning
// profile, the DNA extracted for it (absent until the first simulation),
// the scenarios accumulated across timelines, and the conversation log.
type Session struct {
	ID        SessionID          `json:"session_id"`
	Profile   *UserProfile       `json:"user_profile"`
	DNA       *DecisionDNA       `json:"decision_dna,omitempty"`
	Scenarios []FutureScenario   `json:"scenarios"`
	History   []ConversationTurn `json:"conversation_history"`
	CreatedAt Timestamp          `json:"created_at"`
}

// Clone returns a deep copy, used by the memory bank for snapshot semantics.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Profile = s.Profile.Clone()
	cp.DNA = s.DNA.Clone()
	if s.Scenarios != nil {
		cp.Scenarios = make([]FutureScenario, len(s.Scenarios))
		for i := range s.Scenarios {
			cp.Scenarios[i] = *s.Scenarios[i].Clone()
		}
	}
	cp.History = append([]ConversationTurn(nil), s.History...)
	return &cp
}
