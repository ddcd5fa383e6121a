package domain

// DecisionDNA is the decision-making signature extracted once per session
// from a user's profile. Immutable once produced.
type DecisionDNA struct {
	RiskTolerance         float64        `json:"risk_tolerance"`
	TimeHorizonPreference string         `json:"time_horizon_preference"` // short/medium/long
	ValuePriorities       []string       `json:"value_priorities"`
	DecisionPatterns      map[string]any `json:"decision_patterns"`
	EmotionalDrivers      []string       `json:"emotional_drivers"`
}

// Clone returns a deep copy of the DNA.
func (d *DecisionDNA) Clone() *DecisionDNA {
	if d == nil {
		return nil
	}
	cp := *d
	cp.ValuePriorities = append([]string(nil), d.ValuePriorities...)
	cp.EmotionalDrivers = append([]string(nil), d.EmotionalDrivers...)
	if d.DecisionPatterns != nil {
		cp.DecisionPatterns = make(map[string]any, len(d.DecisionPatterns))
		for k, v := range d.DecisionPatterns {
			cp.DecisionPatterns[k] = v
		}
	}
	return &cp
}
