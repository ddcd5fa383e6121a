package domain

// UserProfile is the caller-supplied description of the person making a
// decision. UserID and CurrentRole must be non-empty and Age must be within
// [16,100]; both are enforced at validation time, not on mutation.
type UserProfile struct {
	UserID      string `json:"user_id"`
	Age         int    `json:"age"`
	CurrentRole string `json:"current_role"`

	// Optional background, collected interactively when available.
	ExperienceYears int    `json:"experience_years,omitempty"`
	CurrentSalary   int    `json:"current_salary,omitempty"`
	Location        string `json:"location,omitempty"`
	Education       string `json:"education,omitempty"`

	// List fields default to empty, never nil, after validation.
	Skills        []string `json:"skills"`
	Interests     []string `json:"interests"`
	LifeGoals     []string `json:"life_goals"`
	PastDecisions []string `json:"past_decisions"`
}

// Clone returns a deep copy of the profile.
func (p *UserProfile) Clone() *UserProfile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Skills = append([]string(nil), p.Skills...)
	cp.Interests = append([]string(nil), p.Interests...)
	cp.LifeGoals = append([]string(nil), p.LifeGoals...)
	cp.PastDecisions = append([]string(nil), p.PastDecisions...)
	return &cp
}
