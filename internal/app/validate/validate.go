// Package validate checks user-supplied input before any external call is
// made. All failures are *domain.ValidationError.
package validate

import (
	"fmt"
	"strings"

	"futureyou/internal/domain"
)

const (
	minAge = 16
	maxAge = 100

	minDecisionLen = 10
)

// Profile checks the required profile fields and normalizes the optional
// list fields in place: a nil list becomes an empty one, so downstream code
// never sees nil. The augmented profile is the same pointer passed in.
func Profile(p *domain.UserProfile) error {
	if p == nil {
		return &domain.ValidationError{Field: "user_profile", Reason: "missing required field"}
	}
	if p.UserID == "" {
		return &domain.ValidationError{Field: "user_id", Reason: "missing required field"}
	}
	if p.CurrentRole == "" {
		return &domain.ValidationError{Field: "current_role", Reason: "missing required field"}
	}
	if p.Age < minAge || p.Age > maxAge {
		return &domain.ValidationError{
			Field:  "age",
			Reason: fmt.Sprintf("must be an integer between %d and %d", minAge, maxAge),
		}
	}

	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	if p.LifeGoals == nil {
		p.LifeGoals = []string{}
	}
	if p.PastDecisions == nil {
		p.PastDecisions = []string{}
	}
	return nil
}

// Decision checks the decision text and returns it trimmed.
func Decision(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", &domain.ValidationError{Field: "decision", Reason: "must be a non-empty string"}
	}
	if len(trimmed) < minDecisionLen {
		return "", &domain.ValidationError{
			Field:  "decision",
			Reason: fmt.Sprintf("must be at least %d characters long", minDecisionLen),
		}
	}
	return trimmed, nil
}

// Timelines checks that the list is non-empty and every tag is supported.
func Timelines(timelines []domain.Timeline) error {
	if len(timelines) == 0 {
		return &domain.ValidationError{Field: "timelines", Reason: "must be a non-empty list"}
	}
	for _, t := range timelines {
		if !t.Valid() {
			return &domain.ValidationError{
				Field:  "timelines",
				Reason: fmt.Sprintf("invalid timeline %q, must be one of 1yr, 3yr, 5yr", string(t)),
			}
		}
	}
	return nil
}

// Timeline checks a single horizon tag.
func Timeline(t domain.Timeline) error {
	if !t.Valid() {
		return &domain.ValidationError{
			Field:  "timeline",
			Reason: fmt.Sprintf("invalid timeline %q, must be one of 1yr, 3yr, 5yr", string(t)),
		}
	}
	return nil
}
