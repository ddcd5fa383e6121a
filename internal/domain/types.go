package domain

import "time"

type SessionID string
type UserID string

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Timeline is the horizon over which a decision's consequences are simulated.
type Timeline string

const (
	TimelineOneYear   Timeline = "1yr"
	TimelineThreeYear Timeline = "3yr"
	TimelineFiveYear  Timeline = "5yr"
)

// AllTimelines returns the supported horizon tags in ascending order.
func AllTimelines() []Timeline {
	return []Timeline{TimelineOneYear, TimelineThreeYear, TimelineFiveYear}
}

// Valid reports whether t is one of the supported horizon tags.
func (t Timeline) Valid() bool {
	switch t {
	case TimelineOneYear, TimelineThreeYear, TimelineFiveYear:
		return true
	}
	return false
}

type Timestamp = time.Time
