package config

import (
	"encoding/json"
	"fmt"
	"os"

	"futureyou/internal/domain"
)

// Input is the file-backed request format: a profile, the pending decision,
// the timelines to simulate, and whether to render visuals.
type Input struct {
	UserProfile     *domain.UserProfile `json:"user_profile"`
	Decision        string              `json:"decision"`
	Timelines       []domain.Timeline   `json:"timelines"`
	GenerateVisuals bool                `json:"generate_visuals"`
}

// LoadInput parses an input file. Missing timelines default to all three
// horizons; deep validation is left to the pipeline so the error surface
// is the same for every input origin.
func LoadInput(path string) (*Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input file %s: %w", path, err)
	}

	var in Input
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("parsing input file %s: %w", path, err)
	}

	if in.UserProfile == nil {
		return nil, &domain.ValidationError{Field: "user_profile", Reason: "missing required field"}
	}
	if in.Decision == "" {
		return nil, &domain.ValidationError{Field: "decision", Reason: "missing required field"}
	}
	if len(in.Timelines) == 0 {
		in.Timelines = domain.AllTimelines()
	}
	return &in, nil
}
