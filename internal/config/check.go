package config

import (
	"fmt"
	"os"

	"futureyou/internal/app/validate"
)

const placeholderKey = "your_gemini_api_key_here"

// CheckReport is the outcome of a pre-flight check: hard errors, advisory
// warnings, and informational notes.
type CheckReport struct {
	OK       bool
	Errors   []string
	Warnings []string
	Info     []string
}

func (r *CheckReport) fail(format string, args ...any) {
	r.OK = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *CheckReport) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *CheckReport) note(format string, args ...any) {
	r.Info = append(r.Info, fmt.Sprintf(format, args...))
}

// CheckEnvironment verifies credentials and output directories before a run.
func CheckEnvironment(cfg *Config) *CheckReport {
	r := &CheckReport{OK: true}

	switch {
	case cfg.UseMockLLM:
		r.note("mock model client selected, no API key needed")
	case cfg.APIKey == "":
		r.fail("API key not set: export FUTUREYOU_API_KEY or GEMINI_API_KEY")
	case cfg.APIKey == placeholderKey:
		r.fail("API key is the placeholder value, set your actual key")
	case len(cfg.APIKey) < 20:
		r.warn("API key seems unusually short, verify it is correct")
	default:
		r.note("API key found")
	}

	for _, dir := range []string{cfg.OutputDir, cfg.VisualsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			r.fail("cannot create directory %s: %v", dir, err)
		} else {
			r.note("directory ready: %s", dir)
		}
	}

	return r
}

// CheckInputFile verifies the input file exists and holds a simulatable
// request.
func CheckInputFile(path string) *CheckReport {
	r := &CheckReport{OK: true}

	if _, err := os.Stat(path); err != nil {
		r.fail("input file %s not found", path)
		return r
	}

	in, err := LoadInput(path)
	if err != nil {
		r.fail("%v", err)
		return r
	}
	r.note("input file %s loaded", path)

	if err := validate.Profile(in.UserProfile); err != nil {
		r.fail("%v", err)
	}
	if _, err := validate.Decision(in.Decision); err != nil {
		r.fail("%v", err)
	}
	if err := validate.Timelines(in.Timelines); err != nil {
		r.fail("%v", err)
	}

	if r.OK {
		r.note("profile, decision and timelines are valid")
	}
	return r
}
