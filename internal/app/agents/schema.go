package agents

import (
	"encoding/json"
	"fmt"

	"futureyou/internal/domain"
)

// fieldKind says how a required response key is checked.
type fieldKind int

const (
	kindString fieldKind = iota
	kindStringList
	kindObject
	kindUnitInterval // number in [0,1]
)

// fieldSpec is one row of an agent's field-requirement table. All four
// agents share the same checking routine, parameterized by their table.
type fieldSpec struct {
	key  string
	kind fieldKind
}

// checkFields verifies that every required key is present and has the
// declared shape, returning a SchemaViolationError naming the first
// offending key.
func checkFields(m map[string]any, specs []fieldSpec) error {
	for _, fs := range specs {
		v, ok := m[fs.key]
		if !ok {
			return &domain.SchemaViolationError{Key: fs.key, Reason: "missing required key"}
		}
		switch fs.kind {
		case kindString:
			if _, ok := v.(string); !ok {
				return &domain.SchemaViolationError{Key: fs.key, Reason: "must be a string"}
			}
		case kindStringList:
			if _, ok := toStringList(v); !ok {
				return &domain.SchemaViolationError{Key: fs.key, Reason: "must be a list of strings"}
			}
		case kindObject:
			if _, ok := v.(map[string]any); !ok {
				return &domain.SchemaViolationError{Key: fs.key, Reason: "must be an object"}
			}
		case kindUnitInterval:
			f, ok := toFloat(v)
			if !ok || f < 0 || f > 1 {
				return &domain.SchemaViolationError{Key: fs.key, Reason: "must be a number between 0 and 1"}
			}
		}
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case int:
		return float64(n), true
	}
	return 0, false
}

func toStringList(v any) ([]string, bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// toStringMap coerces an object's values to strings. Non-string leaves are
// stringified rather than rejected; the model is free-form here.
func toStringMap(v any) (map[string]string, bool) {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(raw))
	for k, item := range raw {
		if s, ok := item.(string); ok {
			out[k] = s
		} else {
			out[k] = fmt.Sprint(item)
		}
	}
	return out, true
}

func toScoreMap(v any) (map[string]float64, bool) {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]float64, len(raw))
	for k, item := range raw {
		f, ok := toFloat(item)
		if !ok {
			return nil, false
		}
		out[k] = f
	}
	return out, true
}
