package wizard

import (
	"encoding/json"
	"fmt"
)

type ActionType string

const (
	ActionNext                    ActionType = "next"
	ActionBack                    ActionType = "back"
	ActionSetStep                 ActionType = "set_step"
	ActionSetDisableNext          ActionType = "set_disable_next"
	ActionSetDataset              ActionType = "set_dataset"
	ActionSetMatchers             ActionType = "set_matchers"
	ActionSetSensitiveAttribute   ActionType = "set_sensitive_attribute"
	ActionSetDisparityCalculation ActionType = "set_disparity_calculation_type"
	ActionSetFairnessMeasures     ActionType = "set_fairness_metrics"
	ActionSetMatchingThreshold    ActionType = "set_matching_threshold"
	ActionSetFairnessThreshold    ActionType = "set_fairness_threshold"
	ActionSetGroupAcceptanceCount ActionType = "set_group_acceptance_count"
	ActionSetGroups               ActionType = "set_groups"
)

// Action is a single state update as it arrives over the wire. Payload is
// decoded according to Type.
type Action struct {
	Type    ActionType      `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Apply runs the reducer named by the action. On error the input state is
// returned unchanged.
func Apply(s State, a Action) (State, error) {
	switch a.Type {
	case ActionNext:
		return s.Next(), nil
	case ActionBack:
		return s.Back(), nil
	case ActionSetStep:
		var step Step
		if err := decode(a, &step); err != nil {
			return s, err
		}
		return s.WithStep(step)
	case ActionSetDisableNext:
		var v bool
		if err := decode(a, &v); err != nil {
			return s, err
		}
		return s.WithDisableNext(v), nil
	case ActionSetDataset:
		var id string
		if err := decode(a, &id); err != nil {
			return s, err
		}
		return s.WithDataset(id), nil
	case ActionSetMatchers:
		var m []MatcherAlgorithm
		if err := decode(a, &m); err != nil {
			return s, err
		}
		return s.WithMatchers(m), nil
	case ActionSetSensitiveAttribute:
		var attr string
		if err := decode(a, &attr); err != nil {
			return s, err
		}
		return s.WithSensitiveAttribute(attr), nil
	case ActionSetDisparityCalculation:
		var d DisparityCalculation
		if err := decode(a, &d); err != nil {
			return s, err
		}
		return s.WithDisparityCalculation(d), nil
	case ActionSetFairnessMeasures:
		var m []FairnessMeasure
		if err := decode(a, &m); err != nil {
			return s, err
		}
		return s.WithFairnessMeasures(m), nil
	case ActionSetMatchingThreshold:
		var v float64
		if err := decode(a, &v); err != nil {
			return s, err
		}
		return s.WithMatchingThreshold(v)
	case ActionSetFairnessThreshold:
		var v float64
		if err := decode(a, &v); err != nil {
			return s, err
		}
		return s.WithFairnessThreshold(v)
	case ActionSetGroupAcceptanceCount:
		var n int
		if err := decode(a, &n); err != nil {
			return s, err
		}
		return s.WithGroupAcceptanceCount(n)
	case ActionSetGroups:
		var groups []string
		if err := decode(a, &groups); err != nil {
			return s, err
		}
		return s.WithGroups(groups), nil
	default:
		return s, fmt.Errorf("unknown action %q", a.Type)
	}
}

func decode(a Action, v any) error {
	if len(a.Payload) == 0 {
		return fmt.Errorf("action %s: missing payload", a.Type)
	}
	if err := json.Unmarshal(a.Payload, v); err != nil {
		return fmt.Errorf("action %s: %w", a.Type, err)
	}
	return nil
}
