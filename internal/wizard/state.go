// Package wizard holds the state shared across the steps of the comparison
// wizard. State is a value: every reducer returns a new State and copies any
// slice it stores, so a State handed to a caller never changes underneath it.
package wizard

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

type Step int

const (
	StepIntro Step = iota
	StepDatasetSelection
	StepMatcherSelection
	StepFairnessAnalysis
	StepComparison
)

var stepNames = [...]string{"intro", "dataset_selection", "matcher_selection", "fairness_analysis", "comparison"}

func (s Step) String() string {
	if s < StepIntro || s > StepComparison {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

const (
	DefaultMatchingThreshold    = 0.5
	DefaultFairnessThreshold    = 0.5
	DefaultGroupAcceptanceCount = 10
)

var (
	ErrThresholdRange  = errors.New("threshold must be within [0, 1]")
	ErrNegativeCount   = errors.New("group acceptance count must not be negative")
	ErrInvalidStepJump = errors.New("step out of range")
)

type State struct {
	Step                 Step                 `json:"step"`
	DisableNext          bool                 `json:"disable_next"`
	DatasetID            string               `json:"dataset_id,omitempty"`
	Matchers             []MatcherAlgorithm   `json:"matchers"`
	SensitiveAttribute   string               `json:"sensitive_attribute,omitempty"`
	DisparityCalculation DisparityCalculation `json:"disparity_calculation_type,omitempty"`
	FairnessMeasures     []FairnessMeasure    `json:"fairness_metrics"`
	MatchingThreshold    float64              `json:"matching_threshold"`
	FairnessThreshold    float64              `json:"fairness_threshold"`
	GroupAcceptanceCount int                  `json:"group_acceptance_count"`
	Groups               []string             `json:"groups"`
}

func New() State {
	return State{
		Step:                 StepIntro,
		Matchers:             []MatcherAlgorithm{},
		FairnessMeasures:     []FairnessMeasure{},
		MatchingThreshold:    DefaultMatchingThreshold,
		FairnessThreshold:    DefaultFairnessThreshold,
		GroupAcceptanceCount: DefaultGroupAcceptanceCount,
		Groups:               []string{},
	}
}

// Next advances one step; on the last step it is a no-op.
func (s State) Next() State {
	if s.Step < StepComparison {
		s.Step++
	}
	return s
}

// Back returns one step and re-enables the next button.
func (s State) Back() State {
	if s.Step > StepIntro {
		s.Step--
	}
	s.DisableNext = false
	return s
}

func (s State) WithStep(step Step) (State, error) {
	if step < StepIntro || step > StepComparison {
		return s, fmt.Errorf("%w: %d", ErrInvalidStepJump, int(step))
	}
	s.Step = step
	return s, nil
}

func (s State) WithDisableNext(disabled bool) State {
	s.DisableNext = disabled
	return s
}

func (s State) WithDataset(id string) State {
	s.DatasetID = id
	return s
}

func (s State) WithMatchers(m []MatcherAlgorithm) State {
	s.Matchers = cloneNonNil(m)
	return s
}

func (s State) WithSensitiveAttribute(attr string) State {
	s.SensitiveAttribute = attr
	return s
}

func (s State) WithDisparityCalculation(d DisparityCalculation) State {
	s.DisparityCalculation = d
	return s
}

func (s State) WithFairnessMeasures(m []FairnessMeasure) State {
	s.FairnessMeasures = cloneNonNil(m)
	return s
}

func (s State) WithMatchingThreshold(v float64) (State, error) {
	if !inUnitRange(v) {
		return s, fmt.Errorf("matching %w, got %v", ErrThresholdRange, v)
	}
	s.MatchingThreshold = v
	return s, nil
}

func (s State) WithFairnessThreshold(v float64) (State, error) {
	if !inUnitRange(v) {
		return s, fmt.Errorf("fairness %w, got %v", ErrThresholdRange, v)
	}
	s.FairnessThreshold = v
	return s, nil
}

func (s State) WithGroupAcceptanceCount(n int) (State, error) {
	if n < 0 {
		return s, fmt.Errorf("%w, got %d", ErrNegativeCount, n)
	}
	s.GroupAcceptanceCount = n
	return s, nil
}

func (s State) WithGroups(groups []string) State {
	s.Groups = cloneNonNil(groups)
	return s
}

// Validate reports the first field that no reducer could have produced.
func (s State) Validate() error {
	if s.Step < StepIntro || s.Step > StepComparison {
		return fmt.Errorf("%w: %d", ErrInvalidStepJump, int(s.Step))
	}
	if !inUnitRange(s.MatchingThreshold) {
		return fmt.Errorf("matching %w, got %v", ErrThresholdRange, s.MatchingThreshold)
	}
	if !inUnitRange(s.FairnessThreshold) {
		return fmt.Errorf("fairness %w, got %v", ErrThresholdRange, s.FairnessThreshold)
	}
	if s.GroupAcceptanceCount < 0 {
		return fmt.Errorf("%w, got %d", ErrNegativeCount, s.GroupAcceptanceCount)
	}
	return nil
}

// UnmarshalJSON starts from New, so omitted fields keep their defaults, and
// rejects states that fail Validate. Null slices decode as empty.
func (s *State) UnmarshalJSON(data []byte) error {
	type plain State
	v := plain(New())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	st := State(v)
	st.Matchers = cloneNonNil(st.Matchers)
	st.FairnessMeasures = cloneNonNil(st.FairnessMeasures)
	st.Groups = cloneNonNil(st.Groups)
	if err := st.Validate(); err != nil {
		return err
	}
	*s = st
	return nil
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}

func cloneNonNil[T any](in []T) []T {
	out := slices.Clone(in)
	if out == nil {
		out = []T{}
	}
	return out
}
