package wizard

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, StepIntro, s.Step)
	assert.Equal(t, 0.5, s.MatchingThreshold)
	assert.Equal(t, 0.5, s.FairnessThreshold)
	assert.Equal(t, 10, s.GroupAcceptanceCount)
	assert.NotNil(t, s.Matchers)
	assert.NotNil(t, s.FairnessMeasures)
	assert.NotNil(t, s.Groups)
}

func TestNextBackBounds(t *testing.T) {
	s := New()
	assert.Equal(t, StepIntro, s.Back().Step)

	for i := 0; i < 10; i++ {
		s = s.Next()
	}
	assert.Equal(t, StepComparison, s.Step)

	s = s.WithDisableNext(true).Back()
	assert.Equal(t, StepFairnessAnalysis, s.Step)
	assert.False(t, s.DisableNext)
}

func TestReducersDoNotMutate(t *testing.T) {
	orig := New()
	matchers := []MatcherAlgorithm{MatcherDitto, MatcherMCAN}
	next := orig.WithMatchers(matchers).WithDataset("dblp-acm")

	matchers[0] = MatcherSVMMatcher
	assert.Equal(t, []MatcherAlgorithm{MatcherDitto, MatcherMCAN}, next.Matchers)
	assert.Empty(t, orig.Matchers)
	assert.Empty(t, orig.DatasetID)
	assert.Equal(t, "dblp-acm", next.DatasetID)
}

func TestThresholdValidation(t *testing.T) {
	s := New()
	_, err := s.WithMatchingThreshold(1.2)
	assert.True(t, errors.Is(err, ErrThresholdRange))
	_, err = s.WithFairnessThreshold(-0.1)
	assert.True(t, errors.Is(err, ErrThresholdRange))
	_, err = s.WithGroupAcceptanceCount(-1)
	assert.True(t, errors.Is(err, ErrNegativeCount))

	s, err = s.WithFairnessThreshold(0.2)
	require.NoError(t, err)
	assert.Equal(t, 0.2, s.FairnessThreshold)
}

func TestWithStep(t *testing.T) {
	s, err := New().WithStep(StepFairnessAnalysis)
	require.NoError(t, err)
	assert.Equal(t, StepFairnessAnalysis, s.Step)
	assert.Equal(t, "fairness_analysis", s.Step.String())

	_, err = New().WithStep(Step(9))
	assert.ErrorIs(t, err, ErrInvalidStepJump)
}

func raw(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestApply(t *testing.T) {
	s := New()
	steps := []Action{
		{Type: ActionNext},
		{Type: ActionSetDataset, Payload: raw(t, "amazon-google")},
		{Type: ActionSetMatchers, Payload: raw(t, []string{"Ditto", "DeepMatcher"})},
		{Type: ActionSetSensitiveAttribute, Payload: raw(t, "country")},
		{Type: ActionSetDisparityCalculation, Payload: raw(t, "division based")},
		{Type: ActionSetFairnessMeasures, Payload: raw(t, []string{"accuracy_parity"})},
		{Type: ActionSetMatchingThreshold, Payload: raw(t, 0.7)},
		{Type: ActionSetFairnessThreshold, Payload: raw(t, 0.1)},
		{Type: ActionSetGroupAcceptanceCount, Payload: raw(t, 25)},
		{Type: ActionSetGroups, Payload: raw(t, []string{"cn", "de"})},
		{Type: ActionSetDisableNext, Payload: raw(t, true)},
	}
	for _, a := range steps {
		var err error
		s, err = Apply(s, a)
		require.NoError(t, err, a.Type)
	}

	assert.Equal(t, StepDatasetSelection, s.Step)
	assert.Equal(t, "amazon-google", s.DatasetID)
	assert.Equal(t, []MatcherAlgorithm{MatcherDitto, MatcherDeepMatcher}, s.Matchers)
	assert.Equal(t, "country", s.SensitiveAttribute)
	assert.Equal(t, DivisionBased, s.DisparityCalculation)
	assert.Equal(t, []FairnessMeasure{AccuracyParity}, s.FairnessMeasures)
	assert.Equal(t, 0.7, s.MatchingThreshold)
	assert.Equal(t, 0.1, s.FairnessThreshold)
	assert.Equal(t, 25, s.GroupAcceptanceCount)
	assert.Equal(t, []string{"cn", "de"}, s.Groups)
	assert.True(t, s.DisableNext)

	s, err := Apply(s, Action{Type: ActionBack})
	require.NoError(t, err)
	assert.Equal(t, StepIntro, s.Step)
	assert.False(t, s.DisableNext)
}

func TestApplyErrors(t *testing.T) {
	s := New()
	tests := []Action{
		{Type: "teleport"},
		{Type: ActionSetDataset},
		{Type: ActionSetMatchers, Payload: raw(t, []string{"GPT"})},
		{Type: ActionSetFairnessMeasures, Payload: raw(t, []string{"equal_vibes"})},
		{Type: ActionSetDisparityCalculation, Payload: raw(t, "multiplication based")},
		{Type: ActionSetMatchingThreshold, Payload: raw(t, 3)},
		{Type: ActionSetStep, Payload: raw(t, -1)},
	}
	for _, a := range tests {
		got, err := Apply(s, a)
		assert.Error(t, err, a.Type)
		assert.Equal(t, s, got, a.Type)
	}
}

func TestUnmarshalFillsDefaults(t *testing.T) {
	var s State
	require.NoError(t, json.Unmarshal([]byte(`{"step":2,"matchers":null,"groups":["cn"]}`), &s))
	assert.Equal(t, StepMatcherSelection, s.Step)
	assert.Equal(t, DefaultFairnessThreshold, s.FairnessThreshold)
	assert.Equal(t, DefaultGroupAcceptanceCount, s.GroupAcceptanceCount)
	assert.NotNil(t, s.Matchers)
	assert.NotNil(t, s.FairnessMeasures)
	assert.Equal(t, []string{"cn"}, s.Groups)
}

func TestUnmarshalRejectsInvalidState(t *testing.T) {
	tests := map[string]struct {
		body string
		want error
	}{
		"step too high":      {`{"step":9}`, ErrInvalidStepJump},
		"negative step":      {`{"step":-1}`, ErrInvalidStepJump},
		"fairness threshold": {`{"fairness_threshold":7}`, ErrThresholdRange},
		"matching threshold": {`{"matching_threshold":-0.1}`, ErrThresholdRange},
		"negative count":     {`{"group_acceptance_count":-3}`, ErrNegativeCount},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := New().WithDataset("kept")
			err := json.Unmarshal([]byte(tt.body), &s)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Equal(t, "kept", s.DatasetID)
		})
	}
}

func TestStateRoundTripsThroughJSON(t *testing.T) {
	want := New().WithDataset("dblp-acm").WithMatchers([]MatcherAlgorithm{MatcherDitto}).Next()
	b, err := json.Marshal(want)
	require.NoError(t, err)

	var got State
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, want, got)
	assert.NoError(t, got.Validate())
}
