package wizard

import "fmt"

type MatcherAlgorithm string

const (
	MatcherDitto         MatcherAlgorithm = "Ditto"
	MatcherMCAN          MatcherAlgorithm = "MCAN"
	MatcherDeepMatcher   MatcherAlgorithm = "DeepMatcher"
	MatcherHierMatcher   MatcherAlgorithm = "HierMatcher"
	MatcherNonNeural     MatcherAlgorithm = "non-neural"
	MatcherDTMatcher     MatcherAlgorithm = "DTMatcher"
	MatcherLogRegMatcher MatcherAlgorithm = "LogRegMatcher"
	MatcherLinRegMatcher MatcherAlgorithm = "LinRegMatcher"
	MatcherNBMatcher     MatcherAlgorithm = "NBMatcher"
	MatcherRFMatcher     MatcherAlgorithm = "RFMatcher"
	MatcherSVMMatcher    MatcherAlgorithm = "SVMMatcher"
)

var matcherAlgorithms = []MatcherAlgorithm{
	MatcherDitto, MatcherMCAN, MatcherDeepMatcher, MatcherHierMatcher, MatcherNonNeural,
	MatcherDTMatcher, MatcherLogRegMatcher, MatcherLinRegMatcher, MatcherNBMatcher,
	MatcherRFMatcher, MatcherSVMMatcher,
}

func (m *MatcherAlgorithm) UnmarshalText(text []byte) error {
	for _, v := range matcherAlgorithms {
		if string(v) == string(text) {
			*m = v
			return nil
		}
	}
	return fmt.Errorf("unknown matcher %q", text)
}

type FairnessMeasure string

const (
	AccuracyParity                FairnessMeasure = "accuracy_parity"
	TruePositiveRateParity        FairnessMeasure = "true_positive_rate_parity"
	FalsePositiveRateParity       FairnessMeasure = "false_positive_rate_parity"
	NegativePredictiveValueParity FairnessMeasure = "negative_predictive_value_parity"
	PositivePredictiveValueParity FairnessMeasure = "positive_predictive_value_parity"
)

var fairnessMeasures = []FairnessMeasure{
	AccuracyParity, TruePositiveRateParity, FalsePositiveRateParity,
	NegativePredictiveValueParity, PositivePredictiveValueParity,
}

func (f *FairnessMeasure) UnmarshalText(text []byte) error {
	for _, v := range fairnessMeasures {
		if string(v) == string(text) {
			*f = v
			return nil
		}
	}
	return fmt.Errorf("unknown fairness measure %q", text)
}

type DisparityCalculation string

const (
	SubtractionBased DisparityCalculation = "subtraction based"
	DivisionBased    DisparityCalculation = "division based"
)

// UnmarshalText also accepts the empty string: no calculation picked yet.
func (d *DisparityCalculation) UnmarshalText(text []byte) error {
	switch v := DisparityCalculation(text); v {
	case "", SubtractionBased, DivisionBased:
		*d = v
		return nil
	default:
		return fmt.Errorf("unknown disparity calculation %q", text)
	}
}
