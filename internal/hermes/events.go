package hermes

import "time"

type ComparisonSavedEvent struct {
	ComparisonID string    `json:"comparison_id"`
	Name         string    `json:"name"`
	DatasetID    string    `json:"dataset_id"`
	SeriesCount  int       `json:"series_count"`
	Timestamp    time.Time `json:"timestamp"`
}

type ComparisonDeletedEvent struct {
	ComparisonID string    `json:"comparison_id"`
	Timestamp    time.Time `json:"timestamp"`
}

type SessionEvent struct {
	SessionID string    `json:"session_id"`
	Step      string    `json:"step"`
	Action    string    `json:"action,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ChartRenderedEvent summarises one scatter chart: per-series point and
// frontier counts, keyed by series name.
type ChartRenderedEvent struct {
	Kind         string         `json:"kind"`
	ComparisonID string         `json:"comparison_id,omitempty"`
	Points       map[string]int `json:"points"`
	Frontier     map[string]int `json:"frontier"`
	Timestamp    time.Time      `json:"timestamp"`
}
