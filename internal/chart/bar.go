package chart

import (
	"sort"

	"github.com/MikeSquared-Agency/FairEM360/internal/palette"
)

// GroupDisparity is one group's result for a fairness measure, as returned by
// the analysis backend.
type GroupDisparity struct {
	Group     string  `json:"sens_attr"`
	Disparity float64 `json:"disparities"`
	IsFair    bool    `json:"is_fair"`
}

type BarDataset struct {
	Label           string    `json:"label"`
	Measure         string    `json:"measure"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
	BorderColor     []string  `json:"borderColor"`
	BorderWidth     float64   `json:"borderWidth"`
	MinBarLength    int       `json:"minBarLength"`
	IsFair          []bool    `json:"isFair"`
}

// Threshold is the dashed fairness-threshold line drawn across the bar chart.
type Threshold struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

type BarChart struct {
	XTitle    string       `json:"x_title"`
	YTitle    string       `json:"y_title"`
	YMax      *float64     `json:"y_max,omitempty"`
	Threshold *Threshold   `json:"threshold,omitempty"`
	Labels    []string     `json:"labels"`
	Datasets  []BarDataset `json:"datasets"`
}

const (
	barBorderWidth  = 1.5
	barMinLength    = 3
	thresholdMargin = 1.1
)

// Bar builds the per-group disparity chart. Measures are laid out in name
// order; labels are the groups in first-seen order. With onlyUnfair set,
// fair groups are left out of both.
func (b *Builder) Bar(measures map[string][]GroupDisparity, onlyUnfair bool, threshold *float64) BarChart {
	names := make([]string, 0, len(measures))
	for name := range measures {
		names = append(names, name)
	}
	sort.Strings(names)

	chart := BarChart{
		XTitle:   "Groups",
		YTitle:   "Disparity",
		Labels:   []string{},
		Datasets: make([]BarDataset, 0, len(names)),
	}
	if threshold != nil {
		yMax := *threshold * thresholdMargin
		chart.YMax = &yMax
		chart.Threshold = &Threshold{Label: "Fairness Threshold", Value: *threshold}
	}

	seen := make(map[string]bool)
	for _, name := range names {
		colors := palette.AssignPair(name, b.style.BarFill, b.style.BarBorder)
		ds := BarDataset{
			Label:           TitleCase(name),
			Measure:         name,
			Data:            []float64{},
			BackgroundColor: []string{},
			BorderColor:     []string{},
			BorderWidth:     barBorderWidth,
			MinBarLength:    barMinLength,
			IsFair:          []bool{},
		}
		for _, g := range measures[name] {
			if onlyUnfair && g.IsFair {
				continue
			}
			if !seen[g.Group] {
				seen[g.Group] = true
				chart.Labels = append(chart.Labels, g.Group)
			}
			ds.Data = append(ds.Data, g.Disparity)
			ds.BackgroundColor = append(ds.BackgroundColor, colors.Fill.String())
			ds.BorderColor = append(ds.BorderColor, colors.Stroke.String())
			ds.IsFair = append(ds.IsFair, g.IsFair)
		}
		chart.Datasets = append(chart.Datasets, ds)
	}
	return chart
}
