package chart

import (
	"fmt"
	"sort"

	"github.com/MikeSquared-Agency/FairEM360/internal/palette"
	"github.com/MikeSquared-Agency/FairEM360/internal/pareto"
)

type Axis struct {
	Title string  `json:"title"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

var (
	DisparityAxis   = Axis{Title: "Disparity Between Max and Min Group Performance", Min: 0, Max: 1.8}
	PerformanceAxis = Axis{Title: "Worst Performance Between Groups", Min: 0, Max: 1}
)

type ScatterPoint struct {
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Matchers map[string]any `json:"matchers,omitempty"`
}

type ScatterDataset struct {
	Label                string           `json:"label"`
	Series               string           `json:"series"`
	XDirection           pareto.Direction `json:"x_objective"`
	YDirection           pareto.Direction `json:"y_objective"`
	Data                 []ScatterPoint   `json:"data"`
	Frontier             []bool           `json:"frontier"`
	PointBackgroundColor []string         `json:"pointBackgroundColor"`
	PointBorderColor     []string         `json:"pointBorderColor"`
	Tooltips             [][]string       `json:"tooltips"`
}

// FrontierCount returns how many points of the dataset are non-dominated.
func (d ScatterDataset) FrontierCount() int {
	n := 0
	for _, on := range d.Frontier {
		if on {
			n++
		}
	}
	return n
}

type ScatterChart struct {
	XAxis    Axis             `json:"x_axis"`
	YAxis    Axis             `json:"y_axis"`
	Datasets []ScatterDataset `json:"datasets"`
}

// Builder turns series and measure results into chart-ready datasets.
type Builder struct {
	style Style
}

func NewBuilder(style Style) *Builder {
	return &Builder{style: style}
}

// Scatter builds the fairness/performance tradeoff chart. Each series is
// classified on its own; frontier points get the strong alphas.
func (b *Builder) Scatter(series []pareto.Series) ScatterChart {
	chart := ScatterChart{
		XAxis:    DisparityAxis,
		YAxis:    PerformanceAxis,
		Datasets: make([]ScatterDataset, 0, len(series)),
	}
	for _, s := range series {
		chart.Datasets = append(chart.Datasets, b.scatterDataset(s))
	}
	return chart
}

func (b *Builder) scatterDataset(s pareto.Series) ScatterDataset {
	frontier := s.Classify()
	label := TitleCase(s.Name)
	onFrontier := palette.AssignPair(s.Name, b.style.FrontierFill, b.style.FrontierBorder)
	dominated := palette.AssignPair(s.Name, b.style.DominatedFill, b.style.DominatedBorder)

	ds := ScatterDataset{
		Label:                label,
		Series:               s.Name,
		XDirection:           s.XDirection,
		YDirection:           s.YDirection,
		Data:                 make([]ScatterPoint, len(s.Points)),
		Frontier:             frontier,
		PointBackgroundColor: make([]string, len(s.Points)),
		PointBorderColor:     make([]string, len(s.Points)),
		Tooltips:             make([][]string, len(s.Points)),
	}
	for i, p := range s.Points {
		ds.Data[i] = ScatterPoint{X: p.Disparity, Y: p.Performance, Matchers: p.Metadata}
		style := dominated
		if frontier[i] {
			style = onFrontier
		}
		ds.PointBackgroundColor[i] = style.Fill.String()
		ds.PointBorderColor[i] = style.Stroke.String()
		ds.Tooltips[i] = tooltip(label, p)
	}
	return ds
}

func tooltip(label string, p pareto.Point) []string {
	lines := []string{
		"Metric: " + label,
		fmt.Sprintf("Disparity: %.3f, Performance: %.3f", p.Disparity, p.Performance),
	}
	keys := make([]string, 0, len(p.Metadata))
	for k := range p.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, p.Metadata[k]))
	}
	return lines
}
