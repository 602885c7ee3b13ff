package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PointsClassified = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fairem",
		Name:      "pareto_points_classified_total",
		Help:      "Points run through frontier classification.",
	})

	FrontierPoints = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fairem",
		Name:      "pareto_frontier_points_total",
		Help:      "Points classified as non-dominated.",
	})

	ColorsAssigned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fairem",
		Name:      "colors_assigned_total",
		Help:      "Labels mapped to colors.",
	})

	ChartsRendered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fairem",
		Name:      "charts_rendered_total",
		Help:      "Chart payloads built, by kind.",
	}, []string{"kind"})

	ComparisonsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fairem",
		Name:      "comparisons_saved_total",
		Help:      "Comparisons persisted.",
	})
)

// ObserveFrontier records one classification pass.
func ObserveFrontier(frontier []bool) {
	PointsClassified.Add(float64(len(frontier)))
	n := 0
	for _, on := range frontier {
		if on {
			n++
		}
	}
	FrontierPoints.Add(float64(n))
}
