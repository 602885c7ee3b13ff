package pareto

import "encoding/json"

// Point is one candidate configuration plotted as (disparity, performance).
// Metadata rides along untouched; the classifier never reads it.
type Point struct {
	Disparity   float64        `json:"disparity"`
	Performance float64        `json:"performance"`
	Metadata    map[string]any `json:"matchers,omitempty"`
}

// Series is a named group of points sharing one pair of axis directions.
// Classification never compares points across series.
type Series struct {
	Name       string    `json:"name"`
	XDirection Direction `json:"x_objective"`
	YDirection Direction `json:"y_objective"`
	Points     []Point   `json:"data"`
}

// NewSeries builds a series with the default axis directions.
func NewSeries(name string, points []Point) Series {
	return Series{
		Name:       name,
		XDirection: DefaultXDirection,
		YDirection: DefaultYDirection,
		Points:     points,
	}
}

// UnmarshalJSON fills in the default directions when a series omits them.
func (s *Series) UnmarshalJSON(data []byte) error {
	type plain Series
	v := plain{XDirection: DefaultXDirection, YDirection: DefaultYDirection}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = Series(v)
	return nil
}

// Classify reports frontier membership for every point of the series.
func (s Series) Classify() []bool {
	return Classify(s.Points, s.XDirection, s.YDirection)
}

// Classify returns, index-aligned with points, whether each point is on the
// Pareto frontier: no other point is strictly better on both axes.
// O(n^2) dominance check; series are small.
func Classify(points []Point, xDir, yDir Direction) []bool {
	out := make([]bool, len(points))
	for i := range points {
		out[i] = true
		for j := range points {
			if i == j {
				continue
			}
			if Dominates(points[j], points[i], xDir, yDir) {
				out[i] = false
				break
			}
		}
	}
	return out
}

// Dominates reports whether q strictly improves on p on both axes.
// Equal values on either axis never dominate, and NaN never compares better.
func Dominates(q, p Point, xDir, yDir Direction) bool {
	return xDir.better(q.Disparity, p.Disparity) && yDir.better(q.Performance, p.Performance)
}

// Frontier returns the non-dominated points in their original order.
func Frontier(points []Point, xDir, yDir Direction) []Point {
	flags := Classify(points, xDir, yDir)
	frontier := make([]Point, 0, len(points))
	for i, on := range flags {
		if on {
			frontier = append(frontier, points[i])
		}
	}
	return frontier
}
