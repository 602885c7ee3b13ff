package pareto

import "fmt"

// Direction is the optimization direction of one axis.
type Direction int

const (
	Minimize Direction = iota
	Maximize
)

// Axis defaults for fairness/performance charts: lower disparity is fairer,
// higher performance is better.
const (
	DefaultXDirection = Minimize
	DefaultYDirection = Maximize
)

// ParseDirection accepts "min" or "max".
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "min":
		return Minimize, nil
	case "max":
		return Maximize, nil
	default:
		return 0, fmt.Errorf("invalid direction %q: want \"min\" or \"max\"", s)
	}
}

func (d Direction) String() string {
	if d == Maximize {
		return "max"
	}
	return "min"
}

// better reports whether a strictly improves on b along this direction.
func (d Direction) better(a, b float64) bool {
	if d == Maximize {
		return a > b
	}
	return a < b
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	v, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
