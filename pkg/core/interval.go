package core

import "math"

// Interval represents a closed scalar range [Min, Max]
type Interval struct {
	Min, Max float64
}

// EmptyInterval contains no values: every intersect with it is empty
var EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}

// FullInterval contains every value
var FullInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}

// NewInterval creates a new interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// OrderedInterval creates an interval from two unordered endpoints
func OrderedInterval(a, b float64) Interval {
	if a < b {
		return Interval{Min: a, Max: b}
	}
	return Interval{Min: b, Max: a}
}

// Length returns the extent of the interval
func (i Interval) Length() float64 {
	return i.Max - i.Min
}

// IsEmpty reports whether the interval contains no inner values
func (i Interval) IsEmpty() bool {
	return i.Min >= i.Max
}

// Contains tests closed membership: Min <= x <= Max
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds tests open membership: Min < x < Max
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Expand returns the interval grown by delta, half on each side
func (i Interval) Expand(delta float64) Interval {
	half := delta / 2
	return Interval{Min: i.Min - half, Max: i.Max + half}
}

// Intersect returns the overlap of two intervals, the meet of the
// interval lattice. The result may be empty.
func (i Interval) Intersect(other Interval) Interval {
	return Interval{Min: math.Max(i.Min, other.Min), Max: math.Min(i.Max, other.Max)}
}

// Enclose returns the smallest interval containing both, the join of
// the interval lattice
func (i Interval) Enclose(other Interval) Interval {
	return Interval{Min: math.Min(i.Min, other.Min), Max: math.Max(i.Max, other.Max)}
}
