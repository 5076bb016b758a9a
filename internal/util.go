package internal

import "math"

// Default tolerance for treating two y values as equal.
const DefaultEpsilon = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. If we
// don't account for this, near-horizontal edges get classified differently
// depending on floating point noise. Identical values are always equal, even
// with a zero tolerance, so the x tie-break in Order applies to exact
// horizontals.
func Equal(a, b, epsilon float64) bool {
	return a == b || math.Abs(a-b) < epsilon
}

// Order is the sweep order used by every stage of the engine. A common
// convention in our geometry is that if two points have the same Y value, the
// one with the smaller X value is "lower". This simulates a slightly rotated
// coordinate system, allowing us to assume Y values are never equal, and
// therefore that no edge is ever horizontal.
type Order struct {
	Epsilon float64
}

func (o Order) Below(p, q Point) bool {
	if Equal(p.Y, q.Y, o.Epsilon) {
		return p.X < q.X
	}
	return p.Y < q.Y
}

func (o Order) Above(p, q Point) bool {
	return o.Below(q, p)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Cross product of (a - o) and (b - o). Positive when o, a, b turn left
// (counterclockwise).
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Angle from direction `from` to direction `to`, measured clockwise, in the
// half open range (0, 2π]. Parallel directions give 2π, so that going back the
// way you came is always the last resort.
func ClockwiseAngle(from, to Point) float64 {
	cross := to.X*from.Y - to.Y*from.X
	dot := from.X*to.X + from.Y*to.Y
	angle := math.Atan2(cross, dot)
	if angle <= 0 {
		angle += 2 * math.Pi
	}
	return angle
}

func (s *IndexStack) Push(i int) {
	*s = append(*s, i)
}

// Pop returns -1 on an empty stack.
func (s *IndexStack) Pop() int {
	if len(*s) == 0 {
		return -1
	}
	i := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return i
}

func (s *IndexStack) Peek() int {
	if len(*s) == 0 {
		return -1
	}
	return (*s)[len(*s)-1]
}

func (s *IndexStack) Empty() bool {
	return len(*s) == 0
}
