package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrCoordinateOverflow is returned when a move would leave the int64 range.
var ErrCoordinateOverflow = errors.New("coordinate overflow")

// Vector is a point or direction on the integer plane. It is comparable and
// can be used directly as a map key.
type Vector struct {
	X int64
	Y int64
}

// Add returns the componentwise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// AddChecked is Add that reports false instead of wrapping on overflow.
func (v Vector) AddChecked(o Vector) (Vector, bool) {
	x, ok := addInt64(v.X, o.X)
	if !ok {
		return Vector{}, false
	}
	y, ok := addInt64(v.Y, o.Y)
	if !ok {
		return Vector{}, false
	}
	return Vector{X: x, Y: y}, true
}

// RotateClockwise turns v by -90 degrees: (x, y) -> (y, -x).
func (v Vector) RotateClockwise() Vector {
	return Vector{X: v.Y, Y: -v.X}
}

// RotateCounterClockwise turns v by 90 degrees: (x, y) -> (-y, x).
func (v Vector) RotateCounterClockwise() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// IsZero reports whether both components are zero.
func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

func (v Vector) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// ParseVector parses "x,y". Surrounding parentheses and spaces are ignored
// so String output round-trips.
func ParseVector(s string) (Vector, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Vector{}, fmt.Errorf("vector %q: want x,y", s)
	}
	x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
	if err != nil {
		return Vector{}, fmt.Errorf("vector %q: %w", s, err)
	}
	y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
	if err != nil {
		return Vector{}, fmt.Errorf("vector %q: %w", s, err)
	}
	return Vector{X: x, Y: y}, nil
}

func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}
