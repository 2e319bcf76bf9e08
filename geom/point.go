// Package geom is the exact integer geometry kernel used by the pose checker.
//
// Nothing in this package uses floating point. Every comparison is made on
// int64 values, and the one place where a fractional quantity appears (the
// intersection point of two segments) is kept as a numerator/denominator pair
// and compared by cross-multiplication.
package geom

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
)

// MaxCoord is the largest absolute coordinate the kernel supports. The
// intersection classifier multiplies a coordinate by a cross product of two
// coordinate differences, which is bounded by 16*MaxCoord^3 = 2^61, so every
// intermediate value fits in an int64.
const MaxCoord = 1 << 19

// Point is an integer point or vector. The y axis points down, which only
// matters when reading pictures; the math does not care.
type Point struct {
	X int64
	Y int64
}

// Pt is a convenience constructor.
func Pt(x, y int64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Cross is the z component of the 3D cross product. It is positive when q is
// counterclockwise from p in the usual (y up) orientation.
func (p Point) Cross(q Point) int64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Dot(q Point) int64 {
	return p.X*q.X + p.Y*q.Y
}

// Len2 is the squared length.
func (p Point) Len2() int64 {
	return p.X*p.X + p.Y*p.Y
}

// Dist2 is the squared distance.
func (p Point) Dist2(q Point) int64 {
	return p.Sub(q).Len2()
}

// Less is a strict total order on points: by X, then by Y.
func (p Point) Less(q Point) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	return p.Y < q.Y
}

// InBounds reports whether both coordinates are within MaxCoord.
func (p Point) InBounds() bool {
	return -MaxCoord <= p.X && p.X <= MaxCoord && -MaxCoord <= p.Y && p.Y <= MaxCoord
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Points travel as [x, y] pairs.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var pair []int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.Errorf("point must have 2 coordinates, got %d", len(pair))
	}
	p.X, p.Y = pair[0], pair[1]
	return nil
}

func minInt(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
