package ndcube

import (
	"fmt"
	"math/rand"
	"strings"
)

// Cube is the full puzzle state: one Point per cell of a dims-dimensional
// 3x...x3 hypercube, 3^dims points in total. Points are indexed in a
// fixed base-3 enumeration order set at construction; rotations permute
// coordinate values among points but never the index-to-point mapping.
type Cube struct {
	dims   int
	points []Point
}

// New constructs a solved cube with the given dimension count.
// dims must be at least 3: a rotation needs three distinct axes.
func New(dims int) (*Cube, error) {
	if dims < 3 {
		return nil, ErrDimsTooSmall
	}
	n := pow3(dims)
	points := make([]Point, n)
	for i := range points {
		points[i] = pointFromIndex(i, dims)
	}
	return &Cube{dims: dims, points: points}, nil
}

// pow3 returns 3^exp for small non-negative exponents.
func pow3(exp int) int {
	n := 1
	for i := 0; i < exp; i++ {
		n *= 3
	}
	return n
}

// Dims returns the cube's dimension count.
func (c *Cube) Dims() int {
	return c.dims
}

// Len returns the number of points, 3^dims.
func (c *Cube) Len() int {
	return len(c.points)
}

// Point returns a copy of the point at the given enumeration index.
// Mutating the copy does not affect the cube.
func (c *Cube) Point(i int) *Point {
	p := c.points[i].clone()
	return &p
}

// Rotate applies one quarter turn to every point; only points on the
// addressed layer actually change.
func (c *Cube) Rotate(r Rotation) {
	for i := range c.points {
		c.points[i].Rotate(r)
	}
}

// RotateN applies the rotation n times.
func (c *Cube) RotateN(r Rotation, n int) {
	for i := 0; i < n; i++ {
		c.Rotate(r)
	}
}

// UndoRotation inverts a rotation. A quarter turn has order 4, so three
// more applications of the same rotation are its inverse.
func (c *Cube) UndoRotation(r Rotation) {
	c.RotateN(r, 3)
}

// IsSolved reports whether every point is back in its home cell with
// correct orientation, excusing centers, whose orientation is
// unobservable.
func (c *Cube) IsSolved() bool {
	for i := range c.points {
		p := &c.points[i]
		if !p.InOriginalPosition() {
			return false
		}
		if !p.InOriginalOrientation() && !p.IsCenter() {
			return false
		}
	}
	return true
}

// Unsolvedness returns the cube's heuristic distance from solved: the sum
// of every point's incorrectness. Zero for a solved cube.
func (c *Cube) Unsolvedness() int {
	total := 0
	for i := range c.points {
		total += c.points[i].Incorrectness()
	}
	return total
}

// Shuffle scrambles the cube with the given number of independent random
// rotations.
func (c *Cube) Shuffle(rng *rand.Rand, times int) {
	for i := 0; i < times; i++ {
		c.Rotate(RandomRotation(rng, c.dims))
	}
}

// Clone returns a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	points := make([]Point, len(c.points))
	for i := range c.points {
		points[i] = c.points[i].clone()
	}
	return &Cube{dims: c.dims, points: points}
}

// Equal reports whether two cubes have identical state.
func (c *Cube) Equal(other *Cube) bool {
	if c.dims != other.dims || len(c.points) != len(other.points) {
		return false
	}
	for i := range c.points {
		if !c.points[i].Equal(&other.points[i]) {
			return false
		}
	}
	return true
}

// String returns a plain-text dump of the cube state, one point per line:
// current coordinates, orientation, and original coordinates.
func (c *Cube) String() string {
	var b strings.Builder
	for i := range c.points {
		p := &c.points[i]
		fmt.Fprintf(&b, "coords: %s  orientation: %s  original: %s\n",
			joinInts(p.coords), joinInts(p.orientation), joinInts(p.original))
	}
	return b.String()
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, " ")
}
