package ndcube

import "fmt"

// OrientationPenalty is the incorrectness cost charged to a point whose
// orientation is not the identity permutation. Position errors can be
// reduced one layer at a time, orientation correctness is all-or-nothing,
// so a twist is scored much heavier than any displacement. Hand-tuned.
const OrientationPenalty = 10

// quarterTurn maps the (from, to) coordinate pair of a point on the
// rotated layer to its pair after one 90-degree turn. The nine entries
// form a permutation of {0,1,2}^2 fixing only the center (1,1); applying
// the table four times is the identity, so three applications invert one.
var quarterTurn = [3][3][2]int{
	0: {0: {2, 0}, 1: {1, 0}, 2: {0, 0}},
	1: {0: {2, 1}, 1: {1, 1}, 2: {0, 1}},
	2: {0: {2, 2}, 1: {1, 2}, 2: {0, 2}},
}

// Point is one sub-cell of the cube. Its original coordinates are fixed
// at construction and identify its solved position; its current
// coordinates and orientation mutate under rotation. Coordinates are
// always in {0,1,2} per axis and the orientation is a permutation of the
// axis labels, identity when untwisted.
type Point struct {
	original    []int
	coords      []int
	orientation []int
}

// NewPoint constructs a point whose solved identity is the given
// coordinate tuple. Each coordinate must be 0, 1 or 2 and the tuple must
// have at least three axes.
func NewPoint(coords []int) (*Point, error) {
	if len(coords) < 3 {
		return nil, ErrDimsTooSmall
	}
	for _, c := range coords {
		if c < 0 || c > 2 {
			return nil, fmt.Errorf("%w: coordinate %d not in {0,1,2}", ErrInvalidCoords, c)
		}
	}
	p := &Point{
		original:    make([]int, len(coords)),
		coords:      make([]int, len(coords)),
		orientation: make([]int, len(coords)),
	}
	copy(p.original, coords)
	copy(p.coords, coords)
	for i := range p.orientation {
		p.orientation[i] = i
	}
	return p, nil
}

// pointFromIndex builds the point at a base-3 cube index: axis 0 is the
// least significant digit.
func pointFromIndex(index, dims int) Point {
	coords := make([]int, dims)
	n := index
	for axis := 0; axis < dims; axis++ {
		coords[axis] = n % 3
		n /= 3
	}
	original := make([]int, dims)
	copy(original, coords)
	orientation := make([]int, dims)
	for i := range orientation {
		orientation[i] = i
	}
	return Point{original: original, coords: coords, orientation: orientation}
}

// Rotate applies one quarter turn to the point. Points off the addressed
// layer are untouched. A rotation with non-distinct or out-of-range axes
// is a logic error and panics; rotations from user input must be checked
// with Rotation.Validate before they reach the cube.
func (p *Point) Rotate(r Rotation) {
	dims := len(p.coords)
	if r.Axis == r.From || r.From == r.To || r.To == r.Axis {
		panic("ndcube: rotation axes must be pairwise distinct")
	}
	if r.Axis < 0 || r.Axis >= dims || r.From < 0 || r.From >= dims || r.To < 0 || r.To >= dims {
		panic("ndcube: rotation axis out of range")
	}

	if p.coords[r.Axis] != r.Side {
		return
	}

	// The two plane axes trade places in the orientation record.
	p.orientation[r.From], p.orientation[r.To] = p.orientation[r.To], p.orientation[r.From]

	from, to := p.coords[r.From], p.coords[r.To]
	if from < 0 || from > 2 || to < 0 || to > 2 {
		panic(fmt.Sprintf("ndcube: corrupt coordinate pair (%d,%d)", from, to))
	}
	next := quarterTurn[from][to]
	p.coords[r.From], p.coords[r.To] = next[0], next[1]
}

// InOriginalPosition reports whether the point sits in its solved cell.
func (p *Point) InOriginalPosition() bool {
	for i, c := range p.coords {
		if c != p.original[i] {
			return false
		}
	}
	return true
}

// InOriginalOrientation reports whether the orientation is the identity
// permutation, i.e. the point has never been twisted (or has been twisted
// back).
func (p *Point) InOriginalOrientation() bool {
	for i := 1; i < len(p.orientation); i++ {
		if p.orientation[i-1] > p.orientation[i] {
			return false
		}
	}
	return true
}

// IsCenter reports whether the point is a face-center analogue: all but
// one coordinate equal 1. Centers look identical under any axis swap, so
// their orientation is unobservable.
func (p *Point) IsCenter() bool {
	ones := 0
	for _, c := range p.coords {
		if c == 1 {
			ones++
		}
	}
	return ones == len(p.coords)-1
}

// DistFromOriginal returns the L1 displacement between the point's
// current and solved coordinates.
func (p *Point) DistFromOriginal() int {
	dist := 0
	for i, c := range p.coords {
		d := c - p.original[i]
		if d < 0 {
			d = -d
		}
		dist += d
	}
	return dist
}

// Incorrectness scores how far the point is from solved: its displacement
// plus OrientationPenalty if it is twisted.
func (p *Point) Incorrectness() int {
	score := p.DistFromOriginal()
	if !p.InOriginalOrientation() {
		score += OrientationPenalty
	}
	return score
}

// Coords returns a copy of the point's current coordinates.
func (p *Point) Coords() []int {
	out := make([]int, len(p.coords))
	copy(out, p.coords)
	return out
}

// Original returns a copy of the point's solved coordinates.
func (p *Point) Original() []int {
	out := make([]int, len(p.original))
	copy(out, p.original)
	return out
}

// Orientation returns a copy of the point's orientation permutation.
func (p *Point) Orientation() []int {
	out := make([]int, len(p.orientation))
	copy(out, p.orientation)
	return out
}

// Equal reports whether two points have identical identity, position and
// orientation.
func (p *Point) Equal(q *Point) bool {
	return intsEqual(p.original, q.original) &&
		intsEqual(p.coords, q.coords) &&
		intsEqual(p.orientation, q.orientation)
}

// clone returns a deep copy of the point.
func (p *Point) clone() Point {
	out := Point{
		original:    make([]int, len(p.original)),
		coords:      make([]int, len(p.coords)),
		orientation: make([]int, len(p.orientation)),
	}
	copy(out.original, p.original)
	copy(out.coords, p.coords)
	copy(out.orientation, p.orientation)
	return out
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
