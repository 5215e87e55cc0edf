package ndcube

import (
	"fmt"
	"math/rand"
	"strings"
)

// Side values select which layer along the rotation axis is turned.
// Only the two face layers of an axis can be rotated; the middle layer
// is fixed by the face layers around it.
const (
	SideLow  = 0 // the coordinate-0 face layer
	SideHigh = 2 // the coordinate-2 face layer
)

// Rotation describes a single quarter turn of one layer of the cube.
// Axis selects which axis the layer is addressed along, Side selects the
// layer (SideLow or SideHigh), and From/To span the plane the layer turns
// in: coordinates move from the From axis toward the To axis.
//
// Axis, From and To must be pairwise distinct and less than the cube's
// dimension count. The core treats a violation as a fatal logic error;
// callers constructing rotations from user input should check with
// Validate first.
type Rotation struct {
	Axis int // axis the layer is addressed along
	From int // axis rotated away from
	To   int // axis rotated toward
	Side int // SideLow or SideHigh
}

// RandomRotation returns a uniformly random legal rotation for a cube of
// the given dimension count. The generator is passed in explicitly so
// callers control seeding. dims must be at least 3.
func RandomRotation(rng *rand.Rand, dims int) Rotation {
	side := rng.Intn(2) * 2
	axis := rng.Intn(dims)
	from := rng.Intn(dims)
	for from == axis {
		from = rng.Intn(dims)
	}
	to := rng.Intn(dims)
	for to == axis || to == from {
		to = rng.Intn(dims)
	}
	return Rotation{Axis: axis, From: from, To: to, Side: side}
}

// Validate reports whether the rotation is legal for a cube of the given
// dimension count. Drivers call this on parsed user input before handing
// a rotation to the core.
func (r Rotation) Validate(dims int) error {
	if dims < 3 {
		return ErrDimsTooSmall
	}
	if r.Axis < 0 || r.Axis >= dims {
		return fmt.Errorf("%w: axis %d out of range [0,%d)", ErrInvalidRotation, r.Axis, dims)
	}
	if r.From < 0 || r.From >= dims {
		return fmt.Errorf("%w: from axis %d out of range [0,%d)", ErrInvalidRotation, r.From, dims)
	}
	if r.To < 0 || r.To >= dims {
		return fmt.Errorf("%w: to axis %d out of range [0,%d)", ErrInvalidRotation, r.To, dims)
	}
	if r.Axis == r.From || r.From == r.To || r.To == r.Axis {
		return fmt.Errorf("%w: axis, from and to must be distinct", ErrInvalidRotation)
	}
	if r.Side != SideLow && r.Side != SideHigh {
		return fmt.Errorf("%w: side must be %d or %d", ErrInvalidRotation, SideLow, SideHigh)
	}
	return nil
}

// Notation returns the four-digit notation string for this rotation:
// axis, from, to, side. Example: "1202" rotates the high layer along
// axis 1, turning axis 2 toward axis 0.
func (r Rotation) Notation() string {
	return fmt.Sprintf("%d%d%d%d", r.Axis, r.From, r.To, r.Side)
}

// String returns the notation string (alias for Notation).
func (r Rotation) String() string {
	return r.Notation()
}

// ParseRotation parses a four-digit notation string into a Rotation.
// The digits are axis, from, to, side in order; notation therefore only
// addresses axes 0 through 9. Dimensional legality is not checked here;
// call Validate with the cube's dimension count afterwards.
func ParseRotation(s string) (Rotation, error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return Rotation{}, fmt.Errorf("%w: want four digits, got %q", ErrInvalidNotation, s)
	}
	var digits [4]int
	for i, c := range s {
		if c < '0' || c > '9' {
			return Rotation{}, fmt.Errorf("%w: %q is not a digit", ErrInvalidNotation, c)
		}
		digits[i] = int(c - '0')
	}
	r := Rotation{Axis: digits[0], From: digits[1], To: digits[2], Side: digits[3]}
	if r.Side != SideLow && r.Side != SideHigh {
		return Rotation{}, fmt.Errorf("%w: side must be %d or %d", ErrInvalidNotation, SideLow, SideHigh)
	}
	return r, nil
}

// ParseRotations parses a comma-separated list of four-digit rotations.
// Example: "1202,0120". Any malformed part fails the whole parse.
func ParseRotations(s string) ([]Rotation, error) {
	parts := strings.Split(s, ",")
	rotations := make([]Rotation, 0, len(parts))
	for _, part := range parts {
		r, err := ParseRotation(part)
		if err != nil {
			return nil, err
		}
		rotations = append(rotations, r)
	}
	return rotations, nil
}

// FormatRotations formats a slice of rotations as a comma-separated
// notation string, the inverse of ParseRotations.
func FormatRotations(rotations []Rotation) string {
	if len(rotations) == 0 {
		return ""
	}
	parts := make([]string, len(rotations))
	for i, r := range rotations {
		parts[i] = r.Notation()
	}
	return strings.Join(parts, ",")
}
