package wire

import (
	"encoding/json"
	"strconv"
)

// Direction is a snapped tangent angle in degrees, or no angle at all. The
// first vertex of a route has no incoming direction and the last has no
// outgoing one.
type Direction struct {
	deg float64
	ok  bool
}

// None is the absent direction.
var None = Direction{}

func Heading(deg float64) Direction {
	return Direction{deg: deg, ok: true}
}

func (d Direction) Valid() bool {
	return d.ok
}

func (d Direction) String() string {
	if !d.ok {
		return "none"
	}
	return strconv.FormatFloat(d.deg, 'f', -1, 64)
}

// Equal reports whether d and o are the same angle, or both absent.
func (d Direction) Equal(o Direction) bool {
	return d.ok == o.ok && (!d.ok || d.deg == o.deg)
}

// Antiparallel reports whether both directions are present and exactly
// half a turn apart.
func Antiparallel(a, b Direction) bool {
	if !a.ok || !b.ok {
		return false
	}
	diff := a.deg - b.deg
	return diff == 180 || diff == -180
}

func (d Direction) MarshalJSON() ([]byte, error) {
	if !d.ok {
		return []byte("null"), nil
	}
	return json.Marshal(d.deg)
}
