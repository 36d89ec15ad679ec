package tile

import (
	"path/filepath"
	"strings"
)

// Direction indexes into a Signature. Order is clockwise from north.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// Opposite returns the direction pointing back at d.
func Opposite(d Direction) Direction { return (d + 4) % 8 }

// Delta returns the row/column offset of the neighbor in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case NorthEast:
		return -1, 1
	case East:
		return 0, 1
	case SouthEast:
		return 1, 1
	case South:
		return 1, 0
	case SouthWest:
		return 1, -1
	case West:
		return 0, -1
	case NorthWest:
		return -1, -1
	}
	return 0, 0
}

// Signature holds one boolean connector per direction. A nil *Signature
// means the tile is non-directional and compatible with anything.
type Signature [8]bool

// Key renders the signature as an 8-character 0/1 string, the form used to
// index variants by connectivity.
func (s Signature) Key() string {
	var b [8]byte
	for i, v := range s {
		if v {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
	}
	return string(b[:])
}

// Count returns the number of set connectors.
func (s Signature) Count() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// ParseKey parses an 8-character 0/1 string back into a signature.
func ParseKey(key string) (Signature, bool) {
	var s Signature
	if len(key) != 8 {
		return s, false
	}
	for i := 0; i < 8; i++ {
		switch key[i] {
		case '1':
			s[i] = true
		case '0':
		default:
			return s, false
		}
	}
	return s, true
}

// ParseName extracts a connection signature from a tile-source name. The
// base name (extension and directories stripped) is split on '_' and '-';
// the first token that is exactly 8 characters of 0/1 is the signature,
// index 0..7 = N, NE, E, SE, S, SW, W, NW. Names without such a token are
// non-directional and return nil.
func ParseName(name string) *Signature {
	base := filepath.Base(name)
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	for _, tok := range strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-'
	}) {
		if s, ok := ParseKey(tok); ok {
			sig := s
			return &sig
		}
	}
	return nil
}

// rotate returns s rotated clockwise by quarter turns. One quarter turn
// moves each connector two direction slots clockwise.
func (s Signature) rotate(quarters int) Signature {
	quarters = ((quarters % 4) + 4) % 4
	var out Signature
	for d := 0; d < 8; d++ {
		out[(d+2*quarters)%8] = s[d]
	}
	return out
}

// mirrorX reflects about the vertical axis: N and S stay, E and W swap,
// NE and NW swap, SE and SW swap.
func (s Signature) mirrorX() Signature {
	var out Signature
	for d := 0; d < 8; d++ {
		out[d] = s[(8-d)%8]
	}
	return out
}

// mirrorY reflects about the horizontal axis: E and W stay, N and S swap,
// NE and SE swap, NW and SW swap.
func (s Signature) mirrorY() Signature {
	var out Signature
	for d := 0; d < 8; d++ {
		out[d] = s[(4-d+8)%8]
	}
	return out
}

// Transform applies a tile's orientation to its base signature. Mirrors
// apply first (X, then Y), rotation last; every combination is a bijection
// on the 8 slots. Rotation is in degrees and must be a multiple of 90.
func Transform(s Signature, rotation int, mirrorX, mirrorY bool) Signature {
	if mirrorX {
		s = s.mirrorX()
	}
	if mirrorY {
		s = s.mirrorY()
	}
	return s.rotate(rotation / 90)
}

// TransformPtr is Transform lifted to nullable signatures.
func TransformPtr(s *Signature, rotation int, mirrorX, mirrorY bool) *Signature {
	if s == nil {
		return nil
	}
	out := Transform(*s, rotation, mirrorX, mirrorY)
	return &out
}
