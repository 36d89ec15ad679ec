package tile

// Orient is a rotation/mirror orientation. The 16 (rotation, mirrorX,
// mirrorY) combinations cover the dihedral group of the square twice over;
// rendering keeps them distinct, but composition reduces through the group.
type Orient struct {
	Rotation int
	MirrorX  bool
	MirrorY  bool
}

// reduced maps an orientation to its group element: a quarter-turn count
// plus a single reflection bit. MirrorY equals MirrorX composed with a half
// turn, so my folds into both fields.
func (o Orient) reduced() (quarters int, reflected bool) {
	quarters = ((o.Rotation/90)%4 + 4) % 4
	if o.MirrorY {
		quarters = (quarters + 2) % 4
	}
	return quarters, o.MirrorX != o.MirrorY
}

// Compose returns the orientation equivalent to applying first, then
// second. The result is expressed with MirrorY false; it acts identically
// on signatures and on rendered tiles.
func Compose(first, second Orient) Orient {
	q1, r1 := first.reduced()
	q2, r2 := second.reduced()
	var q int
	if r2 {
		q = ((q2-q1)%4 + 4) % 4
	} else {
		q = (q2 + q1) % 4
	}
	return Orient{Rotation: q * 90, MirrorX: r1 != r2}
}

// Apply transforms a signature by the orientation.
func (o Orient) Apply(s Signature) Signature {
	return Transform(s, o.Rotation, o.MirrorX, o.MirrorY)
}

// Inverse returns the orientation undoing o.
func (o Orient) Inverse() Orient {
	q, r := o.reduced()
	if r {
		// reflections are involutions
		return Orient{Rotation: q * 90, MirrorX: true}
	}
	return Orient{Rotation: ((4 - q) % 4) * 90}
}
