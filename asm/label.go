package asm

// Label marks a branch target whose location may not be known yet.
// Branches to an unbound label reserve a zero displacement field and record
// a pending patch; Assembler.Bind later fixes the location and rewrites
// every reserved field. A label binds at most once, and must not be
// discarded while it still has pending patches.
type Label[R any] struct {
	bound    bool
	location uint32
	pending  []pendingPatch
}

// pendingPatch records one displacement field awaiting a label bind.
type pendingPatch struct {
	location uint32    // offset of the field in the output stream
	size     ValueSize // width of the reserved field
	relative bool      // stored value is relative to the end of the field
}

// Bound reports whether the label location is fixed.
func (l *Label[R]) Bound() bool { return l.bound }

// Location returns the bound location. It panics on an unbound label.
func (l *Label[R]) Location() uint32 {
	if !l.bound {
		panic("asm: location of unbound label")
	}
	return l.location
}

// Pending returns the number of unresolved references to the label.
func (l *Label[R]) Pending() int { return len(l.pending) }

func (l *Label[R]) addPatch(location uint32, size ValueSize) {
	l.pending = append(l.pending, pendingPatch{location: location, size: size, relative: true})
}
