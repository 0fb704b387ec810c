package asm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grimoak/emit86/asm"
	"github.com/grimoak/emit86/codebuf"
)

func TestForwardConditionalJump(t *testing.T) {
	buf := codebuf.New[noRef](0)
	a := asm.New[noRef](0, buf)

	var l asm.Label[noRef]
	require.NoError(t, a.J(asm.NotEqual, &l))
	assert.Equal(t, 1, l.Pending())
	a.Ret()
	require.NoError(t, a.Bind(&l))

	// Displacement = bind location - (field offset + field width).
	assert.Equal(t, []byte{0x0F, 0x85, 0x01, 0x00, 0x00, 0x00, 0xC3}, buf.Bytes())
	assert.True(t, l.Bound())
	assert.Equal(t, uint32(7), l.Location())
	assert.Zero(t, l.Pending())
}

func TestForwardUnconditionalJump(t *testing.T) {
	buf := codebuf.New[noRef](0)
	a := asm.New[noRef](0, buf)

	var l asm.Label[noRef]
	require.NoError(t, a.JmpLabel(&l, asm.SizeNone))
	a.Ret()
	require.NoError(t, a.Bind(&l))

	// Only the reserved displacement field changes: 6 - (1 + 4) = 1.
	assert.Equal(t, []byte{0xE9, 0x01, 0x00, 0x00, 0x00, 0xC3}, buf.Bytes())
}

func TestForwardShortJump(t *testing.T) {
	buf := codebuf.New[noRef](0)
	a := asm.New[noRef](0, buf)

	var l asm.Label[noRef]
	require.NoError(t, a.JReach(asm.Equal, &l, asm.Size8))
	a.Nop(1)
	require.NoError(t, a.Bind(&l))

	assert.Equal(t, []byte{0x74, 0x01, 0x90}, buf.Bytes())
}

func TestBackwardJumps(t *testing.T) {
	buf := codebuf.New[noRef](0)
	a := asm.New[noRef](0, buf)

	var l asm.Label[noRef]
	require.NoError(t, a.Bind(&l))
	a.Nop(3)

	// Explicit short reach: 0 - (3 + 2) = -5.
	require.NoError(t, a.JReach(asm.NotEqual, &l, asm.Size8))
	assert.Equal(t, []byte{0x75, 0xFB}, buf.Bytes()[3:])

	// Unspecified reach on a bound label picks the short form too.
	require.NoError(t, a.J(asm.NotEqual, &l))
	assert.Equal(t, []byte{0x75, 0xF9}, buf.Bytes()[5:])

	// Forced long reach: 0 - (7 + 6) = -13.
	require.NoError(t, a.JReach(asm.NotEqual, &l, asm.Size32))
	assert.Equal(t, []byte{0x0F, 0x85, 0xF3, 0xFF, 0xFF, 0xFF}, buf.Bytes()[7:])
}

func TestBackwardShortJmpLabel(t *testing.T) {
	buf := codebuf.New[noRef](0)
	a := asm.New[noRef](0, buf)

	var l asm.Label[noRef]
	require.NoError(t, a.Bind(&l))
	require.NoError(t, a.JmpLabel(&l, asm.SizeNone))

	assert.Equal(t, []byte{0xEB, 0xFE}, buf.Bytes())
}

func TestBackwardShortOutOfReach(t *testing.T) {
	buf := codebuf.New[noRef](0)
	a := asm.New[noRef](0, buf)

	var l asm.Label[noRef]
	require.NoError(t, a.Bind(&l))
	a.Nop(200)

	err := a.JReach(asm.Equal, &l, asm.Size8)
	require.ErrorIs(t, err, asm.ErrOutOfReach)

	// The failed call is atomic: no bytes, no cursor movement.
	assert.Equal(t, uint32(200), a.Location())
	assert.Equal(t, 200, buf.Len())

	// An unconstrained request still succeeds with the long form.
	require.NoError(t, a.J(asm.Equal, &l))
	assert.Equal(t, 206, buf.Len())
}

func TestMultipleForwardReferences(t *testing.T) {
	buf := codebuf.New[noRef](0)
	a := asm.New[noRef](0, buf)

	var l asm.Label[noRef]
	require.NoError(t, a.J(asm.Equal, &l))
	require.NoError(t, a.J(asm.NotEqual, &l))
	assert.Equal(t, 2, l.Pending())
	require.NoError(t, a.Bind(&l))

	assert.Equal(t, []byte{
		0x0F, 0x84, 0x06, 0x00, 0x00, 0x00,
		0x0F, 0x85, 0x00, 0x00, 0x00, 0x00,
	}, buf.Bytes())
}

func TestForwardShortOverflowAtBind(t *testing.T) {
	buf := codebuf.New[noRef](0)
	a := asm.New[noRef](0, buf)

	var l asm.Label[noRef]
	require.NoError(t, a.JReach(asm.Equal, &l, asm.Size8))
	a.Nop(200)

	err := a.Bind(&l)
	require.ErrorIs(t, err, asm.ErrOutOfReach)
	// The reserved field keeps its placeholder.
	assert.Equal(t, byte(0), buf.Bytes()[1])
	assert.Zero(t, l.Pending())
}

// refusingSerializer declines every patch request.
type refusingSerializer struct {
	codebuf.Buffer[noRef]
	patches int
}

func (s *refusingSerializer) FinalizeLabel(location uint32, bytes []byte) error {
	s.patches++
	return errors.New("range no longer patchable")
}

func TestBindSurfacesPatchFailure(t *testing.T) {
	s := &refusingSerializer{Buffer: *codebuf.New[noRef](0)}
	a := asm.New[noRef](0, s)

	var l asm.Label[noRef]
	require.NoError(t, a.J(asm.Equal, &l))
	require.NoError(t, a.J(asm.NotEqual, &l))

	err := a.Bind(&l)
	require.Error(t, err)
	// Binding is not transactional: every patch is still attempted.
	assert.Equal(t, 2, s.patches)
}

func TestDoubleBindPanics(t *testing.T) {
	buf := codebuf.New[noRef](0)
	a := asm.New[noRef](0, buf)

	var l asm.Label[noRef]
	require.NoError(t, a.Bind(&l))
	assert.Panics(t, func() { a.Bind(&l) })
}

func TestUnboundLocationPanics(t *testing.T) {
	var l asm.Label[noRef]
	assert.Panics(t, func() { l.Location() })
}
