package qcbor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, build func(e *Encoder)) []byte {
	t.Helper()
	e := NewEncoder(make([]byte, 256))
	build(e)
	v, err := e.Finish()
	require.NoError(t, err)
	out := make([]byte, v.Len())
	copy(out, v.Data)
	return out
}

func TestEncoder_AddUint64Zero(t *testing.T) {
	got := encode(t, func(e *Encoder) { e.AddUint64(0) })
	require.Equal(t, []byte{0x00}, got)
}

func TestEncoder_AddInt64NegativeOne(t *testing.T) {
	got := encode(t, func(e *Encoder) { e.AddInt64(-1) })
	require.Equal(t, []byte{0x20}, got)
}

func TestEncoder_AddDoubleAsSmallest_ShrinksToHalf(t *testing.T) {
	got := encode(t, func(e *Encoder) { e.AddDoubleAsSmallest(1.5) })
	require.Equal(t, []byte{0xF9, 0x3E, 0x00}, got)
}

func TestEncoder_AddDoubleAsSmallest_StaysDouble(t *testing.T) {
	got := encode(t, func(e *Encoder) { e.AddDoubleAsSmallest(3.1415926535) })
	require.Equal(t, []byte{0xFB, 0x40, 0x09, 0x21, 0xFB, 0x54, 0x41, 0x17, 0x44}, got)
}

func TestEncoder_OpenCloseArray_BoolPair(t *testing.T) {
	got := encode(t, func(e *Encoder) {
		e.OpenArray()
		e.AddBool(true)
		e.AddBool(false)
		e.CloseArray()
	})
	require.Equal(t, []byte{0x82, 0xF5, 0xF4}, got)
}

func TestEncoder_OpenCloseMap_TagAndInt(t *testing.T) {
	// {"BirthDate": 1(1477263730)}
	got := encode(t, func(e *Encoder) {
		e.OpenMap()
		e.AddText("BirthDate")
		e.AddTag(1)
		e.AddInt64(1477263730)
		e.CloseMap()
	})
	// A1 69 "BirthDate" C1 1A 580D4172
	want := append([]byte{0xA1, 0x69}, []byte("BirthDate")...)
	want = append(want, 0xC1, 0x1A, 0x58, 0x0D, 0x41, 0x72)
	require.Equal(t, want, got)
}

func TestEncoder_EmptyMapIsOneByte(t *testing.T) {
	got := encode(t, func(e *Encoder) {
		e.OpenMap()
		e.CloseMap()
	})
	require.Equal(t, []byte{0xA0}, got)
}

func TestEncoder_NestedArrayCountsAsOneItemInParent(t *testing.T) {
	got := encode(t, func(e *Encoder) {
		e.OpenArray()
		e.AddUint64(1)
		e.OpenArray()
		e.AddUint64(2)
		e.AddUint64(3)
		e.CloseArray()
		e.CloseArray()
	})
	require.Equal(t, []byte{0x82, 0x01, 0x82, 0x02, 0x03}, got)
}

func TestEncoder_CloseBstrWrap_ReturnsWrappedContentView(t *testing.T) {
	e := NewEncoder(make([]byte, 64))
	e.OpenBstrWrap()
	e.AddUint64(7)
	wrapped := e.CloseBstrWrap()
	require.Equal(t, []byte{0x07}, wrapped.Data)
	v, err := e.Finish()
	require.NoError(t, err)
	require.Equal(t, []byte{0x41, 0x07}, v.Data)
}

func TestEncoder_TooManyCloses(t *testing.T) {
	e := NewEncoder(make([]byte, 16))
	e.CloseArray()
	_, err := e.Finish()
	require.ErrorIs(t, err, ErrTooManyCloses)
}

func TestEncoder_CloseOpenMismatch(t *testing.T) {
	e := NewEncoder(make([]byte, 16))
	e.OpenArray()
	e.CloseMap()
	_, err := e.Finish()
	require.ErrorIs(t, err, ErrCloseOpenMismatch)
}

func TestEncoder_FinishWithOpenContainerFails(t *testing.T) {
	e := NewEncoder(make([]byte, 16))
	e.OpenArray()
	_, err := e.Finish()
	require.ErrorIs(t, err, ErrOpenContainerAtFinish)
}

func TestEncoder_AddSimpleRejectsReservedRange(t *testing.T) {
	e := NewEncoder(make([]byte, 16))
	e.AddSimple(24) // 24-31 reserved
	_, err := e.Finish()
	require.ErrorIs(t, err, ErrInvalidSimpleValue)
}

func TestEncoder_AddSimpleAcceptsExtendedValue(t *testing.T) {
	got := encode(t, func(e *Encoder) { e.AddSimple(255) })
	require.Equal(t, []byte{0xF8, 0xFF}, got)
}

func TestEncoder_BufferTooSmall(t *testing.T) {
	e := NewEncoder(make([]byte, 0))
	e.AddUint64(1)
	_, err := e.Finish()
	require.ErrorIs(t, err, ErrBufferTooSmall)
}

func TestEncoder_SizeCalculate(t *testing.T) {
	e := NewSizeCalculateEncoder(64)
	e.OpenArray()
	e.AddUint64(1)
	e.AddUint64(2)
	e.CloseArray()
	v, err := e.Finish()
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
}

func TestEncoder_ErrorIsSticky(t *testing.T) {
	e := NewEncoder(make([]byte, 0))
	e.AddUint64(1)
	e.AddUint64(2) // no-op, error already set
	e.OpenArray()  // also a no-op
	_, err := e.Finish()
	require.ErrorIs(t, err, ErrBufferTooSmall)
}
