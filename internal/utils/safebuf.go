// Package utils provides low-level helpers shared by the codec core:
// byte-range views and overflow-checked arithmetic.
package utils

import (
	"bytes"
	"math/bits"
)

// View is a length-checked byte range. It models spec §3's "Byte view
// (SafeBuf)" as a sum type rather than the source's null-pointer-plus-length
// convention: a View is Null when Present is false, and otherwise carries
// its own (possibly empty) byte slice. Null and empty are distinguishable.
//
// NewView serves both roles: a View over storage to be filled aliases
// caller-owned storage, and a View over data already read aliases that
// data. Neither copies on construction — copying is the caller's job
// via Copy.
type View struct {
	Present bool
	Data    []byte
}

// NullView is the zero-value View: Present is false.
var NullView = View{}

// NewView wraps a byte slice as a present View. A nil slice produces an
// empty, present View (len 0), not a null one; use NullView for absence.
func NewView(data []byte) View {
	if data == nil {
		data = []byte{}
	}
	return View{Present: true, Data: data}
}

// IsNull reports whether the view has no backing storage at all.
func (v View) IsNull() bool {
	return !v.Present
}

// IsEmpty reports whether the view is present but zero-length.
func (v View) IsEmpty() bool {
	return v.Present && len(v.Data) == 0
}

// Len returns the view's length, or 0 for a null view.
func (v View) Len() int {
	if !v.Present {
		return 0
	}
	return len(v.Data)
}

// Head returns the first n bytes of the view. Panics if n exceeds the
// view's length or the view is null: callers must bounds-check first,
// per spec §4.A ("null pointers are programmer error, not runtime-checked").
func (v View) Head(n int) View {
	return NewView(v.Data[:n])
}

// Tail returns the view starting at offset n.
func (v View) Tail(n int) View {
	return NewView(v.Data[n:])
}

// Copy performs a length-checked copy of src into dst, returning the
// number of bytes copied. Returns 0 if either view is null.
func Copy(dst, src View) int {
	if !dst.Present || !src.Present {
		return 0
	}
	return copy(dst.Data, src.Data)
}

// Compare reports sign-only ordering: -1, 0, or 1. Two null views compare
// equal; a null view sorts before a present one.
func Compare(a, b View) int {
	if !a.Present && !b.Present {
		return 0
	}
	if !a.Present {
		return -1
	}
	if !b.Present {
		return 1
	}
	return bytes.Compare(a.Data, b.Data)
}

// IndexByte returns the offset of the first occurrence of c in v, or -1
// if v is null or c does not appear.
func IndexByte(v View, c byte) int {
	if !v.Present {
		return -1
	}
	return bytes.IndexByte(v.Data, c)
}

// Fill overwrites every byte of v with value. No-op on a null view.
func Fill(v View, value byte) {
	if !v.Present {
		return
	}
	for i := range v.Data {
		v.Data[i] = value
	}
}

// Float64ToBits and BitsToFloat64 perform punning-free, bit-exact
// conversion between a double and its IEEE-754 bit pattern. They are
// thin named wrappers (not raw math.Float64bits calls scattered through
// the codec) so the IEEE-754 minimizer in internal/core can be audited
// against spec §4.D in one place.
func Float64ToBits(f float64) uint64 { return floatBits64(f) }
func BitsToFloat64(b uint64) float64 { return bitsFloat64(b) }

// Float32ToBits and BitsToFloat32 are the single-precision equivalents.
func Float32ToBits(f float32) uint32 { return floatBits32(f) }
func BitsToFloat32(b uint32) float32 { return bitsFloat32(b) }

// LeadingZeros32/64 expose math/bits's bit-counting intrinsics.
// internal/core's subnormal renormalization (spec §4.D) calls math/bits
// directly rather than these wrappers.
func LeadingZeros32(x uint32) int { return bits.LeadingZeros32(x) }
func LeadingZeros64(x uint64) int { return bits.LeadingZeros64(x) }
