package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalfBitsToDoubleBits_Zero(t *testing.T) {
	require.Equal(t, math.Float64bits(0), HalfBitsToDoubleBits(0x0000))
	require.Equal(t, math.Float64bits(math.Copysign(0, -1)), HalfBitsToDoubleBits(0x8000))
}

func TestHalfBitsToDoubleBits_Infinity(t *testing.T) {
	require.Equal(t, math.Float64bits(math.Inf(1)), HalfBitsToDoubleBits(0x7C00))
	require.Equal(t, math.Float64bits(math.Inf(-1)), HalfBitsToDoubleBits(0xFC00))
}

func TestHalfBitsToDoubleBits_Normal(t *testing.T) {
	// 1.5 in half: sign=0 exp=15(bias)=0x0F mant=0x200 (0.5 * 1024)
	h := uint16(0x3E00)
	got := math.Float64frombits(HalfBitsToDoubleBits(h))
	require.Equal(t, 1.5, got)
}

func TestHalfBitsToDoubleBits_Subnormal(t *testing.T) {
	// smallest subnormal half = 2^-24
	h := uint16(0x0001)
	got := math.Float64frombits(HalfBitsToDoubleBits(h))
	require.Equal(t, math.Ldexp(1, -24), got)
}

func TestHalfBitsToDoubleBits_NaNPreservesPayload(t *testing.T) {
	h := uint16(0x7E01) // quiet NaN, payload bit0 set
	got := HalfBitsToDoubleBits(h)
	require.Equal(t, uint64(0x7FF), got>>52&0x7FF)
	require.NotZero(t, got&((1<<52)-1))
}

func TestSmallestFloatBits_ShrinksToHalf(t *testing.T) {
	width, bits := SmallestFloatBits(math.Float64bits(1.5))
	require.Equal(t, WidthHalf, width)
	require.Equal(t, uint16(0x3E00), uint16(bits))
}

func TestSmallestFloatBits_StaysDoubleWhenLossy(t *testing.T) {
	width, bits := SmallestFloatBits(math.Float64bits(3.1415926535))
	require.Equal(t, WidthDouble, width)
	require.Equal(t, math.Float64bits(3.1415926535), bits)
}

func TestSmallestFloatBits_ShrinksToSingleNotHalf(t *testing.T) {
	// A value with 23-bit single precision but not representable in 10-bit half.
	v := float64(float32(1.0 + 1.0/8388608.0)) // smallest step above 1.0 in single
	width, bits := SmallestFloatBits(math.Float64bits(v))
	require.Equal(t, WidthSingle, width)
	require.Equal(t, math.Float32bits(float32(v)), uint32(bits))
}

func TestSmallestFloatBits_ZeroAndInfinityAlwaysShrink(t *testing.T) {
	width, bits := SmallestFloatBits(math.Float64bits(0))
	require.Equal(t, WidthHalf, width)
	require.Equal(t, uint16(0), uint16(bits))

	width, bits = SmallestFloatBits(math.Float64bits(math.Inf(1)))
	require.Equal(t, WidthHalf, width)
	require.Equal(t, uint16(0x7C00), uint16(bits))
}

func TestSmallestFloatBits_SubnormalSourceNeverShrinks(t *testing.T) {
	sub := math.Float64frombits(1) // smallest double subnormal
	width, bits := SmallestFloatBits(math.Float64bits(sub))
	require.Equal(t, WidthDouble, width)
	require.Equal(t, math.Float64bits(sub), bits)
}

func TestDoubleToInteger_Basic(t *testing.T) {
	r := DoubleToInteger(math.Float64bits(42))
	require.Equal(t, IntSigned, r.Kind)
	require.Equal(t, int64(42), r.Signed)

	r = DoubleToInteger(math.Float64bits(0))
	require.Equal(t, IntSigned, r.Kind)
	require.Equal(t, int64(0), r.Signed)

	r = DoubleToInteger(math.Float64bits(-42))
	require.Equal(t, IntSigned, r.Kind)
	require.Equal(t, int64(-42), r.Signed)
}

func TestDoubleToInteger_LargeUnsigned(t *testing.T) {
	v := math.Ldexp(1, 63) // 2^63, exceeds int64 max
	r := DoubleToInteger(math.Float64bits(v))
	require.Equal(t, IntUnsigned, r.Kind)
	require.Equal(t, uint64(1)<<63, r.Unsigned)
}

func TestDoubleToInteger_NegativeTwoToSixtyFour(t *testing.T) {
	v := -math.Ldexp(1, 64)
	r := DoubleToInteger(math.Float64bits(v))
	require.Equal(t, IntNegative65Bit, r.Kind)
}

func TestDoubleToInteger_RejectsNonIntegral(t *testing.T) {
	r := DoubleToInteger(math.Float64bits(1.5))
	require.Equal(t, IntNoConversion, r.Kind)
}

func TestDoubleToInteger_RejectsNaNInfSubnormal(t *testing.T) {
	require.Equal(t, IntNoConversion, DoubleToInteger(math.Float64bits(math.NaN())).Kind)
	require.Equal(t, IntNoConversion, DoubleToInteger(math.Float64bits(math.Inf(1))).Kind)
	require.Equal(t, IntNoConversion, DoubleToInteger(1).Kind) // smallest subnormal
}

func TestDoubleToInteger_RejectsMagnitudeTooLarge(t *testing.T) {
	v := math.Ldexp(1, 65)
	require.Equal(t, IntNoConversion, DoubleToInteger(math.Float64bits(v)).Kind)
}

func TestUint64ToDoubleExact(t *testing.T) {
	v, ok := Uint64ToDoubleExact(0)
	require.True(t, ok)
	require.Equal(t, float64(0), v)

	v, ok = Uint64ToDoubleExact(1 << 62) // power of two, exact regardless of magnitude
	require.True(t, ok)
	require.Equal(t, math.Ldexp(1, 62), v)

	_, ok = Uint64ToDoubleExact((uint64(1) << 60) + 1) // 61 significant bits
	require.False(t, ok)

	v, ok = Uint64ToDoubleExact(uint64(1)<<53 - 1) // exactly 53 significant bits
	require.True(t, ok)
	require.Equal(t, float64(uint64(1)<<53-1), v)
}
