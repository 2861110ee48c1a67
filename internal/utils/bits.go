package utils

import "math"

// These wrap the compiler-intrinsic IEEE-754 bit-reinterpretation
// primitives (not libm arithmetic) that Float64ToBits/BitsToFloat64/etc.
// in safebuf.go are named after.
func floatBits64(f float64) uint64 { return math.Float64bits(f) }
func bitsFloat64(b uint64) float64 { return math.Float64frombits(b) }
func floatBits32(f float32) uint32 { return math.Float32bits(f) }
func bitsFloat32(b uint32) float32 { return math.Float32frombits(b) }
