// Package fixed converts between real numbers and the signed 32-bit
// fixed-point encoding used on the accelerator bus.
//
// Two encodings appear in the register maps:
//
//   - Binary fixed point with F fractional bits (Q16.16 when F=16), used by
//     the scalar and handshake units.
//   - An arbitrary integer scale factor (e.g. 1000 for three decimal
//     places), used by the wide combinatorial unit.
//
// All conversions truncate toward zero, never round. That matches the
// integer truncation the gateware performs on multiply, and the software
// fallback relies on it to stay bit-identical with the hardware path.
// There is no range checking: a value too large for int32 wraps or
// produces an implementation-defined result, which is a documented
// limitation of the encoding rather than an error.
package fixed

// DefaultFracBits is the fractional width of the Q16.16 wire format.
const DefaultFracBits = 16

// Encode converts a real value to fixed point with fracBits fractional
// bits: truncate(x * 2^fracBits).
func Encode(x float64, fracBits uint) int32 {
	return int32(x * float64(int64(1)<<fracBits))
}

// Decode converts a fixed-point value back to a real number.
func Decode(v int32, fracBits uint) float64 {
	return float64(v) / float64(int64(1)<<fracBits)
}

// DecodeWide is Decode for accumulator-width values.
func DecodeWide(v int64, fracBits uint) float64 {
	return float64(v) / float64(int64(1)<<fracBits)
}

// Mul multiplies two fixed-point values, truncating the intermediate
// 64-bit product back to fracBits fractional bits. Go's integer division
// truncates toward zero, which is exactly the hardware behavior.
func Mul(a, b int32, fracBits uint) int32 {
	return int32(int64(a) * int64(b) / (int64(1) << fracBits))
}

// Dot computes the fixed-point dot product of two equal-length chunks the
// way the gateware does: each lane's product is taken at 64 bits and
// truncated toward zero back to fracBits fractional bits, the lanes are
// summed at 64 bits, and the sum is truncated to the 32-bit result
// register width. The software fallback and the simulated peripherals
// both use this kernel, which is what keeps the two paths bit-identical.
func Dot(a, b []int32, fracBits uint) int32 {
	n := min(len(a), len(b))
	var sum int64
	for i := 0; i < n; i++ {
		sum += int64(a[i]) * int64(b[i]) / (int64(1) << fracBits)
	}
	return int32(sum)
}

// EncodeScale converts a real value using an arbitrary integer scale
// factor: truncate(x * scale). A zero scale encodes everything to zero;
// callers that consider that an error check before encoding.
func EncodeScale(x float64, scale int32) int32 {
	return int32(x * float64(scale))
}

// DecodeScale converts a scale-factor encoded value back to a real number.
func DecodeScale(v int32, scale int32) float64 {
	return float64(v) / float64(scale)
}

// DecodeScaleWide is DecodeScale for accumulator-width values.
func DecodeScaleWide(v int64, scale int32) float64 {
	return float64(v) / float64(scale)
}
