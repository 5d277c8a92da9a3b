package semiring

import "math"

// DefaultQuantizationDelta is the default grid spacing for floating-point
// semirings (spec §4.1: "default 2⁻³⁰").
const DefaultQuantizationDelta = 1.0 / (1 << 30)

// quantizeFloat rounds v to the nearest multiple of delta. Infinities and
// NaN pass through unchanged since they already compare/hash consistently.
func quantizeFloat(v, delta float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	return math.Round(v/delta) * delta
}

// hashFloat64 turns a (already-quantized) float64 into a stable uint64 hash
// key. Quantizing first guarantees Equal-after-Quantize values collide.
func hashFloat64(v float64) uint64 {
	// Normalize -0 to +0 so they hash identically, matching IEEE equality.
	if v == 0 {
		v = 0
	}
	return math.Float64bits(v)
}
