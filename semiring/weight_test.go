package semiring_test

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wfst/semiring"
)

// finiteFloat generates a float64 that won't overflow Tropical/Log ⊗.
func finiteFloat() gopter.Gen { return gen.Float64Range(-1e6, 1e6) }

// checkLaws exercises the algebraic laws of spec.md §8 for a semiring
// constructor `mk`, using gopter to generate many random triples. The
// Tropical, Log and Probability law tests below each call it once with
// their own constructor.
func checkLaws(t *testing.T, name string, mk func(float64) semiring.Weight, zero, one semiring.Weight) {
	t.Helper()
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property(name+": plus is associative", prop.ForAll(
		func(a, b, c float64) bool {
			wa, wb, wc := mk(a), mk(b), mk(c)
			ab, _ := wa.Plus(wb)
			abc1, _ := ab.Plus(wc)
			bc, _ := wb.Plus(wc)
			abc2, _ := wa.Plus(bc)
			return abc1.Quantize().Equal(abc2.Quantize())
		},
		finiteFloat(), finiteFloat(), finiteFloat(),
	))

	properties.Property(name+": plus is commutative", prop.ForAll(
		func(a, b float64) bool {
			wa, wb := mk(a), mk(b)
			ab, _ := wa.Plus(wb)
			ba, _ := wb.Plus(wa)
			return ab.Quantize().Equal(ba.Quantize())
		},
		finiteFloat(), finiteFloat(),
	))

	properties.Property(name+": plus zero is identity", prop.ForAll(
		func(a float64) bool {
			wa := mk(a)
			sum, _ := wa.Plus(zero)
			return sum.Quantize().Equal(wa.Quantize())
		},
		finiteFloat(),
	))

	properties.Property(name+": times is associative", prop.ForAll(
		func(a, b, c float64) bool {
			wa, wb, wc := mk(a), mk(b), mk(c)
			ab, _ := wa.Times(wb)
			abc1, _ := ab.Times(wc)
			bc, _ := wb.Times(wc)
			abc2, _ := wa.Times(bc)
			return abc1.Quantize().Equal(abc2.Quantize())
		},
		finiteFloat(), finiteFloat(), finiteFloat(),
	))

	properties.Property(name+": times one is identity", prop.ForAll(
		func(a float64) bool {
			wa := mk(a)
			p, _ := wa.Times(one)
			return p.Quantize().Equal(wa.Quantize())
		},
		finiteFloat(),
	))

	properties.Property(name+": times zero annihilates", prop.ForAll(
		func(a float64) bool {
			wa := mk(a)
			p, _ := wa.Times(zero)
			return p.Quantize().Equal(zero.Quantize())
		},
		finiteFloat(),
	))

	properties.Property(name+": quantize is idempotent", prop.ForAll(
		func(a float64) bool {
			wa := mk(a)
			return wa.Quantize().Quantize().Equal(wa.Quantize())
		},
		finiteFloat(),
	))

	properties.TestingRun(t)
}

func TestTropicalWeightLaws(t *testing.T) {
	checkLaws(t, "Tropical",
		func(v float64) semiring.Weight { return semiring.TropicalWeight(v) },
		semiring.TropicalWeight(math.Inf(1)), semiring.TropicalWeight(0))
}

func TestLogWeightLaws(t *testing.T) {
	checkLaws(t, "Log",
		func(v float64) semiring.Weight { return semiring.LogWeight(v) },
		semiring.LogWeight(math.Inf(1)), semiring.LogWeight(0))
}

func TestProbabilityWeightLaws(t *testing.T) {
	checkLaws(t, "Probability",
		func(v float64) semiring.Weight { return semiring.ProbabilityWeight(math.Abs(v)) },
		semiring.ProbabilityWeight(0), semiring.ProbabilityWeight(1))
}

func TestIntegerWeightLaws(t *testing.T) {
	params := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(params)
	properties.Property("Integer: plus/times distribute", prop.ForAll(
		func(a, b, c int64) bool {
			wa, wb, wc := semiring.IntegerWeight(a), semiring.IntegerWeight(b), semiring.IntegerWeight(c)
			bc, _ := wb.Plus(wc)
			left, _ := wa.Times(bc)
			ab, _ := wa.Times(wb)
			ac, _ := wa.Times(wc)
			right, _ := ab.Plus(ac)
			return left.Equal(right)
		},
		gen.Int64Range(-1000, 1000), gen.Int64Range(-1000, 1000), gen.Int64Range(-1000, 1000),
	))
	properties.TestingRun(t)
}

func TestTropicalIsPathAndIdempotent(t *testing.T) {
	require.True(t, semiring.TropicalWeight(0).Properties().Has(semiring.Path))
	require.True(t, semiring.TropicalWeight(0).Properties().Has(semiring.Idempotent))
}

func TestLogIsNotPath(t *testing.T) {
	require.False(t, semiring.LogWeight(0).Properties().Has(semiring.Path))
}

// TestLogPlusScenario exercises spec.md §8 scenario 5 literally.
func TestLogPlusScenario(t *testing.T) {
	inf := semiring.LogWeight(math.Inf(1))
	two := semiring.LogWeight(2.0)
	sum, err := inf.Plus(two)
	require.NoError(t, err)
	require.InDelta(t, 2.0, float64(sum.(semiring.LogWeight)), 1e-9)

	zeroSum, err := semiring.LogWeight(0).Plus(semiring.LogWeight(0))
	require.NoError(t, err)
	require.InDelta(t, -math.Ln2, float64(zeroSum.(semiring.LogWeight)), 1e-9)

	prod, err := inf.Times(two)
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(prod.(semiring.LogWeight)), 1))
}
