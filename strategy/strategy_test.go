package strategy

import (
	"errors"
	"math"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/isostrategy/utils/sampling"
)

func TestGenerate(t *testing.T) {

	t.Run("EndToEnd/n=3", func(t *testing.T) {
		params, err := NewParameters(3, 1, 1)
		require.NoError(t, err)
		s, err := Generate(params)
		require.NoError(t, err)
		require.Equal(t, []int{0, 1, 1}, s.Sequence)
		require.Equal(t, 5.0, s.Cost)
		require.Equal(t, OpCount{Mul: 2, Iso: 3}, s.Ops)
		require.Equal(t, 5.0, s.TotalUnits())
		require.Equal(t, 3, s.LeafCount())
	})

	t.Run("InvalidParameters", func(t *testing.T) {
		_, err := Generate(Parameters{})
		require.True(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("Equal", func(t *testing.T) {
		params, err := NewParameters(40, 1, 1.5)
		require.NoError(t, err)
		s0, err := Generate(params)
		require.NoError(t, err)
		s1, err := Generate(params)
		require.NoError(t, err)
		require.True(t, s0.Equal(s1))

		s1.Sequence[len(s1.Sequence)-1]++
		require.False(t, s0.Equal(s1))
	})
}

func TestGenerateMany(t *testing.T) {

	var params []Parameters
	for _, lit := range TestParams {
		p, err := NewParametersFromLiteral(lit)
		require.NoError(t, err)
		params = append(params, p)
	}

	t.Run("Order", func(t *testing.T) {
		strategies, err := GenerateMany(params...)
		require.NoError(t, err)
		require.Len(t, strategies, len(params))
		for i := range params {
			want, err := Generate(params[i])
			require.NoError(t, err)
			require.True(t, want.Equal(strategies[i]), testString(params[i], "GenerateMany"))
		}
	})

	t.Run("Empty", func(t *testing.T) {
		strategies, err := GenerateMany()
		require.NoError(t, err)
		require.Empty(t, strategies)
	})

	t.Run("Error", func(t *testing.T) {
		_, err := GenerateMany(params[0], Parameters{}, params[1])
		require.True(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("Error/LowestIndex", func(t *testing.T) {
		for i := 0; i < 8; i++ {
			_, err := GenerateMany(params[0], Parameters{}, params[1], Parameters{})
			require.ErrorContains(t, err, "parameter set 1:")
		}
	})

	t.Run("MoreThanGOMAXPROCS", func(t *testing.T) {
		many := make([]Parameters, 4*runtime.GOMAXPROCS(0)+1)
		for i := range many {
			var err error
			many[i], err = NewParameters(MinLeafCount+i, 1, 2)
			require.NoError(t, err)
		}
		strategies, err := GenerateMany(many...)
		require.NoError(t, err)
		for i := range many {
			require.Equal(t, many[i].LeafCount(), strategies[i].LeafCount())
		}
	})
}

func TestPresets(t *testing.T) {

	require.Equal(t, []string{"A", "B"}, PresetNames())

	for _, tc := range []struct {
		name  string
		n     int
		ops   OpCount
		split Split
		cost  float64
	}{
		{"A", 185, OpCount{Mul: 638, Iso: 771}, Split{Left: 101, Right: 84}, 14701.4},
		{"B", 239, OpCount{Mul: 867, Iso: 1040}, Split{Left: 131, Right: 108}, 17614.4},
	} {
		t.Run(tc.name, func(t *testing.T) {
			lit, err := Preset(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.n, lit.LeafCount)
			require.Equal(t, 11.2, lit.MulCost)

			params, err := NewParametersFromLiteral(lit)
			require.NoError(t, err)
			tab, err := NewTableFromParameters(params)
			require.NoError(t, err)

			require.Equal(t, tc.ops, tab.OpCount(tc.n))
			require.Equal(t, tc.split, tab.Split(tc.n))
			require.InDelta(t, tc.cost, tab.Cost(tc.n), 1e-9)
			require.Equal(t, []int{0, 1, 1, 2, 2}, tab.Sequence()[:5])

			ops, err := Walk(tab.Sequence())
			require.NoError(t, err)
			require.Equal(t, tc.ops, ops)
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		_, err := Preset("C")
		require.True(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("FieldCost", func(t *testing.T) {
		lit := FamilyB.ParametersLiteral(FieldCost{Mul: 1, Sqr: 1})
		require.Equal(t, ParametersLiteral{LeafCount: 239, MulCost: 12, IsoCost: 8}, lit)
	})
}

func TestReport(t *testing.T) {

	t.Run("n=3", func(t *testing.T) {
		params, err := NewParameters(3, 1, 1)
		require.NoError(t, err)
		s, err := Generate(params)
		require.NoError(t, err)

		r, err := NewReport(s)
		require.NoError(t, err)
		require.Equal(t, 5.0, r.Cost)
		require.Equal(t, 5.0, r.TotalUnits)
		require.InDelta(t, math.Log2(5), r.Log2Cost, 1e-12)
		require.InDelta(t, 2.0/3.0, r.SeqMean, 1e-12)
		require.Equal(t, 1.0, r.SeqMedian)
		require.Equal(t, 1, r.SeqMax)
		require.Len(t, r.Digest, 2*DigestSize)
		require.Contains(t, r.String(), "2 multiplications, 3 isogeny evaluations")
	})

	t.Run("ZeroCost", func(t *testing.T) {
		params, err := NewParameters(5, 0, 0)
		require.NoError(t, err)
		s, err := Generate(params)
		require.NoError(t, err)

		r, err := NewReport(s)
		require.NoError(t, err)
		require.True(t, math.IsInf(r.Log2Cost, -1))
	})

	t.Run("EmptySequence", func(t *testing.T) {
		_, err := NewReport(&Strategy{})
		require.True(t, errors.Is(err, ErrInvalidArgument))
	})
}

func TestSweep(t *testing.T) {

	t.Run("Ratios", func(t *testing.T) {
		ratios := []float64{0.5, 1, 2}
		strategies, err := Sweep(8, 1, ratios)
		require.NoError(t, err)
		require.Len(t, strategies, len(ratios))
		for i, s := range strategies {
			require.Equal(t, ratios[i], s.Parameters.IsoCost())
		}
		require.Equal(t, []int{0, 1, 2, 2, 3, 3, 4, 5}, strategies[2].Sequence)
		require.Equal(t, 35.0, strategies[2].Cost)
	})

	t.Run("InvalidLeafCount", func(t *testing.T) {
		_, err := Sweep(2, 1, []float64{1})
		require.True(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("RandomRatios", func(t *testing.T) {
		key := []byte("isogeny strategy sweep")

		prng0, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		prng1, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		r0, err := RandomRatios(prng0, 16, 0.5, 1.5)
		require.NoError(t, err)
		r1, err := RandomRatios(prng1, 16, 0.5, 1.5)
		require.NoError(t, err)
		require.Equal(t, r0, r1)

		for _, r := range r0 {
			require.GreaterOrEqual(t, r, 0.5)
			require.Less(t, r, 1.5)
		}

		_, err = RandomRatios(prng0, -1, 0, 1)
		require.True(t, errors.Is(err, ErrInvalidArgument))

		_, err = RandomRatios(prng0, 1, 2, 1)
		require.True(t, errors.Is(err, ErrInvalidArgument))
	})
}
