package strategy

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParameters(t *testing.T) {

	t.Run("Invalid", func(t *testing.T) {
		for _, lit := range []ParametersLiteral{
			{LeafCount: 2, MulCost: 1, IsoCost: 1},
			{LeafCount: -5, MulCost: 1, IsoCost: 1},
			{LeafCount: 10, MulCost: math.NaN(), IsoCost: 1},
			{LeafCount: 10, MulCost: 1, IsoCost: math.Inf(1)},
		} {
			_, err := NewParametersFromLiteral(lit)
			require.True(t, errors.Is(err, ErrInvalidArgument), "%+v", lit)
		}
	})

	t.Run("NegativeCosts", func(t *testing.T) {
		params, err := NewParameters(10, -1, 2)
		require.NoError(t, err)
		_, err = Generate(params)
		require.NoError(t, err)
	})

	t.Run("Literal", func(t *testing.T) {
		lit := ParametersLiteral{LeafCount: 185, MulCost: 11.2, IsoCost: 9.8}
		params, err := NewParametersFromLiteral(lit)
		require.NoError(t, err)
		require.Equal(t, lit, params.ParametersLiteral())
		require.Equal(t, 185, params.LeafCount())
		require.Equal(t, 11.2, params.MulCost())
		require.Equal(t, 9.8, params.IsoCost())
	})

	t.Run("Equal", func(t *testing.T) {
		p0, err := NewParameters(10, 1, 2)
		require.NoError(t, err)
		p1, err := NewParameters(10, 1, 2)
		require.NoError(t, err)
		p2, err := NewParameters(10, 2, 1)
		require.NoError(t, err)
		require.True(t, p0.Equal(p1))
		require.False(t, p0.Equal(p2))
	})

	t.Run("JSON", func(t *testing.T) {
		params, err := NewParameters(239, 11.2, 7.6)
		require.NoError(t, err)

		data, err := json.Marshal(params)
		require.NoError(t, err)

		var have Parameters
		require.NoError(t, json.Unmarshal(data, &have))
		require.True(t, params.Equal(have))

		data, err = params.MarshalBinary()
		require.NoError(t, err)
		have = Parameters{}
		require.NoError(t, have.UnmarshalBinary(data))
		require.True(t, params.Equal(have))

		require.Error(t, json.Unmarshal([]byte(`{"LeafCount":1,"MulCost":1,"IsoCost":1}`), &have))
	})
}
