package strategy

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
)

// MinLeafCount is the smallest leaf count for which a table is computed. Trees
// with one or two leaves are fully described by the base rows.
const MinLeafCount = 3

// ErrInvalidArgument is returned (wrapped) when a function is called with arguments
// outside of its domain.
var ErrInvalidArgument = errors.New("invalid argument")

// ParametersLiteral is a literal representation of strategy parameters. It has public
// fields and is used to express unchecked user-defined parameters literally into Go
// programs. The NewParametersFromLiteral function is used to generate the actual
// checked parameters from the literal representation.
//
// MulCost is the cost of one ℓ-multiplication and IsoCost the cost of one ℓ-isogeny
// point evaluation. Only their ratio influences the shape of the strategy. Negative
// costs are accepted and produce a meaningless strategy.
type ParametersLiteral struct {
	LeafCount int
	MulCost   float64
	IsoCost   float64
}

// Parameters represents a checked set of strategy parameters. Its fields are private
// and immutable. See ParametersLiteral for user-specified parameters.
type Parameters struct {
	leafCount int
	mulCost   float64
	isoCost   float64
}

// NewParameters instantiates a new set of Parameters from the leaf count n and the
// unit costs p (ℓ-multiplication) and q (ℓ-isogeny evaluation).
func NewParameters(n int, p, q float64) (params Parameters, err error) {

	if n < MinLeafCount {
		return Parameters{}, fmt.Errorf("strategy.NewParameters: leaf count must be at least %d but is %d: %w", MinLeafCount, n, ErrInvalidArgument)
	}

	if math.IsNaN(p) || math.IsInf(p, 0) {
		return Parameters{}, fmt.Errorf("strategy.NewParameters: MulCost must be finite but is %v: %w", p, ErrInvalidArgument)
	}

	if math.IsNaN(q) || math.IsInf(q, 0) {
		return Parameters{}, fmt.Errorf("strategy.NewParameters: IsoCost must be finite but is %v: %w", q, ErrInvalidArgument)
	}

	return Parameters{
		leafCount: n,
		mulCost:   p,
		isoCost:   q,
	}, nil
}

// NewParametersFromLiteral instantiates a set of Parameters from a ParametersLiteral
// specification.
func NewParametersFromLiteral(paramDef ParametersLiteral) (params Parameters, err error) {
	return NewParameters(paramDef.LeafCount, paramDef.MulCost, paramDef.IsoCost)
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		LeafCount: p.leafCount,
		MulCost:   p.mulCost,
		IsoCost:   p.isoCost,
	}
}

// LeafCount returns the number of leaves of the tree.
func (p Parameters) LeafCount() int {
	return p.leafCount
}

// MulCost returns the cost of one ℓ-multiplication.
func (p Parameters) MulCost() float64 {
	return p.mulCost
}

// IsoCost returns the cost of one ℓ-isogeny evaluation.
func (p Parameters) IsoCost() float64 {
	return p.isoCost
}

// Equal checks two Parameter structs for equality.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalBinary returns a []byte representation of the parameter set.
func (p Parameters) MarshalBinary() ([]byte, error) {
	return p.MarshalJSON()
}

// UnmarshalBinary decodes a slice of bytes on the target Parameters.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	return p.UnmarshalJSON(data)
}

// MarshalJSON returns a JSON representation of this parameter set. See `Marshal` from the `encoding/json` package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See `Unmarshal` from the `encoding/json` package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}
