package strategy

import (
	"fmt"

	"github.com/tuneinsight/isostrategy/utils"
)

// FieldCost is the relative cost of the base field operations.
type FieldCost struct {
	Mul float64
	Sqr float64
}

// DefaultFieldCost weights a squaring as 0.8 multiplication.
var DefaultFieldCost = FieldCost{Mul: 1, Sqr: 0.8}

// Formula is the number of field multiplications and squarings of an x-only
// Montgomery curve formula.
type Formula struct {
	Mul int
	Sqr int
}

// Cost returns the cost of the formula under fc.
func (f Formula) Cost(fc FieldCost) float64 {
	return float64(float64(f.Mul)*fc.Mul) + float64(float64(f.Sqr)*fc.Sqr)
}

// IsogenyFamily describes the ℓ-isogeny tree walked by one side of the key exchange.
type IsogenyFamily struct {
	Name      string
	Degree    int
	LeafCount int
	// Step is the ℓ-multiplication moving a point one level down the tree.
	Step Formula
	// Eval is the ℓ-isogeny evaluation moving a point to the codomain.
	Eval Formula
}

// ParametersLiteral returns the strategy parameters of the family under fc.
func (f IsogenyFamily) ParametersLiteral(fc FieldCost) ParametersLiteral {
	return ParametersLiteral{
		LeafCount: f.LeafCount,
		MulCost:   f.Step.Cost(fc),
		IsoCost:   f.Eval.Cost(fc),
	}
}

var (
	// FamilyA walks 4-isogenies. A 4-multiplication is two x-only doublings
	// (4M+2S each) and a 4-isogeny evaluation costs 9M+1S. The first
	// 4-isogeny of the 2^372 walk is computed separately, leaving 185 leaves.
	FamilyA = IsogenyFamily{
		Name:      "A",
		Degree:    4,
		LeafCount: 185,
		Step:      Formula{Mul: 8, Sqr: 4},
		Eval:      Formula{Mul: 9, Sqr: 1},
	}

	// FamilyB walks 3-isogenies. A 3-multiplication is one x-only tripling
	// (8M+4S) and a 3-isogeny evaluation costs 6M+2S. The 3^239 walk has
	// 239 leaves.
	FamilyB = IsogenyFamily{
		Name:      "B",
		Degree:    3,
		LeafCount: 239,
		Step:      Formula{Mul: 8, Sqr: 4},
		Eval:      Formula{Mul: 6, Sqr: 2},
	}
)

var families = map[string]IsogenyFamily{
	FamilyA.Name: FamilyA,
	FamilyB.Name: FamilyB,
}

// PresetNames returns the sorted names of the preset parameter sets.
func PresetNames() []string {
	return utils.GetSortedKeys(families)
}

// Family returns the isogeny family registered under name.
func Family(name string) (IsogenyFamily, error) {
	f, ok := families[name]
	if !ok {
		return IsogenyFamily{}, fmt.Errorf("strategy.Family: unknown preset %q, available presets are %v: %w", name, PresetNames(), ErrInvalidArgument)
	}
	return f, nil
}

// Preset returns the parameters literal of the named preset under DefaultFieldCost.
func Preset(name string) (ParametersLiteral, error) {
	f, err := Family(name)
	if err != nil {
		return ParametersLiteral{}, err
	}
	return f.ParametersLiteral(DefaultFieldCost), nil
}
