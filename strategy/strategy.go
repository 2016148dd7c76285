package strategy

import (
	"fmt"
	"runtime"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"
)

// Strategy is the optimal strategy for a tree of Parameters.LeafCount() leaves.
type Strategy struct {
	Parameters Parameters
	// Cost is the total cost of the strategy.
	Cost float64
	// Ops is the number of operations performed by the strategy.
	Ops OpCount
	// Sequence is the split sequence, see SplitSequence.
	Sequence []int
}

// Generate computes the optimal strategy for params.
func Generate(params Parameters) (s *Strategy, err error) {

	var tab *Table
	if tab, err = NewTableFromParameters(params); err != nil {
		return nil, fmt.Errorf("strategy.Generate: %w", err)
	}

	return NewStrategy(params, tab), nil
}

// NewStrategy extracts from tab the strategy for params.LeafCount() leaves.
// The table must have been computed with the costs of params and have at
// least params.LeafCount() rows.
func NewStrategy(params Parameters, tab *Table) *Strategy {
	n := params.LeafCount()
	return &Strategy{
		Parameters: params,
		Cost:       tab.Cost(n),
		Ops:        tab.OpCount(n),
		Sequence:   SplitSequence(n, tab.split),
	}
}

// GenerateMany computes the optimal strategies of independent parameter sets
// concurrently, running at most GOMAXPROCS computations at a time. The
// strategies are returned in the order of params. If any computation fails,
// the first error in the order of params is returned.
func GenerateMany(params ...Parameters) (strategies []*Strategy, err error) {

	strategies = make([]*Strategy, len(params))
	errs := make([]error, len(params))

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range params {
		i := i
		g.Go(func() error {
			strategies[i], errs[i] = Generate(params[i])
			return errs[i]
		})
	}

	// errs is scanned in order so that the reported error does not depend on
	// scheduling.
	if g.Wait() != nil {
		for i := range errs {
			if errs[i] != nil {
				return nil, fmt.Errorf("strategy.GenerateMany: parameter set %d: %w", i, errs[i])
			}
		}
	}

	return
}

// LeafCount returns the number of leaves of the tree.
func (s *Strategy) LeafCount() int {
	return s.Parameters.LeafCount()
}

// TotalUnits returns Ops.Mul*MulCost + Ops.Iso*IsoCost, which is equal to Cost
// up to floating point rounding.
func (s *Strategy) TotalUnits() float64 {
	return s.Ops.Units(s.Parameters.MulCost(), s.Parameters.IsoCost())
}

// Equal checks two strategies for equality.
func (s *Strategy) Equal(other *Strategy) bool {
	return s.Parameters.Equal(other.Parameters) &&
		s.Cost == other.Cost &&
		s.Ops == other.Ops &&
		cmp.Equal(s.Sequence, other.Sequence)
}
