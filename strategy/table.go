// Package strategy computes optimal strategies for the evaluation of a binary
// isogeny tree. A strategy of n leaves splits the tree into a left subtree of m
// leaves, reached with n-m ℓ-multiplications, and a right subtree of n-m leaves,
// reached with m ℓ-isogeny evaluations, and recursively splits both subtrees.
// Optimal strategies for all leaf counts up to n are found by dynamic programming.
package strategy

import (
	"fmt"
)

// Split is the optimal binary split of a tree: Left+Right is the number of leaves.
type Split struct {
	Left  int
	Right int
}

// OpCount is the number of ℓ-multiplications and ℓ-isogeny evaluations performed by
// a strategy.
type OpCount struct {
	Mul int
	Iso int
}

// Add returns the component-wise sum of c and other.
func (c OpCount) Add(other OpCount) OpCount {
	return OpCount{Mul: c.Mul + other.Mul, Iso: c.Iso + other.Iso}
}

// Units returns Mul*p + Iso*q.
func (c OpCount) Units(p, q float64) float64 {
	return float64(c.Mul)*p + float64(c.Iso)*q
}

// Table stores the optimal cost, split and operation count of the strategies
// for the leaf counts 1 to Len(). Rows are indexed from 1 and are never modified
// once appended.
type Table struct {
	p, q  float64
	cost  []float64
	split []Split
	ops   []OpCount
}

// NewTable computes the optimal strategies for all leaf counts from 1 to n, where
// p is the cost of an ℓ-multiplication and q the cost of an ℓ-isogeny evaluation.
// Returns an error wrapping ErrInvalidArgument if n < 3.
func NewTable(n int, p, q float64) (tab *Table, err error) {

	if n < MinLeafCount {
		return nil, fmt.Errorf("strategy.NewTable: leaf count must be at least %d but is %d: %w", MinLeafCount, n, ErrInvalidArgument)
	}

	tab = newBaseTable(n, p, q)

	for len(tab.cost) < n {
		tab.extend()
	}

	return
}

// NewTableFromParameters computes the optimal strategies for all leaf counts up to
// params.LeafCount().
func NewTableFromParameters(params Parameters) (*Table, error) {
	return NewTable(params.LeafCount(), params.MulCost(), params.IsoCost())
}

// newBaseTable returns a table of capacity n holding the rows for one and two leaves.
func newBaseTable(n int, p, q float64) (tab *Table) {

	tab = &Table{
		p:     p,
		q:     q,
		cost:  make([]float64, 2, n),
		split: make([]Split, 2, n),
		ops:   make([]OpCount, 2, n),
	}

	tab.cost[1] = p + q
	tab.split[1] = Split{Left: 1, Right: 1}
	tab.ops[1] = OpCount{Mul: 1, Iso: 1}

	return
}

// extend appends the row for Len()+1 leaves.
func (tab *Table) extend() {
	cost, split, ops := StepCost(tab.p, tab.q, tab.cost, tab.ops)
	tab.cost = append(tab.cost, cost)
	tab.split = append(tab.split, split)
	tab.ops = append(tab.ops, ops)
}

// StepCost computes the optimal strategy for n = len(cost)+1 leaves, given the
// optimal costs and operation counts for 1 to n-1 leaves (cost[i-1] and ops[i-1]
// hold the row for i leaves).
//
// Every split (i, n-i) with 1 <= i <= n-1 is scanned by increasing i. A candidate
// replaces the best one when its cost is smaller or equal, so that among equally
// cheap splits the one with the largest left subtree is returned. This favors
// strategies with more isogeny evaluations and must not be changed: published
// strategies depend on it.
func StepCost(p, q float64, cost []float64, ops []OpCount) (float64, Split, OpCount) {

	n := len(cost) + 1

	if n < MinLeafCount || len(ops) != len(cost) {
		panic(fmt.Errorf("cannot StepCost: invalid tables, len(cost)=%d, len(ops)=%d", len(cost), len(ops)))
	}

	var best float64
	var m int

	for i := 1; i < n; i++ {

		// The explicit float64 conversions forbid fused multiply-adds, which
		// would make ties architecture dependent.
		candidate := cost[i-1] + cost[n-i-1] + float64(float64(n-i)*p) + float64(float64(i)*q)

		if m == 0 || candidate <= best {
			best = candidate
			m = i
		}
	}

	return best, Split{Left: m, Right: n - m}, ops[m-1].Add(ops[n-m-1]).Add(OpCount{Mul: n - m, Iso: m})
}

// Len returns the number of rows of the table.
func (tab *Table) Len() int {
	return len(tab.cost)
}

// MulCost returns the cost of an ℓ-multiplication the table was computed with.
func (tab *Table) MulCost() float64 {
	return tab.p
}

// IsoCost returns the cost of an ℓ-isogeny evaluation the table was computed with.
func (tab *Table) IsoCost() float64 {
	return tab.q
}

// Cost returns the optimal cost of a tree with i leaves.
func (tab *Table) Cost(i int) float64 {
	tab.checkIndex(i)
	return tab.cost[i-1]
}

// Split returns the optimal split of a tree with i leaves.
func (tab *Table) Split(i int) Split {
	tab.checkIndex(i)
	return tab.split[i-1]
}

// OpCount returns the operation count of the optimal strategy for a tree with i leaves.
func (tab *Table) OpCount(i int) OpCount {
	tab.checkIndex(i)
	return tab.ops[i-1]
}

// Costs returns a copy of the cost table, the cost for i leaves being at index i-1.
func (tab *Table) Costs() []float64 {
	return append([]float64(nil), tab.cost...)
}

// Splits returns a copy of the split table, the split for i leaves being at index i-1.
func (tab *Table) Splits() []Split {
	return append([]Split(nil), tab.split...)
}

// OpCounts returns a copy of the operation count table, the count for i leaves
// being at index i-1.
func (tab *Table) OpCounts() []OpCount {
	return append([]OpCount(nil), tab.ops...)
}

// Sequence returns the split sequence for Len() leaves. See SplitSequence.
func (tab *Table) Sequence() []int {
	return SplitSequence(tab.Len(), tab.split)
}

func (tab *Table) checkIndex(i int) {
	if i < 1 || i > len(tab.cost) {
		panic(fmt.Errorf("invalid leaf count: %d not in [1, %d]", i, len(tab.cost)))
	}
}

// SplitSequence projects the split table on the size of the right subtrees:
// seq[i-1] = splits[i-1].Right for i in 1..n. This is the form expected by
// isogeny-walk implementations, where seq[i-1] is the number of ℓ-multiplications
// to perform from a node with i leaves below it.
// Panics if n > len(splits).
func SplitSequence(n int, splits []Split) (seq []int) {

	if n < 0 || n > len(splits) {
		panic(fmt.Errorf("cannot SplitSequence: n=%d not in [0, %d]", n, len(splits)))
	}

	seq = make([]int, n)
	for i := range seq {
		seq[i] = splits[i].Right
	}

	return
}
