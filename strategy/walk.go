package strategy

import (
	"fmt"
)

// Walk replays the traversal of an isogeny tree of len(seq) leaves driven by the
// split sequence seq, and returns the number of ℓ-multiplications and ℓ-isogeny
// point evaluations it performs.
//
// The traversal is the one of SIDH key generation: from the current node, the point
// is stacked and pushed down by seq[n-i-j] ℓ-multiplications until a leaf is reached.
// The ℓ-isogeny of the leaf is then evaluated on every stacked point, and the last
// stacked point becomes the current node. The final isogeny, and the evaluation of
// public points, are not counted.
//
// For a sequence returned by NewTable(n, p, q).Sequence(), the result is equal to
// the operation count of the table for n leaves.
func Walk(seq []int) (ops OpCount, err error) {

	n := len(seq)

	if n == 0 {
		return ops, fmt.Errorf("strategy.Walk: empty sequence: %w", ErrInvalidArgument)
	}

	stack := make([]int, 0, n)

	var i int
	for j := 1; j < n; j++ {

		for i < n-j {

			// seq[n-i-j] is the right subtree of a node with n-i-j+1 leaves
			k := seq[n-i-j]

			if k < 1 || k > n-i-j {
				return ops, fmt.Errorf("strategy.Walk: invalid step seq[%d]=%d not in [1, %d]: %w", n-i-j, k, n-i-j, ErrInvalidArgument)
			}

			stack = append(stack, i)
			ops.Mul += k
			i += k
		}

		if len(stack) == 0 {
			return ops, fmt.Errorf("strategy.Walk: sequence does not describe a tree: %w", ErrInvalidArgument)
		}

		ops.Iso += len(stack)

		i, stack = stack[len(stack)-1], stack[:len(stack)-1]
	}

	return
}
