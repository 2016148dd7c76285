package strategy

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"

	"github.com/montanaflynn/stats"
	"github.com/tuneinsight/isostrategy/utils"
	"github.com/tuneinsight/isostrategy/utils/bignum"
)

// reportPrecision is the precision in bits of the arbitrary precision evaluation
// of the total cost.
const reportPrecision = 256

// Report is a human-readable summary of a strategy.
type Report struct {
	Parameters ParametersLiteral
	Cost       float64
	Ops        OpCount
	TotalUnits float64
	// Log2Cost is log2 of Ops.Mul*MulCost + Ops.Iso*IsoCost evaluated with
	// arbitrary precision, and -Inf if this total is not positive.
	Log2Cost float64
	// Statistics of the split sequence.
	SeqMean   float64
	SeqMedian float64
	SeqStdDev float64
	SeqMax    int
	Digest    string
}

// NewReport summarizes s.
func NewReport(s *Strategy) (r Report, err error) {

	if len(s.Sequence) == 0 {
		return r, fmt.Errorf("strategy.NewReport: empty sequence: %w", ErrInvalidArgument)
	}

	lit := s.Parameters.ParametersLiteral()

	r = Report{
		Parameters: lit,
		Cost:       s.Cost,
		Ops:        s.Ops,
		TotalUnits: s.TotalUnits(),
		SeqMax:     utils.MaxSlice(s.Sequence),
	}

	total := bignum.DotProduct([]int{s.Ops.Mul, s.Ops.Iso}, []float64{lit.MulCost, lit.IsoCost}, reportPrecision)
	if total.Sign() > 0 {
		r.Log2Cost, _ = bignum.Log2(total).Float64()
	} else {
		r.Log2Cost = math.Inf(-1)
	}

	data := stats.Float64Data(utils.ToFloat64Slice(s.Sequence))

	if r.SeqMean, err = data.Mean(); err != nil {
		return r, fmt.Errorf("strategy.NewReport: %w", err)
	}

	if r.SeqMedian, err = data.Median(); err != nil {
		return r, fmt.Errorf("strategy.NewReport: %w", err)
	}

	if r.SeqStdDev, err = data.StandardDeviation(); err != nil {
		return r, fmt.Errorf("strategy.NewReport: %w", err)
	}

	digest := s.Digest()
	r.Digest = hex.EncodeToString(digest[:])

	return r, nil
}

// String returns the multi-line summary printed by the command line tools.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "leaves=%d mulCost=%g isoCost=%g\n", r.Parameters.LeafCount, r.Parameters.MulCost, r.Parameters.IsoCost)
	fmt.Fprintf(&sb, "  cost:        %.4f (log2 %.4f)\n", r.Cost, r.Log2Cost)
	fmt.Fprintf(&sb, "  operations:  %d multiplications, %d isogeny evaluations\n", r.Ops.Mul, r.Ops.Iso)
	fmt.Fprintf(&sb, "  total units: %.4f\n", r.TotalUnits)
	fmt.Fprintf(&sb, "  sequence:    mean %.3f, median %.1f, stddev %.3f, max %d\n", r.SeqMean, r.SeqMedian, r.SeqStdDev, r.SeqMax)
	fmt.Fprintf(&sb, "  digest:      %s\n", r.Digest)
	return sb.String()
}
