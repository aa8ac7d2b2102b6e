package quadrature

import (
	"fmt"
	"math/big"

	"github.com/montanaflynn/stats"
)

// DeltaStats summarizes the absolute deviations of one vector of values
// from a reference vector.
type DeltaStats struct {
	Max    float64
	Mean   float64
	Median float64
}

// PrecisionStats reports how far the nodes and weights of a rule sit from
// a reference rule for the same measure, typically one computed with a
// more precise backend.
type PrecisionStats struct {
	NodeDelta   DeltaStats
	WeightDelta DeltaStats
}

// ComparePrecision measures got against ref, node by node and weight by
// weight. The rules must have the same length; the differences are taken
// at prec bits and summarized in float64.
func ComparePrecision(ref, got GaussRule, prec uint) (PrecisionStats, error) {
	if ref.Len() != got.Len() {
		return PrecisionStats{}, fmt.Errorf("cannot ComparePrecision: rules with %d and %d nodes", ref.Len(), got.Len())
	}
	n := ref.Len()
	nodeDeltas := make([]float64, n)
	weightDeltas := make([]float64, n)
	diff := new(big.Float).SetPrec(prec)
	for i := 0; i < n; i++ {
		diff.Sub(ref.Node(i, prec), got.Node(i, prec))
		nodeDeltas[i], _ = diff.Abs(diff).Float64()
		diff.Sub(ref.Weight(i, prec), got.Weight(i, prec))
		weightDeltas[i], _ = diff.Abs(diff).Float64()
	}

	nd, err := newDeltaStats(nodeDeltas)
	if err != nil {
		return PrecisionStats{}, fmt.Errorf("cannot ComparePrecision: %w", err)
	}
	wd, err := newDeltaStats(weightDeltas)
	if err != nil {
		return PrecisionStats{}, fmt.Errorf("cannot ComparePrecision: %w", err)
	}
	return PrecisionStats{NodeDelta: nd, WeightDelta: wd}, nil
}

func newDeltaStats(deltas []float64) (DeltaStats, error) {
	max, err := stats.Max(deltas)
	if err != nil {
		return DeltaStats{}, err
	}
	mean, err := stats.Mean(deltas)
	if err != nil {
		return DeltaStats{}, err
	}
	median, err := stats.Median(deltas)
	if err != nil {
		return DeltaStats{}, err
	}
	return DeltaStats{Max: max, Mean: mean, Median: median}, nil
}

func (p PrecisionStats) String() string {
	return fmt.Sprintf(`
┌────────┬──────────┬──────────┐
│        │    NODES │  WEIGHTS │
├────────┼──────────┼──────────┤
│MAX Err │ %8.2e │ %8.2e │
│AVG Err │ %8.2e │ %8.2e │
│MED Err │ %8.2e │ %8.2e │
└────────┴──────────┴──────────┘
`,
		p.NodeDelta.Max, p.WeightDelta.Max,
		p.NodeDelta.Mean, p.WeightDelta.Mean,
		p.NodeDelta.Median, p.WeightDelta.Median)
}
