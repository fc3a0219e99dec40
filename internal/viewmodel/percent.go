package viewmodel

import (
	"math"
	"sort"

	"github.com/samber/lo"
)

// LargestRemainder converts values into integer percentages summing to
// exactly 100. Leftover points go to the largest fractional parts; equal
// fractions favour the earlier index. A zero total yields all zeros and
// negative values count as zero.
func LargestRemainder(values []float64) []int {
	out := make([]int, len(values))
	clean := lo.Map(values, func(v float64, _ int) float64 { return max(v, 0) })
	total := lo.Sum(clean)
	if total <= 0 {
		return out
	}

	type frac struct {
		idx int
		rem float64
	}
	fracs := make([]frac, len(clean))
	sum := 0
	for i, v := range clean {
		p := 100 * v / total
		f := math.Floor(p)
		out[i] = int(f)
		sum += out[i]
		fracs[i] = frac{idx: i, rem: p - f}
	}

	sort.SliceStable(fracs, func(a, b int) bool {
		return fracs[a].rem > fracs[b].rem
	})
	for k := 0; k < 100-sum && k < len(fracs); k++ {
		out[fracs[k].idx]++
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
