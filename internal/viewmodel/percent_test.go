package viewmodel

import (
	"math"
	"slices"
	"testing"
)

func TestLargestRemainder(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []int
	}{
		{"thirds go to first", []float64{1, 1, 1}, []int{34, 33, 33}},
		{"exact", []float64{25, 75}, []int{25, 75}},
		{"largest fraction wins", []float64{0.5, 0.3, 0.2}, []int{50, 30, 20}},
		{"uneven", []float64{2, 1, 1, 1, 1, 1}, []int{29, 15, 14, 14, 14, 14}},
		{"zero total", []float64{0, 0}, []int{0, 0}},
		{"negative counts as zero", []float64{-5, 1, 1}, []int{0, 50, 50}},
		{"empty", nil, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LargestRemainder(tt.values)
			if !slices.Equal(got, tt.want) {
				t.Errorf("LargestRemainder(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestLargestRemainder_Properties(t *testing.T) {
	inputs := [][]float64{
		{0.1234, 5.678, 9.1011},
		{3, 3, 3, 3, 3, 3, 3},
		{1e-9, 1, 1000},
		{12.35, 0, 7.2, 0.01},
	}
	for _, in := range inputs {
		got := LargestRemainder(in)
		sum := 0
		total := 0.0
		for _, v := range in {
			total += v
		}
		for i, p := range got {
			sum += p
			raw := 100 * in[i] / total
			if math.Abs(float64(p)-raw) >= 1 {
				t.Errorf("%v: share %d = %d, raw %.3f", in, i, p, raw)
			}
		}
		if sum != 100 {
			t.Errorf("%v: sum = %d, want 100", in, sum)
		}
	}
}
