package athlete

import (
	"math"
	"testing"
)

func TestComputePointsStats(t *testing.T) {
	athletes := []Athlete{
		{Points: 1000},
		{Points: 2000},
		{Points: 3000},
		{Points: 4000},
	}
	got := ComputePointsStats(athletes)
	if got.Count != 4 {
		t.Errorf("count: got %d, want 4", got.Count)
	}
	if math.Abs(got.Mean-2500) > 1e-9 {
		t.Errorf("mean: got %f, want 2500", got.Mean)
	}
	if got.Min != 1000 || got.Max != 4000 {
		t.Errorf("min/max: got %f/%f, want 1000/4000", got.Min, got.Max)
	}
	if got.Median < 2000 || got.Median > 3000 {
		t.Errorf("median out of range: %f", got.Median)
	}
}

func TestComputePointsStatsEmpty(t *testing.T) {
	got := ComputePointsStats(nil)
	if got.Count != 0 || got.Mean != 0 {
		t.Errorf("expected zero stats for empty input, got %+v", got)
	}
}
