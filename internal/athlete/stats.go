package athlete

import (
	"github.com/aclements/go-moremath/stats"
)

// PointsStats summarizes the points distribution of a ranking list
type PointsStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
}

func ComputePointsStats(athletes []Athlete) PointsStats {
	if len(athletes) == 0 {
		return PointsStats{}
	}
	s := stats.Sample{Xs: make([]float64, 0, len(athletes))}
	for _, a := range athletes {
		s.Xs = append(s.Xs, a.Points)
	}
	s.Sort()
	return PointsStats{
		Count:  len(s.Xs),
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		Min:    s.Quantile(0),
		Max:    s.Quantile(1),
		Median: s.Quantile(0.5),
		P90:    s.Quantile(0.9),
	}
}
