package leader

import (
	"math"

	"github.com/protrack-ops/floor-backend-go/internal/domain/production"
)

// Metrics summarizes a leader's recorded production history.
type Metrics struct {
	ShiftsCompleted int     `json:"shiftsCompleted"`
	TotalOutput     int     `json:"totalOutput"`
	TotalTarget     int     `json:"totalTarget"`
	TotalRejects    int     `json:"totalRejects"`
	AvgEfficiency   int     `json:"avgEfficiency"`
	Rating          float64 `json:"rating"`
}

// ComputeMetrics folds a leader's production entries into aggregate numbers.
// The rating combines average efficiency and logged-shift volume, clamped to
// [0, 5] and rounded to one decimal. A leader with no shifts rates 0.
func ComputeMetrics(entries []production.Entry) Metrics {
	var m Metrics
	m.ShiftsCompleted = len(entries)
	var effSum int
	for _, e := range entries {
		m.TotalOutput += e.TotalOutput
		m.TotalTarget += e.TotalTarget
		m.TotalRejects += e.TotalRejects
		effSum += e.Efficiency
	}
	if m.ShiftsCompleted == 0 {
		return m
	}
	m.AvgEfficiency = int(math.Round(float64(effSum) / float64(m.ShiftsCompleted)))

	rating := float64(m.AvgEfficiency)/25.0 + float64(m.ShiftsCompleted)/50.0
	rating = math.Max(0, math.Min(rating, 5))
	m.Rating = math.Round(rating*10) / 10
	return m
}
