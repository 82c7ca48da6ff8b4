package production

import "math"

// Totals is the rollup of one hourly grid.
type Totals struct {
	Actual     int `json:"actual"`
	Target     int `json:"target"`
	Rejects    int `json:"rejects"`
	Efficiency int `json:"efficiency"`
}

// Aggregate rolls an hourly grid into line totals. Negative values coerce to
// zero, matching the input coercion applied at the edge. A zero target yields
// 0% efficiency rather than a division error.
func Aggregate(hourly []HourlyEntry) Totals {
	var t Totals
	for _, h := range hourly {
		t.Actual += coerce(h.Actual)
		t.Target += coerce(h.Target)
		t.Rejects += coerce(h.Rejects)
	}
	if t.Target > 0 {
		t.Efficiency = int(math.Round(float64(t.Actual) / float64(t.Target) * 100))
	}
	return t
}

func coerce(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
