// Package fantasy scores a stat line under common fantasy formats.
package fantasy

import "math"

// Scoring format.
type Scoring string

const (
	PPR      Scoring = "ppr"
	HalfPPR  Scoring = "half_ppr"
	Standard Scoring = "standard"
)

// Line is a season or game stat line. Zero-valued fields simply score
// zero, so partial lines are fine.
type Line struct {
	PassingYards      float64
	PassingTouchdowns float64
	Interceptions     float64
	RushingYards      float64
	RushingTouchdowns float64
	Receptions        float64
	ReceivingYards    float64
	ReceivingTDs      float64
	FumblesLost       float64
	TwoPtConversions  float64
}

// Result is the total with a per-category breakdown.
type Result struct {
	Total     float64
	Breakdown map[string]float64
}

// Points scores a line. Yardage scores 1 per 25 passing / 1 per 10
// rushing or receiving, touchdowns 4 passing / 6 otherwise, turnovers -2.
// Reception value depends on the format.
func Points(line Line, scoring Scoring) Result {
	breakdown := make(map[string]float64)
	total := 0.0

	add := func(label string, pts float64) {
		if pts == 0 {
			return
		}
		breakdown[label] = pts
		total += pts
	}

	add("Passing Yards", line.PassingYards*0.04)
	add("Passing TDs", line.PassingTouchdowns*4)
	add("Interceptions", line.Interceptions*-2)
	add("Rushing Yards", line.RushingYards*0.1)
	add("Rushing TDs", line.RushingTouchdowns*6)

	switch scoring {
	case PPR:
		add("Receptions", line.Receptions*1)
	case HalfPPR:
		add("Receptions", line.Receptions*0.5)
	}

	add("Receiving Yards", line.ReceivingYards*0.1)
	add("Receiving TDs", line.ReceivingTDs*6)
	add("Fumbles Lost", line.FumblesLost*-2)
	add("2-PT Conversions", line.TwoPtConversions*2)

	return Result{Total: round1(total), Breakdown: breakdown}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
