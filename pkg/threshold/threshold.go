// Package threshold evaluates single-game stat predicates such as
// "100+ yards". Raw headers are position-overloaded ("Yds" is rushing
// yardage for a back, receiving yardage for a receiver), so a canonical
// stat name maps to an ordered list of acceptable header spellings per
// position.
package threshold

import "github.com/fieldside/gridstats/pkg/gamelog"

// yardHeaders maps a position group to the header spellings that count as
// "yards" for that position. Any header in the row whose label appears
// here may satisfy the predicate.
func yardHeaders(position string) []string {
	switch position {
	case "WR", "TE":
		return []string{"Yds", "Receiving Yards", "Rec Yds"}
	case "RB", "FB":
		return []string{"Yds", "Rushing Yards", "Rush Yds"}
	case "QB":
		return []string{"Yds", "Passing Yards", "Pass Yds"}
	}
	return []string{"Yds", "Yards"}
}

func touchdownHeaders(position string) []string {
	switch position {
	case "WR", "TE":
		return []string{"TD", "Rec TD", "Receiving TD"}
	case "RB", "FB":
		return []string{"TD", "Rush TD", "Rushing TD"}
	case "QB":
		return []string{"TD", "Pass TD", "Passing TD"}
	}
	return []string{"TD", "Touchdowns"}
}

// flatHeaders covers stats whose header spellings do not depend on
// position.
var flatHeaders = map[string][]string{
	"receptions":    {"Rec", "Receptions"},
	"sacks":         {"Sack", "Sacks"},
	"tackles":       {"Tot", "Total Tackles", "Tackles"},
	"interceptions": {"INT", "Interceptions"},
}

// acceptableHeaders resolves a canonical stat name and position to the
// ordered header spellings that may carry it.
func acceptableHeaders(stat, position string) []string {
	switch stat {
	case "yards":
		return yardHeaders(position)
	case "touchdowns":
		return touchdownHeaders(position)
	}
	if hs, ok := flatHeaders[stat]; ok {
		return hs
	}
	return []string{stat}
}

// MeetsThreshold reports whether a single game has an acceptable header
// whose value reaches the threshold. The scan walks the row in header
// order and returns true at the first acceptable header whose cell parses
// to a value >= value; an acceptable column that misses does not stop
// later acceptable columns from counting.
func MeetsThreshold(game gamelog.GameStatRow, headers []string, stat string, value float64, position string) bool {
	accepted := acceptableHeaders(stat, position)

	for i, h := range headers {
		if i >= len(game.Stats) {
			break
		}
		ok := false
		for _, a := range accepted {
			if h == a {
				ok = true
				break
			}
		}
		if !ok {
			continue
		}
		v, numeric := gamelog.ParseCell(game.Stats[i])
		if numeric && v >= value {
			return true
		}
	}
	return false
}

// CountMeeting applies MeetsThreshold across a game list and returns how
// many games satisfy it.
func CountMeeting(games []gamelog.GameStatRow, headers []string, stat string, value float64, position string) int {
	count := 0
	for _, g := range games {
		if MeetsThreshold(g, headers, stat, value, position) {
			count++
		}
	}
	return count
}
