package gamelog

import "strings"

// Position-default header tables. The provider frequently omits column
// labels from game logs, so each common position gets the header layout
// its rows actually use.
var (
	qbHeaders = []string{"Cmp", "Att", "Yds", "Cmp%", "Avg", "TD", "INT", "Lng", "Sack", "Rate", "QBR", "Rush", "RYds", "RAvg", "RTD", "RLng"}
	rbHeaders = []string{"Rush", "Yds", "Avg", "TD", "Lng", "Rec", "Tgt", "Yds", "Avg", "TD", "Lng", "Fum", "Lost"}
	wrHeaders = []string{"Rec", "Tgt", "Yds", "Avg", "TD", "Lng", "Fum", "Lost"}
	dfHeaders = []string{"Tot", "Solo", "Ast", "Sack", "FF", "FR", "Yds", "INT", "Yds", "Avg", "TD", "Lng", "PD", "Stuff", "Yds", "KB"}
)

// genericHeaders is the 5-slot fallback for positions without a layout.
var genericHeaders = []string{"Stat1", "Stat2", "Stat3", "Stat4", "Stat5"}

// HeadersForPosition returns the default header list for a position when a
// provider response carries none. Accepts abbreviations ("QB") or full
// names ("Quarterback").
func HeadersForPosition(position string) []string {
	pos := strings.ToLower(position)
	switch {
	case pos == "qb" || strings.Contains(pos, "quarterback"):
		return qbHeaders
	case pos == "rb" || strings.Contains(pos, "running") || strings.Contains(pos, "back"):
		return rbHeaders
	case pos == "wr" || pos == "te" || strings.Contains(pos, "receiver") || strings.Contains(pos, "tight"):
		return wrHeaders
	case pos == "lb" || pos == "de" || pos == "dt" || pos == "cb" || pos == "s" || pos == "db":
		return dfHeaders
	}
	return genericHeaders
}
