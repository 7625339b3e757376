package resolve

import "strconv"

// Bonus weights for the composite relevance score. The fuzzy score is
// 0-100; bonuses deliberately overlap that range so a strong contextual
// signal can outrank a slightly better string match.
const (
	prefixBonus     = 50
	containsBonus   = 20
	activeBonus     = 30
	anyStatusBonus  = 10
	skillPosBonus   = 15
	qbExtraBonus    = 10
	popularityBonus = 100
)

// Features are the independent terms of the composite relevance score,
// kept explicit so each one is testable on its own.
type Features struct {
	FuzzyScore      int
	PrefixBonus     int
	StatusBonus     int
	PositionBonus   int
	PopularityBonus int
	Tiebreak        float64
}

// Score is the pure combination of all terms.
func (f Features) Score() float64 {
	return float64(f.FuzzyScore+f.PrefixBonus+f.StatusBonus+f.PositionBonus+f.PopularityBonus) + f.Tiebreak
}

// popularOverrides prefer current stars over namesakes: when the query is
// exactly the short token and the candidate name contains the expected
// fragment, the candidate gets the popularity bonus. Ordered, first match
// wins.
var popularOverrides = []struct {
	Query    string
	Fragment string
}{
	{"lamar", "jackson"},
	{"josh", "allen"},
	{"hurts", "jalen"},
	{"mahomes", "patrick"},
	{"allen", "josh"},
	{"burrow", "joe"},
	{"jackson", "lamar"},
	{"kelce", "travis"},
	{"brady", "tom"},
	{"rice", "jerry"},
}

// idTiebreak derives a small deterministic fraction from the player id so
// equal composite scores still order identically run to run. Higher ids
// are usually newer players.
func idTiebreak(espnID string) float64 {
	n, err := strconv.Atoi(espnID)
	if err != nil {
		return 0
	}
	return float64(n) / 10000000.0
}
