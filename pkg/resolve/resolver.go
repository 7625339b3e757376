// Package resolve fuzzy-matches leftover query text against the player and
// team directories, ranks candidates with a composite relevance score, and
// returns the best entity. No match is never an error: callers get
// KindNone and decide what "not found" means for them.
package resolve

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/fieldside/gridstats/pkg/nfldata"
)

// Kind classifies what the resolver identified.
type Kind int

const (
	KindNone Kind = iota
	KindTeam
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindTeam:
		return "team"
	case KindPlayer:
		return "player"
	}
	return "none"
}

// Entity is a resolved team or player reference.
type Entity struct {
	Kind   Kind
	Team   *nfldata.TeamRecord
	Player *nfldata.PlayerRecord
}

// Match is one ranked player candidate.
type Match struct {
	Player     nfldata.PlayerRecord
	FuzzyScore int
	Total      float64
}

const (
	// teamAcceptScore is the whole-string weighted-ratio floor for a
	// team-name match.
	teamAcceptScore = 70
	// playerMinScore discards fuzzy candidates at or below this score.
	playerMinScore = 60
	// DefaultLimit is the candidate pool size for a plain lookup;
	// DisambigLimit widens it when a better-positioned namesake may be
	// hiding below the cut.
	DefaultLimit   = 5
	DisambigLimit  = 20
	samePosLimit   = 10
)

// typoCorrections is a small substring-correction table applied before
// fuzzy matching: common misspellings and bare first/last names of
// well-known players. Ordered, first hit wins.
var typoCorrections = []struct {
	Typo       string
	Correction string
}{
	{"mahomet", "mahomes"},
	{"mahommes", "mahomes"},
	{"mahomez", "mahomes"},
	{"lamar", "lamar jackson"},
	{"josh", "josh allen"},
	{"hurts", "jalen hurts"},
	{"burrow", "joe burrow"},
	{"kelce", "travis kelce"},
	{"brady", "tom brady"},
	{"tyreek", "tyreek hill"},
	{"ceedee", "ceedee lamb"},
	{"aj", "aj brown"},
}

// skillPositions get a ranking bonus; they are what people usually ask
// about.
var skillPositions = map[string]bool{
	"QB": true, "WR": true, "RB": true, "TE": true, "K": true,
}

// Resolver matches query text against an immutable directory snapshot.
type Resolver struct {
	dir *nfldata.Directory

	// normalized player names, parallel to dir.Players()
	normNames []string
}

// NewResolver precomputes normalized names over the snapshot.
func NewResolver(dir *nfldata.Directory) *Resolver {
	players := dir.Players()
	norm := make([]string, len(players))
	for i, p := range players {
		norm[i] = normalizeName(p.Name)
	}
	return &Resolver{dir: dir, normNames: norm}
}

// normalizeName lowercases and strips periods so "A.J. Brown" and
// "aj brown" compare equal.
func normalizeName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, ".", ""))
}

// Identify decides whether the text names a team or a player. Teams go
// first: the set is small and team names are distinct enough that a
// confident team hit should win.
func (r *Resolver) Identify(text string) Entity {
	if t := r.SearchTeam(text); t != nil {
		return Entity{Kind: KindTeam, Team: t}
	}
	if matches := r.SearchPlayers(text, DisambigLimit); len(matches) > 0 {
		p := matches[0].Player
		return Entity{Kind: KindPlayer, Player: &p}
	}
	return Entity{}
}

// SearchTeam matches a team by exact abbreviation, then by fuzzy
// whole-string comparison against full names. Returns nil below the
// acceptance score.
func (r *Resolver) SearchTeam(text string) *nfldata.TeamRecord {
	teams := r.dir.Teams()
	for i := range teams {
		if strings.EqualFold(teams[i].Abbr, text) {
			t := teams[i]
			return &t
		}
	}

	best := -1
	bestScore := 0
	for i := range teams {
		score := fuzzy.WRatio(text, teams[i].Name)
		if score > bestScore {
			bestScore = score
			best = i
		}
	}
	if best >= 0 && bestScore > teamAcceptScore {
		t := teams[best]
		return &t
	}
	return nil
}

// SearchPlayers returns ranked player candidates for the text. The
// pipeline: typo correction, normalization, top-limit weighted-ratio
// extraction discarding scores at or below the floor, then composite
// re-ranking. Deterministic: identical input yields identical order.
func (r *Resolver) SearchPlayers(text string, limit int) []Match {
	players := r.dir.Players()
	if len(players) == 0 {
		return nil
	}

	query := strings.ToLower(strings.TrimSpace(text))
	for _, tc := range typoCorrections {
		if strings.Contains(query, tc.Typo) {
			query = strings.ReplaceAll(query, tc.Typo, tc.Correction)
			break
		}
	}
	normQuery := normalizeName(query)

	type scored struct {
		idx   int
		score int
	}
	candidates := make([]scored, 0, len(players))
	for i := range players {
		candidates = append(candidates, scored{i, fuzzy.WRatio(normQuery, r.normNames[i])})
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		if c.score <= playerMinScore {
			continue
		}
		p := players[c.idx]
		f := r.features(p, normQuery, c.score)
		matches = append(matches, Match{Player: p, FuzzyScore: c.score, Total: f.Score()})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].Total != matches[b].Total {
			return matches[a].Total > matches[b].Total
		}
		return matches[a].Player.EspnID > matches[b].Player.EspnID
	})
	return matches
}

// features builds the composite score terms for one candidate.
func (r *Resolver) features(p nfldata.PlayerRecord, normQuery string, fuzzyScore int) Features {
	f := Features{FuzzyScore: fuzzyScore, Tiebreak: idTiebreak(p.EspnID)}

	nameLower := strings.ToLower(p.Name)
	if strings.HasPrefix(nameLower, normQuery) {
		f.PrefixBonus = prefixBonus
	} else if strings.Contains(nameLower, normQuery) {
		f.PrefixBonus = containsBonus
	}

	switch status := strings.ToLower(p.Status); {
	case status == "active":
		f.StatusBonus = activeBonus
	case status != "":
		f.StatusBonus = anyStatusBonus
	}

	if skillPositions[p.Position] {
		f.PositionBonus = skillPosBonus
	}
	if p.Position == "QB" {
		f.PositionBonus += qbExtraBonus
	}

	for _, po := range popularOverrides {
		if normQuery == po.Query && strings.Contains(nameLower, po.Fragment) {
			f.PopularityBonus = popularityBonus
			break
		}
	}
	return f
}

// SearchSamePosition reruns player resolution restricted to a position.
// Used for comparison disambiguation: when "mahomes vs allen" resolves to
// players with different positions, the second name is retried among
// candidates sharing the first player's position.
func (r *Resolver) SearchSamePosition(text, position string) *nfldata.PlayerRecord {
	for _, m := range r.SearchPlayers(text, samePosLimit) {
		if m.Player.Position == position {
			p := m.Player
			return &p
		}
	}
	return nil
}
