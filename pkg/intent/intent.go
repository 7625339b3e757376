// Package intent parses free-text sports queries into a structured Intent
// via an ordered pipeline of pattern rules. Each rule records a recognized
// signal and strips the matched span, so later rules see reduced text; the
// leftover becomes the entity-candidate string for the resolver.
package intent

import "github.com/fieldside/gridstats/pkg/nfldata"

// SeasonType distinguishes regular-season from postseason data. The values
// follow the provider's season-type codes.
type SeasonType int

const (
	Regular    SeasonType = 2
	Postseason SeasonType = 3
)

func (s SeasonType) String() string {
	if s == Postseason {
		return "Postseason"
	}
	return "Regular"
}

// Threshold is a "N+ stat" predicate extracted from the query.
type Threshold struct {
	Stat  string
	Value float64
}

// MultiPlayer marks a position-group query ("Eagles receivers").
type MultiPlayer struct {
	Positions    []string
	PositionName string
}

// Intent is the structured record of every signal recognized in a query.
// It is created once per query and not mutated afterwards.
type Intent struct {
	OriginalQuery string
	CleanQuery    string

	Season     string
	Week       int
	SeasonType SeasonType

	IsPlayoffs      bool
	IsSuperBowl     bool
	IsRookie        bool
	IsCareer        bool
	IsDraft         bool
	IsBio           bool
	IsInjury        bool
	IsTrending      bool
	IsFantasyPoints bool
	IsLeagueLeaders bool
	IsComparison    bool
	IsRoster        bool
	IsAwards        bool
	IsAggregation   bool
	IsLongest       bool

	Threshold   *Threshold
	MultiPlayer *MultiPlayer

	TeamContext  *nfldata.TeamRecord
	OpponentTeam *nfldata.TeamRecord

	GameType      string // "championship", "divisional", "wildcard"
	MonthFilter   string
	PrimeTime     bool
	QuarterFilter int

	DraftRound     int
	RosterPosition string
	RosterDepth    int

	ComparisonPlayers []string
	StatCategory      string
	AwardType         string
	AwardYearQuery    bool
	LongestType       string // "receiving", "rushing", "passing", "any"

	Limit int
}
