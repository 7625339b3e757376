package intent

import (
	"regexp"
	"strings"
	"time"

	"github.com/orsinium-labs/stopwords"

	"github.com/fieldside/gridstats/pkg/nfldata"
)

// ruleFunc is one pipeline step: test for a signal, record it on the
// Intent, and return the text with the matched span stripped. Rules run in
// a fixed declared order because later rules depend on earlier ones having
// consumed their spans.
type ruleFunc func(text string, in *Intent) string

// Extractor turns raw query text into an Intent. It holds the team
// directory for team-context detection plus a clock for season rollover;
// both are fixed at construction so extraction is deterministic and
// testable.
type Extractor struct {
	teams   []nfldata.TeamRecord
	dict    *teamDict
	english *stopwords.Stopwords
	now     func() time.Time
	rules   []ruleFunc
}

// NewExtractor builds an extractor over the given teams. Pass
// nfldata.Teams() for the standard league table.
func NewExtractor(teams []nfldata.TeamRecord) (*Extractor, error) {
	dict, err := newTeamDict(teams)
	if err != nil {
		return nil, err
	}
	e := &Extractor{
		teams:   teams,
		dict:    dict,
		english: stopwords.MustGet("en"),
		now:     time.Now,
	}
	// Order is load-bearing: the year must go before team matching so
	// "2024 chiefs" never fuzzy-matches on "2024", the opponent check
	// must precede comparison splitting, and position-group words reach
	// the multi-player rule last.
	e.rules = []ruleFunc{
		e.extractYear,
		e.extractRelativeYear,
		e.extractWeek,
		e.extractPlayoffs,
		e.extractSuperBowl,
		e.extractRookie,
		e.extractCareer,
		e.extractDraft,
		e.extractBio,
		e.extractInjury,
		e.extractTrending,
		e.extractFantasyPoints,
		e.extractTeamContext,
		e.extractDepthPosition,
		e.extractRoster,
		e.extractAwards,
		e.extractGameType,
		e.extractMonth,
		e.extractPrimeTime,
		e.extractQuarter,
		e.extractAggregation,
		e.extractLongest,
		e.extractThreshold,
		e.extractLeagueLeaders,
		e.extractComparison,
		e.extractMultiPlayer,
	}
	return e, nil
}

// Extract runs the rule pipeline and returns the structured Intent. The
// leftover text, minus stopwords and standalone numbers, becomes
// CleanQuery. Unrecognized text is not an error: it yields a default
// Intent and a CleanQuery equal to the input, which downstream code treats
// as a plain entity lookup.
func (e *Extractor) Extract(query string) Intent {
	in := Intent{
		OriginalQuery: query,
		SeasonType:    Regular,
		Limit:         10,
	}

	text := query
	for _, rule := range e.rules {
		text = rule(text, &in)
	}

	in.CleanQuery = cleanResidual(text)
	return in
}

// currentSeason maps the wall clock to the active season year. Before
// March the league year has not rolled over, so the "current" season is
// still the previous calendar year.
func (e *Extractor) currentSeason() int {
	now := e.now()
	year := now.Year()
	if now.Month() < time.March {
		year--
	}
	return year
}

var (
	reStandaloneNum = regexp.MustCompile(`\b\d+\b`)
	reSpaces        = regexp.MustCompile(`\s+`)
)

// cleanResidual strips domain stopwords and standalone numbers from the
// leftover text and collapses whitespace.
func cleanResidual(text string) string {
	for _, w := range residualStopwords {
		text = wordRegex(w).ReplaceAllString(text, " ")
	}
	text = reStandaloneNum.ReplaceAllString(text, " ")
	return strings.TrimSpace(reSpaces.ReplaceAllString(text, " "))
}

// meaningfulRemains reports whether text still carries content after a
// candidate team reference was removed: guard stopwords, generic English
// stopwords, and bare numbers do not count. A query that is nothing but a
// team name must keep it for entity resolution.
func (e *Extractor) meaningfulRemains(text string) bool {
	for _, w := range guardStopwords {
		text = wordRegex(w).ReplaceAllString(text, " ")
	}
	text = reStandaloneNum.ReplaceAllString(text, " ")
	for _, tok := range strings.Fields(text) {
		if !e.english.Contains(strings.ToLower(tok)) {
			return true
		}
	}
	return false
}

// wordRegexCache holds whole-word patterns for the fixed vocabulary. It is
// filled once at init and read-only afterwards, so extractors can be shared
// across goroutines.
var wordRegexCache = map[string]*regexp.Regexp{}

func init() {
	for _, w := range residualStopwords {
		wordRegexCache[w] = compileWord(w)
	}
	for _, w := range guardStopwords {
		if _, ok := wordRegexCache[w]; !ok {
			wordRegexCache[w] = compileWord(w)
		}
	}
	for _, n := range teamNicknames {
		wordRegexCache[n.Nickname] = compileWord(n.Nickname)
	}
	for _, m := range months {
		wordRegexCache[m] = compileWord(m)
	}
	for _, g := range positionGroups {
		if _, ok := wordRegexCache[g.Keyword]; !ok {
			wordRegexCache[g.Keyword] = compileWord(g.Keyword)
		}
	}
}

func compileWord(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

func wordRegex(word string) *regexp.Regexp {
	if re, ok := wordRegexCache[word]; ok {
		return re
	}
	return compileWord(word)
}
