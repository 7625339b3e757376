package intent

import (
	"regexp"
	"strconv"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/fieldside/gridstats/pkg/nfldata"
)

const (
	minWeek = 1
	maxWeek = 22

	// fuzzyTeamCutoff is the minimum similarity for the typo fallback
	// ("cheifs" -> Chiefs).
	fuzzyTeamCutoff = 65
)

var (
	reYear         = regexp.MustCompile(`\b(20\d\d)\b`)
	reLastSeason   = regexp.MustCompile(`(?i)\b(last|previous)\s*(year|season)\b`)
	reThisSeason   = regexp.MustCompile(`(?i)\b(this|current)\s*(year|season)\b`)
	reWeek         = regexp.MustCompile(`(?i)\bweek\s+(\d+)\b`)
	rePlayoffs     = regexp.MustCompile(`(?i)\b(playoffs?|postseason)\b`)
	reSuperBowl    = regexp.MustCompile(`(?i)\b(super\s*bowls?|sb)\b`)
	reRookie       = regexp.MustCompile(`(?i)\brookie\b`)
	reCareer       = regexp.MustCompile(`(?i)\b(career|lifetime|all[\s-]?time)\b`)
	reDraft        = regexp.MustCompile(`(?i)\b(draft|drafted|draft\s*pick|draft\s*position)\b`)
	reDraftRound   = regexp.MustCompile(`(?i)\b(first|1st|second|2nd|third|3rd|fourth|4th|fifth|5th|sixth|6th|seventh|7th)\s*round\b`)
	reBio          = regexp.MustCompile(`(?i)\b(age|old|college|height|weight|bio|biography)\b`)
	reInjury       = regexp.MustCompile(`(?i)\b(injur\w*|hurt|health|status)\b`)
	reTrending     = regexp.MustCompile(`(?i)\b(trending|hot|popular|adds|drops|waiver)\b`)
	reFantasyPts   = regexp.MustCompile(`(?i)\b(fantasy\s*points?|fantasy|points?)\b`)
	reDepthPos     = regexp.MustCompile(`(?i)\b(qb|rb|wr|te|k|p|lb|cb|db|de|dt|dl|s)(\d)\b`)
	reRosterWord   = regexp.MustCompile(`(?i)\b(starting|starter|backup|depth\s*chart|roster|roaster)\b`)
	reAwardsFamily = regexp.MustCompile(`(?i)\b(mvp|most\s*valuable|opoy|dpoy|oroy|droy|pro\s*bowl|all[\s-]?pro|hall\s*of\s*fame|hof|awards?|troph(?:y|ies))\b`)
	reAwardWhen    = regexp.MustCompile(`(?i)\b(when|what\s*year|which\s*year|first)\b`)
	reAwardExtra   = regexp.MustCompile(`(?i)\b(win|won)\b`)
	reChampionship = regexp.MustCompile(`(?i)\b((?:conference\s*|nfc\s*|afc\s*)?championship)\b`)
	reDivisional   = regexp.MustCompile(`(?i)\b(divisional(?:\s*round)?)\b`)
	reWildcard     = regexp.MustCompile(`(?i)\b(wild\s*card|wildcard)\b`)
	rePrimeTime    = regexp.MustCompile(`(?i)\b(prime\s*time|primetime|night\s*game|sunday\s*night|monday\s*night|thursday\s*night)\b`)
	reQuarter      = regexp.MustCompile(`(?i)\b(1st|2nd|3rd|4th|first|second|third|fourth)\s*quarter\b`)
	reAggregation  = regexp.MustCompile(`(?i)\b(averages?|avg|mean)\b`)
	reLongest      = regexp.MustCompile(`(?i)\b(longest|biggest|furthest)\s+(catch|reception|run|rush|pass|touchdown|td|play)\b`)
	reThreshold    = regexp.MustCompile(`(?i)(\d+)\+?\s*(yard|td|touchdown|reception|rec|sack|tackle|int|interception)`)
	reThresholdCut = regexp.MustCompile(`(?i)\d+\+?\s*(yard|td|touchdown|reception|rec|sack|tackle|int|interception)s?`)
	reMultiple     = regexp.MustCompile(`(?i)\bmultiple\s+(td|touchdown|sack|int|interception)s?\b`)
	reLeaders      = regexp.MustCompile(`(?i)\b(who|leaders?|top|best|most|highest|lowest|worst)\b`)
	reTopN         = regexp.MustCompile(`(?i)\b(?:top|best|worst)\s+(\d+)\b`)
	reLeaderWords  = regexp.MustCompile(`(?i)\b(who|has|have|the|leaders?|top|best|most|highest|lowest|worst|in)\b`)
	reCompare      = regexp.MustCompile(`(?i)\b(vs\.?|versus|compare|compared\s+to|or|against)\b`)
	reOpponent     = regexp.MustCompile(`(?i)\b(?:vs\.?|versus|against)\s+(?:the\s+)?(\w+(?:\s+\w+)*)`)

	quarterOrdinals = map[string]int{
		"1st": 1, "first": 1,
		"2nd": 2, "second": 2,
		"3rd": 3, "third": 3,
		"4th": 4, "fourth": 4,
	}
)

// compiled classification tables: the ordered lists in tables.go paired
// with their patterns.
var (
	statCategoryRes = compileStatCategories()
	awardRes        = compileAwards()
	positionRes     = compilePositionAliases()
)

func compileStatCategories() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(statCategoryPatterns))
	for i, p := range statCategoryPatterns {
		out[i] = regexp.MustCompile(`(?i)` + p.Pattern)
	}
	return out
}

func compileAwards() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(awardPatterns))
	for i, p := range awardPatterns {
		out[i] = regexp.MustCompile(`(?i)` + p.Pattern)
	}
	return out
}

func compilePositionAliases() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(positionAliases))
	for i, p := range positionAliases {
		out[i] = compileWord(p.Alias)
	}
	return out
}

func (e *Extractor) extractYear(text string, in *Intent) string {
	m := reYear.FindString(text)
	if m == "" {
		return text
	}
	in.Season = m
	return strings.ReplaceAll(text, m, " ")
}

func (e *Extractor) extractRelativeYear(text string, in *Intent) string {
	if in.Season != "" {
		return text
	}
	if reLastSeason.MatchString(text) {
		in.Season = strconv.Itoa(e.currentSeason() - 1)
		return reLastSeason.ReplaceAllString(text, " ")
	}
	if reThisSeason.MatchString(text) {
		in.Season = strconv.Itoa(e.currentSeason())
		return reThisSeason.ReplaceAllString(text, " ")
	}
	return text
}

func (e *Extractor) extractWeek(text string, in *Intent) string {
	m := reWeek.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	if n, err := strconv.Atoi(m[1]); err == nil && n >= minWeek && n <= maxWeek {
		in.Week = n
	}
	return reWeek.ReplaceAllString(text, " ")
}

func (e *Extractor) extractPlayoffs(text string, in *Intent) string {
	if !rePlayoffs.MatchString(text) {
		return text
	}
	in.SeasonType = Postseason
	in.IsPlayoffs = true
	in.IsAggregation = true
	return rePlayoffs.ReplaceAllString(text, " ")
}

func (e *Extractor) extractSuperBowl(text string, in *Intent) string {
	if !reSuperBowl.MatchString(text) {
		return text
	}
	// Could be "2 super bowls" (aggregation) or a specific game, so the
	// aggregation flag is left alone here.
	in.SeasonType = Postseason
	in.IsPlayoffs = true
	in.IsSuperBowl = true
	return reSuperBowl.ReplaceAllString(text, " ")
}

func (e *Extractor) extractRookie(text string, in *Intent) string {
	if !reRookie.MatchString(text) {
		return text
	}
	in.IsRookie = true
	return reRookie.ReplaceAllString(text, " ")
}

func (e *Extractor) extractCareer(text string, in *Intent) string {
	if !reCareer.MatchString(text) {
		return text
	}
	in.IsCareer = true
	in.IsAggregation = true
	return reCareer.ReplaceAllString(text, " ")
}

func (e *Extractor) extractDraft(text string, in *Intent) string {
	if !reDraft.MatchString(text) {
		return text
	}
	in.IsDraft = true
	if m := reDraftRound.FindStringSubmatch(text); m != nil {
		word := strings.ToLower(m[1])
		for _, r := range ordinalRounds {
			if r.Word == word {
				in.DraftRound = r.Round
				break
			}
		}
		text = reDraftRound.ReplaceAllString(text, " ")
	}
	return reDraft.ReplaceAllString(text, " ")
}

func (e *Extractor) extractBio(text string, in *Intent) string {
	if !reBio.MatchString(text) {
		return text
	}
	in.IsBio = true
	return reBio.ReplaceAllString(text, " ")
}

func (e *Extractor) extractInjury(text string, in *Intent) string {
	if !reInjury.MatchString(text) {
		return text
	}
	in.IsInjury = true
	return reInjury.ReplaceAllString(text, " ")
}

func (e *Extractor) extractTrending(text string, in *Intent) string {
	if !reTrending.MatchString(text) {
		return text
	}
	in.IsTrending = true
	return reTrending.ReplaceAllString(text, " ")
}

func (e *Extractor) extractFantasyPoints(text string, in *Intent) string {
	if !reFantasyPts.MatchString(text) {
		return text
	}
	in.IsFantasyPoints = true
	return reFantasyPts.ReplaceAllString(text, " ")
}

// extractTeamContext separates a team reference from the rest of the query
// ("aj brown eagles" -> team PHI, residual "aj brown"). Three tiers:
// informal nicknames, the official dictionary, and a fuzzy typo fallback.
// A team reference is only lifted out when meaningful text remains without
// it; a bare "titans" stays put so the resolver can identify it as a team.
func (e *Extractor) extractTeamContext(text string, in *Intent) string {
	// Anything after a vs/versus/against token belongs to the comparison
	// rule, which decides between opponent filter and player comparison.
	// Team context only comes from the left side.
	region := text
	if loc := reCompare.FindStringIndex(text); loc != nil {
		region = text[:loc[0]]
	}

	for _, n := range teamNicknames {
		re := wordRegex(n.Nickname)
		if !re.MatchString(region) {
			continue
		}
		if t := e.teamByAbbr(n.Abbr); t != nil {
			in.TeamContext = t
			return re.ReplaceAllString(text, " ")
		}
	}

	if m := e.dict.find(region); m != nil {
		re := phraseRegex(m.Pattern)
		stripped := re.ReplaceAllString(text, " ")
		if e.meaningfulRemains(stripped) {
			team := m.Team
			in.TeamContext = &team
			return stripped
		}
		return text
	}

	return e.fuzzyTeamFallback(text, region, in)
}

// fuzzyTeamFallback catches typos like "cheifs". Each candidate word is
// scored against every team's nickname, abbreviation, and full name; the
// best match at or above the cutoff wins, subject to the same
// meaningful-remainder guard. Scoring is case-sensitive against the
// directory's cased variants: a lowercase query word only clears the
// cutoff when it shares most of a name's tail, which is what keeps common
// words from colliding with team names.
func (e *Extractor) fuzzyTeamFallback(text, region string, in *Intent) string {
	for _, word := range strings.Fields(region) {
		if len(word) < 4 || fuzzySkipWords[strings.ToLower(word)] {
			continue
		}

		var best *teamMatch
		bestScore := 0
		for i := range e.teams {
			t := e.teams[i]
			for _, variant := range []string{t.Nickname(), t.Abbr, t.Name} {
				score := fuzzy.Ratio(word, variant)
				if score >= fuzzyTeamCutoff && score > bestScore {
					best = &teamMatch{Team: t}
					bestScore = score
				}
			}
		}
		if best == nil {
			continue
		}

		re := wordRegex(word)
		stripped := re.ReplaceAllString(text, " ")
		if e.meaningfulRemains(stripped) {
			in.TeamContext = &best.Team
			return stripped
		}
	}
	return text
}

func (e *Extractor) teamByAbbr(abbr string) *nfldata.TeamRecord {
	for i := range e.teams {
		if e.teams[i].Abbr == abbr {
			t := e.teams[i]
			return &t
		}
	}
	return nil
}

// phraseRegex matches a canonicalized multiword pattern against the
// original text, tolerating the punctuation the canonicalizer removed.
func phraseRegex(pattern string) *regexp.Regexp {
	words := strings.Fields(pattern)
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b` + strings.Join(quoted, `\W+`) + `\b`)
}

// extractDepthPosition handles depth-chart shorthand like "WR2" or "qb1".
func (e *Extractor) extractDepthPosition(text string, in *Intent) string {
	m := reDepthPos.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	in.IsRoster = true
	in.RosterPosition = strings.ToUpper(m[1])
	in.RosterDepth, _ = strconv.Atoi(m[2])
	return reDepthPos.ReplaceAllString(text, " ")
}

// extractRoster fires on an explicit roster keyword, or on a position
// mention combined with an already-detected team context ("chiefs
// quarterback"). Plural group words like "receivers" are left in place
// when no roster keyword is present: "eagles receivers" is a group
// aggregation for the multi-player rule, not a depth-chart lookup.
func (e *Extractor) extractRoster(text string, in *Intent) string {
	if in.IsRoster {
		return text
	}

	hasKeyword := reRosterWord.MatchString(text)

	foundPos := ""
	foundAlias := ""
	for i, p := range positionAliases {
		if positionRes[i].MatchString(text) {
			foundPos = p.Abbr
			foundAlias = p.Alias
			break
		}
	}

	if !hasKeyword && (in.TeamContext == nil || foundPos == "") {
		return text
	}
	if !hasKeyword && isGroupKeyword(foundAlias) {
		return text
	}

	in.IsRoster = true
	if foundPos != "" {
		in.RosterPosition = foundPos
		for i, p := range positionAliases {
			if p.Abbr == foundPos {
				text = positionRes[i].ReplaceAllString(text, " ")
			}
		}
	}
	return reRosterWord.ReplaceAllString(text, " ")
}

func (e *Extractor) extractAwards(text string, in *Intent) string {
	if !reAwardsFamily.MatchString(text) {
		return text
	}
	in.IsAwards = true
	for i, p := range awardPatterns {
		if awardRes[i].MatchString(text) {
			in.AwardType = p.Type
			break
		}
	}
	if reAwardWhen.MatchString(text) {
		in.AwardYearQuery = true
	}
	text = reAwardsFamily.ReplaceAllString(text, " ")
	text = reAwardWhen.ReplaceAllString(text, " ")
	return reAwardExtra.ReplaceAllString(text, " ")
}

func (e *Extractor) extractGameType(text string, in *Intent) string {
	var gameType string
	var re *regexp.Regexp
	switch {
	case reChampionship.MatchString(text):
		gameType, re = "championship", reChampionship
	case reDivisional.MatchString(text):
		gameType, re = "divisional", reDivisional
	case reWildcard.MatchString(text):
		gameType, re = "wildcard", reWildcard
	default:
		return text
	}
	// A playoff-round filter always implies postseason data.
	in.GameType = gameType
	in.IsPlayoffs = true
	in.SeasonType = Postseason
	return re.ReplaceAllString(text, " ")
}

func (e *Extractor) extractMonth(text string, in *Intent) string {
	for _, m := range months {
		re := wordRegex(m)
		if re.MatchString(text) {
			in.MonthFilter = m
			return re.ReplaceAllString(text, " ")
		}
	}
	return text
}

func (e *Extractor) extractPrimeTime(text string, in *Intent) string {
	if !rePrimeTime.MatchString(text) {
		return text
	}
	in.PrimeTime = true
	return rePrimeTime.ReplaceAllString(text, " ")
}

func (e *Extractor) extractQuarter(text string, in *Intent) string {
	m := reQuarter.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	in.QuarterFilter = quarterOrdinals[strings.ToLower(m[1])]
	return reQuarter.ReplaceAllString(text, " ")
}

func (e *Extractor) extractAggregation(text string, in *Intent) string {
	if !reAggregation.MatchString(text) {
		return text
	}
	in.IsAggregation = true
	return reAggregation.ReplaceAllString(text, " ")
}

func (e *Extractor) extractLongest(text string, in *Intent) string {
	m := reLongest.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	noun := strings.ToLower(m[2])
	in.IsLongest = true
	in.LongestType = "any"
	for _, p := range longestPlayNouns {
		if p.Noun == noun {
			in.LongestType = p.Type
			break
		}
	}
	return reLongest.ReplaceAllString(text, " ")
}

func (e *Extractor) extractThreshold(text string, in *Intent) string {
	if m := reThreshold.FindStringSubmatch(text); m != nil {
		value, _ := strconv.ParseFloat(m[1], 64)
		noun := strings.ToLower(m[2])
		in.Threshold = &Threshold{Stat: canonicalStat(noun), Value: value}
		return reThresholdCut.ReplaceAllString(text, " ")
	}
	if m := reMultiple.FindStringSubmatch(text); m != nil {
		// "multiple" means two or more.
		noun := strings.ToLower(m[1])
		in.Threshold = &Threshold{Stat: canonicalStat(noun), Value: 2}
		return reMultiple.ReplaceAllString(text, " ")
	}
	return text
}

func canonicalStat(noun string) string {
	for _, s := range thresholdStats {
		if s.Noun == noun {
			return s.Stat
		}
	}
	return noun
}

func (e *Extractor) extractLeagueLeaders(text string, in *Intent) string {
	if !reLeaders.MatchString(text) {
		return text
	}
	in.IsLeagueLeaders = true

	if m := reTopN.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			in.Limit = n
		}
		text = reTopN.ReplaceAllString(text, " ")
	}

	for i, p := range statCategoryPatterns {
		if statCategoryRes[i].MatchString(text) {
			in.StatCategory = p.Category
			text = statCategoryRes[i].ReplaceAllString(text, " ")
			break
		}
	}

	return reLeaderWords.ReplaceAllString(text, " ")
}

// extractComparison disambiguates "X vs Y": if the right-hand phrase names
// a team it becomes an opponent filter; otherwise the query splits into a
// two-player comparison. Skipped entirely when the leaders rule already
// fired ("who has more yards, X or Y" stays a leaders query).
func (e *Extractor) extractComparison(text string, in *Intent) string {
	if in.IsLeagueLeaders || !reCompare.MatchString(text) {
		return text
	}

	if m := reOpponent.FindStringSubmatch(text); m != nil {
		phrase := strings.ToLower(strings.TrimSpace(m[1]))
		for i := range e.teams {
			t := e.teams[i]
			if phrase == strings.ToLower(t.Nickname()) || phrase == strings.ToLower(t.Abbr) {
				in.OpponentTeam = &t
				re := regexp.MustCompile(`(?i)\b(?:vs\.?|versus|against)\s+(?:the\s+)?` + regexp.QuoteMeta(m[1]) + `\b`)
				return re.ReplaceAllString(text, " ")
			}
		}
	}

	in.IsComparison = true
	parts := reCompare.Split(text, -1)
	for _, p := range parts {
		p = strings.TrimSpace(reSpaces.ReplaceAllString(p, " "))
		if p != "" {
			in.ComparisonPlayers = append(in.ComparisonPlayers, p)
		}
		if len(in.ComparisonPlayers) == 2 {
			break
		}
	}
	return reCompare.ReplaceAllString(text, " ")
}

func isGroupKeyword(alias string) bool {
	for _, g := range positionGroups {
		if g.Keyword == alias {
			return true
		}
	}
	return false
}

func (e *Extractor) extractMultiPlayer(text string, in *Intent) string {
	for _, g := range positionGroups {
		re := wordRegex(g.Keyword)
		if re.MatchString(text) {
			in.MultiPlayer = &MultiPlayer{
				Positions:    g.Positions,
				PositionName: g.Keyword,
			}
			return re.ReplaceAllString(text, " ")
		}
	}
	return text
}
