package intent

// Classification tables are ordered association lists evaluated top to
// bottom; the first matching entry wins. Precedence is part of the
// contract, which is why none of these are maps.

// teamNicknames are informal names checked before the official team
// dictionary.
var teamNicknames = []struct {
	Nickname string
	Abbr     string
}{
	{"bucs", "TB"},
	{"niners", "SF"},
	{"pats", "NE"},
	{"fins", "MIA"},
	{"pack", "GB"},
	{"boys", "DAL"},
	{"birds", "PHI"},
	{"bolts", "LAC"},
	{"cards", "ARI"},
	{"brownies", "CLE"},
	{"jags", "JAX"},
	{"vikes", "MIN"},
}

// ordinalRounds maps draft-round ordinals 1st through 7th.
var ordinalRounds = []struct {
	Word  string
	Round int
}{
	{"first", 1}, {"1st", 1},
	{"second", 2}, {"2nd", 2},
	{"third", 3}, {"3rd", 3},
	{"fourth", 4}, {"4th", 4},
	{"fifth", 5}, {"5th", 5},
	{"sixth", 6}, {"6th", 6},
	{"seventh", 7}, {"7th", 7},
}

// positionAliases resolves spoken position names to abbreviations. Longer
// aliases precede the single-letter ones they contain.
var positionAliases = []struct {
	Alias string
	Abbr  string
}{
	{"quarterback", "QB"}, {"quarterbacks", "QB"}, {"qbs", "QB"}, {"qb", "QB"},
	{"running backs", "RB"}, {"running back", "RB"}, {"halfback", "RB"}, {"rbs", "RB"}, {"rb", "RB"}, {"backs", "RB"},
	{"wide receivers", "WR"}, {"wide receiver", "WR"}, {"receivers", "WR"}, {"receiver", "WR"}, {"wrs", "WR"}, {"wr", "WR"},
	{"tight ends", "TE"}, {"tight end", "TE"}, {"tes", "TE"}, {"te", "TE"},
	{"centers", "C"}, {"center", "C"}, {"c", "C"},
	{"guards", "G"}, {"guard", "G"}, {"g", "G"},
	{"offensive tackle", "T"}, {"tackles", "T"}, {"tackle", "T"}, {"t", "T"},
	{"kickers", "K"}, {"kicker", "K"}, {"k", "K"},
	{"punters", "P"}, {"punter", "P"}, {"p", "P"},
	{"defensive line", "DL"}, {"d-line", "DL"}, {"dl", "DL"},
	{"linebackers", "LB"}, {"linebacker", "LB"}, {"lbs", "LB"}, {"lb", "LB"},
	{"cornerbacks", "CB"}, {"cornerback", "CB"}, {"cbs", "CB"}, {"cb", "CB"},
	{"safeties", "S"}, {"safety", "S"}, {"s", "S"},
	{"secondary", "DB"}, {"dbs", "DB"}, {"db", "DB"},
	{"defense", "DEF"}, {"def", "DEF"},
}

// awardPatterns sub-classifies an awards query. Checked in order; the
// generic family keywords (awards, trophy) set the flag without a type.
var awardPatterns = []struct {
	Pattern string
	Type    string
}{
	{`\bmvp\b`, "MVP"},
	{`\bopoy\b`, "OPOY"},
	{`\bdpoy\b`, "DPOY"},
	{`\boroy\b`, "OROY"},
	{`\bdroy\b`, "DROY"},
	{`\bpro\s*bowl\b`, "Pro Bowl"},
	{`\ball[\s-]?pro\b`, "All-Pro"},
	{`\b(hall\s*of\s*fame|hof)\b`, "Hall of Fame"},
}

// months in calendar order; scanning stops at the first hit.
var months = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// longestPlayNouns maps the noun after "longest/biggest/furthest" to a
// stat family.
var longestPlayNouns = []struct {
	Noun string
	Type string
}{
	{"catch", "receiving"},
	{"reception", "receiving"},
	{"run", "rushing"},
	{"rush", "rushing"},
	{"pass", "passing"},
	{"touchdown", "any"},
	{"td", "any"},
	{"play", "any"},
}

// thresholdStats maps a threshold stat noun to its canonical name.
var thresholdStats = []struct {
	Noun string
	Stat string
}{
	{"yard", "yards"}, {"yds", "yards"},
	{"touchdown", "touchdowns"}, {"td", "touchdowns"},
	{"reception", "receptions"}, {"rec", "receptions"},
	{"sack", "sacks"},
	{"tackle", "tackles"},
	{"interception", "interceptions"}, {"int", "interceptions"},
}

// statCategoryPatterns classifies league-leader queries. Touchdown-specific
// patterns come before the yardage patterns so "passing touchdowns" never
// falls through to passing_yards.
var statCategoryPatterns = []struct {
	Category string
	Pattern  string
}{
	{"passing_touchdowns", `\b(passing\s*(?:tds?|touchdowns?)|pass\s*(?:tds?|touchdowns?))\b`},
	{"rushing_touchdowns", `\b(rushing\s*(?:tds?|touchdowns?)|rush\s*(?:tds?|touchdowns?))\b`},
	{"receiving_touchdowns", `\b(receiving\s*(?:tds?|touchdowns?)|rec\s*(?:tds?|touchdowns?))\b`},
	{"passing_yards", `\b(passing\s*yards?|pass\s*yards?|throwing\s*yards?|passing|pass)\b`},
	{"rushing_yards", `\b(rushing\s*yards?|rush\s*yards?|rushing|rush)\b`},
	{"receiving_yards", `\b(receiving\s*yards?|rec\s*yards?|receiving|rec)\b`},
	{"receptions", `\b(receptions?|catches|recs?)\b`},
	{"interceptions", `\b(interceptions?|ints?)\b`},
	{"sacks", `\b(sacks?)\b`},
	{"tackles", `\b(tackles?)\b`},
	{"passes_defended", `\b(pass\s*deflections?|pass\s*defended|pds?)\b`},
}

// positionGroups maps a group keyword to the roster positions it covers.
var positionGroups = []struct {
	Keyword   string
	Positions []string
}{
	{"receivers", []string{"WR", "TE"}},
	{"wrs", []string{"WR"}},
	{"tight ends", []string{"TE"}},
	{"tes", []string{"TE"}},
	{"running backs", []string{"RB"}},
	{"rbs", []string{"RB"}},
	{"quarterbacks", []string{"QB"}},
	{"qbs", []string{"QB"}},
	{"defense", []string{"DE", "DT", "LB", "CB", "S", "DB"}},
	{"defensive line", []string{"DE", "DT"}},
	{"linebackers", []string{"LB"}},
	{"lbs", []string{"LB"}},
	{"secondary", []string{"CB", "S", "DB"}},
	{"dbs", []string{"CB", "S", "DB"}},
}

// residualStopwords are domain words removed from the leftover text before
// it becomes the entity candidate.
var residualStopwords = []string{
	"passing", "rushing", "receiving", "defense", "stats", "statistics",
	"season", "game", "games", "vs", "at", "in", "his", "her", "their",
	"the", "a", "an", "for", "with", "on",
}

// guardStopwords are stripped when testing whether meaningful text remains
// after a team name is removed. If nothing survives, the team reference IS
// the query and stays in place for entity resolution.
var guardStopwords = []string{
	"passing", "rushing", "receiving", "defense", "stats", "statistics",
	"season", "game", "games", "vs", "at", "who", "is", "the", "for",
}

// fuzzySkipWords are never considered for fuzzy team matching: too short,
// interrogative, or stat vocabulary that would otherwise collide with
// team names.
var fuzzySkipWords = map[string]bool{
	"the": true, "for": true, "who": true, "what": true, "when": true, "where": true,
	"sacks": true, "yards": true, "touchdowns": true, "passing": true, "rushing": true,
	"receiving": true, "tackles": true, "interceptions": true, "receptions": true,
	"catches": true, "leader": true, "leaders": true,
}
