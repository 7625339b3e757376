package intent

import (
	"strings"
	"unicode"

	"github.com/coregx/ahocorasick"

	"github.com/fieldside/gridstats/pkg/nfldata"
)

// teamDict matches official team references (full name, nickname,
// abbreviation) inside a query. All surface forms are compiled into a
// single Aho-Corasick automaton through the same canonicalizer used on the
// query text, so "Kansas City Chiefs", "chiefs", and "kc" all resolve in
// one scan.
type teamDict struct {
	ac           *ahocorasick.Automaton
	patterns     []string
	patternTeams []nfldata.TeamRecord
}

// canonicalize folds text for dictionary matching: lowercase, keep letters
// and digits, collapse everything else into single spaces. "49ers" and
// "T.B." survive; punctuation runs do not.
func canonicalize(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	lastWasSpace := true
	for _, ch := range s {
		c := unicode.ToLower(ch)
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			out.WriteRune(c)
			lastWasSpace = false
		} else if !lastWasSpace {
			out.WriteRune(' ')
			lastWasSpace = true
		}
	}
	return strings.TrimRight(out.String(), " ")
}

// newTeamDict compiles the automaton over every team's surface forms.
func newTeamDict(teams []nfldata.TeamRecord) (*teamDict, error) {
	d := &teamDict{}
	seen := make(map[string]bool)

	add := func(surface string, team nfldata.TeamRecord) {
		key := canonicalize(surface)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		d.patterns = append(d.patterns, key)
		d.patternTeams = append(d.patternTeams, team)
	}

	for _, t := range teams {
		add(t.Name, t)
		add(t.Nickname(), t)
		add(t.Abbr, t)
	}

	ac, err := ahocorasick.NewBuilder().
		AddStrings(d.patterns).
		SetMatchKind(ahocorasick.LeftmostLongest).
		SetPrefilter(true).
		Build()
	if err != nil {
		return nil, err
	}
	d.ac = ac
	return d, nil
}

// teamMatch is one team reference found in a query.
type teamMatch struct {
	Team    nfldata.TeamRecord
	Pattern string
}

// find returns the best team reference in the text: the longest
// whole-word match, earliest on ties. Matches that begin or end inside a
// word are rejected so the "no" in "november" never becomes New Orleans.
func (d *teamDict) find(text string) *teamMatch {
	if d.ac == nil {
		return nil
	}
	canon := canonicalize(text)
	haystack := []byte(canon)

	var best *teamMatch
	bestLen := 0
	bestStart := -1

	for _, m := range d.ac.FindAllOverlapping(haystack) {
		if m.Start > 0 && canon[m.Start-1] != ' ' {
			continue
		}
		if m.End < len(canon) && canon[m.End] != ' ' {
			continue
		}
		length := m.End - m.Start
		if length > bestLen || (length == bestLen && m.Start < bestStart) {
			best = &teamMatch{
				Team:    d.patternTeams[m.PatternID],
				Pattern: canon[m.Start:m.End],
			}
			bestLen = length
			bestStart = m.Start
		}
	}
	return best
}
