// Package gamefilter narrows a game list using schedule metadata: month,
// prime-time kickoff, opponent, and playoff round. The stat rows
// themselves carry no dates or opponents, so each filter joins rows to
// schedule events by event id; rows without a known event are dropped
// rather than guessed at.
package gamefilter

import (
	"strings"
	"time"

	"github.com/fieldside/gridstats/pkg/gamelog"
)

// ScheduleEvent is the schedule-side view of one game.
type ScheduleEvent struct {
	ID          string
	Date        time.Time
	Week        int
	Competitors []string // team abbreviations
	Note        string   // round label, e.g. "AFC Championship"
}

// Index keys events by id for joining against stat rows.
func Index(events []ScheduleEvent) map[string]ScheduleEvent {
	idx := make(map[string]ScheduleEvent, len(events))
	for _, e := range events {
		idx[e.ID] = e
	}
	return idx
}

// ByMonth keeps games played in the named month ("january").
func ByMonth(games []gamelog.GameStatRow, events map[string]ScheduleEvent, month string) []gamelog.GameStatRow {
	var out []gamelog.GameStatRow
	for _, g := range games {
		e, ok := events[g.EventID]
		if !ok {
			continue
		}
		if strings.EqualFold(e.Date.Month().String(), month) {
			out = append(out, g)
		}
	}
	return out
}

// primeTimeHour is the earliest kickoff hour counted as a night game.
const primeTimeHour = 19

// ByPrimeTime keeps night games.
func ByPrimeTime(games []gamelog.GameStatRow, events map[string]ScheduleEvent) []gamelog.GameStatRow {
	var out []gamelog.GameStatRow
	for _, g := range games {
		e, ok := events[g.EventID]
		if !ok {
			continue
		}
		if e.Date.Hour() >= primeTimeHour {
			out = append(out, g)
		}
	}
	return out
}

// ByOpponent keeps games where the given team was a competitor.
func ByOpponent(games []gamelog.GameStatRow, events map[string]ScheduleEvent, opponentAbbr string) []gamelog.GameStatRow {
	var out []gamelog.GameStatRow
	for _, g := range games {
		e, ok := events[g.EventID]
		if !ok {
			continue
		}
		for _, c := range e.Competitors {
			if strings.EqualFold(c, opponentAbbr) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}

// ByGameType keeps playoff games of one round. The schedule note is the
// only reliable round signal, so matching is a substring test on it.
func ByGameType(games []gamelog.GameStatRow, events map[string]ScheduleEvent, gameType string) []gamelog.GameStatRow {
	var needles []string
	switch gameType {
	case "championship":
		needles = []string{"championship"}
	case "divisional":
		needles = []string{"divisional"}
	case "wildcard":
		needles = []string{"wild card", "wildcard"}
	default:
		return games
	}

	var out []gamelog.GameStatRow
	for _, g := range games {
		e, ok := events[g.EventID]
		if !ok {
			continue
		}
		note := strings.ToLower(e.Note)
		for _, n := range needles {
			if strings.Contains(note, n) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}
