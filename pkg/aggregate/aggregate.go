// Package aggregate combines per-game stat rows into totals, averages, and
// maxes with column-semantics awareness: plain counting stats sum, rate
// columns average, and longest-play columns take the max.
package aggregate

import (
	"fmt"
	"strings"

	"github.com/fieldside/gridstats/pkg/gamelog"
)

// Result holds per-header aggregates over a set of games. Headers are the
// deduplicated labels, in column order, for display alignment.
type Result struct {
	Headers   []string
	Totals    map[string]float64
	Averages  map[string]float64
	Maxes     map[string]float64
	GameCount int
}

// rateHeaders are per-attempt columns that must never be summed across
// games; their "total" is the per-game average instead.
var rateHeaders = map[string]bool{
	"Avg":   true,
	"Rate":  true,
	"Pct":   true,
	"Yds/A": true,
	"Avg/R": true,
}

// longestHeaders are single-play maxima; both total and average collapse to
// the max across games.
var longestHeaders = map[string]bool{
	"Lng":  true,
	"Long": true,
}

// DedupeHeaders suffixes repeated labels positionally so two identically
// named columns are never conflated: ["Yds","TD","Yds"] -> ["Yds","TD","Yds.1"].
func DedupeHeaders(headers []string) []string {
	out := make([]string, 0, len(headers))
	seen := make(map[string]int, len(headers))
	for _, h := range headers {
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			out = append(out, fmt.Sprintf("%s.%d", h, n+1))
		} else {
			seen[h] = 0
			out = append(out, h)
		}
	}
	return out
}

// baseHeader strips the positional suffix: "Yds.1" -> "Yds".
func baseHeader(h string) string {
	if i := strings.IndexByte(h, '.'); i >= 0 {
		return h[:i]
	}
	return h
}

// Aggregate computes per-header sums, maxes, counts, and averages over the
// given games. Non-numeric cells are excluded from that header's count and
// sum; they are not errors. Averages divide by the total number of games
// passed in, not by the count of games with data, so a sparse column is
// diluted across all games.
func Aggregate(games []gamelog.GameStatRow, headers []string) Result {
	if len(games) == 0 || len(headers) == 0 {
		return Result{}
	}

	unique := DedupeHeaders(headers)

	sums := make(map[string]float64, len(unique))
	maxes := make(map[string]float64, len(unique))
	counts := make(map[string]int, len(unique))

	for _, game := range games {
		for i, raw := range game.Stats {
			if i >= len(unique) {
				break
			}
			v, ok := gamelog.ParseCell(raw)
			if !ok {
				continue
			}
			h := unique[i]
			sums[h] += v
			if v > maxes[h] {
				maxes[h] = v
			}
			counts[h]++
		}
	}

	averages := make(map[string]float64, len(unique))
	totals := make(map[string]float64, len(unique))
	n := float64(len(games))
	for _, h := range unique {
		if counts[h] > 0 {
			averages[h] = sums[h] / n
		}
		totals[h] = sums[h]
	}

	// Rate columns report the average as their total; longest columns
	// collapse both to the max.
	for _, h := range unique {
		switch base := baseHeader(h); {
		case rateHeaders[base]:
			totals[h] = averages[h]
		case longestHeaders[base]:
			totals[h] = maxes[h]
			averages[h] = maxes[h]
		}
	}

	return Result{
		Headers:   unique,
		Totals:    totals,
		Averages:  averages,
		Maxes:     maxes,
		GameCount: len(games),
	}
}
