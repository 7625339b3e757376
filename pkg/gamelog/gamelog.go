// Package gamelog defines per-game stat rows and the cell normalization
// shared by the aggregator and the threshold filter.
package gamelog

import (
	"strconv"
	"strings"
)

// GameStatRow is one game's ordered raw stat values plus metadata. Rows are
// ephemeral: fetched, aggregated, and dropped within a single query.
type GameStatRow struct {
	EventID string
	Team    string
	Stats   []string
}

// Log pairs an ordered header list (possibly with duplicate labels) with
// the game rows it describes.
type Log struct {
	Headers []string
	Games   []GameStatRow
}

// noData is the provider's empty-cell token.
const noData = "--"

// ParseCell normalizes a raw stat cell to a float. Thousands separators are
// stripped and the no-data token maps to 0. The second return is false for
// cells that are not numeric at all; callers exclude those rather than
// treating them as errors.
func ParseCell(raw string) (float64, bool) {
	clean := strings.ReplaceAll(raw, ",", "")
	clean = strings.ReplaceAll(clean, noData, "0")
	v, err := strconv.ParseFloat(strings.TrimSpace(clean), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
