// Package query is the core's entry point: it wires the intent extractor,
// entity resolver, stat aggregator, and filters into a single
// resolve-and-aggregate call against an injected stats provider.
package query

import (
	"context"
	"errors"

	"github.com/fieldside/gridstats/pkg/gamefilter"
	"github.com/fieldside/gridstats/pkg/gamelog"
	"github.com/fieldside/gridstats/pkg/intent"
)

// Sentinel errors of the core's taxonomy. Resolver misses and empty
// provider responses are expected outcomes, not failures; callers render
// them as "not found" / "no data" messages.
var (
	ErrNotFound = errors.New("query: no matching team or player")
	ErrNoData   = errors.New("query: no data for requested filters")
)

// Leader is one entry of a league-leaders response.
type Leader struct {
	Player   string
	Team     string
	Position string
	Value    float64
	Games    int
}

// StatsProvider supplies per-game rows, schedules, and leaderboards. The
// core calls it sequentially and assumes idempotence; timeouts and retries
// are the provider's own business. A provider returning an empty log or a
// shape the core cannot use is reported as ErrNoData downstream, never a
// panic.
type StatsProvider interface {
	PlayerGameLog(ctx context.Context, playerID, season string, seasonType intent.SeasonType) (gamelog.Log, error)
	TeamSchedule(ctx context.Context, teamID, season string) ([]gamefilter.ScheduleEvent, error)
	LeagueLeaders(ctx context.Context, statCategory, season string, limit int, seasonType intent.SeasonType) ([]Leader, error)
}
