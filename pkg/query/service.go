package query

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fieldside/gridstats/pkg/aggregate"
	"github.com/fieldside/gridstats/pkg/fantasy"
	"github.com/fieldside/gridstats/pkg/gamefilter"
	"github.com/fieldside/gridstats/pkg/gamelog"
	"github.com/fieldside/gridstats/pkg/intent"
	"github.com/fieldside/gridstats/pkg/nfldata"
	"github.com/fieldside/gridstats/pkg/resolve"
	"github.com/fieldside/gridstats/pkg/threshold"
)

// maxCareerSeasons bounds a career scan so a bad rookie year on a record
// can never turn into an unbounded provider loop.
const maxCareerSeasons = 25

// ComparisonSide is one player's aggregated line in a two-player
// comparison.
type ComparisonSide struct {
	Player      nfldata.PlayerRecord
	Aggregation aggregate.Result
}

// Result is everything a query produced. Which fields are populated
// depends on the query's shape: a leaders query fills Leaders, a
// comparison fills Comparison, a roster query fills Roster, and a
// stat lookup fills Headers, Games, and usually Aggregation.
type Result struct {
	Intent intent.Intent
	Entity resolve.Entity
	Season string

	Headers []string
	Games   []gamelog.GameStatRow

	// Aggregation is nil for single-week lookups, which return the raw
	// game row instead.
	Aggregation *aggregate.Result

	Schedule []gamefilter.ScheduleEvent
	Roster   []nfldata.PlayerRecord

	Leaders    []Leader
	Comparison []ComparisonSide

	// ThresholdCount is the number of games meeting the intent's
	// threshold; meaningful only when Intent.Threshold is set.
	ThresholdCount int

	Fantasy *fantasy.Result
}

// Service ties the extractor and resolver to a stats provider. Build it
// once and share it; all methods are safe for concurrent use as long as
// the provider is.
type Service struct {
	extractor *intent.Extractor
	resolver  *resolve.Resolver
	dir       *nfldata.Directory
	provider  StatsProvider
	now       func() time.Time
}

// NewService wires a query service over the given directory and provider.
func NewService(dir *nfldata.Directory, provider StatsProvider) (*Service, error) {
	ex, err := intent.NewExtractor(dir.Teams())
	if err != nil {
		return nil, fmt.Errorf("query: build extractor: %w", err)
	}
	return &Service{
		extractor: ex,
		resolver:  resolve.NewResolver(dir),
		dir:       dir,
		provider:  provider,
		now:       time.Now,
	}, nil
}

// Run is the single entry point: extract the intent, resolve the entity,
// fetch the rows, and aggregate or filter per the intent. Resolver misses
// return ErrNotFound; empty or unusable provider data returns ErrNoData.
func (s *Service) Run(ctx context.Context, text string) (*Result, error) {
	in := s.extractor.Extract(text)

	season := in.Season
	if season == "" {
		season = strconv.Itoa(s.currentSeason())
	}
	res := &Result{Intent: in, Season: season}

	switch {
	case in.IsLeagueLeaders && in.StatCategory != "":
		return s.runLeaders(ctx, res)
	case in.IsComparison && len(in.ComparisonPlayers) >= 2:
		return s.runComparison(ctx, res)
	case in.MultiPlayer != nil:
		return s.runMultiPlayer(ctx, res)
	}
	return s.runEntity(ctx, res)
}

// currentSeason mirrors the extractor's season rollover: before March the
// active season is still the previous calendar year.
func (s *Service) currentSeason() int {
	now := s.now()
	year := now.Year()
	if now.Month() < time.March {
		year--
	}
	return year
}

func (s *Service) runLeaders(ctx context.Context, res *Result) (*Result, error) {
	in := res.Intent
	leaders, err := s.provider.LeagueLeaders(ctx, in.StatCategory, res.Season, in.Limit, in.SeasonType)
	if err != nil {
		return nil, fmt.Errorf("%w: leaders for %s: %v", ErrNoData, in.StatCategory, err)
	}
	if len(leaders) == 0 {
		return nil, fmt.Errorf("%w: no %s leaders for %s", ErrNoData, in.StatCategory, res.Season)
	}
	if len(leaders) > in.Limit && in.Limit > 0 {
		leaders = leaders[:in.Limit]
	}
	res.Leaders = leaders
	return res, nil
}

func (s *Service) runComparison(ctx context.Context, res *Result) (*Result, error) {
	in := res.Intent

	first := s.lookupPlayer(in.ComparisonPlayers[0])
	if first == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, in.ComparisonPlayers[0])
	}
	second := s.lookupPlayer(in.ComparisonPlayers[1])
	if second == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, in.ComparisonPlayers[1])
	}
	// A comparison across positions is usually a resolution artifact
	// ("allen" landing on a linebacker); retry the second name within the
	// first player's position before accepting it.
	if first.Position != second.Position {
		if same := s.resolver.SearchSamePosition(in.ComparisonPlayers[1], first.Position); same != nil {
			second = same
		}
	}

	for _, p := range []*nfldata.PlayerRecord{first, second} {
		games, headers, err := s.fetchSeasons(ctx, p, []string{res.Season}, in.SeasonType)
		if err != nil {
			return nil, err
		}
		if len(headers) == 0 {
			headers = gamelog.HeadersForPosition(p.Position)
		}
		res.Comparison = append(res.Comparison, ComparisonSide{
			Player:      *p,
			Aggregation: aggregate.Aggregate(games, headers),
		})
	}
	return res, nil
}

func (s *Service) runMultiPlayer(ctx context.Context, res *Result) (*Result, error) {
	in := res.Intent

	team := in.TeamContext
	if team == nil {
		ent := s.resolver.Identify(in.CleanQuery)
		if ent.Kind != resolve.KindTeam {
			return nil, fmt.Errorf("%w: no team for %s query", ErrNotFound, in.MultiPlayer.PositionName)
		}
		team = ent.Team
	}
	res.Entity = resolve.Entity{Kind: resolve.KindTeam, Team: team}

	players := s.dir.PlayersByTeamAndPosition(team.Abbr, in.MultiPlayer.Positions)
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: no %s on %s", ErrNoData, in.MultiPlayer.PositionName, team.Abbr)
	}
	res.Roster = players

	var combined []gamelog.GameStatRow
	var headers []string
	for i := range players {
		games, h, err := s.fetchSeasons(ctx, &players[i], []string{res.Season}, in.SeasonType)
		if err != nil {
			continue
		}
		if len(headers) == 0 {
			headers = h
		}
		combined = append(combined, games...)
	}
	if len(combined) == 0 {
		return nil, fmt.Errorf("%w: no games for %s %s", ErrNoData, team.Abbr, in.MultiPlayer.PositionName)
	}
	if len(headers) == 0 {
		headers = gamelog.HeadersForPosition(in.MultiPlayer.Positions[0])
	}
	res.Headers = aggregate.DedupeHeaders(headers)
	res.Games = combined
	agg := aggregate.Aggregate(combined, headers)
	res.Aggregation = &agg
	return res, nil
}

func (s *Service) runEntity(ctx context.Context, res *Result) (*Result, error) {
	in := res.Intent

	ent := resolve.Entity{}
	if in.CleanQuery != "" {
		ent = s.resolver.Identify(in.CleanQuery)
	}
	if ent.Kind == resolve.KindNone && in.TeamContext != nil {
		ent = resolve.Entity{Kind: resolve.KindTeam, Team: in.TeamContext}
	}
	if ent.Kind == resolve.KindNone {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, in.CleanQuery)
	}
	res.Entity = ent

	if ent.Kind == resolve.KindTeam {
		return s.runTeam(ctx, res, ent.Team)
	}
	return s.runPlayer(ctx, res, ent.Player)
}

func (s *Service) runTeam(ctx context.Context, res *Result, team *nfldata.TeamRecord) (*Result, error) {
	in := res.Intent

	if in.IsRoster {
		positions := []string(nil)
		if in.RosterPosition != "" {
			positions = []string{in.RosterPosition}
		}
		roster := s.dir.PlayersByTeamAndPosition(team.Abbr, positions)
		if len(roster) == 0 {
			return nil, fmt.Errorf("%w: no roster for %s", ErrNoData, team.Abbr)
		}
		if in.RosterDepth > 0 && in.RosterDepth <= len(roster) {
			roster = roster[in.RosterDepth-1 : in.RosterDepth]
		}
		res.Roster = roster
		return res, nil
	}

	events, err := s.provider.TeamSchedule(ctx, team.ID, res.Season)
	if err != nil {
		return nil, fmt.Errorf("%w: schedule for %s: %v", ErrNoData, team.Abbr, err)
	}
	if in.Week > 0 {
		found := false
		for _, e := range events {
			if e.Week == in.Week {
				events = []gamefilter.ScheduleEvent{e}
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: no week %d game for %s %s", ErrNoData, in.Week, team.Abbr, res.Season)
		}
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("%w: no schedule for %s %s", ErrNoData, team.Abbr, res.Season)
	}
	res.Schedule = events
	return res, nil
}

func (s *Service) runPlayer(ctx context.Context, res *Result, player *nfldata.PlayerRecord) (*Result, error) {
	in := res.Intent

	seasons := s.playerSeasons(in, res.Season, player)
	games, headers, err := s.fetchSeasons(ctx, player, seasons, in.SeasonType)
	if err != nil {
		return nil, err
	}
	if len(headers) == 0 {
		headers = gamelog.HeadersForPosition(player.Position)
	}
	deduped := aggregate.DedupeHeaders(headers)

	if s.needsSchedule(in) {
		idx, err := s.scheduleIndex(ctx, player, seasons)
		if err != nil {
			return nil, err
		}
		games = applyGameFilters(games, idx, in)
	}
	if len(games) == 0 {
		return nil, fmt.Errorf("%w: no games for %s with requested filters", ErrNoData, player.Name)
	}

	res.Headers = deduped
	res.Games = games

	if in.Threshold != nil {
		res.ThresholdCount = threshold.CountMeeting(games, deduped, in.Threshold.Stat, in.Threshold.Value, player.Position)
	}
	if in.Week == 0 {
		agg := aggregate.Aggregate(games, headers)
		res.Aggregation = &agg
		if in.IsFantasyPoints {
			pts := fantasy.Points(fantasyLine(player.Position, agg), fantasy.PPR)
			res.Fantasy = &pts
		}
	}
	return res, nil
}

// playerSeasons decides which season years to fetch. Career scans and
// threshold counts walk from the rookie year forward; rookie queries pin
// the rookie year; everything else is the single requested season.
func (s *Service) playerSeasons(in intent.Intent, season string, player *nfldata.PlayerRecord) []string {
	rookie, rookieOK := parseSeason(player.RookieSeason)

	if in.IsRookie && rookieOK {
		return []string{strconv.Itoa(rookie)}
	}
	career := in.IsCareer || (in.Threshold != nil && in.Season == "")
	if career && rookieOK {
		last := s.currentSeason()
		if last-rookie+1 > maxCareerSeasons {
			rookie = last - maxCareerSeasons + 1
		}
		seasons := make([]string, 0, last-rookie+1)
		for y := rookie; y <= last; y++ {
			seasons = append(seasons, strconv.Itoa(y))
		}
		return seasons
	}
	return []string{season}
}

// fetchSeasons pulls game logs for each season in order, keeping the first
// non-empty header row. On a multi-season scan a failed season is skipped;
// a single-season failure is ErrNoData.
func (s *Service) fetchSeasons(ctx context.Context, player *nfldata.PlayerRecord, seasons []string, st intent.SeasonType) ([]gamelog.GameStatRow, []string, error) {
	var games []gamelog.GameStatRow
	var headers []string
	for _, season := range seasons {
		log, err := s.provider.PlayerGameLog(ctx, player.EspnID, season, st)
		if err != nil {
			if len(seasons) == 1 {
				return nil, nil, fmt.Errorf("%w: game log for %s %s: %v", ErrNoData, player.Name, season, err)
			}
			continue
		}
		if len(headers) == 0 && len(log.Headers) > 0 {
			headers = log.Headers
		}
		games = append(games, log.Games...)
	}
	if len(games) == 0 {
		return nil, nil, fmt.Errorf("%w: no games for %s", ErrNoData, player.Name)
	}
	return games, headers, nil
}

func (s *Service) needsSchedule(in intent.Intent) bool {
	return in.Week > 0 || in.MonthFilter != "" || in.PrimeTime ||
		in.OpponentTeam != nil || in.GameType != ""
}

// scheduleIndex fetches and merges the player's team schedule for every
// season in the scan.
func (s *Service) scheduleIndex(ctx context.Context, player *nfldata.PlayerRecord, seasons []string) (map[string]gamefilter.ScheduleEvent, error) {
	team := nfldata.TeamByAbbr(player.TeamAbbr)
	if team == nil {
		return nil, fmt.Errorf("%w: unknown team %q for %s", ErrNoData, player.TeamAbbr, player.Name)
	}
	idx := make(map[string]gamefilter.ScheduleEvent)
	for _, season := range seasons {
		events, err := s.provider.TeamSchedule(ctx, team.ID, season)
		if err != nil {
			if len(seasons) == 1 {
				return nil, fmt.Errorf("%w: schedule for %s %s: %v", ErrNoData, team.Abbr, season, err)
			}
			continue
		}
		for id, e := range gamefilter.Index(events) {
			idx[id] = e
		}
	}
	return idx, nil
}

func applyGameFilters(games []gamelog.GameStatRow, idx map[string]gamefilter.ScheduleEvent, in intent.Intent) []gamelog.GameStatRow {
	if in.Week > 0 {
		kept := games[:0:0]
		for _, g := range games {
			if e, ok := idx[g.EventID]; ok && e.Week == in.Week {
				kept = append(kept, g)
			}
		}
		games = kept
	}
	if in.MonthFilter != "" {
		games = gamefilter.ByMonth(games, idx, in.MonthFilter)
	}
	if in.PrimeTime {
		games = gamefilter.ByPrimeTime(games, idx)
	}
	if in.OpponentTeam != nil {
		games = gamefilter.ByOpponent(games, idx, in.OpponentTeam.Abbr)
	}
	if in.GameType != "" {
		games = gamefilter.ByGameType(games, idx, in.GameType)
	}
	return games
}

// lookupPlayer resolves one comparison-side name to its best player match.
func (s *Service) lookupPlayer(name string) *nfldata.PlayerRecord {
	matches := s.resolver.SearchPlayers(name, resolve.DefaultLimit)
	if len(matches) == 0 {
		return nil
	}
	p := matches[0].Player
	return &p
}

func parseSeason(s string) (int, bool) {
	y, err := strconv.Atoi(s)
	if err != nil || y < 1920 {
		return 0, false
	}
	return y, true
}

// fantasyLine maps an aggregated season to a scoring line using the
// position's header layout: a quarterback's Yds column is passing while a
// receiver's is receiving, and a back carries both rushing and the ".1"
// receiving block.
func fantasyLine(position string, agg aggregate.Result) fantasy.Line {
	t := func(h string) float64 { return agg.Totals[h] }
	switch {
	case headerClass(position) == "QB":
		return fantasy.Line{
			PassingYards:      t("Yds"),
			PassingTouchdowns: t("TD"),
			Interceptions:     t("INT"),
			RushingYards:      t("RYds"),
			RushingTouchdowns: t("RTD"),
		}
	case headerClass(position) == "RB":
		return fantasy.Line{
			RushingYards:      t("Yds"),
			RushingTouchdowns: t("TD"),
			Receptions:        t("Rec"),
			ReceivingYards:    t("Yds.1"),
			ReceivingTDs:      t("TD.1"),
		}
	default:
		return fantasy.Line{
			Receptions:     t("Rec"),
			ReceivingYards: t("Yds"),
			ReceivingTDs:   t("TD"),
		}
	}
}

func headerClass(position string) string {
	p := strings.ToLower(position)
	switch {
	case strings.Contains(p, "qb"), strings.Contains(p, "quarterback"):
		return "QB"
	case strings.Contains(p, "rb"), strings.Contains(p, "running"), strings.Contains(p, "fb"):
		return "RB"
	default:
		return "WR"
	}
}
