package query

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldside/gridstats/pkg/gamefilter"
	"github.com/fieldside/gridstats/pkg/gamelog"
	"github.com/fieldside/gridstats/pkg/intent"
	"github.com/fieldside/gridstats/pkg/nfldata"
	"github.com/fieldside/gridstats/pkg/resolve"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const (
	mahomesID = "3139477"
	joshID    = "3918298"
	tyreekID  = "3116406"
	ajID      = "4047646"
	goedertID = "3121023"
)

func testDirectory() *nfldata.Directory {
	players := []nfldata.PlayerRecord{
		{Name: "Patrick Mahomes", EspnID: mahomesID, TeamAbbr: "KC", Position: "QB", Status: "Active", RookieSeason: "2017"},
		{Name: "Josh Allen", EspnID: joshID, TeamAbbr: "BUF", Position: "QB", Status: "Active", RookieSeason: "2018"},
		{Name: "Tyreek Hill", EspnID: tyreekID, TeamAbbr: "MIA", Position: "WR", Status: "Active", RookieSeason: "2016"},
		{Name: "A.J. Brown", EspnID: ajID, TeamAbbr: "PHI", Position: "WR", Status: "Active", RookieSeason: "2019"},
		{Name: "Dallas Goedert", EspnID: goedertID, TeamAbbr: "PHI", Position: "TE", Status: "Active", RookieSeason: "2018"},
		{Name: "Daniel Jones", EspnID: "3917792", TeamAbbr: "IND", Position: "QB", Status: "Active", RookieSeason: "2019"},
		{Name: "Zay Jones", EspnID: "3042435", TeamAbbr: "ARI", Position: "WR", Status: "Active", RookieSeason: "2017"},
		{Name: "Rashee Rice", EspnID: "4430878", TeamAbbr: "KC", Position: "WR", Status: "Active", RookieSeason: "2023"},
	}
	return nfldata.NewDirectory(players, nil)
}

type fakeProvider struct {
	logs      map[string]gamelog.Log
	schedules map[string][]gamefilter.ScheduleEvent
	leaders   []Leader

	logCalls     int
	lastSeason   string
	lastType     intent.SeasonType
	leaderCalls  int
	lastCategory string
}

func logKey(playerID, season string) string {
	return playerID + "/" + season
}

func (f *fakeProvider) PlayerGameLog(_ context.Context, playerID, season string, st intent.SeasonType) (gamelog.Log, error) {
	f.logCalls++
	f.lastSeason = season
	f.lastType = st
	log, ok := f.logs[logKey(playerID, season)]
	if !ok {
		return gamelog.Log{}, fmt.Errorf("no log for %s %s", playerID, season)
	}
	return log, nil
}

func (f *fakeProvider) TeamSchedule(_ context.Context, teamID, season string) ([]gamefilter.ScheduleEvent, error) {
	events, ok := f.schedules[teamID+"/"+season]
	if !ok {
		return nil, fmt.Errorf("no schedule for %s %s", teamID, season)
	}
	return events, nil
}

func (f *fakeProvider) LeagueLeaders(_ context.Context, category, season string, limit int, st intent.SeasonType) ([]Leader, error) {
	f.leaderCalls++
	f.lastCategory = category
	return f.leaders, nil
}

func newTestService(t *testing.T, p StatsProvider) *Service {
	t.Helper()
	s, err := NewService(testDirectory(), p)
	require.NoError(t, err)
	s.now = func() time.Time {
		return time.Date(2025, time.November, 10, 12, 0, 0, 0, time.UTC)
	}
	return s
}

// ---------------------------------------------------------------------------
// Player stat paths
// ---------------------------------------------------------------------------

func TestRun_SingleWeekReturnsRawGame(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(joshID, "2023"): {
				Headers: []string{"Cmp", "Att", "Yds"},
				Games: []gamelog.GameStatRow{
					{EventID: "e1", Team: "BUF", Stats: []string{"20", "30", "250"}},
					{EventID: "e2", Team: "BUF", Stats: []string{"25", "35", "320"}},
					{EventID: "e3", Team: "BUF", Stats: []string{"18", "28", "190"}},
				},
			},
		},
		schedules: map[string][]gamefilter.ScheduleEvent{
			"2/2023": {
				{ID: "e1", Week: 4},
				{ID: "e2", Week: 5},
				{ID: "e3", Week: 6},
			},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "josh allen 2023 week 5")
	require.NoError(t, err)

	assert.Equal(t, "2023", res.Season)
	assert.Equal(t, resolve.KindPlayer, res.Entity.Kind)
	assert.Equal(t, "Josh Allen", res.Entity.Player.Name)
	require.Len(t, res.Games, 1)
	assert.Equal(t, "e2", res.Games[0].EventID)
	assert.Nil(t, res.Aggregation, "a single-week lookup returns the raw row")
}

func TestRun_SeasonAggregation(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(mahomesID, "2024"): {
				Headers: []string{"Yds", "TD"},
				Games: []gamelog.GameStatRow{
					{EventID: "e1", Stats: []string{"300", "3"}},
					{EventID: "e2", Stats: []string{"250", "2"}},
				},
			},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "patrick mahomes 2024 stats")
	require.NoError(t, err)

	require.NotNil(t, res.Aggregation)
	assert.Equal(t, float64(550), res.Aggregation.Totals["Yds"])
	assert.Equal(t, float64(5), res.Aggregation.Totals["TD"])
	assert.Equal(t, 2, res.Aggregation.GameCount)
	assert.Equal(t, intent.Regular, p.lastType)
}

func TestRun_PlayoffsUsePostseasonData(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(mahomesID, "2024"): {
				Headers: []string{"Yds"},
				Games:   []gamelog.GameStatRow{{EventID: "p1", Stats: []string{"262"}}},
			},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "patrick mahomes 2024 playoff stats")
	require.NoError(t, err)
	assert.Equal(t, intent.Postseason, p.lastType)
	require.NotNil(t, res.Aggregation)
}

func TestRun_OpponentFilter(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(mahomesID, "2024"): {
				Headers: []string{"Yds"},
				Games: []gamelog.GameStatRow{
					{EventID: "e1", Stats: []string{"300"}},
					{EventID: "e2", Stats: []string{"250"}},
					{EventID: "e3", Stats: []string{"280"}},
				},
			},
		},
		schedules: map[string][]gamefilter.ScheduleEvent{
			"12/2024": {
				{ID: "e1", Week: 1, Competitors: []string{"KC", "BAL"}},
				{ID: "e2", Week: 11, Competitors: []string{"KC", "BUF"}},
				{ID: "e3", Week: 15, Competitors: []string{"KC", "CLE"}},
			},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "mahomes vs bills 2024")
	require.NoError(t, err)

	require.Len(t, res.Games, 1)
	assert.Equal(t, "e2", res.Games[0].EventID)
	require.NotNil(t, res.Aggregation)
	assert.Equal(t, float64(250), res.Aggregation.Totals["Yds"])
}

func TestRun_ThresholdCount(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(tyreekID, "2024"): {
				Headers: []string{"Rec", "Tgt", "Yds"},
				Games: []gamelog.GameStatRow{
					{EventID: "e1", Stats: []string{"8", "10", "112"}},
					{EventID: "e2", Stats: []string{"4", "6", "52"}},
					{EventID: "e3", Stats: []string{"10", "13", "128"}},
				},
			},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "tyreek hill 100+ yards 2024")
	require.NoError(t, err)

	require.NotNil(t, res.Intent.Threshold)
	assert.Equal(t, 2, res.ThresholdCount)
}

func TestRun_CareerScan(t *testing.T) {
	logs := make(map[string]gamelog.Log)
	for year := 2017; year <= 2025; year++ {
		logs[logKey(mahomesID, fmt.Sprintf("%d", year))] = gamelog.Log{
			Headers: []string{"Yds"},
			Games:   []gamelog.GameStatRow{{EventID: fmt.Sprintf("e%d", year), Stats: []string{"100"}}},
		}
	}
	p := &fakeProvider{logs: logs}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "patrick mahomes career stats")
	require.NoError(t, err)

	assert.Equal(t, 9, p.logCalls, "rookie 2017 through current 2025")
	require.NotNil(t, res.Aggregation)
	assert.Equal(t, 9, res.Aggregation.GameCount)
	assert.Equal(t, float64(900), res.Aggregation.Totals["Yds"])
}

func TestRun_CareerScanSkipsMissingSeasons(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(mahomesID, "2017"): {Headers: []string{"Yds"}, Games: []gamelog.GameStatRow{{EventID: "a", Stats: []string{"50"}}}},
			logKey(mahomesID, "2025"): {Headers: []string{"Yds"}, Games: []gamelog.GameStatRow{{EventID: "b", Stats: []string{"70"}}}},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "patrick mahomes career stats")
	require.NoError(t, err)
	require.NotNil(t, res.Aggregation)
	assert.Equal(t, 2, res.Aggregation.GameCount)
}

func TestRun_RookieSeasonOverride(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(joshID, "2018"): {
				Headers: []string{"Yds"},
				Games:   []gamelog.GameStatRow{{EventID: "e1", Stats: []string{"150"}}},
			},
		},
	}
	s := newTestService(t, p)

	_, err := s.Run(context.Background(), "josh allen rookie stats")
	require.NoError(t, err)
	assert.Equal(t, "2018", p.lastSeason)
}

func TestRun_FantasyPoints(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(joshID, "2024"): {
				Headers: []string{"Cmp", "Att", "Yds", "Cmp%", "Avg", "TD", "INT"},
				Games:   []gamelog.GameStatRow{{EventID: "e1", Stats: []string{"22", "30", "250", "73.3", "8.3", "2", "1"}}},
			},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "josh allen fantasy points 2024")
	require.NoError(t, err)

	require.NotNil(t, res.Fantasy)
	// 250*0.04 + 2*4 - 2 = 16
	assert.Equal(t, float64(16), res.Fantasy.Total)
}

// ---------------------------------------------------------------------------
// Comparison path
// ---------------------------------------------------------------------------

func TestRun_Comparison(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(mahomesID, "2024"): {
				Headers: []string{"Yds"},
				Games:   []gamelog.GameStatRow{{EventID: "e1", Stats: []string{"300"}}},
			},
			logKey(joshID, "2024"): {
				Headers: []string{"Yds"},
				Games:   []gamelog.GameStatRow{{EventID: "e2", Stats: []string{"280"}}},
			},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "mahomes vs allen 2024")
	require.NoError(t, err)

	require.Len(t, res.Comparison, 2)
	assert.Equal(t, "Patrick Mahomes", res.Comparison[0].Player.Name)
	assert.Equal(t, "Josh Allen", res.Comparison[1].Player.Name)
	assert.Equal(t, float64(300), res.Comparison[0].Aggregation.Totals["Yds"])
	assert.Equal(t, float64(280), res.Comparison[1].Aggregation.Totals["Yds"])
}

// "jones" alone ranks the quarterback first; compared against a receiver,
// the second name is retried within the receiver's position.
func TestRun_ComparisonPositionDisambiguation(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(tyreekID, "2024"):   {Headers: []string{"Yds"}, Games: []gamelog.GameStatRow{{EventID: "e1", Stats: []string{"90"}}}},
			logKey("3042435", "2024"): {Headers: []string{"Yds"}, Games: []gamelog.GameStatRow{{EventID: "e2", Stats: []string{"60"}}}},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "tyreek vs jones 2024")
	require.NoError(t, err)

	require.Len(t, res.Comparison, 2)
	assert.Equal(t, "Tyreek Hill", res.Comparison[0].Player.Name)
	assert.Equal(t, "Zay Jones", res.Comparison[1].Player.Name)
}

// ---------------------------------------------------------------------------
// Team, roster, group, leaders
// ---------------------------------------------------------------------------

func TestRun_TeamRoster(t *testing.T) {
	s := newTestService(t, &fakeProvider{})

	res, err := s.Run(context.Background(), "2024 chiefs roster")
	require.NoError(t, err)

	assert.Equal(t, resolve.KindTeam, res.Entity.Kind)
	assert.Equal(t, "KC", res.Entity.Team.Abbr)
	require.Len(t, res.Roster, 2)
}

func TestRun_TeamSchedule(t *testing.T) {
	p := &fakeProvider{
		schedules: map[string][]gamefilter.ScheduleEvent{
			"12/2024": {
				{ID: "e1", Week: 1},
				{ID: "e2", Week: 2},
			},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "chiefs 2024")
	require.NoError(t, err)
	assert.Equal(t, resolve.KindTeam, res.Entity.Kind)
	assert.Len(t, res.Schedule, 2)
}

func TestRun_TeamScheduleWeekNarrowing(t *testing.T) {
	p := &fakeProvider{
		schedules: map[string][]gamefilter.ScheduleEvent{
			"12/2024": {
				{ID: "e1", Week: 1},
				{ID: "e2", Week: 2},
			},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "chiefs 2024 week 2")
	require.NoError(t, err)
	require.Len(t, res.Schedule, 1)
	assert.Equal(t, "e2", res.Schedule[0].ID)
}

func TestRun_TeamScheduleMissingWeek(t *testing.T) {
	p := &fakeProvider{
		schedules: map[string][]gamefilter.ScheduleEvent{
			"12/2024": {
				{ID: "e1", Week: 1},
				{ID: "e2", Week: 2},
			},
		},
	}
	s := newTestService(t, p)

	_, err := s.Run(context.Background(), "chiefs 2024 week 9")
	require.ErrorIs(t, err, ErrNoData)
}

func TestRun_PositionGroupAggregation(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(ajID, "2024"): {
				Headers: []string{"Rec", "Yds"},
				Games:   []gamelog.GameStatRow{{EventID: "e1", Stats: []string{"7", "110"}}},
			},
			logKey(goedertID, "2024"): {
				Headers: []string{"Rec", "Yds"},
				Games:   []gamelog.GameStatRow{{EventID: "e1", Stats: []string{"5", "60"}}},
			},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "eagles receivers 2024")
	require.NoError(t, err)

	require.Len(t, res.Roster, 2, "PHI wide receivers and tight ends")
	require.NotNil(t, res.Aggregation)
	assert.Equal(t, 2, res.Aggregation.GameCount)
	assert.Equal(t, float64(170), res.Aggregation.Totals["Yds"])
	assert.Equal(t, float64(12), res.Aggregation.Totals["Rec"])
}

func TestRun_LeagueLeaders(t *testing.T) {
	p := &fakeProvider{
		leaders: []Leader{
			{Player: "Joe Burrow", Value: 4918},
			{Player: "Jared Goff", Value: 4629},
			{Player: "Baker Mayfield", Value: 4500},
			{Player: "Josh Allen", Value: 4306},
			{Player: "Jayden Daniels", Value: 3568},
			{Player: "Bo Nix", Value: 3775},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "top 5 passing yards leaders 2024")
	require.NoError(t, err)

	assert.Equal(t, "passing_yards", p.lastCategory)
	assert.Len(t, res.Leaders, 5)
	assert.Equal(t, "Joe Burrow", res.Leaders[0].Player)
}

// ---------------------------------------------------------------------------
// Error taxonomy
// ---------------------------------------------------------------------------

func TestRun_UnknownEntity(t *testing.T) {
	s := newTestService(t, &fakeProvider{})
	_, err := s.Run(context.Background(), "xyzzy plugh")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRun_MissingGameLog(t *testing.T) {
	s := newTestService(t, &fakeProvider{})
	_, err := s.Run(context.Background(), "patrick mahomes 2024 stats")
	require.ErrorIs(t, err, ErrNoData)
}

func TestRun_EmptyLeaders(t *testing.T) {
	s := newTestService(t, &fakeProvider{})
	_, err := s.Run(context.Background(), "who has the most passing yards")
	require.ErrorIs(t, err, ErrNoData)
}

func TestRun_FiltersRemoveEverything(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(mahomesID, "2024"): {
				Headers: []string{"Yds"},
				Games:   []gamelog.GameStatRow{{EventID: "e1", Stats: []string{"300"}}},
			},
		},
		schedules: map[string][]gamefilter.ScheduleEvent{
			"12/2024": {{ID: "e1", Week: 1, Competitors: []string{"KC", "BAL"}}},
		},
	}
	s := newTestService(t, p)

	_, err := s.Run(context.Background(), "mahomes vs bills 2024")
	require.ErrorIs(t, err, ErrNoData)
}

func TestRun_DefaultSeason(t *testing.T) {
	p := &fakeProvider{
		logs: map[string]gamelog.Log{
			logKey(mahomesID, "2025"): {
				Headers: []string{"Yds"},
				Games:   []gamelog.GameStatRow{{EventID: "e1", Stats: []string{"310"}}},
			},
		},
	}
	s := newTestService(t, p)

	res, err := s.Run(context.Background(), "patrick mahomes stats")
	require.NoError(t, err)
	assert.Equal(t, "2025", res.Season)
	assert.Equal(t, "2025", p.lastSeason)
}
