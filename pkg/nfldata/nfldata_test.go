package nfldata

import "testing"

func TestTeams_FullLeague(t *testing.T) {
	teams := Teams()
	if len(teams) != 32 {
		t.Fatalf("expected 32 teams, got %d", len(teams))
	}

	seen := make(map[string]bool)
	for _, tm := range teams {
		if tm.Name == "" || tm.Abbr == "" || tm.ID == "" {
			t.Errorf("incomplete team record: %+v", tm)
		}
		if seen[tm.Abbr] {
			t.Errorf("duplicate abbreviation %q", tm.Abbr)
		}
		seen[tm.Abbr] = true
	}
}

func TestTeams_ReturnsCopy(t *testing.T) {
	teams := Teams()
	teams[0].Name = "mutated"
	if Teams()[0].Name == "mutated" {
		t.Error("Teams must return a copy, not the backing table")
	}
}

func TestTeamByAbbr(t *testing.T) {
	kc := TeamByAbbr("KC")
	if kc == nil {
		t.Fatal("expected KC")
	}
	if kc.Name != "Kansas City Chiefs" || kc.ID != "12" {
		t.Errorf("unexpected record: %+v", kc)
	}

	if got := TeamByAbbr("ZZ"); got != nil {
		t.Errorf("unknown abbreviation should be nil, got %+v", got)
	}
}

func TestNickname(t *testing.T) {
	cases := []struct {
		abbr string
		want string
	}{
		{"KC", "Chiefs"},
		{"NE", "Patriots"},
		{"WAS", "Commanders"},
	}
	for _, c := range cases {
		tm := TeamByAbbr(c.abbr)
		if tm == nil {
			t.Fatalf("missing team %s", c.abbr)
		}
		if got := tm.Nickname(); got != c.want {
			t.Errorf("%s nickname = %q, want %q", c.abbr, got, c.want)
		}
	}
}

func TestDirectory_SnapshotIsolation(t *testing.T) {
	players := []PlayerRecord{{Name: "Test Player", TeamAbbr: "KC", Position: "QB"}}
	dir := NewDirectory(players, nil)

	players[0].Name = "mutated"
	if dir.Players()[0].Name != "Test Player" {
		t.Error("directory must copy the input slice")
	}
	if len(dir.Teams()) != 32 {
		t.Errorf("nil teams should fall back to the league table, got %d", len(dir.Teams()))
	}
}

func TestPlayersByTeamAndPosition(t *testing.T) {
	players := []PlayerRecord{
		{Name: "WR One", TeamAbbr: "PHI", Position: "WR"},
		{Name: "TE One", TeamAbbr: "PHI", Position: "TE"},
		{Name: "RB One", TeamAbbr: "PHI", Position: "RB"},
		{Name: "WR Two", TeamAbbr: "KC", Position: "WR"},
	}
	dir := NewDirectory(players, nil)

	got := dir.PlayersByTeamAndPosition("PHI", []string{"WR", "TE"})
	if len(got) != 2 {
		t.Fatalf("expected 2 receivers, got %d", len(got))
	}
	for _, p := range got {
		if p.TeamAbbr != "PHI" || (p.Position != "WR" && p.Position != "TE") {
			t.Errorf("unexpected player %+v", p)
		}
	}

	all := dir.PlayersByTeamAndPosition("PHI", nil)
	if len(all) != 3 {
		t.Errorf("empty position list should return the whole roster, got %d", len(all))
	}
}
