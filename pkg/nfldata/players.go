package nfldata

// PlayerRecord is one player in the reference directory. The directory
// comes from an external snapshot (possibly stale); this core never
// refreshes it.
type PlayerRecord struct {
	Name         string
	EspnID       string
	TeamAbbr     string
	Position     string
	Status       string
	RookieSeason string
	College      string
	Jersey       string
	Height       string
	Weight       string
}

// Directory is an immutable snapshot of the reference lists. Build it once
// at startup and hand it to the resolver; it is safe for concurrent reads
// because nothing mutates it after construction.
type Directory struct {
	players []PlayerRecord
	teams   []TeamRecord
}

// NewDirectory builds a snapshot from externally loaded players and teams.
// Passing nil teams falls back to the static league table.
func NewDirectory(players []PlayerRecord, teams []TeamRecord) *Directory {
	if teams == nil {
		teams = Teams()
	}
	ps := make([]PlayerRecord, len(players))
	copy(ps, players)
	ts := make([]TeamRecord, len(teams))
	copy(ts, teams)
	return &Directory{players: ps, teams: ts}
}

// Players returns the player list. Callers must not mutate it.
func (d *Directory) Players() []PlayerRecord {
	return d.players
}

// Teams returns the team list. Callers must not mutate it.
func (d *Directory) Teams() []TeamRecord {
	return d.teams
}

// PlayersByTeamAndPosition filters the snapshot for position-group queries
// ("Eagles receivers" -> PHI, {WR, TE}). An empty position list returns the
// whole roster.
func (d *Directory) PlayersByTeamAndPosition(teamAbbr string, positions []string) []PlayerRecord {
	var out []PlayerRecord
	for _, p := range d.players {
		if p.TeamAbbr != teamAbbr {
			continue
		}
		if len(positions) == 0 {
			out = append(out, p)
			continue
		}
		for _, pos := range positions {
			if p.Position == pos {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
