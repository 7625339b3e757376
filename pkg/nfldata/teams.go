// Package nfldata holds the reference directory of players and teams.
// The directory is an immutable snapshot built once and passed to the
// resolver explicitly; this package never touches the network or disk.
package nfldata

// TeamRecord is one franchise in the fixed league table.
type TeamRecord struct {
	Name string
	Abbr string
	ID   string
}

// teams is the static 32-entry league table. IDs follow the provider's
// numbering so schedule and leader lookups can use them directly.
var teams = []TeamRecord{
	{Name: "Arizona Cardinals", Abbr: "ARI", ID: "22"},
	{Name: "Atlanta Falcons", Abbr: "ATL", ID: "1"},
	{Name: "Baltimore Ravens", Abbr: "BAL", ID: "33"},
	{Name: "Buffalo Bills", Abbr: "BUF", ID: "2"},
	{Name: "Carolina Panthers", Abbr: "CAR", ID: "29"},
	{Name: "Chicago Bears", Abbr: "CHI", ID: "3"},
	{Name: "Cincinnati Bengals", Abbr: "CIN", ID: "4"},
	{Name: "Cleveland Browns", Abbr: "CLE", ID: "5"},
	{Name: "Dallas Cowboys", Abbr: "DAL", ID: "6"},
	{Name: "Denver Broncos", Abbr: "DEN", ID: "7"},
	{Name: "Detroit Lions", Abbr: "DET", ID: "8"},
	{Name: "Green Bay Packers", Abbr: "GB", ID: "9"},
	{Name: "Houston Texans", Abbr: "HOU", ID: "34"},
	{Name: "Indianapolis Colts", Abbr: "IND", ID: "11"},
	{Name: "Jacksonville Jaguars", Abbr: "JAX", ID: "30"},
	{Name: "Kansas City Chiefs", Abbr: "KC", ID: "12"},
	{Name: "Las Vegas Raiders", Abbr: "LV", ID: "13"},
	{Name: "Los Angeles Chargers", Abbr: "LAC", ID: "24"},
	{Name: "Los Angeles Rams", Abbr: "LAR", ID: "14"},
	{Name: "Miami Dolphins", Abbr: "MIA", ID: "15"},
	{Name: "Minnesota Vikings", Abbr: "MIN", ID: "16"},
	{Name: "New England Patriots", Abbr: "NE", ID: "17"},
	{Name: "New Orleans Saints", Abbr: "NO", ID: "18"},
	{Name: "New York Giants", Abbr: "NYG", ID: "19"},
	{Name: "New York Jets", Abbr: "NYJ", ID: "20"},
	{Name: "Philadelphia Eagles", Abbr: "PHI", ID: "21"},
	{Name: "Pittsburgh Steelers", Abbr: "PIT", ID: "23"},
	{Name: "San Francisco 49ers", Abbr: "SF", ID: "25"},
	{Name: "Seattle Seahawks", Abbr: "SEA", ID: "26"},
	{Name: "Tampa Bay Buccaneers", Abbr: "TB", ID: "27"},
	{Name: "Tennessee Titans", Abbr: "TEN", ID: "10"},
	{Name: "Washington Commanders", Abbr: "WAS", ID: "28"},
}

// Teams returns a copy of the static league table. Callers may reorder
// their copy without affecting others.
func Teams() []TeamRecord {
	out := make([]TeamRecord, len(teams))
	copy(out, teams)
	return out
}

// TeamByAbbr finds a team by its abbreviation. Returns nil if unknown.
func TeamByAbbr(abbr string) *TeamRecord {
	for i := range teams {
		if teams[i].Abbr == abbr {
			t := teams[i]
			return &t
		}
	}
	return nil
}

// Nickname returns the last word of the team name ("Kansas City Chiefs"
// -> "Chiefs").
func (t TeamRecord) Nickname() string {
	name := t.Name
	for i := len(name) - 1; i >= 0; i-- {
		if name[i] == ' ' {
			return name[i+1:]
		}
	}
	return name
}
