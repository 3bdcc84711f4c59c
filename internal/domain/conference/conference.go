// Package conference holds the static conference-to-team mapping used to
// drive team selection and standings. The mapping is immutable after
// construction; callers receive copies.
package conference

import "sort"

// Default mapping covering the four tracked conferences.
var defaultTeams = map[string][]string{
	"SEC": {
		"Alabama", "Arkansas", "Auburn", "Florida", "Georgia", "Kentucky",
		"LSU", "Mississippi State", "Missouri", "Ole Miss", "South Carolina",
		"Tennessee", "Texas A&M", "Vanderbilt",
	},
	"Big Ten": {
		"Illinois", "Indiana", "Iowa", "Maryland", "Michigan", "Michigan State",
		"Minnesota", "Nebraska", "Northwestern", "Ohio State", "Penn State",
		"Purdue", "Rutgers", "Wisconsin",
	},
	"Big 12": {
		"BYU", "Cincinnati", "Baylor", "Houston", "Iowa State", "Kansas",
		"Kansas State", "Oklahoma", "Oklahoma State", "TCU", "Texas",
		"Texas Tech", "UCF", "West Virginia",
	},
	"ACC": {
		"Boston College", "Clemson", "Duke", "Florida State", "Georgia Tech",
		"Louisville", "Miami FL", "NC State", "North Carolina", "Pittsburgh",
		"Syracuse", "Virginia", "Virginia Tech", "Wake Forest", "Notre Dame",
	},
}

// Mapping is an immutable conference-to-team lookup.
type Mapping struct {
	teams map[string][]string
}

// Default returns a Mapping built from the built-in conference list.
func Default() *Mapping {
	return New(defaultTeams)
}

// New builds a Mapping from the given table, copying it so later mutation
// of the argument cannot leak in. Conferences with no teams are dropped.
func New(table map[string][]string) *Mapping {
	teams := make(map[string][]string, len(table))
	for conf, list := range table {
		if len(list) == 0 {
			continue
		}
		teams[conf] = append([]string(nil), list...)
	}
	return &Mapping{teams: teams}
}

// Names returns the conference names in sorted order.
func (m *Mapping) Names() []string {
	names := make([]string, 0, len(m.teams))
	for conf := range m.teams {
		names = append(names, conf)
	}
	sort.Strings(names)
	return names
}

// Teams returns the team list for a conference and whether it exists.
func (m *Mapping) Teams(conference string) ([]string, bool) {
	list, ok := m.teams[conference]
	if !ok {
		return nil, false
	}
	return append([]string(nil), list...), true
}

// AllTeams returns every team across all conferences, sorted.
func (m *Mapping) AllTeams() []string {
	var all []string
	for _, list := range m.teams {
		all = append(all, list...)
	}
	sort.Strings(all)
	return all
}

// ConferenceOf returns the conference a team belongs to.
func (m *Mapping) ConferenceOf(team string) (string, bool) {
	for conf, list := range m.teams {
		for _, t := range list {
			if t == team {
				return conf, true
			}
		}
	}
	return "", false
}
