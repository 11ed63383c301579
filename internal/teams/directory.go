// Package teams holds the in-memory franchise directory: read-only
// reference data mapping seasons, leagues, locations, names and source
// abbreviations onto franchise season records. The pipeline never
// creates teams; the directory is loaded once at startup and is safe
// for concurrent reads.
package teams

import (
	"sort"
	"strings"

	"github.com/tyler180/pfr-player-ingest/internal/model"
)

type teamKey struct {
	season   int
	league   string
	location string
	name     string
}

type abbrevKey struct {
	abbrev string
	season int
}

type Directory struct {
	byTeam    map[teamKey]model.Team
	byAbbrev  map[abbrevKey]model.Team
	locations []string
}

func NewDirectory(rows []model.Team) *Directory {
	d := &Directory{
		byTeam:   make(map[teamKey]model.Team, len(rows)),
		byAbbrev: make(map[abbrevKey]model.Team, len(rows)),
	}
	locSeen := make(map[string]bool)
	for _, t := range rows {
		d.byTeam[teamKey{
			season:   t.Season,
			league:   strings.ToUpper(t.League),
			location: t.Location,
			name:     t.Name,
		}] = t
		if t.ExternalAbbrev != "" {
			d.byAbbrev[abbrevKey{abbrev: t.ExternalAbbrev, season: t.Season}] = t
		}
		if t.Location != "" && !locSeen[t.Location] {
			locSeen[t.Location] = true
			d.locations = append(d.locations, t.Location)
		}
	}
	sort.Strings(d.locations)
	return d
}

func (d *Directory) FindTeam(season int, league, location, name string) (model.Team, bool) {
	t, ok := d.byTeam[teamKey{
		season:   season,
		league:   strings.ToUpper(league),
		location: location,
		name:     name,
	}]
	return t, ok
}

func (d *Directory) FindTeamByExternalAbbrev(abbrev string, season int) (model.Team, bool) {
	t, ok := d.byAbbrev[abbrevKey{abbrev: abbrev, season: season}]
	return t, ok
}

// KnownLocations returns every distinct team location, sorted, for the
// draft parser's binary-search location matching.
func (d *Directory) KnownLocations() []string {
	return d.locations
}
