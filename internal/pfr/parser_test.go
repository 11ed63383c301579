package pfr

import (
	"github.com/tyler180/pfr-player-ingest/internal/model"
	"github.com/tyler180/pfr-player-ingest/internal/teams"
)

// testDirectory builds a small franchise directory covering the
// seasons the fixtures reference.
func testDirectory() *teams.Directory {
	var rows []model.Team
	add := func(season int, location, name, franchise, abbrev string) {
		rows = append(rows, model.Team{
			League:         "NFL",
			FranchiseID:    franchise,
			Season:         season,
			Location:       location,
			Name:           name,
			Abbrev:         abbrev,
			ExternalAbbrev: abbrev,
		})
	}
	for season := 1985; season <= 2012; season++ {
		add(season, "New England", "Patriots", "NWE", "NWE")
		add(season, "Green Bay", "Packers", "GNB", "GNB")
		add(season, "New York", "Giants", "NYG", "NYG")
		add(season, "Seattle", "Seahawks", "SEA", "SEA")
	}
	return teams.NewDirectory(rows)
}

func testParser() *Parser {
	return NewParser(testDirectory())
}
