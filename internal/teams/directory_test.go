package teams

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tyler180/pfr-player-ingest/internal/model"
)

func testRows() []model.Team {
	return []model.Team{
		{League: "NFL", FranchiseID: "NWE", Season: 2012, Location: "New England", Name: "Patriots", ExternalAbbrev: "NWE"},
		{League: "NFL", FranchiseID: "TAM", Season: 2012, Location: "Tampa Bay", Name: "Buccaneers", ExternalAbbrev: "TAM"},
		{League: "AFL", FranchiseID: "OAK", Season: 1965, Location: "Oakland", Name: "Raiders", ExternalAbbrev: "OAK"},
	}
}

func TestFindTeam(t *testing.T) {
	d := NewDirectory(testRows())

	team, ok := d.FindTeam(2012, "NFL", "New England", "Patriots")
	require.True(t, ok)
	require.Equal(t, "NWE", team.FranchiseID)

	// League matching is case-insensitive.
	_, ok = d.FindTeam(1965, "afl", "Oakland", "Raiders")
	require.True(t, ok)

	_, ok = d.FindTeam(2013, "NFL", "New England", "Patriots")
	require.False(t, ok)
}

func TestFindTeamByExternalAbbrev(t *testing.T) {
	d := NewDirectory(testRows())

	team, ok := d.FindTeamByExternalAbbrev("TAM", 2012)
	require.True(t, ok)
	require.Equal(t, "Buccaneers", team.Name)

	_, ok = d.FindTeamByExternalAbbrev("TAM", 1965)
	require.False(t, ok)
}

func TestKnownLocationsSortedDistinct(t *testing.T) {
	rows := append(testRows(), model.Team{
		League: "NFL", FranchiseID: "NWE", Season: 2011,
		Location: "New England", Name: "Patriots", ExternalAbbrev: "NWE",
	})
	d := NewDirectory(rows)

	locs := d.KnownLocations()
	require.Equal(t, []string{"New England", "Oakland", "Tampa Bay"}, locs)
	require.True(t, sort.StringsAreSorted(locs))
}
