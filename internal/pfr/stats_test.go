package pfr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tyler180/pfr-player-ingest/internal/model"
)

// statsFixture renders a career with a mid-season team change in 2001
// and a comment-wrapped post-season table, the way the source ships
// them.
const statsFixture = `
<html><body>
<table id="passing">
  <thead>
    <tr><th data-stat="header_over" colspan="10">Passing</th></tr>
    <tr>
      <th data-stat="year_id">Year</th><th data-stat="age">Age</th>
      <th data-stat="team_ID">Tm</th><th data-stat="pos">Pos</th>
      <th data-stat="uniform_number">No.</th>
      <th data-stat="pass_cmp">Cmp</th><th data-stat="pass_att">Att</th>
      <th data-stat="pass_yds">Yds</th><th data-stat="pass_td">TD</th>
      <th data-stat="pass_int">Int</th><th data-stat="pass_rating">Rate</th>
      <th data-stat="av">AV</th>
    </tr>
  </thead>
  <tbody>
    <tr>
      <th data-stat="year_id">2000*+</th><td>23</td><td>NWE</td><td>QB</td>
      <td>12</td><td>120</td><td>200</td><td>1500</td><td>10</td><td>5</td>
      <td>85.5</td><td>6</td>
    </tr>
    <tr>
      <th data-stat="year_id">2001</th><td>24</td><td>2TM</td><td>QB</td>
      <td></td><td>180</td><td>300</td><td>2200</td><td>14</td><td>9</td>
      <td>80.1</td><td></td>
    </tr>
    <tr>
      <th data-stat="year_id"></th><td></td><td>NWE</td><td>QB</td>
      <td>12</td><td>100</td><td>170</td><td>1300</td><td>8</td><td>4</td>
      <td>82.0</td><td>4</td>
    </tr>
    <tr>
      <th data-stat="year_id"></th><td></td><td>GNB</td><td>QB</td>
      <td>10</td><td>80</td><td>130</td><td>900</td><td>6</td><td>5</td>
      <td>77.3</td><td>3</td>
    </tr>
  </tbody>
</table>
<table id="games_played">
  <thead>
    <tr>
      <th data-stat="year_id">Year</th><th data-stat="age">Age</th>
      <th data-stat="team_ID">Tm</th><th data-stat="g">G</th>
      <th data-stat="gs">GS</th>
    </tr>
  </thead>
  <tbody>
    <tr><th data-stat="year_id">2000*+</th><td>23</td><td>NWE</td><td>16</td><td>16</td></tr>
    <tr><th data-stat="year_id">2001</th><td>24</td><td>NWE</td><td>9</td><td>9</td></tr>
    <tr><th data-stat="year_id"></th><td></td><td>GNB</td><td>7</td><td>6</td></tr>
  </tbody>
</table>
<!--
<table id="passing_post">
  <thead>
    <tr>
      <th data-stat="year_id">Year</th><th data-stat="age">Age</th>
      <th data-stat="team_ID">Tm</th><th data-stat="pos">Pos</th>
      <th data-stat="pass_cmp">Cmp</th><th data-stat="pass_att">Att</th>
      <th data-stat="pass_yds">Yds</th><th data-stat="pass_td">TD</th>
      <th data-stat="pass_int">Int</th>
    </tr>
  </thead>
  <tbody>
    <tr>
      <th data-stat="year_id">2000</th><td>23</td><td>NWE</td><td>QB</td>
      <td>22</td><td>35</td><td>280</td><td>2</td><td>1</td>
    </tr>
  </tbody>
</table>
-->
</body></html>`

func parseFixtureSeasons(t *testing.T) (*seasonAccumulator, *Diagnostics) {
	t.Helper()
	doc, err := DocumentFromHTML(statsFixture)
	require.NoError(t, err)

	acc := newSeasonAccumulator()
	var diag Diagnostics
	testParser().ParseStatTables(doc, acc, &diag)
	return acc, &diag
}

func TestParseStatTablesBuildsOneRecordPerSeasonTeam(t *testing.T) {
	acc, diag := parseFixtureSeasons(t)

	require.Empty(t, diag.Warnings)
	require.Len(t, acc.records, 4)

	seen := make(map[model.SeasonKey]bool)
	for _, rec := range acc.records {
		require.False(t, seen[rec.Key()], "duplicate season %+v", rec.Key())
		seen[rec.Key()] = true
	}
}

func TestParseStatTablesSeasonAndAgeInheritance(t *testing.T) {
	acc, _ := parseFixtureSeasons(t)

	nwe := acc.index[model.SeasonKey{FranchiseID: "NWE", Season: 2001, Type: model.SeasonRegular}]
	gnb := acc.index[model.SeasonKey{FranchiseID: "GNB", Season: 2001, Type: model.SeasonRegular}]
	require.NotNil(t, nwe)
	require.NotNil(t, gnb)

	require.NotNil(t, nwe.Age)
	require.Equal(t, 24, *nwe.Age)
	require.NotNil(t, gnb.Age)
	require.Equal(t, 24, *gnb.Age)

	// The 2TM total row contributes nothing.
	require.Equal(t, 170, nwe.Passing.Attempts)
	require.Equal(t, 130, gnb.Passing.Attempts)
	require.NotNil(t, gnb.JerseyNumber)
	require.Equal(t, 10, *gnb.JerseyNumber)
}

func TestParseStatTablesAwardMarkers(t *testing.T) {
	acc, _ := parseFixtureSeasons(t)

	rec := acc.index[model.SeasonKey{FranchiseID: "NWE", Season: 2000, Type: model.SeasonRegular}]
	require.NotNil(t, rec)
	require.True(t, rec.ProBowl)
	require.True(t, rec.AllPro)
	require.Equal(t, 200, rec.Passing.Attempts)
	require.Equal(t, 85.5, rec.Passing.Rating)
	require.Equal(t, 16, rec.Games.Played)

	next := acc.index[model.SeasonKey{FranchiseID: "NWE", Season: 2001, Type: model.SeasonRegular}]
	require.NotNil(t, next)
	require.False(t, next.ProBowl)
	require.False(t, next.AllPro)
}

func TestParseStatTablesPostSeasonCarryOver(t *testing.T) {
	acc, _ := parseFixtureSeasons(t)

	post := acc.index[model.SeasonKey{FranchiseID: "NWE", Season: 2000, Type: model.SeasonPost}]
	require.NotNil(t, post)
	require.Equal(t, 35, post.Passing.Attempts)

	// Post-season tables omit jersey and approximate value; both come
	// from the matching regular-season record.
	require.NotNil(t, post.JerseyNumber)
	require.Equal(t, 12, *post.JerseyNumber)
	require.NotNil(t, post.ApproximateValue)
	require.Equal(t, 6, *post.ApproximateValue)

	// Families absent for the post-season stay unknown.
	require.Nil(t, post.Games)
}

func TestParseStatTablesPositionSignals(t *testing.T) {
	acc, _ := parseFixtureSeasons(t)

	key := model.SeasonKey{FranchiseID: "NWE", Season: 2000, Type: model.SeasonRegular}
	require.Equal(t, []model.Position{model.PosQB}, acc.seasonPositions[key])
	require.Equal(t, []model.Position{model.PosQB}, acc.allPositions)
}

func TestParseStatTablesUnknownTeamRowSkipped(t *testing.T) {
	doc, err := DocumentFromHTML(`
<table id="games_played">
  <thead><tr>
    <th data-stat="year_id">Year</th><th data-stat="team_ID">Tm</th>
    <th data-stat="g">G</th>
  </tr></thead>
  <tbody>
    <tr><th data-stat="year_id">2000</th><td>XXX</td><td>12</td></tr>
    <tr><th data-stat="year_id">2001</th><td>NWE</td><td>14</td></tr>
  </tbody>
</table>`)
	require.NoError(t, err)

	acc := newSeasonAccumulator()
	var diag Diagnostics
	testParser().ParseStatTables(doc, acc, &diag)

	require.Len(t, acc.records, 1)
	require.Equal(t, "NWE", acc.records[0].FranchiseID)
	require.Len(t, diag.Warnings, 1)
}
