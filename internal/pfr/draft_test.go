package pfr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tyler180/pfr-player-ingest/internal/model"
)

func TestParseDraftPicks(t *testing.T) {
	var diag Diagnostics
	picks := testParser().ParseDraftPicks(
		"New England Patriots in the 1st round (2nd overall) of the 2012 NFL Draft.",
		&diag,
	)

	require.Len(t, picks, 1)
	require.Equal(t, model.DraftPick{
		League:      "NFL",
		Year:        2012,
		FranchiseID: "NWE",
		Round:       1,
		Slot:        2,
	}, picks[0])
	require.Empty(t, diag.Warnings)
}

func TestParseDraftPicksSupplemental(t *testing.T) {
	var diag Diagnostics
	picks := testParser().ParseDraftPicks(
		"Green Bay Packers in the 3rd round (74th overall) of the 1992 NFL Supplemental Draft.",
		&diag,
	)

	require.Len(t, picks, 1)
	require.Equal(t, "NFL", picks[0].League)
	require.Equal(t, 1992, picks[0].Year)
	require.Equal(t, "GNB", picks[0].FranchiseID)
	require.Equal(t, 3, picks[0].Round)
	require.Equal(t, 74, picks[0].Slot)
	require.True(t, picks[0].Supplemental)
}

func TestParseDraftPicksMultipleSentences(t *testing.T) {
	var diag Diagnostics
	picks := testParser().ParseDraftPicks(
		"New York Giants in the 2nd round (40th overall) of the 1990 NFL Draft.; "+
			"Seattle Seahawks in the 1st round (5th overall) of the 1991 NFL Supplemental Draft.",
		&diag,
	)

	require.Len(t, picks, 2)
	require.Equal(t, "NYG", picks[0].FranchiseID)
	require.Equal(t, "SEA", picks[1].FranchiseID)
	require.True(t, picks[1].Supplemental)
}

func TestParseDraftPicksStructuralFailureDiscardsAll(t *testing.T) {
	var diag Diagnostics
	picks := testParser().ParseDraftPicks(
		"New England Patriots in the 1st round (2nd overall) of the 2012 NFL Draft.; "+
			"Green Bay Packers somewhere in 1992.",
		&diag,
	)

	require.Nil(t, picks)
	require.NotEmpty(t, diag.Warnings)
}

func TestParseDraftPicksUnknownTeamSkipsSentence(t *testing.T) {
	var diag Diagnostics
	picks := testParser().ParseDraftPicks(
		"Montreal Alouettes in the 1st round (1st overall) of the 2000 CFL Draft.; "+
			"New England Patriots in the 1st round (2nd overall) of the 2012 NFL Draft.",
		&diag,
	)

	require.Len(t, picks, 1)
	require.Equal(t, "NWE", picks[0].FranchiseID)
	require.NotEmpty(t, diag.Warnings)
}

func TestParseDraftPicksBlank(t *testing.T) {
	var diag Diagnostics
	require.Nil(t, testParser().ParseDraftPicks("  ", &diag))
	require.Empty(t, diag.Warnings)
}
