package pfr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tyler180/pfr-player-ingest/internal/model"
)

func TestResolveAliasCoversEveryRegisteredAlias(t *testing.T) {
	p := testParser()
	for _, entry := range positionAliases {
		for _, alias := range entry.aliases {
			var diag Diagnostics
			pos, ok := p.ResolveAlias(alias, &diag)
			require.True(t, ok, "alias %q", alias)
			require.Equal(t, entry.pos, pos, "alias %q", alias)
			require.Empty(t, diag.Warnings)
		}
	}
}

func TestResolveAliasUnknownTokenReportsFailure(t *testing.T) {
	var diag Diagnostics
	_, ok := testParser().ResolveAlias("XYZ", &diag)

	require.False(t, ok)
	require.Len(t, diag.Warnings, 1)
}

func TestGeneralizeCollapsesLineAndBox(t *testing.T) {
	var diag Diagnostics
	in := []model.Position{
		model.PosT, model.PosG, model.PosC,
		model.PosDE, model.PosDT, model.PosNT,
		model.PosOLB, model.PosMLB,
	}
	out := testParser().GeneralizePositions(in, &diag)

	require.LessOrEqual(t, len(out), 4)
	require.Contains(t, out, model.PosOL)
	require.Contains(t, out, model.PosDL)
	require.NotContains(t, out, model.PosT)
	require.NotContains(t, out, model.PosDE)
}

func TestGeneralizeCollapsesSecondary(t *testing.T) {
	var diag Diagnostics
	in := []model.Position{
		model.PosCB, model.PosFS, model.PosSS,
		model.PosDB, model.PosFB, model.PosRB, model.PosKR,
	}
	out := testParser().GeneralizePositions(in, &diag)

	require.LessOrEqual(t, len(out), 4)
	require.Contains(t, out, model.PosDB)
	require.NotContains(t, out, model.PosCB)
	require.NotContains(t, out, model.PosFS)
	require.NotContains(t, out, model.PosSS)
}

func TestGeneralizeNeverGrowsSmallSets(t *testing.T) {
	var diag Diagnostics
	in := []model.Position{model.PosQB, model.PosWR}
	out := testParser().GeneralizePositions(in, &diag)

	require.ElementsMatch(t, in, out)
	require.Empty(t, diag.Warnings)
}

func TestGeneralizeTruncatesWhenCascadeExhausted(t *testing.T) {
	var diag Diagnostics
	// No collapse step can fire: all generics, no pair of specifics.
	in := []model.Position{
		model.PosQB, model.PosWR, model.PosTE, model.PosK, model.PosP,
	}
	out := testParser().GeneralizePositions(in, &diag)

	require.Len(t, out, 4)
	require.NotEmpty(t, diag.Warnings)
}
