package pfr

import (
	"strings"

	"github.com/tyler180/pfr-player-ingest/internal/model"
)

// Alias table mapping raw source tokens onto canonical positions. The
// source is inconsistent across eras: side-qualified line positions
// (LDE, RT, ...), historical backfield names (TB, BB), and pre-modern
// secondary labels (LS/RS as left/right safety) all appear.
var positionAliases = []struct {
	pos     model.Position
	aliases []string
}{
	{model.PosQB, []string{"QB"}},
	{model.PosHB, []string{"HB", "TB", "LH", "RH"}},
	{model.PosFB, []string{"FB", "BB"}},
	{model.PosRB, []string{"RB"}},
	{model.PosWR, []string{"WR", "SE", "FL", "E"}},
	{model.PosTE, []string{"TE"}},
	{model.PosT, []string{"T", "OT", "LT", "RT"}},
	{model.PosG, []string{"G", "OG", "LG", "RG"}},
	{model.PosC, []string{"C"}},
	{model.PosOL, []string{"OL"}},
	{model.PosDE, []string{"DE", "LDE", "RDE"}},
	{model.PosDT, []string{"DT", "LDT", "RDT"}},
	{model.PosNT, []string{"NT", "MG"}},
	{model.PosDL, []string{"DL"}},
	{model.PosOLB, []string{"OLB", "LOLB", "ROLB", "LLB", "RLB", "WLB", "SLB"}},
	{model.PosILB, []string{"ILB", "LILB", "RILB"}},
	{model.PosMLB, []string{"MLB"}},
	{model.PosLB, []string{"LB", "EDGE"}},
	{model.PosCB, []string{"CB", "LCB", "RCB", "DH"}},
	{model.PosFS, []string{"FS"}},
	{model.PosSS, []string{"SS"}},
	{model.PosS, []string{"S", "SAF", "LS", "RS"}},
	{model.PosDB, []string{"DB"}},
	{model.PosK, []string{"K", "PK"}},
	{model.PosP, []string{"P"}},
	{model.PosKR, []string{"KR"}},
	{model.PosPR, []string{"PR"}},
}

// ResolveAlias canonicalizes one raw position token. An unrecognized
// token is a reportable parse failure: it is dropped with a warning,
// never mapped to a wrong position.
func (p *Parser) ResolveAlias(token string, diag *Diagnostics) (model.Position, bool) {
	pos, ok := p.aliases[token]
	if !ok {
		diag.Warnf("unknown position alias %q", token)
		return "", false
	}
	return pos, true
}

// splitPositionTokens breaks a raw position cell ("QB", "WR/PR",
// "LCB-RCB") into individual alias tokens.
func splitPositionTokens(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f := func(r rune) bool { return r == '-' || r == '/' || r == ',' }
	return strings.FieldsFunc(raw, f)
}

// resolveTokens resolves a raw token list into an ordered, deduplicated
// position list, dropping unknown aliases with a warning.
func (p *Parser) resolveTokens(tokens []string, diag *Diagnostics) []model.Position {
	var out []model.Position
	seen := make(map[model.Position]bool)
	for _, tok := range tokens {
		pos, ok := p.ResolveAlias(strings.TrimSpace(tok), diag)
		if !ok || seen[pos] {
			continue
		}
		seen[pos] = true
		out = append(out, pos)
	}
	return out
}

// Generalization cascade: each step collapses a family of specific
// positions into its generic parent, applied only while the set still
// exceeds the 4-member bound.
var positionCollapses = []struct {
	generic  model.Position
	specific []model.Position
}{
	{model.PosOL, []model.Position{model.PosT, model.PosG, model.PosC}},
	{model.PosDL, []model.Position{model.PosDE, model.PosDT, model.PosNT}},
	{model.PosLB, []model.Position{model.PosILB, model.PosMLB, model.PosOLB}},
	{model.PosS, []model.Position{model.PosFS, model.PosSS}},
	{model.PosDB, []model.Position{model.PosCB, model.PosS, model.PosSS}},
	{model.PosRB, []model.Position{model.PosFB}},
}

// GeneralizePositions bounds a position set to at most 4 members. A
// collapse fires when the generic position is already present or at
// least two of its specific members are; it removes the present
// specifics and inserts the generic. If the cascade is exhausted and
// the set is still oversized, the first four in canonical order are
// kept and the loss is reported.
func (p *Parser) GeneralizePositions(positions []model.Position, diag *Diagnostics) []model.Position {
	set := make(map[model.Position]bool, len(positions))
	for _, pos := range positions {
		set[pos] = true
	}

	for _, step := range positionCollapses {
		if len(set) <= 4 {
			break
		}
		present := 0
		for _, sp := range step.specific {
			if set[sp] {
				present++
			}
		}
		if !set[step.generic] && present < 2 {
			continue
		}
		for _, sp := range step.specific {
			delete(set, sp)
		}
		set[step.generic] = true
	}

	out := make([]model.Position, 0, len(set))
	for pos := range set {
		out = append(out, pos)
	}
	model.SortPositions(out)
	if len(out) > 4 {
		diag.Warnf("position set still has %d members after generalization, keeping first 4 of %v", len(out), out)
		out = out[:4]
	}
	return out
}
