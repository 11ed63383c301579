package pfr

import (
	"github.com/tyler180/pfr-player-ingest/internal/model"
)

// One- and two-level generalization used for weighted scoring (distinct
// from the profile-bounding cascade: this one never mutates sets, it
// only spreads weight onto generic parents).
var genericOf = map[model.Position]model.Position{
	model.PosHB:  model.PosRB,
	model.PosFB:  model.PosRB,
	model.PosT:   model.PosOL,
	model.PosG:   model.PosOL,
	model.PosC:   model.PosOL,
	model.PosDE:  model.PosDL,
	model.PosDT:  model.PosDL,
	model.PosNT:  model.PosDL,
	model.PosOLB: model.PosLB,
	model.PosILB: model.PosLB,
	model.PosMLB: model.PosLB,
	model.PosFS:  model.PosS,
	model.PosSS:  model.PosS,
	model.PosCB:  model.PosDB,
	model.PosS:   model.PosDB,
}

var secondGenericOf = map[model.Position]model.Position{
	model.PosFS: model.PosDB,
	model.PosSS: model.PosDB,
}

var returnSpecialist = map[model.Position]bool{
	model.PosKR: true,
	model.PosPR: true,
}

// Jersey number ranges per position family. A season jersey inside a
// position's range earns a small score bonus.
var jerseyRanges = map[model.Position][][2]int{
	model.PosQB:  {{1, 19}},
	model.PosK:   {{1, 19}},
	model.PosP:   {{1, 19}},
	model.PosRB:  {{20, 49}},
	model.PosHB:  {{20, 49}},
	model.PosFB:  {{20, 49}},
	model.PosWR:  {{10, 19}, {80, 89}},
	model.PosTE:  {{40, 49}, {80, 89}},
	model.PosT:   {{50, 79}},
	model.PosG:   {{50, 79}},
	model.PosC:   {{50, 79}},
	model.PosOL:  {{50, 79}},
	model.PosDE:  {{60, 79}, {90, 99}},
	model.PosDT:  {{60, 79}, {90, 99}},
	model.PosNT:  {{60, 79}, {90, 99}},
	model.PosDL:  {{60, 79}, {90, 99}},
	model.PosOLB: {{50, 59}, {90, 99}},
	model.PosILB: {{50, 59}, {90, 99}},
	model.PosMLB: {{50, 59}, {90, 99}},
	model.PosLB:  {{50, 59}, {90, 99}},
	model.PosCB:  {{20, 49}},
	model.PosFS:  {{20, 49}},
	model.PosSS:  {{20, 49}},
	model.PosS:   {{20, 49}},
	model.PosDB:  {{20, 49}},
}

const jerseyBonus = 0.1

// posScore accumulates weighted scores with deterministic iteration:
// candidates keep their first-insertion order, and ties resolve to the
// earliest-inserted candidate.
type posScore struct {
	order []model.Position
	score map[model.Position]float64
}

func newPosScore() *posScore {
	return &posScore{score: make(map[model.Position]float64)}
}

func (ps *posScore) add(pos model.Position, w float64) {
	if _, ok := ps.score[pos]; !ok {
		ps.order = append(ps.order, pos)
	}
	ps.score[pos] += w
}

// topTwoTied reports whether the two highest scores are equal.
func (ps *posScore) topTwoTied() bool {
	if len(ps.order) < 2 {
		return false
	}
	var best, second float64
	for i, pos := range ps.order {
		s := ps.score[pos]
		if i == 0 || s > best {
			second = best
			best = s
		} else if s > second {
			second = s
		}
	}
	return best == second
}

func (ps *posScore) best() model.Position {
	var winner model.Position
	var bestScore float64
	for i, pos := range ps.order {
		if i == 0 || ps.score[pos] > bestScore {
			winner = pos
			bestScore = ps.score[pos]
		}
	}
	return winner
}

// weightPass spreads one signal set into the score map: full weight on
// the position itself (deemphasized for return specialists), a lesser
// weight on its generic parent, and a still lesser one on the two-level
// parent where one exists.
func (ps *posScore) weightPass(positions []model.Position, w, generic, second float64) {
	for _, pos := range positions {
		direct := w
		if returnSpecialist[pos] {
			direct = w / 10
		}
		ps.add(pos, direct)
		if g, ok := genericOf[pos]; ok {
			ps.add(g, generic)
		}
		if g, ok := secondGenericOf[pos]; ok {
			ps.add(g, second)
		}
	}
}

// ResolveSeasonPosition assigns exactly one canonical position to a
// season record from the season's own accumulated positions, escalating
// to the career-profile positions and the positions seen across all
// seasons when the season signal is thin or ambiguous, then applying
// statistic and jersey-number adjustments.
func (p *Parser) ResolveSeasonPosition(rec *model.PlayerSeason, seasonPos, profilePos, careerPos []model.Position) model.Position {
	// A season with real passing volume is a quarterback season no
	// matter what the position cells said.
	if rec.Passing != nil && rec.Passing.Attempts >= 20 {
		return model.PosQB
	}

	if len(seasonPos) == 1 && !returnSpecialist[seasonPos[0]] {
		return seasonPos[0]
	}

	scores := newPosScore()
	scores.weightPass(seasonPos, 1.0, 0.9, 0.8)

	if len(seasonPos) < 2 || scores.topTwoTied() {
		scores.weightPass(profilePos, 0.5, 0.4, 0.3)
		scores.weightPass(careerPos, 0.1, 0.05, 0.025)
	}

	for _, pos := range scores.order {
		if rec.JerseyNumber != nil && jerseyInRange(pos, *rec.JerseyNumber) {
			scores.add(pos, jerseyBonus)
		}
		scores.add(pos, statBonus(pos, rec))
	}

	return scores.best()
}

func jerseyInRange(pos model.Position, jersey int) bool {
	for _, r := range jerseyRanges[pos] {
		if jersey >= r[0] && jersey <= r[1] {
			return true
		}
	}
	return false
}

// statBonus contributes a small per-statistic nudge toward positions
// whose characteristic counters are non-trivial for the season.
func statBonus(pos model.Position, rec *model.PlayerSeason) float64 {
	var b float64
	switch pos {
	case model.PosRB, model.PosHB, model.PosFB:
		if rec.Rushing != nil {
			b += float64(rec.Rushing.RushAttempts)*0.01 + float64(rec.Rushing.Receptions)*0.005
		}
	case model.PosWR, model.PosTE:
		if rec.Rushing != nil {
			b += float64(rec.Rushing.Receptions) * 0.01
		}
	case model.PosK:
		if rec.Kicking != nil {
			b += float64(rec.Kicking.FGAttempts)*0.01 + float64(rec.Kicking.XPAttempts)*0.005
		}
	case model.PosP:
		if rec.Kicking != nil {
			b += float64(rec.Kicking.Punts) * 0.01
		}
	case model.PosCB, model.PosFS, model.PosSS, model.PosS, model.PosDB:
		if rec.Defense != nil {
			b += float64(rec.Defense.Interceptions)*0.02 + float64(rec.Defense.PassesDefended)*0.01
		}
	case model.PosDE, model.PosDT, model.PosNT, model.PosDL:
		if rec.Defense != nil {
			b += rec.Defense.Sacks * 0.02
		}
	case model.PosOLB, model.PosILB, model.PosMLB, model.PosLB:
		if rec.Defense != nil {
			b += rec.Defense.Sacks*0.01 + float64(rec.Defense.TacklesCombined)*0.002
		}
	case model.PosKR:
		if rec.Returns != nil {
			b += float64(rec.Returns.KickReturns) * 0.01
		}
	case model.PosPR:
		if rec.Returns != nil {
			b += float64(rec.Returns.PuntReturns) * 0.01
		}
	}
	return b
}
