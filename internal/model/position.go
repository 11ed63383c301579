package model

import "sort"

// Position is the closed set of canonical football positions. Raw source
// tokens are mapped onto these via the alias table in internal/pfr.
type Position string

const (
	PosQB  Position = "QB"
	PosHB  Position = "HB"
	PosFB  Position = "FB"
	PosRB  Position = "RB"
	PosWR  Position = "WR"
	PosTE  Position = "TE"
	PosT   Position = "T"
	PosG   Position = "G"
	PosC   Position = "C"
	PosOL  Position = "OL"
	PosDE  Position = "DE"
	PosDT  Position = "DT"
	PosNT  Position = "NT"
	PosDL  Position = "DL"
	PosOLB Position = "OLB"
	PosILB Position = "ILB"
	PosMLB Position = "MLB"
	PosLB  Position = "LB"
	PosCB  Position = "CB"
	PosFS  Position = "FS"
	PosSS  Position = "SS"
	PosS   Position = "S"
	PosDB  Position = "DB"
	PosK   Position = "K"
	PosP   Position = "P"
	PosKR  Position = "KR"
	PosPR  Position = "PR"
)

// AllPositions returns every canonical position in declaration order.
// The order is load-bearing: it is the truncation order used when
// bounding oversized position sets.
func AllPositions() []Position {
	return []Position{
		PosQB, PosHB, PosFB, PosRB, PosWR, PosTE,
		PosT, PosG, PosC, PosOL,
		PosDE, PosDT, PosNT, PosDL,
		PosOLB, PosILB, PosMLB, PosLB,
		PosCB, PosFS, PosSS, PosS, PosDB,
		PosK, PosP, PosKR, PosPR,
	}
}

var positionRank = func() map[Position]int {
	r := make(map[Position]int)
	for i, p := range AllPositions() {
		r[p] = i
	}
	return r
}()

// PositionRank returns the declaration-order index of p, or a large
// value for anything outside the canonical set.
func PositionRank(p Position) int {
	if r, ok := positionRank[p]; ok {
		return r
	}
	return 1 << 30
}

// SortPositions orders positions by declaration order, in place.
func SortPositions(ps []Position) {
	sort.Slice(ps, func(i, j int) bool {
		return PositionRank(ps[i]) < PositionRank(ps[j])
	})
}
