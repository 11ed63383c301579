package model

import (
	"fmt"
	"time"
)

// Player is the aggregate root for one player's ingested data. Identity
// is the internally assigned ID; ExternalID is the source site's player
// id (e.g. "BradTo00") and is the lookup key for re-ingestion.
type Player struct {
	ID         string
	ExternalID string

	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string
	Nickname   string

	HeightIn  *int
	WeightLb  *int
	BirthDate *time.Time
	College   string
	HOFYear   *int

	// Profile positions; set semantics, bounded to at most 4 members.
	Positions []Position

	DraftPicks []DraftPick
	Seasons    []PlayerSeason
}

// HasPosition reports set membership on the profile positions.
func (p *Player) HasPosition(pos Position) bool {
	for _, have := range p.Positions {
		if have == pos {
			return true
		}
	}
	return false
}

// DraftPick is one structured draft fact. Identity is (PlayerID, League,
// Year); the drafting team is referenced by FranchiseID for that year.
type DraftPick struct {
	PlayerID     string
	League       string
	Year         int
	FranchiseID  string
	Round        int
	Slot         int
	Supplemental bool
}

// DraftKey is the identity key of a DraftPick within an aggregate.
type DraftKey struct {
	PlayerID string
	League   string
	Year     int
}

func (d DraftPick) Key() DraftKey {
	return DraftKey{PlayerID: d.PlayerID, League: d.League, Year: d.Year}
}

func (d DraftPick) String() string {
	return fmt.Sprintf("%s round %d pick %d (%d %s)", d.FranchiseID, d.Round, d.Slot, d.Year, d.League)
}

// Team is read-only reference data from the team directory. Identity is
// (League, FranchiseID, Season): a franchise's single-season record.
type Team struct {
	League         string
	FranchiseID    string
	Season         int
	Location       string
	Name           string
	Abbrev         string
	ExternalID     string
	ExternalAbbrev string
}

func (t Team) String() string {
	return fmt.Sprintf("%d %s %s", t.Season, t.Location, t.Name)
}
