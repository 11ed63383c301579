package model

// SeasonType distinguishes the regular-season and post-season variants
// of every statistical table family.
type SeasonType string

const (
	SeasonRegular SeasonType = "REGULAR"
	SeasonPost    SeasonType = "POST"
)

// SeasonKey is the identity of a PlayerSeason within an aggregate.
type SeasonKey struct {
	PlayerID    string
	FranchiseID string
	Season      int
	Type        SeasonType
}

// PlayerSeason holds one player's numbers for one franchise, season and
// season type. A nil category group means the source rendered no table
// of that family for the season (unknown); a non-nil group with zero
// values means the table was present but the cells were empty or zero.
type PlayerSeason struct {
	PlayerID    string
	FranchiseID string
	Season      int
	Type        SeasonType

	TeamAbbrev       string
	Age              *int
	Position         Position
	JerseyNumber     *int
	ProBowl          bool
	AllPro           bool
	ApproximateValue *int

	Passing *PassingStats
	Rushing *RushingReceivingStats
	Defense *DefenseStats
	Kicking *KickingStats
	Returns *ReturnStats
	Scoring *ScoringStats
	Games   *GameStats
}

func (s *PlayerSeason) Key() SeasonKey {
	return SeasonKey{
		PlayerID:    s.PlayerID,
		FranchiseID: s.FranchiseID,
		Season:      s.Season,
		Type:        s.Type,
	}
}

type PassingStats struct {
	Completions   int
	Attempts      int
	Yards         int
	Touchdowns    int
	Interceptions int
	Long          int
	Rating        float64
	TimesSacked   int
	SackYards     int
}

type RushingReceivingStats struct {
	RushAttempts   int
	RushYards      int
	RushTouchdowns int
	RushLong       int
	Receptions     int
	ReceivingYards int
	ReceivingTDs   int
	ReceivingLong  int
	Fumbles        int
}

type DefenseStats struct {
	Interceptions    int
	InterceptionYds  int
	InterceptionTDs  int
	InterceptionLong int
	PassesDefended   int
	FumblesForced    int
	FumblesRecovered int
	FumbleYards      int
	FumbleTDs        int
	Sacks            float64
	TacklesSolo      int
	TacklesAssists   int
	TacklesCombined  int
	TacklesForLoss   int
	QBHits           int
	Safeties         int
}

// Field goal range buckets follow the source's numbering: 1 is the
// shortest bucket (17-19 yards historically), 5 the longest (50+).
type KickingStats struct {
	FGA1 int
	FGM1 int
	FGA2 int
	FGM2 int
	FGA3 int
	FGM3 int
	FGA4 int
	FGM4 int
	FGA5 int
	FGM5 int

	FGAttempts int
	FGMade     int
	XPAttempts int
	XPMade     int

	Punts        int
	PuntYards    int
	PuntLong     int
	PuntsBlocked int
}

type ReturnStats struct {
	KickReturns    int
	KickReturnYds  int
	KickReturnTDs  int
	KickReturnLong int
	PuntReturns    int
	PuntReturnYds  int
	PuntReturnTDs  int
	PuntReturnLong int
}

type ScoringStats struct {
	TotalTDs      int
	RushTDs       int
	ReceivingTDs  int
	IntReturnTDs  int
	FumbleTDs     int
	KickReturnTDs int
	PuntReturnTDs int
	OtherTDs      int
	TwoPointConv  int
	XPMade        int
	FGMade        int
	Safeties      int
	Points        int
}

type GameStats struct {
	Played  int
	Started int
}
