package pfr

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tyler180/pfr-player-ingest/internal/model"
)

var reSeasonYear = regexp.MustCompile(`\b\d{4}\b`)

// seasonAccumulator collects the season records built up across all
// table families for one profile, keyed by season identity, together
// with the raw-position signals feeding the season position resolver.
type seasonAccumulator struct {
	records []*model.PlayerSeason
	index   map[model.SeasonKey]*model.PlayerSeason

	seasonPositions map[model.SeasonKey][]model.Position
	allPositions    []model.Position
	allSeen         map[model.Position]bool
}

func newSeasonAccumulator() *seasonAccumulator {
	return &seasonAccumulator{
		index:           make(map[model.SeasonKey]*model.PlayerSeason),
		seasonPositions: make(map[model.SeasonKey][]model.Position),
		allSeen:         make(map[model.Position]bool),
	}
}

// record returns the season record for key, creating it on first use so
// every table family contributes to one shared record per identity.
func (a *seasonAccumulator) record(key model.SeasonKey) *model.PlayerSeason {
	if rec, ok := a.index[key]; ok {
		return rec
	}
	rec := &model.PlayerSeason{
		FranchiseID: key.FranchiseID,
		Season:      key.Season,
		Type:        key.Type,
	}
	a.index[key] = rec
	a.records = append(a.records, rec)
	return rec
}

func (a *seasonAccumulator) addPositions(key model.SeasonKey, positions []model.Position) {
	have := a.seasonPositions[key]
	for _, pos := range positions {
		dup := false
		for _, h := range have {
			if h == pos {
				dup = true
				break
			}
		}
		if !dup {
			have = append(have, pos)
		}
		if !a.allSeen[pos] {
			a.allSeen[pos] = true
			a.allPositions = append(a.allPositions, pos)
		}
	}
	a.seasonPositions[key] = have
}

// statFamily maps one table family's column identifiers onto season
// record fields. init materializes the family's category group, which
// is how "table present but cell absent" becomes zero rather than
// unknown.
type statFamily struct {
	id   string
	init func(s *model.PlayerSeason)
	cols map[string]func(s *model.PlayerSeason, raw string)
}

var statFamilies = []statFamily{
	{
		id: "passing",
		init: func(s *model.PlayerSeason) {
			if s.Passing == nil {
				s.Passing = &model.PassingStats{}
			}
		},
		cols: map[string]func(s *model.PlayerSeason, raw string){
			"pass_cmp":        func(s *model.PlayerSeason, v string) { s.Passing.Completions = atoiDefault(v, 0) },
			"pass_att":        func(s *model.PlayerSeason, v string) { s.Passing.Attempts = atoiDefault(v, 0) },
			"pass_yds":        func(s *model.PlayerSeason, v string) { s.Passing.Yards = atoiDefault(v, 0) },
			"pass_td":         func(s *model.PlayerSeason, v string) { s.Passing.Touchdowns = atoiDefault(v, 0) },
			"pass_int":        func(s *model.PlayerSeason, v string) { s.Passing.Interceptions = atoiDefault(v, 0) },
			"pass_long":       func(s *model.PlayerSeason, v string) { s.Passing.Long = atoiDefault(v, 0) },
			"pass_rating":     func(s *model.PlayerSeason, v string) { s.Passing.Rating = atofDefault(v, 0) },
			"pass_sacked":     func(s *model.PlayerSeason, v string) { s.Passing.TimesSacked = atoiDefault(v, 0) },
			"pass_sacked_yds": func(s *model.PlayerSeason, v string) { s.Passing.SackYards = atoiDefault(v, 0) },
		},
	},
	{
		id: "rushing_and_receiving",
		init: func(s *model.PlayerSeason) {
			if s.Rushing == nil {
				s.Rushing = &model.RushingReceivingStats{}
			}
		},
		cols: map[string]func(s *model.PlayerSeason, raw string){
			"rush_att":      func(s *model.PlayerSeason, v string) { s.Rushing.RushAttempts = atoiDefault(v, 0) },
			"rush_yds":      func(s *model.PlayerSeason, v string) { s.Rushing.RushYards = atoiDefault(v, 0) },
			"rush_td":       func(s *model.PlayerSeason, v string) { s.Rushing.RushTouchdowns = atoiDefault(v, 0) },
			"rush_long":     func(s *model.PlayerSeason, v string) { s.Rushing.RushLong = atoiDefault(v, 0) },
			"rec":           func(s *model.PlayerSeason, v string) { s.Rushing.Receptions = atoiDefault(v, 0) },
			"rec_yds":       func(s *model.PlayerSeason, v string) { s.Rushing.ReceivingYards = atoiDefault(v, 0) },
			"rec_td":        func(s *model.PlayerSeason, v string) { s.Rushing.ReceivingTDs = atoiDefault(v, 0) },
			"rec_long":      func(s *model.PlayerSeason, v string) { s.Rushing.ReceivingLong = atoiDefault(v, 0) },
			"fumbles":       func(s *model.PlayerSeason, v string) { s.Rushing.Fumbles = atoiDefault(v, 0) },
		},
	},
	{
		id: "defense",
		init: func(s *model.PlayerSeason) {
			if s.Defense == nil {
				s.Defense = &model.DefenseStats{}
			}
		},
		cols: map[string]func(s *model.PlayerSeason, raw string){
			"def_int":          func(s *model.PlayerSeason, v string) { s.Defense.Interceptions = atoiDefault(v, 0) },
			"def_int_yds":      func(s *model.PlayerSeason, v string) { s.Defense.InterceptionYds = atoiDefault(v, 0) },
			"def_int_td":       func(s *model.PlayerSeason, v string) { s.Defense.InterceptionTDs = atoiDefault(v, 0) },
			"def_int_long":     func(s *model.PlayerSeason, v string) { s.Defense.InterceptionLong = atoiDefault(v, 0) },
			"pass_defended":    func(s *model.PlayerSeason, v string) { s.Defense.PassesDefended = atoiDefault(v, 0) },
			"fumbles_forced":   func(s *model.PlayerSeason, v string) { s.Defense.FumblesForced = atoiDefault(v, 0) },
			"fumbles_rec":      func(s *model.PlayerSeason, v string) { s.Defense.FumblesRecovered = atoiDefault(v, 0) },
			"fumbles_rec_yds":  func(s *model.PlayerSeason, v string) { s.Defense.FumbleYards = atoiDefault(v, 0) },
			"fumbles_rec_td":   func(s *model.PlayerSeason, v string) { s.Defense.FumbleTDs = atoiDefault(v, 0) },
			"sacks":            func(s *model.PlayerSeason, v string) { s.Defense.Sacks = atofDefault(v, 0) },
			"tackles_solo":     func(s *model.PlayerSeason, v string) { s.Defense.TacklesSolo = atoiDefault(v, 0) },
			"tackles_assists":  func(s *model.PlayerSeason, v string) { s.Defense.TacklesAssists = atoiDefault(v, 0) },
			"tackles_combined": func(s *model.PlayerSeason, v string) { s.Defense.TacklesCombined = atoiDefault(v, 0) },
			"tackles_loss":     func(s *model.PlayerSeason, v string) { s.Defense.TacklesForLoss = atoiDefault(v, 0) },
			"qb_hits":          func(s *model.PlayerSeason, v string) { s.Defense.QBHits = atoiDefault(v, 0) },
			"safety_md":        func(s *model.PlayerSeason, v string) { s.Defense.Safeties = atoiDefault(v, 0) },
		},
	},
	{
		id: "kicking",
		init: func(s *model.PlayerSeason) {
			if s.Kicking == nil {
				s.Kicking = &model.KickingStats{}
			}
		},
		cols: map[string]func(s *model.PlayerSeason, raw string){
			"fga1":         func(s *model.PlayerSeason, v string) { s.Kicking.FGA1 = atoiDefault(v, 0) },
			"fgm1":         func(s *model.PlayerSeason, v string) { s.Kicking.FGM1 = atoiDefault(v, 0) },
			"fga2":         func(s *model.PlayerSeason, v string) { s.Kicking.FGA2 = atoiDefault(v, 0) },
			"fgm2":         func(s *model.PlayerSeason, v string) { s.Kicking.FGM2 = atoiDefault(v, 0) },
			"fga3":         func(s *model.PlayerSeason, v string) { s.Kicking.FGA3 = atoiDefault(v, 0) },
			"fgm3":         func(s *model.PlayerSeason, v string) { s.Kicking.FGM3 = atoiDefault(v, 0) },
			"fga4":         func(s *model.PlayerSeason, v string) { s.Kicking.FGA4 = atoiDefault(v, 0) },
			"fgm4":         func(s *model.PlayerSeason, v string) { s.Kicking.FGM4 = atoiDefault(v, 0) },
			"fga5":         func(s *model.PlayerSeason, v string) { s.Kicking.FGA5 = atoiDefault(v, 0) },
			"fgm5":         func(s *model.PlayerSeason, v string) { s.Kicking.FGM5 = atoiDefault(v, 0) },
			"fga":          func(s *model.PlayerSeason, v string) { s.Kicking.FGAttempts = atoiDefault(v, 0) },
			"fgm":          func(s *model.PlayerSeason, v string) { s.Kicking.FGMade = atoiDefault(v, 0) },
			"xpa":          func(s *model.PlayerSeason, v string) { s.Kicking.XPAttempts = atoiDefault(v, 0) },
			"xpm":          func(s *model.PlayerSeason, v string) { s.Kicking.XPMade = atoiDefault(v, 0) },
			"punt":         func(s *model.PlayerSeason, v string) { s.Kicking.Punts = atoiDefault(v, 0) },
			"punt_yds":     func(s *model.PlayerSeason, v string) { s.Kicking.PuntYards = atoiDefault(v, 0) },
			"punt_long":    func(s *model.PlayerSeason, v string) { s.Kicking.PuntLong = atoiDefault(v, 0) },
			"punt_blocked": func(s *model.PlayerSeason, v string) { s.Kicking.PuntsBlocked = atoiDefault(v, 0) },
		},
	},
	{
		id: "returns",
		init: func(s *model.PlayerSeason) {
			if s.Returns == nil {
				s.Returns = &model.ReturnStats{}
			}
		},
		cols: map[string]func(s *model.PlayerSeason, raw string){
			"kick_ret":      func(s *model.PlayerSeason, v string) { s.Returns.KickReturns = atoiDefault(v, 0) },
			"kick_ret_yds":  func(s *model.PlayerSeason, v string) { s.Returns.KickReturnYds = atoiDefault(v, 0) },
			"kick_ret_td":   func(s *model.PlayerSeason, v string) { s.Returns.KickReturnTDs = atoiDefault(v, 0) },
			"kick_ret_long": func(s *model.PlayerSeason, v string) { s.Returns.KickReturnLong = atoiDefault(v, 0) },
			"punt_ret":      func(s *model.PlayerSeason, v string) { s.Returns.PuntReturns = atoiDefault(v, 0) },
			"punt_ret_yds":  func(s *model.PlayerSeason, v string) { s.Returns.PuntReturnYds = atoiDefault(v, 0) },
			"punt_ret_td":   func(s *model.PlayerSeason, v string) { s.Returns.PuntReturnTDs = atoiDefault(v, 0) },
			"punt_ret_long": func(s *model.PlayerSeason, v string) { s.Returns.PuntReturnLong = atoiDefault(v, 0) },
		},
	},
	{
		id: "scoring",
		init: func(s *model.PlayerSeason) {
			if s.Scoring == nil {
				s.Scoring = &model.ScoringStats{}
			}
		},
		cols: map[string]func(s *model.PlayerSeason, raw string){
			"alltd":     func(s *model.PlayerSeason, v string) { s.Scoring.TotalTDs = atoiDefault(v, 0) },
			"rushtd":    func(s *model.PlayerSeason, v string) { s.Scoring.RushTDs = atoiDefault(v, 0) },
			"rectd":     func(s *model.PlayerSeason, v string) { s.Scoring.ReceivingTDs = atoiDefault(v, 0) },
			"itd":       func(s *model.PlayerSeason, v string) { s.Scoring.IntReturnTDs = atoiDefault(v, 0) },
			"frtd":      func(s *model.PlayerSeason, v string) { s.Scoring.FumbleTDs = atoiDefault(v, 0) },
			"krtd":      func(s *model.PlayerSeason, v string) { s.Scoring.KickReturnTDs = atoiDefault(v, 0) },
			"prtd":      func(s *model.PlayerSeason, v string) { s.Scoring.PuntReturnTDs = atoiDefault(v, 0) },
			"otd":       func(s *model.PlayerSeason, v string) { s.Scoring.OtherTDs = atoiDefault(v, 0) },
			"twoptm":    func(s *model.PlayerSeason, v string) { s.Scoring.TwoPointConv = atoiDefault(v, 0) },
			"xpm":       func(s *model.PlayerSeason, v string) { s.Scoring.XPMade = atoiDefault(v, 0) },
			"fgm":       func(s *model.PlayerSeason, v string) { s.Scoring.FGMade = atoiDefault(v, 0) },
			"safety_md": func(s *model.PlayerSeason, v string) { s.Scoring.Safeties = atoiDefault(v, 0) },
			"scoring":   func(s *model.PlayerSeason, v string) { s.Scoring.Points = atoiDefault(v, 0) },
		},
	},
	{
		id: "games_played",
		init: func(s *model.PlayerSeason) {
			if s.Games == nil {
				s.Games = &model.GameStats{}
			}
		},
		cols: map[string]func(s *model.PlayerSeason, raw string){
			"g":  func(s *model.PlayerSeason, v string) { s.Games.Played = atoiDefault(v, 0) },
			"gs": func(s *model.PlayerSeason, v string) { s.Games.Started = atoiDefault(v, 0) },
		},
	},
}

// ParseStatTables maps every rendered table family (regular and
// post-season variants) into the accumulator's season records.
func (p *Parser) ParseStatTables(doc *goquery.Document, acc *seasonAccumulator, diag *Diagnostics) {
	for _, fam := range statFamilies {
		p.parseFamilyTable(doc, fam, model.SeasonRegular, fam.id, acc, diag)
		p.parseFamilyTable(doc, fam, model.SeasonPost, fam.id+"_post", acc, diag)
	}
	carryOverPostSeason(acc)
}

func (p *Parser) parseFamilyTable(doc *goquery.Document, fam statFamily, st model.SeasonType, tableID string, acc *seasonAccumulator, diag *Diagnostics) {
	table := doc.Find("table#" + tableID).First()
	if table.Length() == 0 {
		return
	}
	cols := lastHeaderColumns(table)

	// Season/age context carries forward: a player who changed teams
	// mid-season gets one row per team, and only the first carries the
	// 4-digit year.
	var curSeason int
	var curAge *int

	for _, tr := range bodyRows(table) {
		vals := rowValues(cols, tr)

		yearRaw := vals["year_id"]
		if m := reSeasonYear.FindString(yearRaw); m != "" {
			curSeason, _ = strconv.Atoi(m)
			curAge = atoiPtr(vals["age"])
		}
		if curSeason == 0 {
			continue
		}

		abbr := vals["team_ID"]
		if abbr == "" {
			continue
		}
		// A leading digit marks a multi-team total row ("2TM"); the
		// per-team rows that follow carry the real numbers.
		if abbr[0] >= '0' && abbr[0] <= '9' {
			continue
		}

		team, ok := p.teams.FindTeamByExternalAbbrev(abbr, curSeason)
		if !ok {
			diag.Warnf("unknown team abbrev %q for season %d (%s)", abbr, curSeason, tableID)
			continue
		}

		key := model.SeasonKey{FranchiseID: team.FranchiseID, Season: curSeason, Type: st}
		rec := acc.record(key)
		rec.TeamAbbrev = abbr
		if curAge != nil {
			rec.Age = curAge
		}
		// Award markers decorate the year cell: * pro bowl, + all-pro.
		rec.ProBowl = rec.ProBowl || strings.Contains(yearRaw, "*")
		rec.AllPro = rec.AllPro || strings.Contains(yearRaw, "+")
		if n := atoiPtr(vals["uniform_number"]); n != nil {
			rec.JerseyNumber = n
		}
		if n := atoiPtr(vals["av"]); n != nil {
			rec.ApproximateValue = n
		}

		fam.init(rec)
		for col, set := range fam.cols {
			if v, ok := vals[col]; ok {
				set(rec, v)
			}
		}

		if raw, ok := vals["pos"]; ok {
			// "LS" in historical tables is the left safety; the modern
			// long snapper is rendered as a blank position cell.
			acc.addPositions(key, p.resolveTokens(splitPositionTokens(raw), diag))
		}
	}
}

// carryOverPostSeason copies jersey number and approximate value from
// the matching regular-season record onto post-season records, which
// omit both columns.
func carryOverPostSeason(acc *seasonAccumulator) {
	for _, rec := range acc.records {
		if rec.Type != model.SeasonPost {
			continue
		}
		regKey := model.SeasonKey{
			PlayerID:    rec.PlayerID,
			FranchiseID: rec.FranchiseID,
			Season:      rec.Season,
			Type:        model.SeasonRegular,
		}
		reg, ok := acc.index[regKey]
		if !ok {
			continue
		}
		if rec.JerseyNumber == nil {
			rec.JerseyNumber = reg.JerseyNumber
		}
		if rec.ApproximateValue == nil {
			rec.ApproximateValue = reg.ApproximateValue
		}
	}
}
