package pfr

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tyler180/pfr-player-ingest/internal/model"
)

// ParseProfile turns one profile document into a parsed Player fragment
// plus the diagnostics gathered along the way. The fragment carries no
// aggregate identity; MergeAggregate assigns ownership when folding it
// into the stored player.
func (p *Parser) ParseProfile(doc *goquery.Document, externalID string) (*model.Player, *Diagnostics) {
	diag := &Diagnostics{}
	player := &model.Player{ExternalID: externalID}

	meta := metaFields(doc)

	fullName := QueryFirst(doc, "h1[itemprop=name] span")
	if fullName == "" {
		fullName = QueryFirst(doc, "h1")
	}
	nickname := QueryFirst(doc, "#meta .nickname")
	name := p.ParseName(fullName, nickname)
	player.FirstName = name.First
	player.MiddleName = name.Middle
	player.LastName = name.Last
	player.Suffix = name.Suffix
	player.Nickname = name.Nickname

	player.HeightIn = ParseHeight(QueryFirst(doc, "span[itemprop=height]"), diag)
	player.WeightLb = ParseWeight(QueryFirst(doc, "span[itemprop=weight]"), diag)
	player.BirthDate = ParseBirthDate(QueryAttr(doc, "span#necro-birth", "data-birth"), diag)
	player.College = ParseCollege(meta["College"])
	player.HOFYear = ParseHOFYear(meta["Hall of Fame"], diag)

	profilePositions := p.resolveTokens(splitPositionTokens(positionLine(meta["Position"])), diag)
	player.Positions = p.GeneralizePositions(profilePositions, diag)

	player.DraftPicks = p.ParseDraftPicks(meta["Draft"], diag)

	acc := newSeasonAccumulator()
	p.ParseStatTables(doc, acc, diag)
	for _, rec := range acc.records {
		rec.Position = p.ResolveSeasonPosition(rec, acc.seasonPositions[rec.Key()], player.Positions, acc.allPositions)
		player.Seasons = append(player.Seasons, *rec)
	}

	return player, diag
}

// metaFields scans the profile's meta paragraphs into a label -> value
// map, splitting each paragraph on its first colon ("College: Michigan"
// -> College, Michigan). First occurrence of a label wins.
func metaFields(doc *goquery.Document) map[string]string {
	fields := make(map[string]string)
	doc.Find("#meta p").Each(func(_ int, sel *goquery.Selection) {
		text := wsRe.ReplaceAllString(strings.TrimSpace(sel.Text()), " ")
		i := strings.Index(text, ":")
		if i <= 0 {
			return
		}
		label := strings.TrimSpace(text[:i])
		if _, ok := fields[label]; !ok {
			fields[label] = strings.TrimSpace(text[i+1:])
		}
	})
	return fields
}

// positionLine trims the throwing-hand decoration off the meta position
// value ("QB • Throws: Right" -> "QB").
func positionLine(raw string) string {
	if i := strings.IndexRune(raw, '•'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.Index(raw, "Throws"); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSpace(raw)
}
