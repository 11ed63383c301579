package pfr

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/tyler180/pfr-player-ingest/internal/model"
)

var reOrdinalSuffix = regexp.MustCompile(`(?i)(st|nd|rd|th)$`)

// ParseDraftPicks decomposes the profile's draft narrative into
// structured picks. Sentences are separated by ';' (one per draft
// event, e.g. an NFL and an AFL draft). A structural mismatch in any
// sentence discards the whole draft string for this run; that is the
// documented contract, even though sentences parse independently here.
// Team lookup misses only drop the affected sentence.
func (p *Parser) ParseDraftPicks(draftText string, diag *Diagnostics) []model.DraftPick {
	text := strings.TrimSpace(draftText)
	if text == "" {
		return nil
	}

	var picks []model.DraftPick
	index := make(map[model.DraftKey]int)
	for _, sentence := range strings.Split(text, ";") {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		pick, err := p.parseDraftSentence(sentence, diag)
		if err != nil {
			diag.Warnf("draft text %q: %v; no picks recorded this run", draftText, err)
			return nil
		}
		if pick == nil {
			continue
		}
		k := pick.Key()
		if i, ok := index[k]; ok {
			picks[i] = *pick
			continue
		}
		index[k] = len(picks)
		picks = append(picks, *pick)
	}
	return picks
}

// parseDraftSentence carves one sentence like "New England Patriots in
// the 1st round (2nd overall) of the 2012 NFL Draft." on its fixed
// substrings. A nil, nil return means the sentence was well-formed but
// its team could not be resolved.
func (p *Parser) parseDraftSentence(s string, diag *Diagnostics) (*model.DraftPick, error) {
	inIdx := strings.Index(s, " in the")
	if inIdx < 0 {
		return nil, fmt.Errorf("missing \" in the\"")
	}
	teamPhrase := strings.TrimSpace(s[:inIdx])
	rest := s[inIdx+len(" in the"):]

	roundIdx := strings.Index(rest, " round")
	if roundIdx < 0 {
		return nil, fmt.Errorf("missing \" round\"")
	}
	round, err := parseOrdinal(rest[:roundIdx])
	if err != nil {
		return nil, fmt.Errorf("round: %w", err)
	}

	parenIdx := strings.Index(rest, "(")
	overallIdx := strings.Index(rest, " overall")
	if parenIdx < 0 || overallIdx < parenIdx {
		return nil, fmt.Errorf("missing overall pick clause")
	}
	slot, err := parseOrdinal(rest[parenIdx+1 : overallIdx])
	if err != nil {
		return nil, fmt.Errorf("overall slot: %w", err)
	}

	ofIdx := strings.Index(rest, "of the")
	if ofIdx < 0 {
		return nil, fmt.Errorf("missing \"of the\"")
	}
	tail := strings.TrimSpace(rest[ofIdx+len("of the"):])
	if len(tail) < 4 {
		return nil, fmt.Errorf("missing draft year")
	}
	year, err := strconv.Atoi(tail[:4])
	if err != nil {
		return nil, fmt.Errorf("draft year: %w", err)
	}

	tail = tail[4:]
	draftIdx := strings.Index(tail, " Draft")
	if draftIdx < 0 {
		return nil, fmt.Errorf("missing \" Draft\"")
	}
	supplemental := strings.Contains(tail[:draftIdx+len(" Draft")], " Supplemental")
	league := strings.ReplaceAll(tail[:draftIdx], " Supplemental", "")
	league = strings.TrimSpace(league)

	location, name, ok := p.splitTeamPhrase(teamPhrase)
	if !ok {
		diag.Warnf("no known team location in draft phrase %q", teamPhrase)
		return nil, nil
	}
	team, ok := p.teams.FindTeam(year, league, location, name)
	if !ok {
		diag.Warnf("no %s team %q %q for %d", league, location, name, year)
		return nil, nil
	}

	return &model.DraftPick{
		League:       league,
		Year:         year,
		FranchiseID:  team.FranchiseID,
		Round:        round,
		Slot:         slot,
		Supplemental: supplemental,
	}, nil
}

// splitTeamPhrase greedily grows a location prefix token by token,
// testing it against the directory's sorted known locations after each
// append; the first match wins and the remaining tokens are the team
// name. This handles multi-word locations ("New England", "Tampa Bay").
func (p *Parser) splitTeamPhrase(phrase string) (location, name string, ok bool) {
	tokens := strings.Fields(phrase)
	locations := p.teams.KnownLocations()
	for i := 1; i < len(tokens); i++ {
		candidate := strings.Join(tokens[:i], " ")
		j := sort.SearchStrings(locations, candidate)
		if j < len(locations) && locations[j] == candidate {
			return candidate, strings.Join(tokens[i:], " "), true
		}
	}
	return "", "", false
}

func parseOrdinal(s string) (int, error) {
	s = reOrdinalSuffix.ReplaceAllString(strings.TrimSpace(s), "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad ordinal %q", s)
	}
	return n, nil
}
