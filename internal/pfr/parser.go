package pfr

import (
	"sort"
	"strings"

	"github.com/tyler180/pfr-player-ingest/internal/model"
)

// TeamDirectory resolves drafting teams and season team abbreviations
// against read-only franchise reference data. Implementations must be
// safe for concurrent reads.
type TeamDirectory interface {
	FindTeam(season int, league, location, name string) (model.Team, bool)
	FindTeamByExternalAbbrev(abbrev string, season int) (model.Team, bool)
	// KnownLocations returns every known team location, sorted.
	KnownLocations() []string
}

// Parser holds the immutable lookup tables (position aliases, name
// suffixes, last-name prefixes) and the team directory. All parse
// methods are read-only and safe to call concurrently.
type Parser struct {
	teams TeamDirectory

	aliases          map[string]model.Position
	suffixes         []string
	lastNamePrefixes map[string]bool
}

func NewParser(teams TeamDirectory) *Parser {
	p := &Parser{
		teams:            teams,
		aliases:          make(map[string]model.Position),
		lastNamePrefixes: make(map[string]bool),
	}
	for _, entry := range positionAliases {
		for _, a := range entry.aliases {
			p.aliases[a] = entry.pos
		}
	}
	p.suffixes = append(p.suffixes, nameSuffixes...)
	sort.Strings(p.suffixes)
	for _, pref := range lastNamePrefixes {
		p.lastNamePrefixes[pref] = true
	}
	return p
}

func (p *Parser) isSuffix(token string) bool {
	up := strings.ToUpper(token)
	i := sort.SearchStrings(p.suffixes, up)
	return i < len(p.suffixes) && p.suffixes[i] == up
}

func (p *Parser) isLastNamePrefix(token string) bool {
	return p.lastNamePrefixes[strings.ToLower(token)]
}
