package pfr

import (
	"strings"
)

// PersonName is the transient result of decomposing a profile's
// rendered name strings. It is not persisted directly.
type PersonName struct {
	First    string
	Middle   string
	Last     string
	Suffix   string
	Nickname string
}

// Recognized generational suffix tokens; sorted at Parser construction
// for binary search. Compared case-insensitively.
var nameSuffixes = []string{
	"I", "II", "III", "IV", "V", "VI", "VII", "VIII",
	"JR", "JR.", "SR", "SR.",
}

// Tokens that may be absorbed into a compound last name when scanning
// backward, e.g. "Van Buren", "St. Clair". Lower-cased for lookup.
var lastNamePrefixes = []string{
	"de", "del", "della", "di", "la", "le", "little", "mc", "st.", "st",
	"van", "vander", "von",
}

// ParseName decomposes a full-name string plus the separately rendered
// nickname string. Any parenthesized segment in the full name (an
// inline nickname) is stripped first. Malformed input degrades to
// best-effort splitting; no failure is possible.
func (p *Parser) ParseName(fullName, nickname string) PersonName {
	full := strings.Fields(stripParens(fullName))
	nick := strings.Fields(nickname)

	// Some profiles render only a nickname; fall back to it.
	if len(full) == 0 {
		full = nick
	}

	var pn PersonName
	j := len(nick) - 1

	// consume advances the nickname scan in lock-step when its trailing
	// token matches the full-name token being consumed.
	consume := func(token string) {
		if j >= 0 && strings.EqualFold(nick[j], token) {
			j--
		}
	}

	if len(full) > 0 && p.isSuffix(full[len(full)-1]) {
		pn.Suffix = full[len(full)-1]
		full = full[:len(full)-1]
		consume(pn.Suffix)
	}

	switch {
	case len(full) == 0:
	case len(full) == 1:
		pn.Last = full[0]
		consume(full[0])
	default:
		i := len(full) - 1
		last := []string{full[i]}
		consume(full[i])
		i--
		// Absorb compound-surname prefixes, but only while the nickname
		// rendering agrees at the same backward offset; disagreement
		// means the token is really a middle or first name.
		for i > 0 && p.isLastNamePrefix(full[i]) && j >= 0 && strings.EqualFold(nick[j], full[i]) {
			last = append([]string{full[i]}, last...)
			j--
			i--
		}
		pn.Last = strings.Join(last, " ")

		var middle []string
		for ; i > 0; i-- {
			middle = append([]string{full[i]}, middle...)
			consume(full[i])
		}
		pn.Middle = strings.Join(middle, " ")

		pn.First = full[0]
		consume(full[0])
	}

	if j >= 0 {
		pn.Nickname = strings.Join(nick[:j+1], " ")
	}
	return pn
}

// stripParens removes parenthesized segments from a rendered name.
func stripParens(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
