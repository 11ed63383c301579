package pfr

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Scalar field parsers: each takes the raw rendered text and returns a
// typed optional value. Failures record a warning and yield "unknown";
// nothing here can abort a profile.

var (
	reYear = regexp.MustCompile(`\b(\d{4})\b`)
	wsRe   = regexp.MustCompile(`\s+`)
)

// ParseHeight parses the source's feet-inches rendering ("6-2") into
// total inches.
func ParseHeight(raw string, diag *Diagnostics) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		diag.Warnf("unparseable height %q", raw)
		return nil
	}
	feet, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	inches, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || feet < 0 || inches < 0 || inches > 11 {
		diag.Warnf("unparseable height %q", raw)
		return nil
	}
	total := feet*12 + inches
	return &total
}

// ParseWeight parses "210lb" (or a bare number) into pounds.
func ParseWeight(raw string, diag *Diagnostics) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	raw = strings.TrimSuffix(strings.ToLower(raw), "lbs")
	raw = strings.TrimSuffix(raw, "lb")
	lb, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || lb <= 0 {
		diag.Warnf("unparseable weight %q", raw)
		return nil
	}
	return &lb
}

// ParseBirthDate parses the ISO date carried on the birth element.
func ParseBirthDate(raw string, diag *Diagnostics) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		diag.Warnf("unparseable birth date %q", raw)
		return nil
	}
	return &t
}

// ParseHOFYear extracts the induction year from a Hall of Fame line
// such as "Inducted as Player in 1993".
func ParseHOFYear(raw string, diag *Diagnostics) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	m := reYear.FindStringSubmatch(raw)
	if m == nil {
		diag.Warnf("no induction year in %q", raw)
		return nil
	}
	year, _ := strconv.Atoi(m[1])
	return &year
}

// ParseCollege normalizes the college line, dropping the trailing
// stats-link rendering the source appends.
func ParseCollege(raw string) string {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, "(College Stats)"); i >= 0 {
		raw = raw[:i]
	}
	return wsRe.ReplaceAllString(strings.TrimSpace(raw), " ")
}

// atoiDefault is the counting-stat cell parser: blank or malformed
// cells fall back to the default rather than aborting the row.
func atoiDefault(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}

// atofDefault is atoiDefault for fractional stats (sacks, rating).
func atofDefault(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return f
}

// atoiPtr parses a cell whose absence means unknown, not zero
// (jersey number, approximate value).
func atoiPtr(s string) *int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &i
}
