package pfr

import (
	"fmt"
	"log/slog"
)

// Diagnostics collects field-level parse warnings so parser behavior is
// observable in tests without capturing log output. The orchestrator
// logs the collected warnings once per profile.
type Diagnostics struct {
	Warnings []string
}

func (d *Diagnostics) Warnf(format string, args ...any) {
	d.Warnings = append(d.Warnings, fmt.Sprintf(format, args...))
}

// Log emits every collected warning for one source URL.
func (d *Diagnostics) Log(url string) {
	for _, w := range d.Warnings {
		slog.Warn("parse warning", "url", url, "warning", w)
	}
}
