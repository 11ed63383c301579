package model

// MergeAggregate folds freshly parsed data into an existing aggregate
// and returns the merged result. Scalar fields are overwritten
// unconditionally; each collection is replaced wholesale by the parsed
// members (keyed ownership is rewritten to the aggregate's identity),
// so the merged collections equal exactly what was parsed this run.
// Members of the existing aggregate with no counterpart in the parsed
// data are dropped, not accumulated.
//
// existing may be nil only in the sense of a zero-value aggregate that
// carries just ID and ExternalID; parsed carries no identity of its own.
func MergeAggregate(existing, parsed *Player) *Player {
	merged := &Player{
		ID:         existing.ID,
		ExternalID: existing.ExternalID,

		FirstName:  parsed.FirstName,
		MiddleName: parsed.MiddleName,
		LastName:   parsed.LastName,
		Suffix:     parsed.Suffix,
		Nickname:   parsed.Nickname,
		HeightIn:   parsed.HeightIn,
		WeightLb:   parsed.WeightLb,
		BirthDate:  parsed.BirthDate,
		College:    parsed.College,
		HOFYear:    parsed.HOFYear,
	}

	merged.Positions = mergePositions(parsed.Positions)
	merged.DraftPicks = mergeDraftPicks(merged.ID, existing.DraftPicks, parsed.DraftPicks)
	merged.Seasons = mergeSeasons(merged.ID, existing.Seasons, parsed.Seasons)
	return merged
}

func mergePositions(parsed []Position) []Position {
	out := make([]Position, 0, len(parsed))
	seen := make(map[Position]bool, len(parsed))
	for _, p := range parsed {
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// mergeDraftPicks keeps per-pick identity stable across runs: when the
// parsed data carries a pick whose (league, year) key was already known,
// the known member is updated in place rather than re-created.
func mergeDraftPicks(playerID string, existing, parsed []DraftPick) []DraftPick {
	known := make(map[DraftKey]DraftPick, len(existing))
	for _, d := range existing {
		d.PlayerID = playerID
		known[d.Key()] = d
	}

	out := make([]DraftPick, 0, len(parsed))
	seen := make(map[DraftKey]bool, len(parsed))
	for _, d := range parsed {
		d.PlayerID = playerID
		k := d.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		if old, ok := known[k]; ok {
			old.FranchiseID = d.FranchiseID
			old.Round = d.Round
			old.Slot = d.Slot
			old.Supplemental = d.Supplemental
			out = append(out, old)
			continue
		}
		out = append(out, d)
	}
	return out
}

func mergeSeasons(playerID string, existing, parsed []PlayerSeason) []PlayerSeason {
	out := make([]PlayerSeason, 0, len(parsed))
	seen := make(map[SeasonKey]bool, len(parsed))
	for _, s := range parsed {
		s.PlayerID = playerID
		k := s.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}
