package corridor

import "github.com/piwi3910/FloorFit/internal/model"

// prune removes corridors below the minimum length, then drops redundant
// overlapping corridors. Two corridors overlap when both endpoint pairs lie
// within the prune distance of each other. Mandatory corridors always win
// against non-mandatory ones; between two secondary corridors the longer
// one wins, with ties keeping the first-seen corridor. Mandatory corridors
// are never pruned against each other, so every mandatory corridor that
// passes the length filter survives.
func (g *Generator) prune(corridors []model.Corridor) []model.Corridor {
	var filtered []model.Corridor
	for _, c := range corridors {
		if c.Length >= g.Settings.MinCorridorLength {
			filtered = append(filtered, c)
		}
	}

	var kept []model.Corridor
	for _, c := range filtered {
		redundant := false
		for ki := 0; ki < len(kept); ki++ {
			k := kept[ki]
			if !g.overlapping(c, k) {
				continue
			}
			switch {
			case c.Mandatory && k.Mandatory:
				// Both required; keep both.
				continue
			case c.Mandatory:
				kept = append(kept[:ki], kept[ki+1:]...)
				ki--
			case k.Mandatory:
				redundant = true
			case c.Length > k.Length:
				kept = append(kept[:ki], kept[ki+1:]...)
				ki--
			default:
				redundant = true
			}
			if redundant {
				break
			}
		}
		if !redundant {
			kept = append(kept, c)
		}
	}
	return kept
}

// overlapping reports whether both endpoint pairs of the two corridors lie
// within the prune distance, in either orientation.
func (g *Generator) overlapping(a, b model.Corridor) bool {
	if len(a.Points) < 2 || len(b.Points) < 2 {
		return false
	}
	d := g.Settings.PruneDistance
	forward := model.Distance(a.Start(), b.Start()) < d && model.Distance(a.End(), b.End()) < d
	reverse := model.Distance(a.Start(), b.End()) < d && model.Distance(a.End(), b.Start()) < d
	return forward || reverse
}
