package achievement

import "gitlab.com/snapscape.net/internal/domain"

type selection struct {
	position       domain.Position
	representative domain.RankedSubmission
}

// selectMedals picks at most one representative submission per medal
// position from a single user's ranked submissions.
//
// A position is filled by the user's submissions at exactly that dense
// rank. Only bronze falls back: when nothing sits at rank 3 it takes the
// best ranked submission not already considered for gold or silver.
func selectMedals(userSubs []domain.RankedSubmission) []selection {
	considered := make(map[string]bool)
	selections := make([]selection, 0, len(domain.Positions))

	for _, position := range domain.Positions {
		matches := make([]domain.RankedSubmission, 0)
		for _, s := range userSubs {
			if s.Rank == int(position) {
				matches = append(matches, s)
			}
		}

		if len(matches) > 0 {
			best := matches[0]
			for _, m := range matches {
				considered[m.ID] = true
				if higherRated(m, best) {
					best = m
				}
			}
			selections = append(selections, selection{position: position, representative: best})
			continue
		}

		if position != domain.PositionBronze {
			continue
		}

		var fallback *domain.RankedSubmission
		for i := range userSubs {
			s := userSubs[i]
			if considered[s.ID] {
				continue
			}
			if fallback == nil || betterRanked(s, *fallback) {
				fallback = &userSubs[i]
			}
		}
		if fallback != nil {
			selections = append(selections, selection{position: position, representative: *fallback})
		}
	}

	return selections
}

func higherRated(a, b domain.RankedSubmission) bool {
	if a.Rating() != b.Rating() {
		return a.Rating() > b.Rating()
	}
	return a.ID < b.ID
}

func betterRanked(a, b domain.RankedSubmission) bool {
	if a.Rank != b.Rank {
		return a.Rank < b.Rank
	}
	return higherRated(a, b)
}
