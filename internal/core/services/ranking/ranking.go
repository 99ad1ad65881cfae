// Package ranking orders competition submissions with dense ranks.
package ranking

import (
	"sort"

	"gitlab.com/snapscape.net/internal/domain"
)

// Rank sorts submissions by average rating then rating count, both
// descending, and assigns dense ranks: tied pairs share a rank and the
// next distinct pair advances the rank by one. Unrated submissions count
// as rating 0. The input slice is left untouched.
func Rank(subs []domain.Submission) []domain.RankedSubmission {
	ranked := make([]domain.RankedSubmission, len(subs))
	for i, s := range subs {
		ranked[i] = domain.RankedSubmission{Submission: s}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Rating() != b.Rating() {
			return a.Rating() > b.Rating()
		}
		if a.RatingCount != b.RatingCount {
			return a.RatingCount > b.RatingCount
		}
		return a.ID < b.ID
	})

	rank := 0
	for i := range ranked {
		if i == 0 || !sameScore(ranked[i-1].Submission, ranked[i].Submission) {
			rank++
		}
		ranked[i].Rank = rank
	}

	return ranked
}

// Podium returns the ranked submissions at ranks 1 to 3. It is a view of
// the ranking, not of awarded medals: a bronze given to a user's best
// submission below rank 3 is stored as a result but does not appear here.
func Podium(ranked []domain.RankedSubmission) []domain.RankedSubmission {
	podium := make([]domain.RankedSubmission, 0)
	for _, r := range ranked {
		if r.Rank <= int(domain.PositionBronze) {
			podium = append(podium, r)
		}
	}
	return podium
}

// ByUser groups ranked submissions by their author, keeping rank order
func ByUser(ranked []domain.RankedSubmission) map[string][]domain.RankedSubmission {
	grouped := make(map[string][]domain.RankedSubmission)
	for _, r := range ranked {
		grouped[r.UserID] = append(grouped[r.UserID], r)
	}
	return grouped
}

func sameScore(a, b domain.Submission) bool {
	return a.Rating() == b.Rating() && a.RatingCount == b.RatingCount
}
