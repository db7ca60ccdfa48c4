package matching

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lettora/lettora-backend/internal/domain"
)

// Candidate is one scored entity awaiting ranking. The same shape serves both
// directions of the query: ID and CreatedAt belong to the iterated side
// (property or investor profile).
type Candidate struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Score     int
}

// Page is a ranked, paginated slice of candidates. Total counts everything
// that survived the minimum-score filter, before offset/limit, so callers can
// compute page counts.
type Page struct {
	Items []Candidate
	Total int
}

// Rank filters by q.MinScore, orders for total determinism (score descending,
// recency descending, id ascending) and then applies offset and limit. The
// input slice is not modified.
func Rank(candidates []Candidate, q domain.MatchQuery) Page {
	kept := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Score >= q.MinScore {
			kept = append(kept, c)
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		if !kept[i].CreatedAt.Equal(kept[j].CreatedAt) {
			return kept[i].CreatedAt.After(kept[j].CreatedAt)
		}
		return kept[i].ID.String() < kept[j].ID.String()
	})

	total := len(kept)
	if q.Offset >= total {
		return Page{Items: []Candidate{}, Total: total}
	}
	kept = kept[q.Offset:]
	if len(kept) > q.Limit {
		kept = kept[:q.Limit]
	}
	return Page{Items: kept, Total: total}
}
