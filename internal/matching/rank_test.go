package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lettora/lettora-backend/internal/domain"
)

func candidate(id string, created time.Time, score int) Candidate {
	return Candidate{ID: uuid.MustParse(id), CreatedAt: created, Score: score}
}

var (
	older = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	newer = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	idA = "11111111-1111-1111-1111-111111111111"
	idB = "22222222-2222-2222-2222-222222222222"
	idC = "33333333-3333-3333-3333-333333333333"
	idD = "44444444-4444-4444-4444-444444444444"
)

func TestRankFiltersAndSorts(t *testing.T) {
	candidates := []Candidate{
		candidate(idA, older, 55),
		candidate(idB, older, 80),
		candidate(idC, newer, 80),
		candidate(idD, newer, 95),
	}

	page := Rank(candidates, domain.MatchQuery{MinScore: 60, Limit: 10, Offset: 0})

	require.Len(t, page.Items, 3)
	assert.Equal(t, 3, page.Total)
	// Score descending, then newer first.
	assert.Equal(t, uuid.MustParse(idD), page.Items[0].ID)
	assert.Equal(t, uuid.MustParse(idC), page.Items[1].ID)
	assert.Equal(t, uuid.MustParse(idB), page.Items[2].ID)
}

func TestRankTieBreaksByIDAscending(t *testing.T) {
	candidates := []Candidate{
		candidate(idB, older, 70),
		candidate(idA, older, 70),
	}

	page := Rank(candidates, domain.MatchQuery{MinScore: 0, Limit: 10, Offset: 0})

	require.Len(t, page.Items, 2)
	assert.Equal(t, uuid.MustParse(idA), page.Items[0].ID)
	assert.Equal(t, uuid.MustParse(idB), page.Items[1].ID)
}

func TestRankTotalCountedBeforePagination(t *testing.T) {
	candidates := []Candidate{
		candidate(idA, older, 90),
		candidate(idB, older, 85),
		candidate(idC, older, 80),
		candidate(idD, older, 40),
	}

	page := Rank(candidates, domain.MatchQuery{MinScore: 60, Limit: 1, Offset: 1})

	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, uuid.MustParse(idB), page.Items[0].ID)
}

func TestRankOffsetBeyondTotal(t *testing.T) {
	candidates := []Candidate{candidate(idA, older, 90)}

	page := Rank(candidates, domain.MatchQuery{MinScore: 0, Limit: 10, Offset: 5})

	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Total)
}

func TestRankMonotonicThreshold(t *testing.T) {
	candidates := []Candidate{
		candidate(idA, older, 10),
		candidate(idB, newer, 42),
		candidate(idC, older, 77),
		candidate(idD, newer, 100),
	}

	for k := 0; k < 100; k++ {
		loose := Rank(candidates, domain.MatchQuery{MinScore: k, Limit: 50, Offset: 0})
		strict := Rank(candidates, domain.MatchQuery{MinScore: k + 1, Limit: 50, Offset: 0})

		require.LessOrEqual(t, strict.Total, loose.Total)
		seen := make(map[uuid.UUID]bool, loose.Total)
		for _, c := range loose.Items {
			seen[c.ID] = true
		}
		for _, c := range strict.Items {
			assert.True(t, seen[c.ID], "minScore=%d result must be a subset of minScore=%d", k+1, k)
		}
	}
}

func TestRankPaginationConsistency(t *testing.T) {
	var candidates []Candidate
	for i := 0; i < 23; i++ {
		candidates = append(candidates, Candidate{
			ID:        uuid.New(),
			CreatedAt: older.Add(time.Duration(i) * time.Hour),
			Score:     (i * 7) % 101,
		})
	}

	full := Rank(candidates, domain.MatchQuery{MinScore: 30, Limit: len(candidates), Offset: 0})
	require.Equal(t, full.Total, len(full.Items))

	const limit = 5
	var pages []Candidate
	for offset := 0; offset < full.Total; offset += limit {
		page := Rank(candidates, domain.MatchQuery{MinScore: 30, Limit: limit, Offset: offset})
		assert.Equal(t, full.Total, page.Total)
		pages = append(pages, page.Items...)
	}

	assert.Equal(t, full.Items, pages, "concatenated pages reproduce the full list exactly once each")
}

func TestRankDoesNotMutateInput(t *testing.T) {
	candidates := []Candidate{
		candidate(idA, older, 10),
		candidate(idB, newer, 90),
	}

	Rank(candidates, domain.MatchQuery{MinScore: 0, Limit: 10, Offset: 0})

	assert.Equal(t, uuid.MustParse(idA), candidates[0].ID)
	assert.Equal(t, uuid.MustParse(idB), candidates[1].ID)
}
