package preference

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lettora/lettora-backend/internal/domain"
)

type fakePreferenceRepo struct {
	active map[uuid.UUID]*domain.PreferenceProfile
	// retired counts deactivated predecessors per investor.
	retired map[uuid.UUID]int
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{
		active:  make(map[uuid.UUID]*domain.PreferenceProfile),
		retired: make(map[uuid.UUID]int),
	}
}

func (f *fakePreferenceRepo) GetActiveByInvestorID(_ context.Context, investorID uuid.UUID) (*domain.PreferenceProfile, error) {
	p, ok := f.active[investorID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (f *fakePreferenceRepo) Upsert(_ context.Context, profile *domain.PreferenceProfile) error {
	if _, ok := f.active[profile.InvestorID]; ok {
		f.retired[profile.InvestorID]++
	}
	profile.IsActive = true
	f.active[profile.InvestorID] = profile
	return nil
}

func (f *fakePreferenceRepo) ListActive(_ context.Context) ([]*domain.PreferenceProfile, error) {
	out := make([]*domain.PreferenceProfile, 0, len(f.active))
	for _, p := range f.active {
		out = append(out, p)
	}
	return out, nil
}

func TestUpsertBuildsCriteria(t *testing.T) {
	repo := newFakePreferenceRepo()
	uc := NewUseCase(repo, zap.NewNop())
	investorID := uuid.New()

	profile, err := uc.Upsert(context.Background(), investorID, &UpsertPreferencesRequest{
		PriceRange:    &PriceRangeRequest{Min: 100_000, Max: 150_000},
		BedroomsRange: &BedroomsRangeRequest{Min: 2, Max: 3},
		PropertyTypes: []string{"flat", "hmo"},
		Locations:     []string{"leeds", "LS1"},
		Amenities:     []string{"garden"},
	})
	require.NoError(t, err)

	assert.True(t, profile.IsActive)
	assert.Equal(t, investorID, profile.InvestorID)
	require.NotNil(t, profile.Criteria.PriceRange)
	assert.Equal(t, int64(100_000), profile.Criteria.PriceRange.Min)
	require.NotNil(t, profile.Criteria.BedroomsRange)
	assert.Equal(t, 3, profile.Criteria.BedroomsRange.Max)
	assert.False(t, profile.Criteria.IsEmpty())
}

func TestUpsertAllowsEmptyCriteria(t *testing.T) {
	uc := NewUseCase(newFakePreferenceRepo(), zap.NewNop())

	profile, err := uc.Upsert(context.Background(), uuid.New(), &UpsertPreferencesRequest{})
	require.NoError(t, err)
	assert.True(t, profile.Criteria.IsEmpty(), "unconfigured profile is legal, it just never matches")
}

func TestUpsertRejectsInvertedRanges(t *testing.T) {
	uc := NewUseCase(newFakePreferenceRepo(), zap.NewNop())

	_, err := uc.Upsert(context.Background(), uuid.New(), &UpsertPreferencesRequest{
		PriceRange: &PriceRangeRequest{Min: 150_000, Max: 100_000},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCriteria)

	_, err = uc.Upsert(context.Background(), uuid.New(), &UpsertPreferencesRequest{
		BedroomsRange: &BedroomsRangeRequest{Min: 3, Max: 2},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCriteria)
}

func TestUpsertReplacesActiveProfile(t *testing.T) {
	repo := newFakePreferenceRepo()
	uc := NewUseCase(repo, zap.NewNop())
	investorID := uuid.New()

	first, err := uc.Upsert(context.Background(), investorID, &UpsertPreferencesRequest{
		PropertyTypes: []string{"flat"},
	})
	require.NoError(t, err)

	second, err := uc.Upsert(context.Background(), investorID, &UpsertPreferencesRequest{
		PropertyTypes: []string{"house"},
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.retired[investorID], "predecessor was deactivated")

	current, err := uc.GetActive(context.Background(), investorID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
}

func TestGetActiveNotFound(t *testing.T) {
	uc := NewUseCase(newFakePreferenceRepo(), zap.NewNop())

	_, err := uc.GetActive(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
