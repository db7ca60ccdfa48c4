package property

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lettora/lettora-backend/internal/domain"
)

type fakePropertyRepo struct {
	byID map[uuid.UUID]*domain.Property
}

func newFakePropertyRepo() *fakePropertyRepo {
	return &fakePropertyRepo{byID: make(map[uuid.UUID]*domain.Property)}
}

func (f *fakePropertyRepo) Create(_ context.Context, p *domain.Property) error {
	f.byID[p.ID] = p
	return nil
}

func (f *fakePropertyRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Property, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePropertyRepo) List(_ context.Context, status *domain.PropertyStatus, limit, offset int) ([]*domain.Property, error) {
	var out []*domain.Property
	for _, p := range f.byID {
		if status == nil || p.Status == *status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) ListActive(_ context.Context) ([]*domain.Property, error) {
	active := domain.PropertyStatusActive
	return f.List(context.Background(), &active, 0, 0)
}

func (f *fakePropertyRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.PropertyStatus) error {
	p, ok := f.byID[id]
	if !ok {
		return domain.ErrPropertyNotFound
	}
	p.Status = status
	return nil
}

func TestCreateStartsPending(t *testing.T) {
	uc := NewUseCase(newFakePropertyRepo(), zap.NewNop())

	created, err := uc.Create(context.Background(), uuid.New(), &CreatePropertyRequest{
		Title:        "Two-bed flat in Leeds",
		PriceMonthly: 120_000,
		Bedrooms:     2,
		PropertyType: "flat",
		City:         "Leeds",
		Postcode:     "LS1 4AP",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyStatusPending, created.Status, "new listings do not enter matching until approved")
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	repo := newFakePropertyRepo()
	uc := NewUseCase(repo, zap.NewNop())

	created, err := uc.Create(context.Background(), uuid.New(), &CreatePropertyRequest{
		Title:        "Two-bed flat in Leeds",
		PriceMonthly: 120_000,
		PropertyType: "flat",
		City:         "Leeds",
		Postcode:     "LS1 4AP",
	})
	require.NoError(t, err)

	activated, err := uc.UpdateStatus(context.Background(), created.ID, domain.PropertyStatusActive)
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyStatusActive, activated.Status)

	archived, err := uc.UpdateStatus(context.Background(), created.ID, domain.PropertyStatusArchived)
	require.NoError(t, err)
	assert.Equal(t, domain.PropertyStatusArchived, archived.Status)

	_, err = uc.UpdateStatus(context.Background(), created.ID, domain.PropertyStatusActive)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition, "archived is terminal")
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	uc := NewUseCase(newFakePropertyRepo(), zap.NewNop())

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), domain.PropertyStatus("haunted"))
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestUpdateStatusNotFound(t *testing.T) {
	uc := NewUseCase(newFakePropertyRepo(), zap.NewNop())

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), domain.PropertyStatusActive)
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestListNormalisesPaging(t *testing.T) {
	repo := newFakePropertyRepo()
	uc := NewUseCase(repo, zap.NewNop())

	_, err := uc.List(context.Background(), ListPropertiesQuery{Limit: -5, Offset: -1})
	require.NoError(t, err)
}
