package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lettora/lettora-backend/internal/domain"
	"github.com/lettora/lettora-backend/internal/repository"
)

type preferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

const preferenceColumns = `
	id, investor_id, is_active,
	price_min, price_max, bedrooms_min, bedrooms_max,
	property_types, locations, amenities,
	created_at, updated_at
`

func (r *preferenceRepository) GetActiveByInvestorID(ctx context.Context, investorID uuid.UUID) (*domain.PreferenceProfile, error) {
	query := `SELECT ` + preferenceColumns + ` FROM preference_profiles WHERE investor_id = $1 AND is_active`
	p, err := scanPreferenceProfile(r.db.QueryRowContext(ctx, query, investorID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, profile *domain.PreferenceProfile) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// At most one active profile per investor: retire the predecessor first.
	if _, err := tx.ExecContext(ctx,
		`UPDATE preference_profiles SET is_active = FALSE, updated_at = CURRENT_TIMESTAMP
		 WHERE investor_id = $1 AND is_active`,
		profile.InvestorID,
	); err != nil {
		return fmt.Errorf("deactivate previous profile: %w", err)
	}

	query := `
		INSERT INTO preference_profiles (
			id, investor_id, is_active,
			price_min, price_max, bedrooms_min, bedrooms_max,
			property_types, locations, amenities
		)
		VALUES ($1, $2, TRUE, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`
	var priceMin, priceMax *int64
	if pr := profile.Criteria.PriceRange; pr != nil {
		priceMin, priceMax = &pr.Min, &pr.Max
	}
	var bedsMin, bedsMax *int
	if br := profile.Criteria.BedroomsRange; br != nil {
		bedsMin, bedsMax = &br.Min, &br.Max
	}
	if err := tx.QueryRowContext(
		ctx, query,
		profile.ID, profile.InvestorID,
		priceMin, priceMax, bedsMin, bedsMax,
		pq.Array(profile.Criteria.PropertyTypes),
		pq.Array(profile.Criteria.Locations),
		pq.Array(profile.Criteria.Amenities),
	).Scan(&profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	profile.IsActive = true

	return tx.Commit()
}

func (r *preferenceRepository) ListActive(ctx context.Context) ([]*domain.PreferenceProfile, error) {
	query := `SELECT ` + preferenceColumns + ` FROM preference_profiles WHERE is_active`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*domain.PreferenceProfile
	for rows.Next() {
		p, err := scanPreferenceProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func scanPreferenceProfile(row rowScanner) (*domain.PreferenceProfile, error) {
	var (
		p                  domain.PreferenceProfile
		priceMin, priceMax *int64
		bedsMin, bedsMax   *int
	)
	err := row.Scan(
		&p.ID, &p.InvestorID, &p.IsActive,
		&priceMin, &priceMax, &bedsMin, &bedsMax,
		pq.Array(&p.Criteria.PropertyTypes),
		pq.Array(&p.Criteria.Locations),
		pq.Array(&p.Criteria.Amenities),
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if priceMin != nil && priceMax != nil {
		p.Criteria.PriceRange = &domain.PriceRange{Min: *priceMin, Max: *priceMax}
	}
	if bedsMin != nil && bedsMax != nil {
		p.Criteria.BedroomsRange = &domain.BedroomsRange{Min: *bedsMin, Max: *bedsMax}
	}
	return &p, nil
}
