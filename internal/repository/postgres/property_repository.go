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

type propertyRepository struct {
	db *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) repository.PropertyRepository {
	return &propertyRepository{db: db}
}

const propertyColumns = `
	id, landlord_id, title, status, price_monthly, bedrooms,
	property_type, city, postcode, amenities, created_at, updated_at
`

func (r *propertyRepository) Create(ctx context.Context, p *domain.Property) error {
	query := `
		INSERT INTO properties (
			id, landlord_id, title, status, price_monthly, bedrooms,
			property_type, city, postcode, amenities
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		p.ID, p.LandlordID, p.Title, p.Status, p.PriceMonthly, p.Bedrooms,
		p.PropertyType, p.City, p.Postcode, pq.Array(p.Amenities),
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *propertyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *propertyRepository) List(ctx context.Context, status *domain.PropertyStatus, limit, offset int) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties`
	args := []interface{}{}
	if status != nil {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProperties(rows)
}

func (r *propertyRepository) ListActive(ctx context.Context) ([]*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE status = $1`
	rows, err := r.db.QueryContext(ctx, query, domain.PropertyStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProperties(rows)
}

func (r *propertyRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PropertyStatus) error {
	query := `
		UPDATE properties
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.ID, &p.LandlordID, &p.Title, &p.Status, &p.PriceMonthly, &p.Bedrooms,
		&p.PropertyType, &p.City, &p.Postcode, pq.Array(&p.Amenities),
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProperties(rows *sql.Rows) ([]*domain.Property, error) {
	var properties []*domain.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}
