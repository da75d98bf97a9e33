package offer

import (
	"context"
	"errors"
	"io"
	"log"

	"telecom-catalog/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const offerColumns = `id, type, name, COALESCE(description, ''), price::float8`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Offer, error) {
	const q = `
SELECT ` + offerColumns + `
FROM offers
ORDER BY id ASC
`
	return r.queryOffers(ctx, q)
}

func (r *postgresRepo) ListByType(ctx context.Context, offerType string) ([]domain.Offer, error) {
	const q = `
SELECT ` + offerColumns + `
FROM offers
WHERE type = $1
ORDER BY id ASC
`
	return r.queryOffers(ctx, q, offerType)
}

func (r *postgresRepo) queryOffers(ctx context.Context, q string, args ...interface{}) ([]domain.Offer, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("offer repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Offer
	for rows.Next() {
		var o domain.Offer
		if err := rows.Scan(&o.ID, &o.Type, &o.Name, &o.Description, &o.Price); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("offer repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Offer, error) {
	const q = `
SELECT ` + offerColumns + `
FROM offers
WHERE id = $1
`
	var o domain.Offer
	err := r.pool.QueryRow(ctx, q, id).Scan(&o.ID, &o.Type, &o.Name, &o.Description, &o.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("offer repo: get id=%d error=%v", id, err)
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Offer) (*domain.Offer, error) {
	const q = `
INSERT INTO offers (type, name, description, price)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	err := r.pool.QueryRow(ctx, q, o.Type, o.Name, o.Description, o.Price).Scan(&o.ID)
	if err != nil {
		r.logger.Printf("offer repo: create name=%q error=%v", o.Name, err)
		return nil, err
	}
	r.logger.Printf("offer repo: created id=%d type=%s", o.ID, o.Type)
	return &o, nil
}

func (r *postgresRepo) Update(ctx context.Context, o domain.Offer) (*domain.Offer, error) {
	const q = `
UPDATE offers
SET type = $2, name = $3, description = $4, price = $5
WHERE id = $1
RETURNING id
`
	err := r.pool.QueryRow(ctx, q, o.ID, o.Type, o.Name, o.Description, o.Price).Scan(&o.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("offer repo: update id=%d error=%v", o.ID, err)
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM offers WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		r.logger.Printf("offer repo: delete id=%d error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("offer repo: deleted id=%d", id)
	return nil
}
