package product

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

// Reads resolve the associated offer with a LEFT JOIN: there is no FK on
// offer_id, so the offer columns come back NULL once the offer is deleted.
const selectProducts = `
SELECT p.id, p.name, p.category, COALESCE(p.description, ''), p.price::float8, COALESCE(p.image_url, ''),
       o.id, o.type, o.name, o.description, o.price::float8
FROM products p
LEFT JOIN offers o ON o.id = p.offer_id
`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = selectProducts + `ORDER BY p.id ASC`
	return r.queryProducts(ctx, q)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	const q = selectProducts + `WHERE p.category = $1 ORDER BY p.id ASC`
	return r.queryProducts(ctx, q, category)
}

func (r *postgresRepo) ListByOfferID(ctx context.Context, offerID int64) ([]domain.Product, error) {
	const q = selectProducts + `WHERE p.offer_id = $1 ORDER BY p.id ASC`
	return r.queryProducts(ctx, q, offerID)
}

func (r *postgresRepo) queryProducts(ctx context.Context, q string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("product repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const q = selectProducts + `WHERE p.id = $1`
	rows, err := r.pool.Query(ctx, q, id)
	if err != nil {
		r.logger.Printf("product repo: get id=%d error=%v", id, err)
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrNotFound
	}
	return scanProduct(rows)
}

func scanProduct(rows pgx.Rows) (*domain.Product, error) {
	var (
		p         domain.Product
		offerID   *int64
		offerType *string
		offerName *string
		offerDesc *string
		offerPrc  *float64
	)
	if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &p.Price, &p.ImageURL,
		&offerID, &offerType, &offerName, &offerDesc, &offerPrc); err != nil {
		return nil, err
	}
	if offerID != nil {
		o := domain.Offer{
			ID:          *offerID,
			Type:        deref(offerType),
			Name:        deref(offerName),
			Description: deref(offerDesc),
		}
		if offerPrc != nil {
			o.Price = *offerPrc
		}
		p.Offer = &o
	}
	return &p, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, category, description, price, image_url, offer_id)
VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
RETURNING id
`
	err := r.pool.QueryRow(ctx, q, p.Name, p.Category, p.Description, p.Price, p.ImageURL, offerIDOf(p)).Scan(&p.ID)
	if err != nil {
		r.logger.Printf("product repo: create name=%q error=%v", p.Name, err)
		return nil, err
	}
	r.logger.Printf("product repo: created id=%d category=%s", p.ID, p.Category)
	return &p, nil
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $2, category = $3, description = $4, price = $5, image_url = NULLIF($6, ''), offer_id = $7
WHERE id = $1
RETURNING id
`
	err := r.pool.QueryRow(ctx, q, p.ID, p.Name, p.Category, p.Description, p.Price, p.ImageURL, offerIDOf(p)).Scan(&p.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("product repo: update id=%d error=%v", p.ID, err)
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM products WHERE id = $1`
	tag, err := r.pool.Exec(ctx, q, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%d error=%v", id, err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("product repo: deleted id=%d", id)
	return nil
}

func offerIDOf(p domain.Product) *int64 {
	if p.Offer == nil || p.Offer.ID == 0 {
		return nil
	}
	id := p.Offer.ID
	return &id
}
