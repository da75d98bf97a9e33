package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type offerSeed struct {
	Type        string
	Name        string
	Description string
	Price       float64
}

type productSeed struct {
	Name        string
	Category    string
	Description string
	Price       float64
	OfferName   string
}

// Apply inserts sample offers and products for manual testing. Ids are
// store-assigned, so instead of upserting it bails out when offers already
// exist.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM offers`).Scan(&count); err != nil {
		return fmt.Errorf("count offers: %w", err)
	}
	if count > 0 {
		return nil
	}

	offers := []offerSeed{
		{Type: "Mobile", Name: "Mobile 5G 100GB", Description: "100GB of 5G data with unlimited calls", Price: 19.99},
		{Type: "Internet", Name: "Fiber 100", Description: "Fiber broadband, 100 Mbps down", Price: 29.99},
		{Type: "Professional", Name: "Business Connect", Description: "Dedicated line with priority support", Price: 79.99},
	}

	offerIDs := make(map[string]int64, len(offers))
	for _, o := range offers {
		id, err := insertOffer(ctx, pool, o)
		if err != nil {
			return fmt.Errorf("insert offer %s: %w", o.Name, err)
		}
		offerIDs[o.Name] = id
	}

	products := []productSeed{
		{Name: "Router AX3000", Category: "Hardware", Description: "Dual-band Wi-Fi 6 router", Price: 49.99, OfferName: "Fiber 100"},
		{Name: "SIM Starter Pack", Category: "Accessories", Description: "Prepaid SIM with activation", Price: 9.99, OfferName: "Mobile 5G 100GB"},
		{Name: "Desk Phone X200", Category: "Hardware", Description: "IP desk phone with HD voice", Price: 89.99, OfferName: "Business Connect"},
	}

	for _, p := range products {
		if err := insertProduct(ctx, pool, p, offerIDs[p.OfferName]); err != nil {
			return fmt.Errorf("insert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func insertOffer(ctx context.Context, pool *pgxpool.Pool, o offerSeed) (int64, error) {
	const q = `
INSERT INTO offers (type, name, description, price)
VALUES ($1, $2, $3, $4)
RETURNING id
`
	var id int64
	if err := pool.QueryRow(ctx, q, o.Type, o.Name, o.Description, o.Price).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func insertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed, offerID int64) error {
	const q = `
INSERT INTO products (name, category, description, price, offer_id)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Category, p.Description, p.Price, offerID)
	return err
}
