package popular

import (
	"database/sql"

	"github.com/lib/pq"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	// Tie-break on product_id keeps equal purchase counts in a fixed
	// order across calls instead of the storage engine's default.
	topCountsQuery = `
		SELECT product_id, COUNT(*) AS purchases
		FROM payments
		GROUP BY product_id
		ORDER BY purchases DESC, product_id ASC
		LIMIT $1
	`
	catalogByIDsQuery = `
		SELECT p.id, p.name, p.size, p.price, p.description, p.brand_name,
		       (SELECT ph.path FROM photos ph
		        WHERE ph.owner_type = 'product' AND ph.owner_id = p.id AND ph.role = 'productImage'
		        ORDER BY ph.id LIMIT 1)
		FROM products p
		WHERE p.id = ANY($1)
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) TopProductCounts(n int) ([]ProductCount, error) {
	rows, err := r.db.Query(topCountsQuery, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ProductCount, 0, n)
	for rows.Next() {
		var pc ProductCount
		if err := rows.Scan(&pc.ProductID, &pc.Purchases); err != nil {
			return nil, err
		}
		out = append(out, pc)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CatalogByIDs(ids []int) (map[int]CatalogInfo, error) {
	if len(ids) == 0 {
		return map[int]CatalogInfo{}, nil
	}

	rows, err := r.db.Query(catalogByIDsQuery, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]CatalogInfo, len(ids))
	for rows.Next() {
		var (
			id    int
			info  CatalogInfo
			image sql.NullString
		)
		if err := rows.Scan(&id, &info.Name, &info.Size, &info.Price, &info.Description, &info.BrandName, &image); err != nil {
			return nil, err
		}
		if image.Valid {
			info.Image = &image.String
		}
		out[id] = info
	}
	return out, rows.Err()
}
