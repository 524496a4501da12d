package product

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/buildware/market-backend/internal/pagination"
	"github.com/buildware/market-backend/internal/query"
)

type PostgresRepository struct {
	db *sql.DB
}

const productColumns = `
	p.id, p.name, p.description, p.price, p.size, p.brand_name,
	p.quantity, p.store_id, s.name, p.created_at`

const productFrom = `
	FROM products p
	JOIN stores s ON s.id = p.store_id`

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Count(f Filter) (int, error) {
	where, args := query.Where(1, f.Conditions()...)
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*)`+productFrom+where, args...).Scan(&total)
	return total, err
}

func (r *PostgresRepository) List(f Filter, w pagination.Window) ([]Product, error) {
	where, args := query.Where(1, f.Conditions()...)
	n := len(args)
	// ascending id as secondary key keeps pages deterministic under
	// equal timestamps
	q := fmt.Sprintf(`SELECT%s%s%s ORDER BY p.created_at DESC, p.id ASC LIMIT $%d OFFSET $%d`,
		productColumns, productFrom, where, n+1, n+2)
	args = append(args, w.Limit, w.Offset)

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return r.attachImages(out)
}

func (r *PostgresRepository) GetByID(id int) (Product, error) {
	p, err := scanProduct(r.db.QueryRow(`SELECT`+productColumns+productFrom+` WHERE p.id = $1`, id))
	if err == sql.ErrNoRows {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}
	enriched, err := r.attachImages([]Product{p})
	if err != nil {
		return Product{}, err
	}
	return enriched[0], nil
}

// attachImages fetches productImage photos for the whole page in one
// batched query instead of one query per row.
func (r *PostgresRepository) attachImages(products []Product) ([]Product, error) {
	for i := range products {
		products[i].Images = []string{}
	}
	if len(products) == 0 {
		return products, nil
	}

	ids := make([]int, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}

	rows, err := r.db.Query(`
		SELECT owner_id, path FROM photos
		WHERE owner_type = 'product' AND role = 'productImage' AND owner_id = ANY($1)
		ORDER BY owner_id, id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := map[int][]string{}
	for rows.Next() {
		var ownerID int
		var path string
		if err := rows.Scan(&ownerID, &path); err != nil {
			return nil, err
		}
		images[ownerID] = append(images[ownerID], path)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range products {
		if paths, ok := images[products[i].ID]; ok {
			products[i].Images = paths
		}
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(scanner rowScanner) (Product, error) {
	var p Product
	if err := scanner.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Size,
		&p.BrandName,
		&p.Quantity,
		&p.StoreID,
		&p.StoreName,
		&p.CreatedAt,
	); err != nil {
		return Product{}, err
	}
	return p, nil
}
