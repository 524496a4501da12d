package store

import "database/sql"

type PostgresRepository struct {
	db *sql.DB
}

const (
	// storeLogo photos live in the shared photos table discriminated by
	// (owner_type, owner_id, role).
	listStoresQuery = `
		SELECT s.id, s.name, s.city, s.country, s.lat, s.lng, ph.path
		FROM stores s
		LEFT JOIN photos ph ON ph.owner_type = 'store' AND ph.owner_id = s.id AND ph.role = 'storeLogo'
		ORDER BY s.name, s.id
	`
	getStoreByIDQuery = `
		SELECT s.id, s.name, s.city, s.country, s.lat, s.lng, ph.path
		FROM stores s
		LEFT JOIN photos ph ON ph.owner_type = 'store' AND ph.owner_id = s.id AND ph.role = 'storeLogo'
		WHERE s.id = $1
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List() ([]Store, error) {
	rows, err := r.db.Query(listStoresQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Store, 0)
	for rows.Next() {
		s, err := scanStore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Store, error) {
	s, err := scanStore(r.db.QueryRow(getStoreByIDQuery, id))
	if err == sql.ErrNoRows {
		return Store{}, ErrNotFound
	}
	if err != nil {
		return Store{}, err
	}
	return s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStore(scanner rowScanner) (Store, error) {
	var (
		s    Store
		lat  sql.NullFloat64
		lng  sql.NullFloat64
		logo sql.NullString
	)
	if err := scanner.Scan(&s.ID, &s.Name, &s.City, &s.Country, &lat, &lng, &logo); err != nil {
		return Store{}, err
	}
	if lat.Valid {
		s.Lat = &lat.Float64
	}
	if lng.Valid {
		s.Lng = &lng.Float64
	}
	if logo.Valid {
		s.LogoPath = &logo.String
	}
	return s, nil
}
