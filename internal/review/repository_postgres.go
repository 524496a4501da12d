package review

import (
	"database/sql"

	"github.com/buildware/market-backend/internal/pagination"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	// Author names come from a LEFT JOIN so a deleted user does not
	// break the read; COALESCE keeps the scan null-safe.
	listReviewsQuery = `
		SELECT r.id, r.product_id, r.rating, r.body,
		       COALESCE(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''),
		       r.created_at
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC, r.id ASC
		LIMIT $2 OFFSET $3
	`
	getReviewQuery = `
		SELECT r.id, r.product_id, r.rating, r.body,
		       COALESCE(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''),
		       r.created_at
		FROM reviews r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.id = $1
	`
	listCommentsQuery = `
		SELECT c.id, c.review_id, c.body,
		       COALESCE(TRIM(CONCAT(u.first_name, ' ', u.last_name)), ''),
		       c.created_at
		FROM comments c
		LEFT JOIN users u ON u.id = c.user_id
		WHERE c.review_id = $1
		ORDER BY c.created_at DESC, c.id ASC
		LIMIT $2 OFFSET $3
	`
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountByProduct(productID int) (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM reviews WHERE product_id = $1`, productID).Scan(&total)
	return total, err
}

func (r *PostgresRepository) ListByProduct(productID int, w pagination.Window) ([]Review, error) {
	rows, err := r.db.Query(listReviewsQuery, productID, w.Limit, w.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Review, 0)
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.Rating, &rv.Body, &rv.Author, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(id int) (Review, error) {
	var rv Review
	err := r.db.QueryRow(getReviewQuery, id).
		Scan(&rv.ID, &rv.ProductID, &rv.Rating, &rv.Body, &rv.Author, &rv.CreatedAt)
	if err == sql.ErrNoRows {
		return Review{}, ErrNotFound
	}
	if err != nil {
		return Review{}, err
	}
	return rv, nil
}

func (r *PostgresRepository) CountComments(reviewID int) (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM comments WHERE review_id = $1`, reviewID).Scan(&total)
	return total, err
}

func (r *PostgresRepository) ListComments(reviewID int, w pagination.Window) ([]Comment, error) {
	rows, err := r.db.Query(listCommentsQuery, reviewID, w.Limit, w.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Comment, 0)
	for rows.Next() {
		var cm Comment
		if err := rows.Scan(&cm.ID, &cm.ReviewID, &cm.Body, &cm.Author, &cm.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, cm)
	}
	return out, rows.Err()
}
