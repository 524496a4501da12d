package popular

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestTopProductCounts_OrderedQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"product_id", "purchases"}).
		AddRow(2, 7).
		AddRow(5, 7).
		AddRow(1, 3)
	mock.ExpectQuery(`ORDER BY purchases DESC, product_id ASC`).
		WithArgs(10).
		WillReturnRows(rows)

	counts, err := repo.TopProductCounts(10)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(counts) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(counts))
	}
	if counts[0].ProductID != 2 || counts[1].ProductID != 5 {
		t.Fatalf("rank order not preserved: %#v", counts)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCatalogByIDs_EmptyInput(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// no ids, no query
	out, err := repo.CatalogByIDs(nil)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty map, got %#v", out)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCatalogByIDs_BatchedLookup(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "size", "price", "description", "brand_name", "path"}).
		AddRow(2, "Work Boot", "43", 80.0, "Steel toe", "Titan", "/photos/boot.jpg").
		AddRow(1, "Hammer", "", 25.0, "Claw hammer", "Forge", nil)
	mock.ExpectQuery(`WHERE p.id = ANY\(\$1\)`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	out, err := repo.CatalogByIDs([]int{2, 1})
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[2].Image == nil || *out[2].Image != "/photos/boot.jpg" {
		t.Fatalf("expected boot image, got %#v", out[2].Image)
	}
	if out[1].Image != nil {
		t.Fatalf("expected no image for hammer, got %v", *out[1].Image)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
