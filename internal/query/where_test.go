package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhere_Empty(t *testing.T) {
	clause, args := Where(1)
	assert.Empty(t, clause)
	assert.Empty(t, args)
}

func TestWhere_SingleCondition(t *testing.T) {
	clause, args := Where(1, Eq("store_id", 3))
	assert.Equal(t, " WHERE store_id = $1", clause)
	assert.Equal(t, []any{3}, args)
}

func TestWhere_MultipleConditions(t *testing.T) {
	clause, args := Where(1, Gte("price", 10.0), Lte("price", 50.0))
	assert.Equal(t, " WHERE price >= $1 AND price <= $2", clause)
	assert.Equal(t, []any{10.0, 50.0}, args)
}

func TestWhere_StartIndexOffset(t *testing.T) {
	clause, args := Where(3, Eq("category_id", 7))
	assert.Equal(t, " WHERE category_id = $3", clause)
	assert.Equal(t, []any{7}, args)
}

func TestWhere_ILikeWrapsTerm(t *testing.T) {
	clause, args := Where(1, ILike("name", "boot"))
	assert.Equal(t, " WHERE name ILIKE $1", clause)
	assert.Equal(t, []any{"%boot%"}, args)
}

func TestWhere_Exists(t *testing.T) {
	clause, args := Where(1, Exists(
		"SELECT 1 FROM product_categories pc WHERE pc.product_id = p.id AND pc.category_id = $%d", 9,
	))
	assert.Equal(t, " WHERE EXISTS (SELECT 1 FROM product_categories pc WHERE pc.product_id = p.id AND pc.category_id = $1)", clause)
	assert.Equal(t, []any{9}, args)
}
