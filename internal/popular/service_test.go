package popular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledger(counts map[int]int) []int {
	out := make([]int, 0)
	for id, n := range counts {
		for i := 0; i < n; i++ {
			out = append(out, id)
		}
	}
	return out
}

func TestTop_RanksByPurchaseCount(t *testing.T) {
	repo := NewInMemoryRepository(
		ledger(map[int]int{1: 2, 2: 7, 3: 4}),
		map[int]CatalogInfo{
			1: {Name: "Hammer", Price: 25},
			2: {Name: "Work Boot", Price: 80},
			3: {Name: "Rain Coat", Price: 60},
		},
	)
	items, err := NewService(repo).Top(10)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Work Boot", items[0].Name)
	assert.Equal(t, 7, items[0].Purchases)
	assert.Equal(t, "Rain Coat", items[1].Name)
	assert.Equal(t, "Hammer", items[2].Name)
}

func TestTop_TieBreakIsDeterministic(t *testing.T) {
	// counts {A:5, B:5, C:3} must order A before B on every call
	repo := NewInMemoryRepository(
		ledger(map[int]int{1: 5, 2: 5, 3: 3}),
		map[int]CatalogInfo{1: {Name: "A"}, 2: {Name: "B"}, 3: {Name: "C"}},
	)
	svc := NewService(repo)

	first, err := svc.Top(10)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := svc.Top(10)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, "A", first[0].Name)
	assert.Equal(t, "B", first[1].Name)
	assert.Equal(t, "C", first[2].Name)
}

func TestTop_DropsDanglingReferences(t *testing.T) {
	// product 9 was deleted after its payments were recorded
	repo := NewInMemoryRepository(
		ledger(map[int]int{9: 10, 1: 3}),
		map[int]CatalogInfo{1: {Name: "Hammer"}},
	)
	items, err := NewService(repo).Top(10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Hammer", items[0].Name)
}

func TestTop_EmptyLedger(t *testing.T) {
	repo := NewInMemoryRepository(nil, nil)
	items, err := NewService(repo).Top(10)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestTop_LimitsToN(t *testing.T) {
	repo := NewInMemoryRepository(
		ledger(map[int]int{1: 5, 2: 4, 3: 3, 4: 2}),
		map[int]CatalogInfo{1: {}, 2: {}, 3: {}, 4: {}},
	)
	items, err := NewService(repo).Top(2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 2, items[1].ProductID)
}
