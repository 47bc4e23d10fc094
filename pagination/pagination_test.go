package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestNewComputesMetadata(t *testing.T) {
	pg, err := New(2, 10, 25)
	require.NoError(t, err)

	assert.Equal(t, 10, pg.Skip())
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNextPage)
	assert.True(t, pg.HasPrevPage)
	assert.Equal(t, int64(25), pg.TotalItems)
}

func TestNewFirstAndLastPage(t *testing.T) {
	first, err := New(1, 10, 25)
	require.NoError(t, err)
	assert.Equal(t, 0, first.Skip())
	assert.True(t, first.HasNextPage)
	assert.False(t, first.HasPrevPage)

	last, err := New(3, 10, 25)
	require.NoError(t, err)
	assert.Equal(t, 20, last.Skip())
	assert.False(t, last.HasNextPage)
	assert.True(t, last.HasPrevPage)
}

func TestNewEmptyCollection(t *testing.T) {
	pg, err := New(1, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, 0, pg.TotalPages)
	assert.False(t, pg.HasNextPage)
	assert.False(t, pg.HasPrevPage)
}

func TestNewRejectsInvalidInput(t *testing.T) {
	cases := []struct {
		page, limit int
		totalItems  int64
	}{
		{0, 10, 5},
		{-1, 10, 5},
		{1, 0, 5},
		{1, -3, 5},
		{1, 10, -1},
	}

	for _, tc := range cases {
		_, err := New(tc.page, tc.limit, tc.totalItems)
		assert.Error(t, err, "page=%d limit=%d total=%d", tc.page, tc.limit, tc.totalItems)
		assert.IsType(t, ErrInvalidParams{}, err)
	}
}

func TestNewAlgebra(t *testing.T) {
	// skip, totalPages and hasNextPage hold their defining relations across a
	// spread of inputs
	for page := 1; page <= 7; page++ {
		for limit := 1; limit <= 13; limit += 3 {
			for total := int64(0); total <= 40; total += 7 {
				pg, err := New(page, limit, total)
				require.NoError(t, err)

				assert.Equal(t, (page-1)*limit, pg.Skip())
				assert.Equal(t, int((total+int64(limit)-1)/int64(limit)), pg.TotalPages)
				assert.Equal(t, int64(page*limit) < total, pg.HasNextPage)
				assert.Equal(t, page > 1, pg.HasPrevPage)
			}
		}
	}
}

type listItem struct {
	ID   uint
	Name string
	Rank int
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	// a second pooled connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&listItem{}))
	return db
}

func TestListPaginatesQuery(t *testing.T) {
	db := newTestDB(t)

	for i := 1; i <= 25; i++ {
		require.NoError(t, db.Create(&listItem{Name: fmt.Sprintf("item-%02d", i), Rank: i}).Error)
	}

	var items []listItem
	res, err := List(db.Model(&listItem{}).Where("rank > ?", 5), "rank asc", 2, 10, &items)
	require.NoError(t, err)

	assert.Equal(t, int64(20), res.Pagination.TotalItems)
	assert.Equal(t, 2, res.Pagination.TotalPages)
	assert.False(t, res.Pagination.HasNextPage)
	assert.True(t, res.Pagination.HasPrevPage)
	require.Len(t, items, 10)
	assert.Equal(t, "item-16", items[0].Name)
	assert.Equal(t, "item-25", items[9].Name)
}

func TestListRejectsBadParamsBeforeScan(t *testing.T) {
	db := newTestDB(t)

	var items []listItem
	_, err := List(db.Model(&listItem{}), "rank asc", 0, 10, &items)
	assert.IsType(t, ErrInvalidParams{}, err)

	_, err = List(db.Model(&listItem{}), "rank asc", 1, 0, &items)
	assert.IsType(t, ErrInvalidParams{}, err)
	assert.Empty(t, items)
}
