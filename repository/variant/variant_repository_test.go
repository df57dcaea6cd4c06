package variant_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	variantrepo "github.com/muhammadheryan/storefront/repository/variant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var variantCols = []string{"id", "product_id", "sku", "title", "price_cents", "currency", "track_inventory"}

func newRepo(t *testing.T) (variantrepo.VariantRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	conn := sqlx.NewDb(db, "mysql")
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		conn.Close()
	})
	return variantrepo.NewVariantRepository(conn), mock
}

func TestSQL_List(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY v.id LIMIT ? OFFSET ?")).
		WithArgs(int(constant.WarehouseStatusActive), 10, 10).
		WillReturnRows(sqlmock.NewRows(append(variantCols, "available_stock")).
			AddRow(11, 2, "EBOOK", "E-book", 900, "EUR", false, 0).
			AddRow(12, 3, "MUG", "Mug", 1200, "EUR", true, 7))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM product_variant")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	items, total, err := repo.List(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(12), total)
	assert.Equal(t, []model.VariantListItem{
		{Variant: model.Variant{ID: 11, ProductID: 2, SKU: "EBOOK", Title: "E-book", PriceCents: 900, Currency: "EUR"}},
		{Variant: model.Variant{ID: 12, ProductID: 3, SKU: "MUG", Title: "Mug", PriceCents: 1200, Currency: "EUR", TrackInventory: true}, AvailableStock: 7},
	}, items)
}

func TestSQL_GetByID(t *testing.T) {
	repo, mock := newRepo(t)
	query := regexp.QuoteMeta("FROM product_variant v WHERE v.id = ?")
	mock.ExpectQuery(query).WithArgs(10).
		WillReturnRows(sqlmock.NewRows(variantCols).AddRow(10, 1, "TEE-M-RED", "Tee", 2500, "EUR", true))
	mock.ExpectQuery(query).WithArgs(99).WillReturnRows(sqlmock.NewRows(variantCols))

	got, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, &model.Variant{ID: 10, ProductID: 1, SKU: "TEE-M-RED", Title: "Tee", PriceCents: 2500, Currency: "EUR", TrackInventory: true}, got)

	got, err = repo.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQL_GetByIDs(t *testing.T) {
	t.Run("success: expands the id list", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM product_variant v WHERE v.id IN (?, ?)")).WithArgs(10, 12).
			WillReturnRows(sqlmock.NewRows(variantCols).
				AddRow(10, 1, "TEE-M-RED", "Tee", 2500, "EUR", true).
				AddRow(12, 3, "MUG", "Mug", 1200, "EUR", true))

		got, err := repo.GetByIDs(context.Background(), []uint64{10, 12})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "MUG", got[12].SKU)
	})

	t.Run("success: no ids, no query", func(t *testing.T) {
		repo, _ := newRepo(t)
		got, err := repo.GetByIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
