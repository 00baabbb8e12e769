package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/stockbook/backend/internal/domain/catalog"
	"github.com/stockbook/backend/internal/domain/shared"
)

// newMockDB creates a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func TestGormProductRepository_FindByID(t *testing.T) {
	t.Run("finds existing product", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(db)

		productID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "name", "unit", "quantity", "low_stock_threshold", "status"}).
			AddRow(productID, "Basmati Rice", "kg", 40, 10, "in_stock")

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnRows(rows)

		product, err := repo.FindByID(context.Background(), productID)

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Basmati Rice", product.Name)
		assert.Equal(t, catalog.UnitKilogram, product.Unit)
		assert.Equal(t, 40, product.Quantity)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing product", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(db)

		productID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(productID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		product, err := repo.FindByID(context.Background(), productID)

		assert.Nil(t, product)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindByIDs(t *testing.T) {
	t.Run("empty input short-circuits without querying", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(db)

		products, err := repo.FindByIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_FindLowStock(t *testing.T) {
	t.Run("filters on the threshold column", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(db)

		rows := sqlmock.NewRows([]string{"id", "name", "unit", "quantity", "low_stock_threshold", "status"}).
			AddRow(uuid.New(), "Olive Oil", "liter", 3, 10, "low_stock")

		mock.ExpectQuery(`SELECT \* FROM "products" WHERE quantity <= low_stock_threshold.*`).
			WillReturnRows(rows)

		products, err := repo.FindLowStock(context.Background(), shared.Filter{})

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, catalog.StockStatusLowStock, products[0].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_Delete(t *testing.T) {
	t.Run("deletes existing product", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(db)

		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), productID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing was deleted", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(db)

		productID := uuid.New()

		mock.ExpectExec(`DELETE FROM "products" WHERE id = \$1`).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), productID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_Count(t *testing.T) {
	t.Run("filters on the owning supplier", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(db)

		supplierID := uuid.New()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE supplier_id = \$1`).
			WithArgs(supplierID.String()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		filter := shared.Filter{Filters: map[string]interface{}{"supplier_id": supplierID.String()}}
		count, err := repo.Count(context.Background(), filter)

		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormProductRepository_CountByStatus(t *testing.T) {
	t.Run("counts products with the given status", func(t *testing.T) {
		db, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormProductRepository(db)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE status = \$1`).
			WithArgs(catalog.StockStatusOutOfStock).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

		count, err := repo.CountByStatus(context.Background(), catalog.StockStatusOutOfStock)

		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
