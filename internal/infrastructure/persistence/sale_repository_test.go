package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockSaleRepository creates a GormSaleRepository with a mocked SQL connection
func newMockSaleRepository(t *testing.T) (*GormSaleRepository, sqlmock.Sqlmock, *sql.DB) {
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

	return NewGormSaleRepository(gormDB), mock, mockDB
}

func TestGormSaleRepository_TotalsForBatch(t *testing.T) {
	t.Run("sums pieces and kg for a batch", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		batchID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(pieces_sold\), 0\) as pieces, COALESCE\(SUM\(kg_sold\), 0\) as kg FROM "sales" WHERE batch_id = \$1`).
			WithArgs(batchID).
			WillReturnRows(sqlmock.NewRows([]string{"pieces", "kg"}).
				AddRow(120, decimal.RequireFromString("67.2")))

		totals, err := repo.TotalsForBatch(context.Background(), batchID)

		assert.NoError(t, err)
		assert.Equal(t, 120, totals.Pieces)
		assert.True(t, totals.Kg.Equal(decimal.RequireFromString("67.2")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns zero totals when no sales exist", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		batchID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(pieces_sold\), 0\) as pieces, COALESCE\(SUM\(kg_sold\), 0\) as kg FROM "sales" WHERE batch_id = \$1`).
			WithArgs(batchID).
			WillReturnRows(sqlmock.NewRows([]string{"pieces", "kg"}).
				AddRow(0, decimal.Zero))

		totals, err := repo.TotalsForBatch(context.Background(), batchID)

		assert.NoError(t, err)
		assert.Equal(t, 0, totals.Pieces)
		assert.True(t, totals.Kg.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSaleRepository_TotalsForBatchSize(t *testing.T) {
	t.Run("filters by batch and size", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		batchID := uuid.New()
		sizeID := uuid.New()

		mock.ExpectQuery(`SELECT COALESCE\(SUM\(pieces_sold\), 0\) as pieces, COALESCE\(SUM\(kg_sold\), 0\) as kg FROM "sales" WHERE batch_id = \$1 AND size_id = \$2`).
			WithArgs(batchID, sizeID).
			WillReturnRows(sqlmock.NewRows([]string{"pieces", "kg"}).
				AddRow(50, decimal.RequireFromString("28")))

		totals, err := repo.TotalsForBatchSize(context.Background(), batchID, sizeID)

		assert.NoError(t, err)
		assert.Equal(t, 50, totals.Pieces)
		assert.True(t, totals.Kg.Equal(decimal.RequireFromString("28")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSaleRepository_ListBetween(t *testing.T) {
	t.Run("lists sales in window oldest first", func(t *testing.T) {
		repo, mock, mockDB := newMockSaleRepository(t)
		defer mockDB.Close()

		from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		batchID := uuid.New()
		branchID := uuid.New()

		rows := sqlmock.NewRows([]string{"id", "sale_ts", "branch_id", "mode", "batch_id", "pieces_sold", "kg_sold"}).
			AddRow(uuid.New(), from.Add(24*time.Hour), branchID, "RETAIL", batchID, 10, decimal.RequireFromString("5.6")).
			AddRow(uuid.New(), from.Add(48*time.Hour), branchID, "WHOLESALE", batchID, 45, decimal.RequireFromString("28"))

		mock.ExpectQuery(`SELECT \* FROM "sales" WHERE sale_ts >= \$1 AND sale_ts < \$2 ORDER BY sale_ts ASC, created_at ASC`).
			WithArgs(from, to).
			WillReturnRows(rows)

		sales, err := repo.ListBetween(context.Background(), from, to)

		assert.NoError(t, err)
		require.Len(t, sales, 2)
		assert.Equal(t, 10, sales[0].PiecesSold)
		assert.Equal(t, 45, sales[1].PiecesSold)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
