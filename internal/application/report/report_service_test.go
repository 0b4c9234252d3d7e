package report

import (
	"context"
	"testing"
	"time"

	"github.com/fisherp/backend/internal/domain/inventory"
	"github.com/fisherp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockBatchRepository is a mock implementation of inventory.BatchRepository
type MockBatchRepository struct {
	mock.Mock
}

func (m *MockBatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindByCode(ctx context.Context, code string) (*inventory.Batch, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Batch), args.Error(1)
}

func (m *MockBatchRepository) FindOpenByBranchAndSize(ctx context.Context, branchID, sizeID uuid.UUID) ([]inventory.Batch, error) {
	args := m.Called(ctx, branchID, sizeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Batch), args.Error(1)
}

func (m *MockBatchRepository) ListOpen(ctx context.Context, filter shared.Filter) ([]inventory.Batch, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Batch), args.Error(1)
}

func (m *MockBatchRepository) CountOpen(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBatchRepository) CountByCodePrefix(ctx context.Context, prefix string) (int64, error) {
	args := m.Called(ctx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBatchRepository) Save(ctx context.Context, batch *inventory.Batch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

// MockSaleRepository is a mock implementation of inventory.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Save(ctx context.Context, sale *inventory.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) TotalsForBatch(ctx context.Context, batchID uuid.UUID) (inventory.QuantityTotals, error) {
	args := m.Called(ctx, batchID)
	return args.Get(0).(inventory.QuantityTotals), args.Error(1)
}

func (m *MockSaleRepository) TotalsForBatchSize(ctx context.Context, batchID, sizeID uuid.UUID) (inventory.QuantityTotals, error) {
	args := m.Called(ctx, batchID, sizeID)
	return args.Get(0).(inventory.QuantityTotals), args.Error(1)
}

func (m *MockSaleRepository) ListRecent(ctx context.Context, limit int) ([]inventory.Sale, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListBetween(ctx context.Context, from, to time.Time) ([]inventory.Sale, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Sale), args.Error(1)
}

// MockAdjustmentRepository is a mock implementation of inventory.AdjustmentRepository
type MockAdjustmentRepository struct {
	mock.Mock
}

func (m *MockAdjustmentRepository) Save(ctx context.Context, adj *inventory.InventoryAdjustment) error {
	args := m.Called(ctx, adj)
	return args.Error(0)
}

func (m *MockAdjustmentRepository) TotalsForBatch(ctx context.Context, batchID uuid.UUID) (inventory.QuantityTotals, error) {
	args := m.Called(ctx, batchID)
	return args.Get(0).(inventory.QuantityTotals), args.Error(1)
}

func (m *MockAdjustmentRepository) ListForBatch(ctx context.Context, batchID uuid.UUID) ([]inventory.InventoryAdjustment, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.InventoryAdjustment), args.Error(1)
}

// MockClosureRepository is a mock implementation of inventory.ClosureRepository
type MockClosureRepository struct {
	mock.Mock
}

func (m *MockClosureRepository) Save(ctx context.Context, closure *inventory.BatchClosure) error {
	args := m.Called(ctx, closure)
	return args.Error(0)
}

func (m *MockClosureRepository) FindByBatch(ctx context.Context, batchID uuid.UUID) (*inventory.BatchClosure, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.BatchClosure), args.Error(1)
}

func (m *MockClosureRepository) ListAll(ctx context.Context) ([]inventory.BatchClosure, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.BatchClosure), args.Error(1)
}

func reportBatch(t *testing.T, code string, pieces int, kg, buyPrice string) *inventory.Batch {
	t.Helper()
	b, err := inventory.NewBatch(
		code,
		time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC),
		uuid.New(), "", "",
		decimal.RequireFromString(buyPrice),
		[]inventory.LineInput{{SizeID: uuid.New(), Pieces: pieces, Kg: decimal.RequireFromString(kg)}},
	)
	require.NoError(t, err)
	return b
}

func newReportService() (*ReportService, *MockBatchRepository, *MockSaleRepository, *MockAdjustmentRepository, *MockClosureRepository) {
	batchRepo := new(MockBatchRepository)
	saleRepo := new(MockSaleRepository)
	adjRepo := new(MockAdjustmentRepository)
	closureRepo := new(MockClosureRepository)
	return NewReportService(batchRepo, saleRepo, adjRepo, closureRepo), batchRepo, saleRepo, adjRepo, closureRepo
}

func TestReportService_InventorySummary(t *testing.T) {
	ctx := context.Background()
	svc, batchRepo, saleRepo, adjRepo, _ := newReportService()

	b1 := reportBatch(t, "B-001", 200, "112", "420")
	b2 := reportBatch(t, "B-002", 80, "46", "430")
	filter := shared.DefaultFilter()

	batchRepo.On("ListOpen", ctx, filter).Return([]inventory.Batch{*b1, *b2}, nil)
	saleRepo.On("TotalsForBatch", ctx, b1.ID).
		Return(inventory.QuantityTotals{Pieces: 150, Kg: decimal.NewFromInt(84)}, nil)
	saleRepo.On("TotalsForBatch", ctx, b2.ID).
		Return(inventory.QuantityTotals{Kg: decimal.Zero}, nil)
	adjRepo.On("TotalsForBatch", ctx, b1.ID).
		Return(inventory.QuantityTotals{Pieces: -2, Kg: decimal.NewFromInt(-1)}, nil)
	adjRepo.On("TotalsForBatch", ctx, b2.ID).
		Return(inventory.QuantityTotals{Kg: decimal.Zero}, nil)

	resp, err := svc.InventorySummary(ctx, filter)

	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)

	// 200 - 150 - 2 pieces, 112 - 84 - 1 kg, valued at 420 per kg.
	assert.Equal(t, 48, resp.Rows[0].OnHand.Pieces)
	assert.True(t, resp.Rows[0].OnHand.Kg.Equal(decimal.NewFromInt(27)))
	assert.True(t, resp.Rows[0].StockValue.Equal(decimal.NewFromInt(11340)), "got %s", resp.Rows[0].StockValue)

	assert.Equal(t, 80, resp.Rows[1].OnHand.Pieces)
	assert.True(t, resp.Rows[1].StockValue.Equal(decimal.NewFromInt(19780)), "got %s", resp.Rows[1].StockValue)

	assert.Equal(t, 128, resp.TotalPieces)
	assert.True(t, resp.TotalKg.Equal(decimal.NewFromInt(73)))
	assert.True(t, resp.TotalValue.Equal(decimal.NewFromInt(31120)), "got %s", resp.TotalValue)
}

func TestReportService_SalesReport(t *testing.T) {
	ctx := context.Background()
	svc, batchRepo, saleRepo, _, _ := newReportService()

	batch := reportBatch(t, "B-001", 200, "112", "420")
	sizeID := uuid.New()
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	price := decimal.NewFromInt(650)
	s1, err := inventory.NewRetailSale(batch, batch.BranchID, &sizeID, "", 10, &price, inventory.PriceBasisPerKg, nil, from)
	require.NoError(t, err)
	s2, err := inventory.NewWholesaleSale(batch, batch.BranchID, &sizeID, "", decimal.NewFromInt(28), 45, 2, nil, inventory.PriceBasisPerKg, nil, from)
	require.NoError(t, err)

	saleRepo.On("ListBetween", ctx, from, to).Return([]inventory.Sale{*s1, *s2}, nil)
	batchRepo.On("FindByID", ctx, batch.ID).Return(batch, nil)

	resp, err := svc.SalesReport(ctx, from, to)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.SaleCount)
	assert.Equal(t, 55, resp.TotalPieces)
	assert.True(t, resp.TotalKg.Equal(decimal.RequireFromString("33.6")), "got %s", resp.TotalKg)
	// Only the retail row is priced: 5.6 kg at 650.
	assert.True(t, resp.Revenue.Equal(decimal.NewFromInt(3640)), "got %s", resp.Revenue)
	assert.Equal(t, 1, resp.UnpricedCount)
	// 33.6 kg at buy price 420.
	assert.True(t, resp.CostOfGoods.Equal(decimal.RequireFromString("14112")), "got %s", resp.CostOfGoods)
	assert.True(t, resp.GrossMargin.Equal(decimal.RequireFromString("-10472")), "got %s", resp.GrossMargin)
	assert.Equal(t, 1, resp.VarianceFlagged)
	batchRepo.AssertNumberOfCalls(t, "FindByID", 1)
}

func TestReportService_LossReport(t *testing.T) {
	ctx := context.Background()
	svc, batchRepo, _, _, closureRepo := newReportService()

	b1 := reportBatch(t, "B-001", 200, "100", "420")
	b2 := reportBatch(t, "B-002", 80, "50", "430")

	c1, err := inventory.NewBatchClosure(b1.ID, time.Now().UTC(), decimal.NewFromInt(8), decimal.NewFromInt(8), "")
	require.NoError(t, err)
	c2, err := inventory.NewBatchClosure(b2.ID, time.Now().UTC(), decimal.NewFromInt(1), decimal.NewFromInt(2), "")
	require.NoError(t, err)

	closureRepo.On("ListAll", ctx).Return([]inventory.BatchClosure{*c1, *c2}, nil)
	batchRepo.On("FindByID", ctx, b1.ID).Return(b1, nil)
	batchRepo.On("FindByID", ctx, b2.ID).Return(b2, nil)

	resp, err := svc.LossReport(ctx)

	require.NoError(t, err)
	require.Len(t, resp.Rows, 2)
	assert.True(t, resp.TotalInitialKg.Equal(decimal.NewFromInt(150)))
	assert.True(t, resp.TotalLossKg.Equal(decimal.NewFromInt(9)))
	assert.True(t, resp.OverallLossPct.Equal(decimal.NewFromInt(6)), "got %s", resp.OverallLossPct)
}
