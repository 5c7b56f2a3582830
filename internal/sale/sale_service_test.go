package sale_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"stock-m/internal/customer"
	"stock-m/internal/events"
	"stock-m/internal/messaging/kafka"
	"stock-m/internal/sale"
	saleerrors "stock-m/internal/sale/errors"
	"stock-m/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type fakeSaleRepository struct {
	withTxFn             func(tx *sql.Tx) sale.Repository
	createCustomerFn     func(ctx context.Context, c *customer.Customer) error
	findProductForSaleFn func(ctx context.Context, companyID, productID string) (*sale.ProductRow, error)
	decrementStockFn     func(ctx context.Context, companyID, productID string, qty int) (bool, error)
	createSellFn         func(ctx context.Context, s *sale.Sell) error
	findAllByCompanyFn   func(ctx context.Context, companyID, userID string, isAdmin bool, since, until *time.Time) ([]sale.Sell, error)
	deleteByIDFn         func(ctx context.Context, companyID, id, userID string, isAdmin bool) (int64, error)
}

func (f *fakeSaleRepository) WithTx(tx *sql.Tx) sale.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSaleRepository) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	if f.createCustomerFn != nil {
		return f.createCustomerFn(ctx, c)
	}
	return nil
}

func (f *fakeSaleRepository) FindProductForSale(ctx context.Context, companyID, productID string) (*sale.ProductRow, error) {
	if f.findProductForSaleFn != nil {
		return f.findProductForSaleFn(ctx, companyID, productID)
	}
	return nil, sql.ErrNoRows
}

func (f *fakeSaleRepository) DecrementStock(ctx context.Context, companyID, productID string, qty int) (bool, error) {
	if f.decrementStockFn != nil {
		return f.decrementStockFn(ctx, companyID, productID, qty)
	}
	return true, nil
}

func (f *fakeSaleRepository) CreateSell(ctx context.Context, s *sale.Sell) error {
	if f.createSellFn != nil {
		return f.createSellFn(ctx, s)
	}
	return nil
}

func (f *fakeSaleRepository) FindAllByCompany(ctx context.Context, companyID, userID string, isAdmin bool, since, until *time.Time) ([]sale.Sell, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, userID, isAdmin, since, until)
	}
	return nil, nil
}

func (f *fakeSaleRepository) DeleteByID(ctx context.Context, companyID, id, userID string, isAdmin bool) (int64, error) {
	if f.deleteByIDFn != nil {
		return f.deleteByIDFn(ctx, companyID, id, userID, isAdmin)
	}
	return 0, nil
}

type fakeOutboxRepository struct {
	withTxFn func(tx *sql.Tx) kafka.OutboxRepository
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *sql.Tx) kafka.OutboxRepository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error {
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func (f *fakeOutboxRepository) DeleteSentBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

type saleServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service sale.Service
	repo    *fakeSaleRepository
	outbox  *fakeOutboxRepository
}

func setupSaleServiceTest(t *testing.T) *saleServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSaleRepository{}
	outbox := &fakeOutboxRepository{}
	svc := sale.NewService(db, repo, outbox)

	return &saleServiceDeps{db: db, sqlMock: sqlMock, service: svc, repo: repo, outbox: outbox}
}

func TestSaleService_Create_Success(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	userID := uuid.New().String()
	productID := uuid.New().String()

	deps := setupSaleServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.repo.findProductForSaleFn = func(ctx context.Context, gotCompany, gotProduct string) (*sale.ProductRow, error) {
		assert.Equal(t, companyID, gotCompany)
		assert.Equal(t, productID, gotProduct)
		return &sale.ProductRow{
			ID:           productID,
			ProductName:  "Engine Oil",
			Quantity:     10,
			SellingPrice: decimal.NewFromInt(350),
		}, nil
	}

	var decremented int
	deps.repo.decrementStockFn = func(ctx context.Context, gotCompany, gotProduct string, qty int) (bool, error) {
		decremented = qty
		return true, nil
	}

	var createdSell *sale.Sell
	deps.repo.createSellFn = func(ctx context.Context, s *sale.Sell) error {
		createdSell = s
		return nil
	}

	var outboxEvent *kafka.OutboxEvent
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		outboxEvent = &event
		return nil
	}

	req := sale.CreateSaleRequest{
		CustomerName:  "Jane Smith",
		CustomerPhone: "0788000001",
		Items: []sale.SaleItemRequest{
			{ProductID: productID, Quantity: 3, Price: decimal.NewFromInt(350)},
		},
	}

	resp, err := deps.service.Create(ctx, companyID, userID, req)

	assert.NoError(t, err)
	assert.Equal(t, 3, decremented)
	if assert.NotNil(t, createdSell) {
		assert.Equal(t, sale.StatusCompleted, createdSell.Status)
		assert.True(t, createdSell.TotalAmount.Equal(decimal.NewFromInt(1050)))
	}
	assert.Len(t, resp.Items, 1)
	assert.True(t, resp.GrandTotal.Equal(decimal.NewFromInt(1050)))

	if assert.NotNil(t, outboxEvent) {
		assert.Equal(t, events.SaleCompletedTopic, outboxEvent.Topic)
		assert.Equal(t, kafka.OutboxStatusPending, outboxEvent.Status)

		var payload events.SaleCompletedEvent
		assert.NoError(t, json.Unmarshal(outboxEvent.Payload, &payload))
		assert.Equal(t, "1050.00", payload.GrandTotal)
		assert.Equal(t, "Jane Smith", payload.CustomerName)
	}

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSaleService_Create_InsufficientStock(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	userID := uuid.New().String()
	productID := uuid.New().String()

	deps := setupSaleServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.repo.findProductForSaleFn = func(ctx context.Context, _, _ string) (*sale.ProductRow, error) {
		return &sale.ProductRow{
			ID:          productID,
			ProductName: "Engine Oil",
			Quantity:    10,
		}, nil
	}

	sellCreated := false
	deps.repo.createSellFn = func(ctx context.Context, s *sale.Sell) error {
		sellCreated = true
		return nil
	}

	req := sale.CreateSaleRequest{
		CustomerName:  "Jane Smith",
		CustomerPhone: "0788000001",
		Items: []sale.SaleItemRequest{
			{ProductID: productID, Quantity: 20, Price: decimal.NewFromInt(350)},
		},
	}

	_, err := deps.service.Create(ctx, companyID, userID, req)

	assert.Error(t, err)
	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
		assert.Contains(t, appErr.Message, "Engine Oil")
		assert.Contains(t, appErr.Message, "10 available")
		assert.Contains(t, appErr.Message, "20 requested")
	}
	assert.False(t, sellCreated)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSaleService_Create_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	deps := setupSaleServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.repo.findProductForSaleFn = func(ctx context.Context, _, _ string) (*sale.ProductRow, error) {
		return nil, sql.ErrNoRows
	}

	req := sale.CreateSaleRequest{
		CustomerName:  "Jane Smith",
		CustomerPhone: "0788000001",
		Items: []sale.SaleItemRequest{
			{ProductID: uuid.New().String(), Quantity: 1, Price: decimal.NewFromInt(100)},
		},
	}

	_, err := deps.service.Create(ctx, uuid.New().String(), uuid.New().String(), req)

	assert.Error(t, err)
	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, apperror.CodeNotFound, appErr.Code)
	}
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSaleService_Create_DecrementRaceLost(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New().String()

	deps := setupSaleServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.repo.findProductForSaleFn = func(ctx context.Context, _, _ string) (*sale.ProductRow, error) {
		return &sale.ProductRow{ID: productID, ProductName: "Engine Oil", Quantity: 5}, nil
	}
	deps.repo.decrementStockFn = func(ctx context.Context, _, _ string, qty int) (bool, error) {
		return false, nil
	}

	req := sale.CreateSaleRequest{
		CustomerName:  "Jane Smith",
		CustomerPhone: "0788000001",
		Items: []sale.SaleItemRequest{
			{ProductID: productID, Quantity: 5, Price: decimal.NewFromInt(100)},
		},
	}

	_, err := deps.service.Create(ctx, uuid.New().String(), uuid.New().String(), req)

	var appErr *apperror.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, apperror.CodeInsufficientStock, appErr.Code)
	}
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSaleService_Create_RollbackOnSellError(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New().String()

	deps := setupSaleServiceTest(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.repo.findProductForSaleFn = func(ctx context.Context, _, _ string) (*sale.ProductRow, error) {
		return &sale.ProductRow{ID: productID, ProductName: "Engine Oil", Quantity: 5}, nil
	}
	deps.repo.createSellFn = func(ctx context.Context, s *sale.Sell) error {
		return errors.New("insert failed")
	}

	outboxCreated := false
	deps.outbox.createFn = func(ctx context.Context, event kafka.OutboxEvent) error {
		outboxCreated = true
		return nil
	}

	req := sale.CreateSaleRequest{
		CustomerName:  "Jane Smith",
		CustomerPhone: "0788000001",
		Items: []sale.SaleItemRequest{
			{ProductID: productID, Quantity: 2, Price: decimal.NewFromInt(100)},
		},
	}

	_, err := deps.service.Create(ctx, uuid.New().String(), uuid.New().String(), req)

	assert.Error(t, err)
	assert.False(t, outboxCreated)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSaleService_GetAll_Ranges(t *testing.T) {
	ctx := context.Background()
	deps := setupSaleServiceTest(t)
	defer deps.db.Close()

	var gotSince, gotUntil *time.Time
	var gotAdmin bool
	deps.repo.findAllByCompanyFn = func(ctx context.Context, companyID, userID string, isAdmin bool, since, until *time.Time) ([]sale.Sell, error) {
		gotSince, gotUntil = since, until
		gotAdmin = isAdmin
		return nil, nil
	}

	_, err := deps.service.GetAll(ctx, uuid.New().String(), uuid.New().String(), "Admin", "all")
	assert.NoError(t, err)
	assert.Nil(t, gotSince)
	assert.Nil(t, gotUntil)
	assert.True(t, gotAdmin)

	_, err = deps.service.GetAll(ctx, uuid.New().String(), uuid.New().String(), "Seller", "today")
	assert.NoError(t, err)
	if assert.NotNil(t, gotSince) {
		now := time.Now()
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		assert.True(t, gotSince.Equal(startOfDay))
	}
	assert.Nil(t, gotUntil)
	assert.False(t, gotAdmin)

	_, err = deps.service.GetAll(ctx, uuid.New().String(), uuid.New().String(), "Seller", "yesterday")
	assert.NoError(t, err)
	assert.NotNil(t, gotSince)
	assert.NotNil(t, gotUntil)
	assert.Equal(t, 24*time.Hour, gotUntil.Sub(*gotSince))

	_, err = deps.service.GetAll(ctx, uuid.New().String(), uuid.New().String(), "Seller", "bogus")
	assert.ErrorIs(t, err, saleerrors.ErrInvalidRange)
}

func TestSaleService_Delete(t *testing.T) {
	ctx := context.Background()
	deps := setupSaleServiceTest(t)
	defer deps.db.Close()

	saleID := uuid.New().String()

	t.Run("NotFoundOrNotOwner", func(t *testing.T) {
		deps.repo.deleteByIDFn = func(ctx context.Context, companyID, id, userID string, isAdmin bool) (int64, error) {
			assert.False(t, isAdmin)
			return 0, nil
		}
		err := deps.service.Delete(ctx, uuid.New().String(), uuid.New().String(), "Seller", saleID)
		assert.ErrorIs(t, err, saleerrors.ErrSaleNotFound)
	})

	t.Run("AdminDeletesAny", func(t *testing.T) {
		deps.repo.deleteByIDFn = func(ctx context.Context, companyID, id, userID string, isAdmin bool) (int64, error) {
			assert.True(t, isAdmin)
			return 1, nil
		}
		err := deps.service.Delete(ctx, uuid.New().String(), uuid.New().String(), "Admin", saleID)
		assert.NoError(t, err)
	})

	t.Run("InvalidID", func(t *testing.T) {
		err := deps.service.Delete(ctx, uuid.New().String(), uuid.New().String(), "Admin", "not-a-uuid")
		assert.ErrorIs(t, err, saleerrors.ErrInvalidSaleID)
	})
}
