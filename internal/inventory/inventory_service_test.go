package inventory_test

import (
	"context"
	"testing"
	"time"

	"stock-m/internal/company"
	"stock-m/internal/inventory"
	inventoryerrors "stock-m/internal/inventory/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeInventoryRepository struct {
	createFn             func(ctx context.Context, item *inventory.Inventory) error
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*inventory.Inventory, error)
	findLowStockFn       func(ctx context.Context, companyID string, threshold int) ([]inventory.Inventory, error)
	updateFn             func(ctx context.Context, item *inventory.Inventory) error
	deleteFn             func(ctx context.Context, companyID, id string) (int64, error)
}

func (f *fakeInventoryRepository) Create(ctx context.Context, item *inventory.Inventory) error {
	if f.createFn != nil {
		return f.createFn(ctx, item)
	}
	return nil
}

func (f *fakeInventoryRepository) FindAllByCompany(ctx context.Context, companyID string) ([]inventory.Inventory, error) {
	return nil, nil
}

func (f *fakeInventoryRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*inventory.Inventory, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeInventoryRepository) FindInStock(ctx context.Context, companyID string) ([]inventory.Inventory, error) {
	return nil, nil
}

func (f *fakeInventoryRepository) FindLowStock(ctx context.Context, companyID string, threshold int) ([]inventory.Inventory, error) {
	if f.findLowStockFn != nil {
		return f.findLowStockFn(ctx, companyID, threshold)
	}
	return nil, nil
}

func (f *fakeInventoryRepository) FindExpired(ctx context.Context, companyID string, now time.Time) ([]inventory.Inventory, error) {
	return nil, nil
}

func (f *fakeInventoryRepository) Update(ctx context.Context, item *inventory.Inventory) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, item)
	}
	return nil
}

func (f *fakeInventoryRepository) Delete(ctx context.Context, companyID, id string) (int64, error) {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return 0, nil
}

type fakeCompanyRepository struct {
	threshold int
}

func (f *fakeCompanyRepository) Create(ctx context.Context, c *company.Company) error {
	return nil
}

func (f *fakeCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	return &company.Company{ID: id, LowStockLevel: f.threshold}, nil
}

func (f *fakeCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	return nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func intPtr(v int) *int { return &v }

func TestInventoryService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("AssignsSKUFromCounter", func(t *testing.T) {
		var created *inventory.Inventory
		repo := &fakeInventoryRepository{
			createFn: func(ctx context.Context, item *inventory.Inventory) error {
				created = item
				return nil
			},
		}
		counters := &fakeCounterRepository{next: 41}
		svc := inventory.NewService(repo, &fakeCompanyRepository{threshold: 10}, counters)

		resp, err := svc.Create(ctx, companyID, inventory.CreateInventoryRequest{
			ProductName:   "Engine Oil",
			Quantity:      intPtr(12),
			PurchasePrice: decimal.NewFromInt(200),
			SellingPrice:  decimal.NewFromInt(350),
		})

		assert.NoError(t, err)
		if assert.NotNil(t, created) && assert.NotNil(t, created.SKU) {
			assert.Equal(t, int64(42), *created.SKU)
		}
		assert.Equal(t, "Engine Oil", resp.ProductName)
	})

	t.Run("KeepsProvidedSKU", func(t *testing.T) {
		var created *inventory.Inventory
		repo := &fakeInventoryRepository{
			createFn: func(ctx context.Context, item *inventory.Inventory) error {
				created = item
				return nil
			},
		}
		svc := inventory.NewService(repo, &fakeCompanyRepository{}, &fakeCounterRepository{})

		sku := int64(777)
		_, err := svc.Create(ctx, companyID, inventory.CreateInventoryRequest{
			SKU:           &sku,
			ProductName:   "Engine Oil",
			Quantity:      intPtr(1),
			PurchasePrice: decimal.NewFromInt(200),
			SellingPrice:  decimal.NewFromInt(350),
		})

		assert.NoError(t, err)
		if assert.NotNil(t, created) && assert.NotNil(t, created.SKU) {
			assert.Equal(t, int64(777), *created.SKU)
		}
	})

	t.Run("RejectsNegativeQuantity", func(t *testing.T) {
		svc := inventory.NewService(&fakeInventoryRepository{}, &fakeCompanyRepository{}, &fakeCounterRepository{})

		_, err := svc.Create(ctx, companyID, inventory.CreateInventoryRequest{
			ProductName:   "Engine Oil",
			Quantity:      intPtr(-1),
			PurchasePrice: decimal.NewFromInt(200),
			SellingPrice:  decimal.NewFromInt(350),
		})
		assert.ErrorIs(t, err, inventoryerrors.ErrNegativeQuantity)
	})

	t.Run("RejectsBadDateFormat", func(t *testing.T) {
		svc := inventory.NewService(&fakeInventoryRepository{}, &fakeCompanyRepository{}, &fakeCounterRepository{})

		_, err := svc.Create(ctx, companyID, inventory.CreateInventoryRequest{
			ProductName:   "Engine Oil",
			Quantity:      intPtr(1),
			PurchasePrice: decimal.NewFromInt(200),
			SellingPrice:  decimal.NewFromInt(350),
			PurchaseDate:  "31-12-2025",
		})
		assert.ErrorIs(t, err, inventoryerrors.ErrInvalidDateFormat)
	})

	t.Run("RejectsExpirationBeforePurchase", func(t *testing.T) {
		svc := inventory.NewService(&fakeInventoryRepository{}, &fakeCompanyRepository{}, &fakeCounterRepository{})

		_, err := svc.Create(ctx, companyID, inventory.CreateInventoryRequest{
			ProductName:    "Engine Oil",
			Quantity:       intPtr(1),
			PurchasePrice:  decimal.NewFromInt(200),
			SellingPrice:   decimal.NewFromInt(350),
			PurchaseDate:   "2026-03-01",
			ExpirationDate: "2026-02-01",
		})
		assert.ErrorIs(t, err, inventoryerrors.ErrExpirationBeforePurchase)
	})
}

func TestInventoryService_GetOutStock_UsesCompanyThreshold(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	var gotThreshold int
	repo := &fakeInventoryRepository{
		findLowStockFn: func(ctx context.Context, _ string, threshold int) ([]inventory.Inventory, error) {
			gotThreshold = threshold
			return []inventory.Inventory{{ID: uuid.New(), ProductName: "Coolant", Quantity: 3}}, nil
		},
	}
	svc := inventory.NewService(repo, &fakeCompanyRepository{threshold: 7}, &fakeCounterRepository{})

	resp, err := svc.GetOutStock(ctx, companyID)

	assert.NoError(t, err)
	assert.Equal(t, 7, gotThreshold)
	assert.Len(t, resp, 1)
}

func TestInventoryService_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := inventory.NewService(&fakeInventoryRepository{}, &fakeCompanyRepository{}, &fakeCounterRepository{})

	_, err := svc.Update(ctx, uuid.New().String(), inventory.UpdateInventoryRequest{ID: uuid.New().String()})
	assert.ErrorIs(t, err, inventoryerrors.ErrProductNotFound)
}

func TestInventoryService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		svc := inventory.NewService(&fakeInventoryRepository{}, &fakeCompanyRepository{}, &fakeCounterRepository{})
		err := svc.Delete(ctx, uuid.New().String(), uuid.New().String())
		assert.ErrorIs(t, err, inventoryerrors.ErrProductNotFound)
	})

	t.Run("Success", func(t *testing.T) {
		repo := &fakeInventoryRepository{
			deleteFn: func(ctx context.Context, companyID, id string) (int64, error) {
				return 1, nil
			},
		}
		svc := inventory.NewService(repo, &fakeCompanyRepository{}, &fakeCounterRepository{})
		err := svc.Delete(ctx, uuid.New().String(), uuid.New().String())
		assert.NoError(t, err)
	})

	t.Run("InvalidID", func(t *testing.T) {
		svc := inventory.NewService(&fakeInventoryRepository{}, &fakeCompanyRepository{}, &fakeCounterRepository{})
		err := svc.Delete(ctx, uuid.New().String(), "nope")
		assert.ErrorIs(t, err, inventoryerrors.ErrInvalidProductID)
	})
}
