package inventory

import (
	"context"
	"errors"
	"time"

	"stock-m/internal/company"
	inventoryerrors "stock-m/internal/inventory/errors"
	"stock-m/internal/shared/counter"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=inventory_service.go -destination=mock/inventory_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, companyID string) ([]InventoryResponse, error)
	GetInStock(ctx context.Context, companyID string) ([]InventoryResponse, error)
	GetOutStock(ctx context.Context, companyID string) ([]InventoryResponse, error)
	GetExpired(ctx context.Context, companyID string) ([]InventoryResponse, error)
	Create(ctx context.Context, companyID string, req CreateInventoryRequest) (InventoryResponse, error)
	Update(ctx context.Context, companyID string, req UpdateInventoryRequest) (InventoryResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	repo      Repository
	companies company.Repository
	counters  counter.Repository
	logger    *zap.Logger
}

func NewService(repo Repository, companies company.Repository, counters counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("inventory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("inventory.service")
	}
	return &service{repo: repo, companies: companies, counters: counters, logger: l}
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]InventoryResponse, error) {
	items, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetInStock(ctx context.Context, companyID string) ([]InventoryResponse, error) {
	items, err := s.repo.FindInStock(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

// GetOutStock lists items at or below the company's low-stock threshold.
func (s *service) GetOutStock(ctx context.Context, companyID string) ([]InventoryResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, inventoryerrors.ErrInvalidCompanyID
	}

	comp, err := s.companies.GetByID(ctx, companyUUID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindLowStock(ctx, companyID, comp.LowStockLevel)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetExpired(ctx context.Context, companyID string) ([]InventoryResponse, error) {
	items, err := s.repo.FindExpired(ctx, companyID, time.Now())
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateInventoryRequest) (InventoryResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return InventoryResponse{}, inventoryerrors.ErrInvalidCompanyID
	}

	if req.Quantity == nil || *req.Quantity < 0 {
		return InventoryResponse{}, inventoryerrors.ErrNegativeQuantity
	}
	if req.PurchasePrice.IsNegative() || req.SellingPrice.IsNegative() {
		return InventoryResponse{}, inventoryerrors.ErrNegativePrice
	}

	purchaseDate, expirationDate, err := parseDates(req.PurchaseDate, req.ExpirationDate)
	if err != nil {
		return InventoryResponse{}, err
	}

	sku := req.SKU
	if sku == nil {
		next, err := s.counters.GetNextValue(ctx, companyID, counter.CounterTypeSKU)
		if err != nil {
			s.logger.Error("assign sku failed", zap.Error(err))
			return InventoryResponse{}, err
		}
		sku = &next
	}

	item := &Inventory{
		ID:             uuid.New(),
		CompanyID:      companyUUID,
		SKU:            sku,
		ProductName:    req.ProductName,
		Quantity:       *req.Quantity,
		PurchasePrice:  req.PurchasePrice,
		SellingPrice:   req.SellingPrice,
		PurchaseDate:   purchaseDate,
		ExpirationDate: expirationDate,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return InventoryResponse{}, err
	}

	s.logger.Info("inventory created",
		zap.String("inventory_id", item.ID.String()),
		zap.String("company_id", companyID),
		zap.String("product_name", item.ProductName),
		zap.Int("quantity", item.Quantity),
	)

	return mapToResponse(*item), nil
}

func (s *service) Update(ctx context.Context, companyID string, req UpdateInventoryRequest) (InventoryResponse, error) {
	item, err := s.repo.FindByIDAndCompany(ctx, companyID, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InventoryResponse{}, inventoryerrors.ErrProductNotFound
		}
		return InventoryResponse{}, err
	}

	if req.SKU != nil {
		item.SKU = req.SKU
	}
	if req.ProductName != "" {
		item.ProductName = req.ProductName
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return InventoryResponse{}, inventoryerrors.ErrNegativeQuantity
		}
		item.Quantity = *req.Quantity
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.IsNegative() {
			return InventoryResponse{}, inventoryerrors.ErrNegativePrice
		}
		item.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		if req.SellingPrice.IsNegative() {
			return InventoryResponse{}, inventoryerrors.ErrNegativePrice
		}
		item.SellingPrice = *req.SellingPrice
	}

	purchaseDate, expirationDate, err := parseDates(req.PurchaseDate, req.ExpirationDate)
	if err != nil {
		return InventoryResponse{}, err
	}
	if purchaseDate != nil {
		item.PurchaseDate = purchaseDate
	}
	if expirationDate != nil {
		item.ExpirationDate = expirationDate
	}
	if item.PurchaseDate != nil && item.ExpirationDate != nil && item.ExpirationDate.Before(*item.PurchaseDate) {
		return InventoryResponse{}, inventoryerrors.ErrExpirationBeforePurchase
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return InventoryResponse{}, err
	}

	return mapToResponse(*item), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return inventoryerrors.ErrInvalidProductID
	}

	affected, err := s.repo.Delete(ctx, companyID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return inventoryerrors.ErrProductNotFound
	}

	s.logger.Info("inventory deleted",
		zap.String("inventory_id", id),
		zap.String("company_id", companyID),
	)
	return nil
}

// parseDates validates the optional YYYY-MM-DD inputs and the ordering
// rule between them. Checked at input time only; the store does not
// enforce it.
func parseDates(purchase, expiration string) (*time.Time, *time.Time, error) {
	var purchaseDate, expirationDate *time.Time

	if purchase != "" {
		t, err := time.Parse("2006-01-02", purchase)
		if err != nil {
			return nil, nil, inventoryerrors.ErrInvalidDateFormat
		}
		purchaseDate = &t
	}
	if expiration != "" {
		t, err := time.Parse("2006-01-02", expiration)
		if err != nil {
			return nil, nil, inventoryerrors.ErrInvalidDateFormat
		}
		expirationDate = &t
	}
	if purchaseDate != nil && expirationDate != nil && expirationDate.Before(*purchaseDate) {
		return nil, nil, inventoryerrors.ErrExpirationBeforePurchase
	}

	return purchaseDate, expirationDate, nil
}

func mapToResponse(item Inventory) InventoryResponse {
	resp := InventoryResponse{
		ID:            item.ID.String(),
		SKU:           item.SKU,
		ProductName:   item.ProductName,
		Quantity:      item.Quantity,
		PurchasePrice: item.PurchasePrice,
		SellingPrice:  item.SellingPrice,
		CompanyID:     item.CompanyID.String(),
		CreatedAt:     item.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     item.UpdatedAt.Format(time.RFC3339),
	}
	if item.PurchaseDate != nil {
		resp.PurchaseDate = item.PurchaseDate.Format("2006-01-02")
	}
	if item.ExpirationDate != nil {
		resp.ExpirationDate = item.ExpirationDate.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(items []Inventory) []InventoryResponse {
	resp := make([]InventoryResponse, len(items))
	for i, item := range items {
		resp[i] = mapToResponse(item)
	}
	return resp
}
