package sale

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"stock-m/internal/customer"
	"stock-m/internal/events"
	"stock-m/internal/messaging/kafka"
	saleerrors "stock-m/internal/sale/errors"
	"stock-m/internal/shared/contextutil"
	"stock-m/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=sale_service.go -destination=mock/sale_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, userID string, req CreateSaleRequest) (CreateSaleResponse, error)
	GetAll(ctx context.Context, companyID, userID, role, rangeName string) ([]SaleResponse, error)
	Delete(ctx context.Context, companyID, userID, role, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("sale.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{db: db, repo: repo, outbox: outbox, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID, userID string,
	req CreateSaleRequest,
) (CreateSaleResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return CreateSaleResponse{}, saleerrors.ErrInvalidCompanyID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return CreateSaleResponse{}, saleerrors.ErrInvalidUserID
	}

	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("begin sale tx failed", zap.String("request_id", rid), zap.Error(err))
		return CreateSaleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	cust := &customer.Customer{
		ID:            uuid.New(),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CompanyID:     companyUUID,
	}
	if err := qtx.CreateCustomer(ctx, cust); err != nil {
		s.logger.Error("create customer failed", zap.String("request_id", rid), zap.Error(err))
		return CreateSaleResponse{}, err
	}

	resp := CreateSaleResponse{
		CustomerID:    cust.ID.String(),
		CustomerName:  cust.CustomerName,
		CustomerPhone: cust.CustomerPhone,
		GrandTotal:    decimal.Zero,
	}
	eventItems := make([]events.SaleCompletedItem, 0, len(req.Items))

	for _, item := range req.Items {
		product, err := qtx.FindProductForSale(ctx, companyID, item.ProductID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return CreateSaleResponse{}, saleerrors.ProductNotFound(item.ProductID)
			}
			s.logger.Error("load product failed",
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return CreateSaleResponse{}, err
		}

		if product.Quantity < item.Quantity {
			return CreateSaleResponse{}, saleerrors.InsufficientStock(
				product.ProductName, product.Quantity, item.Quantity,
			)
		}

		ok, err := qtx.DecrementStock(ctx, companyID, item.ProductID, item.Quantity)
		if err != nil {
			s.logger.Error("decrement stock failed",
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return CreateSaleResponse{}, err
		}
		if !ok {
			// Lost a race against a concurrent sale of the same product.
			return CreateSaleResponse{}, saleerrors.InsufficientStock(
				product.ProductName, product.Quantity, item.Quantity,
			)
		}

		total := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		sell := &Sell{
			ID:          uuid.New(),
			CompanyID:   companyUUID,
			UserID:      userUUID,
			InventoryID: uuid.MustParse(item.ProductID),
			CustomerID:  cust.ID,
			Quantity:    item.Quantity,
			Price:       item.Price,
			TotalAmount: total,
			Status:      StatusCompleted,
		}
		if err := qtx.CreateSell(ctx, sell); err != nil {
			s.logger.Error("create sell failed",
				zap.String("product_id", item.ProductID),
				zap.Error(err),
			)
			return CreateSaleResponse{}, err
		}

		resp.Items = append(resp.Items, SaleLineResponse{
			ID:          sell.ID.String(),
			ProductID:   product.ID,
			ProductName: product.ProductName,
			Quantity:    sell.Quantity,
			Price:       sell.Price,
			TotalAmount: sell.TotalAmount,
			Status:      sell.Status,
		})
		resp.GrandTotal = resp.GrandTotal.Add(total)
		eventItems = append(eventItems, events.SaleCompletedItem{
			InventoryID: product.ID,
			ProductName: product.ProductName,
			Quantity:    sell.Quantity,
			Total:       total.StringFixed(2),
		})
	}

	if s.outbox != nil {
		event := events.SaleCompletedEvent{
			EventType:    "sale_completed",
			CustomerID:   cust.ID.String(),
			CustomerName: cust.CustomerName,
			CompanyID:    companyID,
			SoldBy:       userID,
			Items:        eventItems,
			GrandTotal:   resp.GrandTotal.StringFixed(2),
			OccurredAt:   time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal sale event failed", zap.String("request_id", rid), zap.Error(err))
			return CreateSaleResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "sale",
			AggregateID:   cust.ID.String(),
			EventType:     event.EventType,
			Topic:         events.SaleCompletedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create sale outbox persist failed",
				zap.String("customer_id", cust.ID.String()),
				zap.Error(err),
			)
			return CreateSaleResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit sale tx failed", zap.String("request_id", rid), zap.Error(err))
		return CreateSaleResponse{}, err
	}

	return resp, nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID, userID, role, rangeName string,
) ([]SaleResponse, error) {
	since, until, err := rangeBounds(rangeName, time.Now())
	if err != nil {
		return nil, err
	}

	sells, err := s.repo.FindAllByCompany(ctx, companyID, userID, role == user.RoleAdmin, since, until)
	if err != nil {
		return nil, err
	}

	resp := make([]SaleResponse, 0, len(sells))
	for _, sell := range sells {
		item := SaleResponse{
			ID:          sell.ID.String(),
			ProductID:   sell.InventoryID.String(),
			CustomerID:  sell.CustomerID.String(),
			UserID:      sell.UserID.String(),
			Quantity:    sell.Quantity,
			Price:       sell.Price,
			TotalAmount: sell.TotalAmount,
			Status:      sell.Status,
			CreatedAt:   sell.CreatedAt,
		}
		if sell.Inventory != nil {
			item.ProductName = sell.Inventory.ProductName
		}
		if sell.Customer != nil {
			item.CustomerName = sell.Customer.CustomerName
			item.CustomerPhone = sell.Customer.CustomerPhone
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *service) Delete(ctx context.Context, companyID, userID, role, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return saleerrors.ErrInvalidSaleID
	}

	affected, err := s.repo.DeleteByID(ctx, companyID, id, userID, role == user.RoleAdmin)
	if err != nil {
		return err
	}
	if affected == 0 {
		return saleerrors.ErrSaleNotFound
	}
	return nil
}

func rangeBounds(rangeName string, now time.Time) (since, until *time.Time, err error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch rangeName {
	case "", "all":
		return nil, nil, nil
	case "today":
		return &startOfDay, nil, nil
	case "yesterday":
		start := startOfDay.AddDate(0, 0, -1)
		return &start, &startOfDay, nil
	case "last_week":
		start := now.AddDate(0, 0, -7)
		return &start, nil, nil
	case "last_month":
		start := now.AddDate(0, -1, 0)
		return &start, nil, nil
	default:
		return nil, nil, saleerrors.ErrInvalidRange
	}
}
