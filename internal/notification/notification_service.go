package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"stock-m/internal/company"
	"stock-m/internal/events"
	"stock-m/internal/inventory"
	"stock-m/internal/messaging/kafka"
	notificationerrors "stock-m/internal/notification/errors"
	"stock-m/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StalenessWindow is how long a notification of a given kind suppresses
// creating another one of the same kind.
const StalenessWindow = 3 * 24 * time.Hour

const newestLimit = 6

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	ListWithCheck(ctx context.Context, companyID string) ([]NotificationResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db          *sql.DB
	repo        Repository
	inventories inventory.Repository
	companies   company.Repository
	outbox      kafka.OutboxRepository
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	inventories inventory.Repository,
	companies company.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		db:          db,
		repo:        repo,
		inventories: inventories,
		companies:   companies,
		outbox:      outbox,
		logger:      l,
	}
}

func (s *service) ListWithCheck(ctx context.Context, companyID string) ([]NotificationResponse, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return nil, notificationerrors.ErrInvalidCompanyID
	}

	comp, err := s.companies.GetByID(ctx, companyUUID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	lowStock, err := s.inventories.FindLowStock(ctx, companyID, comp.LowStockLevel)
	if err != nil {
		return nil, err
	}
	expired, err := s.inventories.FindExpired(ctx, companyID, now)
	if err != nil {
		return nil, err
	}

	var toCreate []pendingAlert

	if len(lowStock) > 0 {
		recent, err := s.repo.HasRecent(ctx, companyID, TitleLowStock, now.Add(-StalenessWindow))
		if err != nil {
			return nil, err
		}
		if !recent {
			toCreate = append(toCreate, pendingAlert{
				title:   TitleLowStock,
				kind:    events.StockAlertLowStock,
				message: lowStockMessage(lowStock),
				items:   lowStock,
			})
		}
	}
	if len(expired) > 0 {
		recent, err := s.repo.HasRecent(ctx, companyID, TitleExpired, now.Add(-StalenessWindow))
		if err != nil {
			return nil, err
		}
		if !recent {
			toCreate = append(toCreate, pendingAlert{
				title:   TitleExpired,
				kind:    events.StockAlertExpired,
				message: expiredMessage(expired),
				items:   expired,
			})
		}
	}

	if len(toCreate) > 0 {
		if err := s.createWithAlerts(ctx, companyUUID, toCreate); err != nil {
			return nil, err
		}
	}

	notifications, err := s.repo.FindNewest(ctx, companyID, newestLimit)
	if err != nil {
		return nil, err
	}

	resp := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		item := NotificationResponse{
			ID:        n.ID.String(),
			Title:     n.Title,
			Message:   n.Message,
			Type:      n.Type,
			Entity:    n.Entity,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
		if n.EntityID != nil {
			item.EntityID = n.EntityID.String()
		}
		resp = append(resp, item)
	}
	return resp, nil
}

type pendingAlert struct {
	title   string
	kind    string
	message string
	items   []inventory.Inventory
}

func (s *service) createWithAlerts(ctx context.Context, companyID uuid.UUID, pendings []pendingAlert) error {
	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("begin notification tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	for _, p := range pendings {
		first := p.items[0]
		entityID := first.ID

		n := &Notification{
			ID:        uuid.New(),
			CompanyID: companyID,
			Title:     p.title,
			Message:   p.message,
			Type:      TypeWarning,
			Entity:    EntityInventory,
			EntityID:  &entityID,
		}
		if err := qtx.Create(ctx, n); err != nil {
			s.logger.Error("create notification failed",
				zap.String("title", p.title),
				zap.Error(err),
			)
			return err
		}

		if s.outbox == nil {
			continue
		}

		event := events.StockAlertEvent{
			EventType:   "stock_alert",
			AlertKind:   p.kind,
			CompanyID:   companyID.String(),
			InventoryID: first.ID.String(),
			ProductName: first.ProductName,
			Quantity:    first.Quantity,
			Message:     p.message,
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal stock alert failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "notification",
			AggregateID:   n.ID.String(),
			EventType:     event.EventType,
			Topic:         events.StockAlertTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create stock alert outbox persist failed",
				zap.String("notification_id", n.ID.String()),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit notification tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}

	affected, err := s.repo.DeleteByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}

func lowStockMessage(items []inventory.Inventory) string {
	if len(items) == 1 {
		return fmt.Sprintf("Low level stock for %s", items[0].ProductName)
	}
	return fmt.Sprintf("Low level stock for %s and %d other products", items[0].ProductName, len(items)-1)
}

func expiredMessage(items []inventory.Inventory) string {
	if len(items) == 1 {
		return fmt.Sprintf("%s has expired", items[0].ProductName)
	}
	return fmt.Sprintf("%s and %d other products have expired", items[0].ProductName, len(items)-1)
}
