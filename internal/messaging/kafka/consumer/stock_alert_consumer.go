package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"stock-m/internal/events"
	"stock-m/internal/mailer"
	"stock-m/internal/user"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumeStockAlerts(
	ctx context.Context,
	reader *kafkago.Reader,
	users user.Repository,
	mail mailer.Mailer,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.stock_alert")
	log.Info("stock alert consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("stock alert consumer stopped")
				return
			}
			log.Error("fetch stock alert message failed", zap.Error(err))
			continue
		}

		var event events.StockAlertEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// Poison message, drop it rather than block the partition.
			log.Error("decode stock alert event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		emails, err := users.EmailsByCompany(ctx, event.CompanyID)
		if err != nil {
			log.Error("load company emails failed",
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if len(emails) > 0 {
			subject := alertSubject(event)
			if err := mail.Send(emails, subject, event.Message); err != nil {
				log.Error("send stock alert mail failed",
					zap.String("company_id", event.CompanyID),
					zap.String("alert_kind", event.AlertKind),
					zap.Error(err),
				)
				continue
			}
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit stock alert message failed", zap.Error(err))
			continue
		}

		log.Info("stock alert delivered",
			zap.String("company_id", event.CompanyID),
			zap.String("alert_kind", event.AlertKind),
			zap.Int("recipients", len(emails)),
		)
	}
}

func alertSubject(event events.StockAlertEvent) string {
	switch event.AlertKind {
	case events.StockAlertExpired:
		return fmt.Sprintf("Expiration alert: %s", event.ProductName)
	default:
		return fmt.Sprintf("Low stock alert: %s", event.ProductName)
	}
}
