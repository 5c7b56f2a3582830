package events

import "time"

const StockAlertTopic = "pos.stock.alert.v1"

const (
	StockAlertLowStock = "LOW_STOCK"
	StockAlertExpired  = "EXPIRED"
)

type StockAlertEvent struct {
	EventType   string    `json:"event_type"`
	AlertKind   string    `json:"alert_kind"`
	CompanyID   string    `json:"company_id"`
	InventoryID string    `json:"inventory_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Message     string    `json:"message"`
	OccurredAt  time.Time `json:"occurred_at"`
}
