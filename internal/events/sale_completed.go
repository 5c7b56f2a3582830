package events

import "time"

const SaleCompletedTopic = "pos.sale.completed.v1"

type SaleCompletedItem struct {
	InventoryID string `json:"inventory_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Total       string `json:"total"`
}

type SaleCompletedEvent struct {
	EventType    string              `json:"event_type"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	CompanyID    string              `json:"company_id"`
	SoldBy       string              `json:"sold_by"`
	Items        []SaleCompletedItem `json:"items"`
	GrandTotal   string              `json:"grand_total"`
	OccurredAt   time.Time           `json:"occurred_at"`
}
