package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

type SaleItemRequest struct {
	ProductID string          `json:"productId" binding:"required,uuid"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

type CreateSaleRequest struct {
	CustomerName  string            `json:"customerName" binding:"required"`
	CustomerPhone string            `json:"customerPhone" binding:"required"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

type SaleLineResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type CreateSaleResponse struct {
	CustomerID    string             `json:"customerId"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	Items         []SaleLineResponse `json:"items"`
	GrandTotal    decimal.Decimal    `json:"grandTotal"`
}

type SaleResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	CustomerID    string          `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	CustomerPhone string          `json:"customerPhone"`
	UserID        string          `json:"userId"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}
