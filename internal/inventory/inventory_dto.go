package inventory

import "github.com/shopspring/decimal"

type CreateInventoryRequest struct {
	SKU            *int64          `json:"sku"`
	ProductName    string          `json:"productName" binding:"required"`
	Quantity       *int            `json:"quantity" binding:"required"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice" binding:"required"`
	SellingPrice   decimal.Decimal `json:"sellingPrice" binding:"required"`
	PurchaseDate   string          `json:"purchaseDate"`
	ExpirationDate string          `json:"expirationDate"`
}

type UpdateInventoryRequest struct {
	ID             string           `json:"id" binding:"required,uuid"`
	SKU            *int64           `json:"sku"`
	ProductName    string           `json:"productName"`
	Quantity       *int             `json:"quantity"`
	PurchasePrice  *decimal.Decimal `json:"purchasePrice"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice"`
	PurchaseDate   string           `json:"purchaseDate"`
	ExpirationDate string           `json:"expirationDate"`
}

type InventoryResponse struct {
	ID             string          `json:"id"`
	SKU            *int64          `json:"sku,omitempty"`
	ProductName    string          `json:"productName"`
	Quantity       int             `json:"quantity"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice"`
	SellingPrice   decimal.Decimal `json:"sellingPrice"`
	PurchaseDate   string          `json:"purchaseDate,omitempty"`
	ExpirationDate string          `json:"expirationDate,omitempty"`
	CompanyID      string          `json:"companyId"`
	CreatedAt      string          `json:"createdAt"`
	UpdatedAt      string          `json:"updatedAt"`
}
