package stats

import "github.com/shopspring/decimal"

type StatsResponse struct {
	TotalProd    int64           `json:"totalProd"`
	LowStock     int64           `json:"lowStock"`
	TotalExpired int64           `json:"totalExpired"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalSales   int64           `json:"totalSales"`
}
