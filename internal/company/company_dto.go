package company

type UpdateCompanyRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Logo          string `json:"logo"`
	LowStockLevel *int   `json:"lowStockLevel"`
}

type CompanyResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	Logo          string `json:"logo"`
	LowStockLevel int    `json:"lowStockLevel"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}
