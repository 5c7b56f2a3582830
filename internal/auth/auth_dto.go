package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	Role            string `json:"role" binding:"required,oneof=Admin User Seller"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	CompanyID       string `json:"companyId" binding:"omitempty,uuid"`
}

type AuthResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Names     string `json:"names"`
	CompanyID string `json:"companyId,omitempty"`
}

type SessionResponse struct {
	ID             string `json:"id"`
	Role           string `json:"role"`
	CompanyID      string `json:"companyId"`
	Names          string `json:"names"`
	Email          string `json:"email"`
	CompanyName    string `json:"companyName"`
	CompanyAddress string `json:"companyAddress"`
}
