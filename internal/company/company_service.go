package company

import (
	"context"
	"errors"
	"time"

	companyerrors "stock-m/internal/company/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=company_service.go -destination=mock/company_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, companyID string) (*CompanyResponse, error)
	Update(ctx context.Context, companyID string, req UpdateCompanyRequest) (*CompanyResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, companyID string) (*CompanyResponse, error) {
	id, err := uuid.Parse(companyID)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	return mapToResponse(c), nil
}

func (s *service) Update(ctx context.Context, companyID string, req UpdateCompanyRequest) (*CompanyResponse, error) {
	id, err := uuid.Parse(companyID)
	if err != nil {
		return nil, companyerrors.ErrInvalidCompanyID
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companyerrors.ErrCompanyNotFound
		}
		return nil, err
	}

	if req.Name != "" {
		c.Name = req.Name
	}
	if req.Address != "" {
		c.Address = req.Address
	}
	if req.Logo != "" {
		c.Logo = req.Logo
	}
	if req.LowStockLevel != nil {
		if *req.LowStockLevel < 0 {
			return nil, companyerrors.ErrInvalidLowStockLevel
		}
		c.LowStockLevel = *req.LowStockLevel
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	return mapToResponse(c), nil
}

func mapToResponse(c *Company) *CompanyResponse {
	return &CompanyResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Address:       c.Address,
		Logo:          c.Logo,
		LowStockLevel: c.LowStockLevel,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     c.UpdatedAt.Format(time.RFC3339),
	}
}
