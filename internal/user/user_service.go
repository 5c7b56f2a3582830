package user

import (
	"context"
	"errors"
	"time"

	"stock-m/internal/shared/contextutil"
	usererrors "stock-m/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, companyID string) ([]UserResponse, error)
	Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateUserRequest) (UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]UserResponse, error) {
	users, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}

	return resp, nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidCompanyID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("hash password failed", zap.Error(err))
		return UserResponse{}, err
	}

	u := &User{
		ID:        uuid.New(),
		CompanyID: &companyUUID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Password:  string(hashed),
		Status:    StatusActive,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	l.Info("user created",
		zap.String("user_id", u.ID.String()),
		zap.String("company_id", companyID),
		zap.String("role", u.Role),
	)

	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateUserRequest) (UserResponse, error) {
	u, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	if req.FirstName != "" {
		u.FirstName = req.FirstName
	}
	if req.LastName != "" {
		u.LastName = req.LastName
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.Role != "" {
		u.Role = req.Role
	}
	if req.Status != "" {
		u.Status = req.Status
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserResponse{}, err
		}
		u.Password = string(hashed)
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*u), nil
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmNewPassword {
		return usererrors.ErrPasswordMismatch
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return usererrors.ErrUserNotFound
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)) != nil {
		return usererrors.ErrCurrentPasswordIncorrect
	}

	// Rotating to the same password is a no-op and almost certainly a
	// user mistake.
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.NewPassword)) == nil {
		return usererrors.ErrPasswordUnchanged
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)

	return s.repo.Update(ctx, u)
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
	if u.CompanyID != nil {
		resp.CompanyID = u.CompanyID.String()
	}
	return resp
}
