package auth

import (
	"context"
	"errors"

	autherrors "stock-m/internal/auth/errors"
	"stock-m/internal/user"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (token string, resp AuthResponse, err error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
}

type service struct {
	users  user.Repository
	logger *zap.Logger
}

func NewService(users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (string, AuthResponse, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// Same answer for unknown email and wrong password.
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if u.Status != user.StatusActive {
		return "", AuthResponse{}, autherrors.ErrAccountInactive
	}

	if !VerifyPassword(password, u.Password) {
		return "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	payload := TokenPayload{
		UserID: u.ID.String(),
		Role:   u.Role,
		Names:  u.FullName(),
		Email:  u.Email,
	}
	if u.CompanyID != nil {
		payload.CompanyID = u.CompanyID.String()
	}
	if u.Company != nil {
		payload.CompanyName = u.Company.Name
		payload.CompanyAddress = u.Company.Address
	}

	token, err := GenerateToken(payload)
	if err != nil {
		s.logger.Error("generate token failed", zap.Error(err))
		return "", AuthResponse{}, err
	}

	s.logger.Info("login success",
		zap.String("user_id", payload.UserID),
		zap.String("company_id", payload.CompanyID),
	)

	return token, AuthResponse{
		ID:        payload.UserID,
		Email:     u.Email,
		Role:      u.Role,
		Names:     payload.Names,
		CompanyID: payload.CompanyID,
	}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return AuthResponse{}, autherrors.ErrPasswordMismatch
	}

	if existing, err := s.users.FindByEmail(ctx, req.Email); err == nil && existing != nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AuthResponse{}, err
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &user.User{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Password:  hashed,
		Status:    user.StatusActive,
	}
	if req.CompanyID != "" {
		companyUUID, err := uuid.Parse(req.CompanyID)
		if err != nil {
			return AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		u.CompanyID = &companyUUID
	}

	if err := s.users.Create(ctx, u); err != nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	s.logger.Info("user registered",
		zap.String("user_id", u.ID.String()),
		zap.String("role", u.Role),
	)

	resp := AuthResponse{
		ID:    u.ID.String(),
		Email: u.Email,
		Role:  u.Role,
		Names: u.FullName(),
	}
	if u.CompanyID != nil {
		resp.CompanyID = u.CompanyID.String()
	}
	return resp, nil
}
