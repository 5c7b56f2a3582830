package user

import (
	"context"

	"stock-m/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock

type Repository interface {
	Create(ctx context.Context, u *User) error
	FindAllByCompany(ctx context.Context, companyID string) ([]User, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	EmailsByCompany(ctx context.Context, companyID string) ([]string, error)
	Update(ctx context.Context, u *User) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// FindAllByCompany lists a company's staff. Admin accounts are managed
// elsewhere and stay out of the listing.
func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("role <> ?", RoleAdmin).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("Company").
		First(&u, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) EmailsByCompany(ctx context.Context, companyID string) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Model(&User{}).
		Scopes(tenant.Scope(companyID)).
		Pluck("email", &emails).Error
	return emails, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Save(u).Error
}
