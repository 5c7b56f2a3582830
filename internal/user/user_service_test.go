package user_test

import (
	"context"
	"testing"

	"stock-m/internal/user"
	usererrors "stock-m/internal/user/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	createFn           func(ctx context.Context, u *user.User) error
	findAllByCompanyFn func(ctx context.Context, companyID string) ([]user.User, error)
	findByIDFn         func(ctx context.Context, id uuid.UUID) (*user.User, error)
	updateFn           func(ctx context.Context, u *user.User) error
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, u)
	}
	return nil
}

func (f *fakeUserRepository) FindAllByCompany(ctx context.Context, companyID string) ([]user.User, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeUserRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) EmailsByCompany(ctx context.Context, companyID string) ([]string, error) {
	return nil, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, u)
	}
	return nil
}

func hashFor(t *testing.T, plain string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("HashesPasswordAndActivates", func(t *testing.T) {
		var created *user.User
		repo := &fakeUserRepository{
			createFn: func(ctx context.Context, u *user.User) error {
				created = u
				return nil
			},
		}
		svc := user.NewService(repo)

		companyID := uuid.New().String()
		resp, err := svc.Create(ctx, companyID, user.CreateUserRequest{
			FirstName: "Sam",
			LastName:  "Doe",
			Email:     "sam@example.com",
			Role:      user.RoleSeller,
			Password:  "s3cret-pw",
		})

		assert.NoError(t, err)
		assert.Equal(t, companyID, resp.CompanyID)
		assert.Equal(t, user.StatusActive, resp.Status)
		if assert.NotNil(t, created) {
			assert.NotEqual(t, "s3cret-pw", created.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pw")))
		}
	})

	t.Run("InvalidCompanyID", func(t *testing.T) {
		svc := user.NewService(&fakeUserRepository{})

		_, err := svc.Create(ctx, "not-a-uuid", user.CreateUserRequest{
			FirstName: "Sam",
			LastName:  "Doe",
			Email:     "sam@example.com",
			Role:      user.RoleSeller,
			Password:  "s3cret-pw",
		})
		assert.ErrorIs(t, err, usererrors.ErrInvalidCompanyID)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newRepo := func(currentPassword string) *fakeUserRepository {
		return &fakeUserRepository{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*user.User, error) {
				return &user.User{
					ID:       userID,
					Password: hashFor(t, currentPassword),
					Status:   user.StatusActive,
				}, nil
			},
		}
	}

	t.Run("Success", func(t *testing.T) {
		repo := newRepo("old-pw")
		var updated *user.User
		repo.updateFn = func(ctx context.Context, u *user.User) error {
			updated = u
			return nil
		}
		svc := user.NewService(repo)

		err := svc.ChangePassword(ctx, userID.String(), user.ChangePasswordRequest{
			CurrentPassword:    "old-pw",
			NewPassword:        "new-pw-123",
			ConfirmNewPassword: "new-pw-123",
		})

		assert.NoError(t, err)
		if assert.NotNil(t, updated) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-pw-123")))
		}
	})

	t.Run("ConfirmMismatch", func(t *testing.T) {
		svc := user.NewService(newRepo("old-pw"))

		err := svc.ChangePassword(ctx, userID.String(), user.ChangePasswordRequest{
			CurrentPassword:    "old-pw",
			NewPassword:        "new-pw-123",
			ConfirmNewPassword: "different",
		})
		assert.ErrorIs(t, err, usererrors.ErrPasswordMismatch)
	})

	t.Run("WrongCurrentPassword", func(t *testing.T) {
		svc := user.NewService(newRepo("old-pw"))

		err := svc.ChangePassword(ctx, userID.String(), user.ChangePasswordRequest{
			CurrentPassword:    "not-the-old-pw",
			NewPassword:        "new-pw-123",
			ConfirmNewPassword: "new-pw-123",
		})
		assert.ErrorIs(t, err, usererrors.ErrCurrentPasswordIncorrect)
	})

	t.Run("SameAsCurrent", func(t *testing.T) {
		svc := user.NewService(newRepo("old-pw"))

		err := svc.ChangePassword(ctx, userID.String(), user.ChangePasswordRequest{
			CurrentPassword:    "old-pw",
			NewPassword:        "old-pw",
			ConfirmNewPassword: "old-pw",
		})
		assert.ErrorIs(t, err, usererrors.ErrPasswordUnchanged)
	})
}

func TestUserService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()

	repo := &fakeUserRepository{
		findAllByCompanyFn: func(ctx context.Context, gotCompany string) ([]user.User, error) {
			assert.Equal(t, companyID.String(), gotCompany)
			return []user.User{
				{ID: uuid.New(), CompanyID: &companyID, FirstName: "A", LastName: "B", Role: user.RoleSeller},
				{ID: uuid.New(), CompanyID: &companyID, FirstName: "C", LastName: "D", Role: user.RoleUser},
			}, nil
		},
	}
	svc := user.NewService(repo)

	resp, err := svc.GetAll(ctx, companyID.String())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, user.RoleSeller, resp[0].Role)
}
