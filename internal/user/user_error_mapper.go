package user

import (
	"errors"
	"strings"

	usererrors "stock-m/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return usererrors.ErrEmailAlreadyRegistered
		}
	}

	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return usererrors.ErrEmailAlreadyRegistered
	}

	return err
}
