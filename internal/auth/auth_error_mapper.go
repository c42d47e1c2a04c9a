package auth

import (
	"errors"
	"strings"

	usererrors "go-laundry/internal/user/errors"

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
			switch pgErr.ConstraintName {
			case "uq_users_username":
				return usererrors.ErrUsernameTaken
			case "uq_users_email":
				return usererrors.ErrEmailTaken
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_users_username") {
			return usererrors.ErrUsernameTaken
		}
		if strings.Contains(errMsg, "uq_users_email") {
			return usererrors.ErrEmailTaken
		}
	}

	return err
}
