package application

import (
	"errors"
	"strings"

	applicationerrors "github.com/mexanik619/College-Placement-Website/internal/application/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return applicationerrors.ErrApplicationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		switch pgErr.ConstraintName {
		case "fk_applications_student":
			return applicationerrors.ErrStudentNotFound
		case "fk_applications_job":
			return applicationerrors.ErrJobNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "foreign key constraint") {
		if strings.Contains(errMsg, "fk_applications_student") {
			return applicationerrors.ErrStudentNotFound
		}
		if strings.Contains(errMsg, "fk_applications_job") {
			return applicationerrors.ErrJobNotFound
		}
	}

	return err
}
