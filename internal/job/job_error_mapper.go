package job

import (
	"errors"
	"strings"

	joberrors "github.com/mexanik619/College-Placement-Website/internal/job/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23503" && pgErr.ConstraintName == "fk_job_postings_company" {
			return joberrors.ErrCompanyNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "foreign key constraint") && strings.Contains(errMsg, "fk_job_postings_company") {
		return joberrors.ErrCompanyNotFound
	}

	return err
}
