package student

import (
	"errors"
	"strings"

	studenterrors "github.com/mexanik619/College-Placement-Website/internal/student/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_student_email" {
			return studenterrors.ErrStudentAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_student_email") {
		return studenterrors.ErrStudentAlreadyExists
	}

	return err
}
