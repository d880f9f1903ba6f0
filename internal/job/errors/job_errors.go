package joberrors

import (
	"net/http"

	"github.com/mexanik619/College-Placement-Website/internal/shared/apperror"
)

var (
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields for job posting",
		http.StatusBadRequest,
	)

	ErrCompanyNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"company does not exist",
		http.StatusBadRequest,
	)
)
