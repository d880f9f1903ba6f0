package companyerrors

import (
	"net/http"

	"github.com/mexanik619/College-Placement-Website/internal/shared/apperror"
)

var (
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields",
		http.StatusBadRequest,
	)

	ErrCompanyAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A company with this email is already registered",
		http.StatusConflict,
	)
)
