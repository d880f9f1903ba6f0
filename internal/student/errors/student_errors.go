package studenterrors

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
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"invalid email format",
		http.StatusBadRequest,
	)
	ErrCGPAOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"cgpa must be between 0 and 10",
		http.StatusBadRequest,
	)
	ErrStudentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A student with this email is already registered",
		http.StatusConflict,
	)
)
