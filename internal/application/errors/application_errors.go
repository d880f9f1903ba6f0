package applicationerrors

import (
	"net/http"

	"github.com/mexanik619/College-Placement-Website/internal/shared/apperror"
)

var (
	ErrMissingIDs = apperror.New(
		apperror.CodeInvalidInput,
		"Missing student_id or job_id",
		http.StatusBadRequest,
	)
	ErrMissingStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Missing status field",
		http.StatusBadRequest,
	)
	ErrUnknownStatus = apperror.New(
		apperror.CodeInvalidInput,
		"unrecognized application status",
		http.StatusBadRequest,
	)
	ErrInvalidApplicationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid application id",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid application status transition",
		http.StatusBadRequest,
	)
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"application not found",
		http.StatusNotFound,
	)
	ErrDuplicateApplication = apperror.New(
		apperror.CodeConflict,
		"student has already applied to this job",
		http.StatusConflict,
	)
	ErrStudentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"student does not exist",
		http.StatusBadRequest,
	)
	ErrJobNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"job posting does not exist",
		http.StatusBadRequest,
	)
)
