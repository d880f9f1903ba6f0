package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the boundary representation of any error: handlers convert
// whatever bubbles up from a service into one of these and serialize it.
type HTTPError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ToHTTP maps an error to its HTTP projection. AppErrors carry their own
// status and code; anything else is a store/infrastructure failure and is
// surfaced as a 500 with the raw message.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		var details any
		if appErr.Err != nil {
			details = appErr.Err.Error()
		}
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: details,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: err.Error(),
	}
}
