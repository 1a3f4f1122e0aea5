package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BusinessError is a domain failure that already knows which HTTP status
// it maps to. Services and use cases return these; handlers only relay.
type BusinessError struct {
	Status  int
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func NotFoundError(code, message string) error {
	return BusinessError{Status: http.StatusNotFound, Code: code, Message: message}
}

func ForbiddenError(code, message string) error {
	return BusinessError{Status: http.StatusForbidden, Code: code, Message: message}
}

func ValidationError(code, message string) error {
	return BusinessError{Status: http.StatusBadRequest, Code: code, Message: message}
}

func ConflictError(code, message string) error {
	return BusinessError{Status: http.StatusConflict, Code: code, Message: message}
}

func UnauthorizedError(code, message string) error {
	return BusinessError{Status: http.StatusUnauthorized, Code: code, Message: message}
}

// TransientError covers downstream failures (payment provider, store)
// that are surfaced unchanged and never retried server-side.
func TransientError(code, message string) error {
	return BusinessError{Status: http.StatusBadGateway, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// WriteError maps a use-case error onto the response. Unknown errors
// become an opaque 500.
func WriteError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		Write(c, be.Status, be.Code, be.Message)
		return
	}
	Internal(c, "internal_error", "Something went wrong.")
}
