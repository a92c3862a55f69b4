package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes a plain 200 response with the given body.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// ErrorResponse writes the standard error envelope.
func ErrorResponse(c echo.Context, status int, code, message string) error {
	return c.JSON(status, ErrorEnvelope{
		Error:   code,
		Message: message,
	})
}

// BadRequestResponse writes a 400 envelope from validation output.
func BadRequestResponse(c echo.Context, verrs []ValidationError) error {
	msgs := make([]string, 0, len(verrs))
	for _, v := range verrs {
		msgs = append(msgs, v.Message)
	}
	return c.JSON(http.StatusBadRequest, ErrorEnvelope{
		Error:   "validation_error",
		Message: strings.Join(msgs, "; "),
		Details: verrs,
	})
}

// ActionResponse writes the {success, message, data, timestamp} envelope.
func ActionResponse(c echo.Context, status int, success bool, message string, data interface{}) error {
	return c.JSON(status, ActionEnvelope{
		Success:   success,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// AppErrorResponse writes application error response.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Code, appErr.Message)
	}
	return ErrorResponse(c, http.StatusInternalServerError, "ERR_INTERNAL", "something went wrong")
}
