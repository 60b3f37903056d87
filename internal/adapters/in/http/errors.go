package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"flowerorder/internal/core/domain/services"
	"flowerorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps application errors to HTTP status codes.
func statusOf(err error) int {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, services.ErrOrderNumberGenerationExhausted):
		return http.StatusServiceUnavailable
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrStorage):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeError(ctx echo.Context, logger *slog.Logger, err error) error {
	code := statusOf(err)
	message := err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		message = fmt.Sprint(he.Message)
	}
	if code >= http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		if code == http.StatusInternalServerError {
			message = http.StatusText(code)
		}
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

// ErrorHandler renders errors that escape handlers and middleware as Error JSON.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}
		if writeErr := writeError(ctx, logger, err); writeErr != nil {
			logger.Error("Failed to write error response", "error", writeErr)
		}
	}
}
