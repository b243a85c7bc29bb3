// Package handler contains the echo JSON handlers for the storefront API
// and the mapping from domain errors to HTTP responses.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/luxebeaute/storefront/internal/domain"
)

// ErrorCodeToHTTPStatus maps a domain error code to an HTTP status code.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON error envelope returned to clients.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// HTTPErrorHandler renders every error as the JSON error envelope.
// Internal error details are logged, never sent to clients.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		code := domain.EINTERNAL
		message := domain.ErrorMessage(err)

		var he *echo.HTTPError
		var de *domain.Error
		switch {
		case errors.As(err, &de):
			code = de.Code
			status = ErrorCodeToHTTPStatus(code)
		case errors.As(err, &he):
			status = he.Code
			if status == http.StatusNotFound {
				code = domain.ENOTFOUND
				message = "Not found"
			} else if status < http.StatusInternalServerError {
				code = domain.EINVALID
				if s, ok := he.Message.(string); ok {
					message = s
				}
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error().Err(err).
				Str("path", c.Request().URL.Path).
				Str("method", c.Request().Method).
				Msg("request failed")
		}

		var body errorBody
		body.Error.Code = code
		body.Error.Message = message

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}
