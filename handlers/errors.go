package handlers

import (
	"context"
	"errors"
	"net/http"

	"restaurant-menu-api/apperr"

	"github.com/gin-gonic/gin"
)

// HTTPErrorInfo is the status and client message for an error.
type HTTPErrorInfo struct {
	Status  int
	Message string
}

type ErrorMapping struct {
	Error   error
	Status  int
	Message string
}

// ErrorMapper maps error kinds to HTTP responses. Mappings are checked in order.
type ErrorMapper struct {
	mappings       []ErrorMapping
	defaultStatus  int
	defaultMessage string
}

func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{
		defaultStatus:  http.StatusInternalServerError,
		defaultMessage: "internal server error",
	}
}

func (m *ErrorMapper) WithMapping(err error, status int, message string) *ErrorMapper {
	m.mappings = append(m.mappings, ErrorMapping{Error: err, Status: status, Message: message})
	return m
}

// DefaultErrorMapper knows every apperr kind.
func DefaultErrorMapper() *ErrorMapper {
	return NewErrorMapper().
		WithMapping(apperr.ErrValidation, http.StatusBadRequest, "invalid request").
		WithMapping(apperr.ErrNotFound, http.StatusNotFound, "not found").
		WithMapping(apperr.ErrTranslation, http.StatusBadRequest, "translation failed").
		WithMapping(apperr.ErrExternalService, http.StatusInternalServerError, "external service error").
		WithMapping(apperr.ErrUpstreamQuery, http.StatusInternalServerError, "database query failed")
}

// Map prefers the message carried by an *apperr.Error over the mapping's fallback.
func (m *ErrorMapper) Map(err error) HTTPErrorInfo {
	if err == nil {
		return HTTPErrorInfo{Status: http.StatusOK}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return HTTPErrorInfo{Status: http.StatusGatewayTimeout, Message: "request timeout"}
	}
	if errors.Is(err, context.Canceled) {
		return HTTPErrorInfo{Status: http.StatusServiceUnavailable, Message: "request cancelled"}
	}
	for _, mapping := range m.mappings {
		if errors.Is(err, mapping.Error) {
			return HTTPErrorInfo{Status: mapping.Status, Message: apperr.Message(err, mapping.Message)}
		}
	}
	return HTTPErrorInfo{Status: m.defaultStatus, Message: m.defaultMessage}
}

func (h *Handler) respondError(c *gin.Context, err error) {
	info := h.errs.Map(err)
	if info.Status >= http.StatusInternalServerError {
		h.logger.Errorw("request failed", "path", c.FullPath(), "status", info.Status, "error", err)
	}
	c.JSON(info.Status, gin.H{"error": info.Message})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
