package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TolikMuradov/AstroCalendar/internal/domain"
)

// Коды ошибок в теле ответа
const (
	CodeInvalidArgument  = "invalid_argument"
	CodeProfileNotFound  = "profile_not_found"
	CodeQuotaExceeded    = "quota_exceeded"
	CodeGenerationFailed = "generation_failed"
	CodeTimeout          = "timeout"
	CodeInternal         = "internal"
)

type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Status статус и код ответа для ошибки use case слоя
func Status(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, CodeInvalidArgument
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, CodeProfileNotFound
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, CodeQuotaExceeded
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusBadGateway, CodeGenerationFailed
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout, CodeTimeout
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}

// Error пишет ошибку в ответ; внутренние ошибки не раскрываются клиенту
func Error(c *gin.Context, log *slog.Logger, err error) {
	status, code := Status(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.ErrorContext(c.Request.Context(), "request failed", "error", err, "path", c.FullPath())
		message = "internal server error"
	}
	c.AbortWithStatusJSON(status, ErrorBody{Error: code, Message: message})
}

// BadRequest ошибка разбора входных данных
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{Error: CodeInvalidArgument, Message: message})
}
