package server

import (
	"errors"
	"net/http"

	"collabservice/cmd/collab-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一错误响应格式
type ErrorResponse struct {
	Message     string `json:"message"`
	Detail      string `json:"detail"`
	RequestPath string `json:"request_path"`
}

// Fail 按给定状态码写出错误响应
func Fail(c *gin.Context, status int, message, detail string) {
	c.JSON(status, ErrorResponse{
		Message:     message,
		Detail:      detail,
		RequestPath: c.Request.URL.Path,
	})
}

// Error 将领域错误映射为 HTTP 错误响应
//
// 映射规则：校验错误 422，记录未找到 404，存储不可用 503，其余 500
func Error(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		Fail(c, http.StatusUnprocessableEntity, "validation failed", verr.Error())
	case errors.Is(err, domain.ErrCosmeticCollabNotFound),
		errors.Is(err, domain.ErrVideogameCollabNotFound):
		Fail(c, http.StatusNotFound, "resource not found", err.Error())
	case errors.Is(err, domain.ErrStoreUnavailable):
		Fail(c, http.StatusServiceUnavailable, "store unavailable", "storage backend is unavailable")
	default:
		Fail(c, http.StatusInternalServerError, "internal server error", "internal server error")
	}
}
