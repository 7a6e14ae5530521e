package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCosmeticCollabNotFound 化妆品联名记录未找到
	ErrCosmeticCollabNotFound = errors.New("cosmetic collaboration not found")

	// ErrVideogameCollabNotFound 游戏联名记录未找到
	ErrVideogameCollabNotFound = errors.New("videogame collaboration not found")

	// ErrStoreUnavailable 存储后端不可用（数据库连接失败或文件不可读写）
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError 载荷校验错误，标明违反约束的字段
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError 创建校验错误
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
