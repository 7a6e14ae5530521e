package health

import (
	"context"
	"sync"
	"time"
)

// Status 健康状态
type Status string

const (
	// StatusHealthy 健康
	StatusHealthy Status = "healthy"
	// StatusUnhealthy 不健康
	StatusUnhealthy Status = "unhealthy"
)

// CheckResult 检查结果
type CheckResult struct {
	Status    Status        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Duration  time.Duration `json:"duration"`
	Error     string        `json:"error,omitempty"`
}

// Checker 健康检查器接口
type Checker interface {
	// Check 执行健康检查
	Check(ctx context.Context) CheckResult
	// Name 检查器名称
	Name() string
}

// HealthChecker 健康检查管理器
type HealthChecker struct {
	mu       sync.RWMutex
	checkers map[string]Checker
}

// NewHealthChecker 创建健康检查管理器
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checkers: make(map[string]Checker),
	}
}

// Register 注册检查器
func (h *HealthChecker) Register(checker Checker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[checker.Name()] = checker
}

// Check 执行所有检查
func (h *HealthChecker) Check(ctx context.Context) map[string]CheckResult {
	h.mu.RLock()
	checkers := make([]Checker, 0, len(h.checkers))
	for _, checker := range h.checkers {
		checkers = append(checkers, checker)
	}
	h.mu.RUnlock()

	results := make(map[string]CheckResult)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, checker := range checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			result := c.Check(ctx)
			mu.Lock()
			results[c.Name()] = result
			mu.Unlock()
		}(checker)
	}

	wg.Wait()
	return results
}

// GetStatus 获取整体状态，任一检查失败即为不健康
func (h *HealthChecker) GetStatus(ctx context.Context) Status {
	for _, result := range h.Check(ctx) {
		if result.Status == StatusUnhealthy {
			return StatusUnhealthy
		}
	}
	return StatusHealthy
}

// StoreChecker 存储后端健康检查
type StoreChecker struct {
	name   string
	pingFn func(context.Context) error
}

// NewStoreChecker 创建存储检查器
func NewStoreChecker(name string, pingFn func(context.Context) error) *StoreChecker {
	return &StoreChecker{
		name:   name,
		pingFn: pingFn,
	}
}

// Name 返回检查器名称
func (s *StoreChecker) Name() string {
	return s.name
}

// Check 执行检查
func (s *StoreChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	err := s.pingFn(ctx)
	duration := time.Since(start)

	if err != nil {
		return CheckResult{
			Status:    StatusUnhealthy,
			Timestamp: time.Now(),
			Duration:  duration,
			Error:     err.Error(),
		}
	}

	return CheckResult{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Duration:  duration,
	}
}
