package server

import (
	"net/http"
	"time"

	"collabservice/cmd/collab-service/internal/middleware"
	"collabservice/cmd/collab-service/internal/service"
	"collabservice/pkg/health"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger 日志接口
type Logger interface {
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
}

// HTTPServer HTTP 服务器
type HTTPServer struct {
	engine  *gin.Engine
	service *service.CollabService
	health  *health.HealthChecker
	logger  Logger
}

// NewHTTPServer 创建 HTTP 服务器
func NewHTTPServer(srv *service.CollabService, checker *health.HealthChecker, logger Logger) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	s := &HTTPServer{
		engine:  gin.New(),
		service: srv,
		health:  checker,
		logger:  logger,
	}

	s.registerMiddlewares()
	s.registerRoutes()

	return s
}

// Engine 返回 gin 引擎，供 http.Server 挂载
func (s *HTTPServer) Engine() *gin.Engine {
	return s.engine
}

// registerMiddlewares 注册中间件
func (s *HTTPServer) registerMiddlewares() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(middleware.RequestID())
	s.engine.Use(middleware.Metrics())
	s.engine.Use(s.requestLogger())
}

// registerRoutes 注册路由
// 两个资源族的端点形状一致，仅搜索参数和排序路径名不同
func (s *HTTPServer) registerRoutes() {
	s.engine.GET("/", s.root)
	s.engine.GET("/healthz", s.healthz)

	cosmetics := s.engine.Group("/cosmetics")
	{
		cosmetics.GET("", s.listCosmetics)
		cosmetics.GET("/search_by_brand", s.searchCosmeticsByBrand)
		cosmetics.GET("/by_recent_date", s.listCosmeticsByRecentDate)
		cosmetics.GET("/:id", s.getCosmetic)
		cosmetics.POST("", s.createCosmetic)
		cosmetics.PUT("/:id", s.updateCosmetic)
		cosmetics.DELETE("/:id", s.deleteCosmetic)
	}

	videogames := s.engine.Group("/videogames")
	{
		videogames.GET("", s.listVideogames)
		videogames.GET("/search_by_name", s.searchVideogamesByName)
		videogames.GET("/by_date", s.listVideogamesByRecentDate)
		videogames.GET("/:id", s.getVideogame)
		videogames.POST("", s.createVideogame)
		videogames.PUT("/:id", s.updateVideogame)
		videogames.DELETE("/:id", s.deleteVideogame)
	}
}

// requestLogger 请求日志中间件
func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		s.logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// root 根端点
func (s *HTTPServer) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hello, Cosmetic and Videogame Collaborations API",
	})
}

// healthz 健康检查，汇总各存储后端的探活结果
func (s *HTTPServer) healthz(c *gin.Context) {
	results := s.health.Check(c.Request.Context())

	status := http.StatusOK
	overall := health.StatusHealthy
	for _, r := range results {
		if r.Status == health.StatusUnhealthy {
			status = http.StatusServiceUnavailable
			overall = health.StatusUnhealthy
			break
		}
	}

	c.JSON(status, gin.H{
		"status": overall,
		"checks": results,
	})
}
