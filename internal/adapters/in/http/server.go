package http

import (
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// Server exposes the operational endpoints of the commerce process.
// Entity traffic does not enter over HTTP; only liveness and readiness
// are served here.
type Server struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewServer creates a server that probes the backing stores.
func NewServer(db *gorm.DB, rdb *redis.Client) *Server {
	return &Server{
		db:  db,
		rdb: rdb,
	}
}

// RegisterRoutes attaches the operational endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/ready", s.Ready)
}

// Health reports process liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// Ready reports whether the database and the cache answer.
func (s *Server) Ready(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(reqCtx)
	}
	if err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
			"status":   "degraded",
			"database": err.Error(),
		})
	}

	if err := s.rdb.Ping(reqCtx).Err(); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"cache":  err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
