package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/estilo26/booking-api/internal/config"
	dbpkg "github.com/estilo26/booking-api/internal/db"
	"github.com/estilo26/booking-api/internal/logging"
	"github.com/estilo26/booking-api/internal/middleware"
	"github.com/estilo26/booking-api/internal/routes"
)

func main() {

	logger := logging.NewLogger()
	defer logger.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	if err := dbpkg.Seed(db, logger); err != nil {
		logger.Fatal("failed to seed database", zap.Error(err))
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
