package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/estilo26/booking-api/internal/audit"
	"github.com/estilo26/booking-api/internal/config"
	"github.com/estilo26/booking-api/internal/handlers"
	infraRepo "github.com/estilo26/booking-api/internal/infra/repository"
	"github.com/estilo26/booking-api/internal/middleware"
	"github.com/estilo26/booking-api/internal/models"
	"github.com/estilo26/booking-api/internal/ratelimit"
	ucAppointment "github.com/estilo26/booking-api/internal/usecase/appointment"
	ucAuth "github.com/estilo26/booking-api/internal/usecase/auth"
	ucClient "github.com/estilo26/booking-api/internal/usecase/client"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	userRepo := infraRepo.NewUserGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	var limiter ratelimit.Limiter = ratelimit.NewNop()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		limiter = ratelimit.NewRedisLimiter(rdb, logger, 10, time.Minute)
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(appointmentRepo, auditDispatcher)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher)
	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(appointmentRepo, auditDispatcher)
	rescheduleAppointmentUC := ucAppointment.NewRescheduleAppointment(appointmentRepo, auditDispatcher)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(appointmentRepo, auditDispatcher)

	topClientsUC := ucClient.NewGetTopClients(appointmentRepo)
	loginUC := ucAuth.NewLogin(userRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsUC,
		updateStatusUC,
		confirmAppointmentUC,
		rescheduleAppointmentUC,
		deleteAppointmentUC,
	)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(topClientsUC)
	authHandler := handlers.NewAuthHandler(loginUC, cfg, limiter, auditDispatcher, logger)
	userHandler := handlers.NewUserHandler(userRepo, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC (booking form + login)
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)
		api.GET("/services", serviceHandler.List)
		api.POST("/appointments", appointmentHandler.Create)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/appointments", appointmentHandler.List)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/clients/vip", clientHandler.VIP)

			// ------------------------------
			// ADMIN ONLY
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole(models.RoleAdmin))
			{
				admin.POST("/services", serviceHandler.Create)
				admin.PUT("/services/:id", serviceHandler.Update)
				admin.DELETE("/services/:id", serviceHandler.Delete)

				admin.GET("/users", userHandler.List)
				admin.POST("/users", userHandler.Create)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
