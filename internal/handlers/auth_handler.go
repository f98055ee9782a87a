package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/estilo26/booking-api/internal/audit"
	"github.com/estilo26/booking-api/internal/config"
	"github.com/estilo26/booking-api/internal/httperr"
	"github.com/estilo26/booking-api/internal/httpresp"
	"github.com/estilo26/booking-api/internal/models"
	"github.com/estilo26/booking-api/internal/ratelimit"
	ucAuth "github.com/estilo26/booking-api/internal/usecase/auth"
)

type AuthHandler struct {
	login   *ucAuth.Login
	config  *config.Config
	limiter ratelimit.Limiter
	audit   *audit.Dispatcher
	logger  *zap.Logger
}

func NewAuthHandler(
	login *ucAuth.Login,
	cfg *config.Config,
	limiter ratelimit.Limiter,
	auditDispatcher *audit.Dispatcher,
	logger *zap.Logger,
) *AuthHandler {
	return &AuthHandler{
		login:   login,
		config:  cfg,
		limiter: limiter,
		audit:   auditDispatcher,
		logger:  logger,
	}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	allowed, _ := h.limiter.Allow(c.Request.Context(), "login:"+c.ClientIP())
	if !allowed {
		httperr.TooManyRequests(c, "too_many_attempts", "Demasiados intentos. Intenta más tarde.")
		return
	}

	user, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.audit.Dispatch(audit.Event{
			Action:   "login_failed",
			Entity:   "user",
			Metadata: map[string]any{"ip": c.ClientIP()},
		})
		writeBusinessError(c, err)
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		h.logger.Error("token generation failed", zap.Error(err))
		httperr.Internal(c, "failed_to_generate_token", "Error interno.")
		return
	}

	httpresp.OK(c, gin.H{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
