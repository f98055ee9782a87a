package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/estilo26/booking-api/internal/audit"
	domain "github.com/estilo26/booking-api/internal/domain/user"
	"github.com/estilo26/booking-api/internal/httperr"
	"github.com/estilo26/booking-api/internal/httpresp"
	"github.com/estilo26/booking-api/internal/middleware"
	"github.com/estilo26/booking-api/internal/models"
)

type UserHandler struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUserHandler(repo domain.Repository, auditDispatcher *audit.Dispatcher) *UserHandler {
	return &UserHandler{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=ADMIN BARBER"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.ListUsers(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	httpresp.List(c, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	exists, err := h.repo.ExistsByUsernameOrEmail(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	if exists {
		writeBusinessError(c, httperr.ErrBusiness("duplicate_user"))
		return
	}

	// The plaintext never reaches storage.
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         req.Role,
	}

	if err := h.repo.CreateUser(c.Request.Context(), &user); err != nil {
		writeBusinessError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   middleware.ActorID(c),
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.Created(c, user)
}
