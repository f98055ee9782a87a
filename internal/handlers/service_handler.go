package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/estilo26/booking-api/internal/domain/appointment"
	"github.com/estilo26/booking-api/internal/httperr"
	"github.com/estilo26/booking-api/internal/httpresp"
	"github.com/estilo26/booking-api/internal/models"
)

type ServiceHandler struct {
	db *gorm.DB
}

func NewServiceHandler(db *gorm.DB) *ServiceHandler {
	return &ServiceHandler{db: db}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	DurationMin int     `json:"duration_minutes" binding:"required,gt=0"`
	Icon        string  `json:"icon"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	svc := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Icon:        req.Icon,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Error al crear el servicio.")
		return
	}

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var svc models.Service
	if err := h.db.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "service_not_found", "Servicio no encontrado.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	locked, err := h.referencedByPastAppointment(id)
	if err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	if locked {
		writeBusinessError(c, httperr.ErrBusiness("service_locked"))
		return
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.Price = req.Price
	svc.DurationMin = req.DurationMin
	if req.Icon != "" {
		svc.Icon = req.Icon
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Error al actualizar el servicio.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	locked, err := h.referencedByPastAppointment(id)
	if err != nil {
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}
	if locked {
		writeBusinessError(c, httperr.ErrBusiness("service_locked"))
		return
	}

	if err := h.db.Delete(&models.Service{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_service", "Error al eliminar el servicio.")
		return
	}

	c.Status(204)
}

// A service already performed (completed booking, or any booking whose
// date has passed) is part of history and must stay immutable.
func (h *ServiceHandler) referencedByPastAppointment(serviceID uint) (bool, error) {
	today := time.Now().Format(domain.DateLayout)

	var count int64
	err := h.db.
		Table("appointment_services").
		Joins("JOIN appointments ON appointments.id = appointment_services.appointment_id").
		Where("appointment_services.service_id = ?", serviceID).
		Where(
			"appointments.appointment_date < ? OR appointments.status = ?",
			today, string(domain.StatusCompleted),
		).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
