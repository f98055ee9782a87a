package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/estilo26/booking-api/internal/httperr"
)

// writeBusinessError maps domain error codes onto HTTP responses. The
// messages stay user-facing Spanish; the codes are what the frontend
// switches on. Anything unrecognized becomes a generic 500 so internals
// never leak.
func writeBusinessError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.Conflict(c, "slot_taken", "Lo sentimos, ese horario ya está reservado.")
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Cita no encontrada.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Servicio no encontrado.")
	case httperr.IsBusiness(err, "service_locked"):
		httperr.Conflict(c, "service_locked", "El servicio ya fue usado en citas pasadas y no puede modificarse.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Estado de cita no reconocido.")
	case httperr.IsBusiness(err, "duplicate_user"):
		httperr.BadRequest(c, "duplicate_user", "El usuario o correo ya existe.")
	case httperr.IsBusiness(err, "invalid_credentials"):
		httperr.Unauthorized(c, "invalid_credentials", "Credenciales incorrectas.")
	default:
		httperr.Internal(c, "internal_error", "Error interno.")
	}
}
