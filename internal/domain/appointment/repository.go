package appointment

import (
	"context"

	"github.com/estilo26/booking-api/internal/models"
)

type Repository interface {
	// -------- Service catalog --------
	GetServicesByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	// -------- Appointment (create / reschedule with slot check) --------

	// CreateAppointment persists a new booking after verifying, inside a
	// single transaction, that no other non-cancelled booking holds the
	// same (date, start time) slot. Returns slot_taken on conflict.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// MoveAppointment saves a booking whose slot changed, running the same
	// transactional slot check but ignoring the booking's own row.
	MoveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (lookup / state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	ListAppointments(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListAppointmentsByStatus(
		ctx context.Context,
		status Status,
	) ([]models.Appointment, error)
}
