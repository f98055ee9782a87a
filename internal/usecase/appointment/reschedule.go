package appointment

import (
	"context"

	"github.com/estilo26/booking-api/internal/audit"
	domain "github.com/estilo26/booking-api/internal/domain/appointment"
	"github.com/estilo26/booking-api/internal/models"
)

type RescheduleAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves a booking to a new slot. The moved booking always goes
// back to PENDING, keeps the rescheduled mark forever, and occupies a
// fixed 30-minute block regardless of its services.
func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	actorID *uint,
	appointmentID uint,
	newDate string,
	newTime string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(newDate)
	if err != nil {
		return nil, err
	}

	start, err := domain.ParseTime(newTime)
	if err != nil {
		return nil, err
	}

	ap.AppointmentDate = date
	ap.StartTime = start
	ap.EndTime = domain.AddMinutes(start, domain.RescheduleDurationMin)
	ap.Status = string(domain.StatusPending)
	ap.Rescheduled = true

	if err := uc.repo.MoveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date":  date,
			"start": start,
		},
	})

	return ap, nil
}
