package appointment

import (
	"context"

	"github.com/estilo26/booking-api/internal/audit"
	domain "github.com/estilo26/booking-api/internal/domain/appointment"
	"github.com/estilo26/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientPhone string
	BarberName  string

	ServiceIDs []uint

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	start, err := domain.ParseTime(in.Time)
	if err != nil {
		return nil, err
	}

	services, err := uc.repo.GetServicesByIDs(ctx, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientName:      in.ClientName,
		ClientPhone:     in.ClientPhone,
		BarberName:      in.BarberName,
		AppointmentDate: date,
		StartTime:       start,
		EndTime:         domain.EndTime(start, services),
		Status:          string(domain.InitialStatus()),
		Services:        services,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		uc.audit.Dispatch(audit.Event{
			Action: "appointment_rejected",
			Entity: "appointment",
			Metadata: map[string]any{
				"date":  date,
				"start": start,
			},
		})
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
