package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/estilo26/booking-api/internal/domain/appointment"
	"github.com/estilo26/booking-api/internal/httperr"
	"github.com/estilo26/booking-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetServicesByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	if len(ids) == 0 {
		return []models.Service{}, nil
	}

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, err
	}

	if len(services) != len(uniqueIDs(ids)) {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	return services, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// --------------------------------------------------
// Appointment (slot-checked writes)
// --------------------------------------------------

// Slot occupancy is checked and the row written inside one transaction.
// Two concurrent bookings that both pass the read still cannot
// double-book: the partial unique index created in db.Migrate rejects
// the second insert, which is reported as the same slot_taken error.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap.AppointmentDate, ap.StartTime, 0); err != nil {
			return err
		}

		if err := tx.Create(ap).Error; err != nil {
			return translateSlotError(err)
		}
		return nil
	})
}

// MoveAppointment saves a booking whose slot changed, running the same
// check but ignoring the booking's own row.
func (r *AppointmentGormRepository) MoveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap.AppointmentDate, ap.StartTime, ap.ID); err != nil {
			return err
		}

		if err := tx.Omit("Services").Save(ap).Error; err != nil {
			return translateSlotError(err)
		}
		return nil
	})
}

func assertSlotFree(tx *gorm.DB, date, start string, excludeID uint) error {
	var count int64

	q := tx.Model(&models.Appointment{}).
		Where(
			"appointment_date = ? AND start_time = ? AND status <> ?",
			date, start, string(domain.StatusCancelled),
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.ErrBusiness("slot_taken")
	}
	return nil
}

func translateSlotError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.WrapBusiness("slot_taken", err)
	}
	return err
}

// --------------------------------------------------
// Appointment (lookup / state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit("Services").Save(ap).Error
}

// DeleteAppointment is an idempotent no-op when the id does not exist.
func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, id).Error
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Order("appointment_date ASC, start_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsByStatus(
	ctx context.Context,
	status domain.Status,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
