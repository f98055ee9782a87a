package appointment

import (
	"strings"

	"github.com/estilo26/booking-api/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

// InitialStatus is what every new booking starts as.
func InitialStatus() Status {
	return StatusPending
}

// ParseStatus maps a caller-supplied value onto the closed status set.
// Free-text statuses are not stored; anything unrecognized is rejected.
// "PENDIENTE" is kept as an alias because rows seeded by the first
// deployment used the Spanish value.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PENDING", "PENDIENTE":
		return StatusPending, nil
	case "CONFIRMED":
		return StatusConfirmed, nil
	case "COMPLETED":
		return StatusCompleted, nil
	case "CANCELLED":
		return StatusCancelled, nil
	case "NO_SHOW":
		return StatusNoShow, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}
