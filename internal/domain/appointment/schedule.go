package appointment

import "github.com/estilo26/booking-api/internal/models"

// DefaultDurationMin applies when a booking selects no services.
const DefaultDurationMin = 30

// RescheduleDurationMin is the fixed block a rescheduled booking occupies;
// it is deliberately not recomputed from the selected services.
const RescheduleDurationMin = 30

// TotalDuration sums the selected services' durations in minutes.
func TotalDuration(services []models.Service) int {
	total := 0
	for _, s := range services {
		total += s.DurationMin
	}
	if total <= 0 {
		return DefaultDurationMin
	}
	return total
}

// EndTime derives the end of a booking from its start and services.
func EndTime(start string, services []models.Service) string {
	return AddMinutes(start, TotalDuration(services))
}
