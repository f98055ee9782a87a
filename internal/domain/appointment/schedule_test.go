package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/estilo26/booking-api/internal/models"
)

func TestTotalDuration(t *testing.T) {
	corte := models.Service{Name: "Corte de Cabello", DurationMin: 45}
	barba := models.Service{Name: "Barba", DurationMin: 30}
	cejas := models.Service{Name: "Cejas", DurationMin: 15}

	assert.Equal(t, 75, TotalDuration([]models.Service{corte, barba}))
	assert.Equal(t, 90, TotalDuration([]models.Service{corte, barba, cejas}))

	// no services selected falls back to the default block
	assert.Equal(t, DefaultDurationMin, TotalDuration(nil))
	assert.Equal(t, DefaultDurationMin, TotalDuration([]models.Service{}))
}

func TestEndTime(t *testing.T) {
	corte := models.Service{DurationMin: 45}
	barba := models.Service{DurationMin: 30}

	assert.Equal(t, "11:15:00", EndTime("10:00:00", []models.Service{corte, barba}))
	assert.Equal(t, "10:30:00", EndTime("10:00:00", nil))
}
