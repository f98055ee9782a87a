package client_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/estilo26/booking-api/internal/domain/appointment"
	infraRepo "github.com/estilo26/booking-api/internal/infra/repository"
	"github.com/estilo26/booking-api/internal/models"
	"github.com/estilo26/booking-api/internal/testutils"
	ucClient "github.com/estilo26/booking-api/internal/usecase/client"
)

func seedVisit(t *testing.T, db *gorm.DB, name, phone, date, start, status, barber string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Appointment{
		ClientName:      name,
		ClientPhone:     phone,
		AppointmentDate: date,
		StartTime:       start,
		EndTime:         domain.AddMinutes(start, 30),
		Status:          status,
		BarberName:      barber,
	}).Error)
}

func TestTopClientsCountsOnlyCompletedVisits(t *testing.T) {
	db := testutils.NewTestDB(t)
	uc := ucClient.NewGetTopClients(infraRepo.NewAppointmentGormRepository(db))

	completed := string(domain.StatusCompleted)
	cancelled := string(domain.StatusCancelled)

	// Ana: 3 completed, 1 cancelled → 3 visits
	seedVisit(t, db, "Ana", "555-0100", "2026-01-05", "10:00:00", completed, "Pedro")
	seedVisit(t, db, "Ana", "555-0100", "2026-01-12", "10:00:00", completed, "Pedro")
	seedVisit(t, db, "Ana", "555-0100", "2026-01-19", "10:00:00", completed, "Miguel")
	seedVisit(t, db, "Ana", "555-0100", "2026-01-26", "10:00:00", cancelled, "Pedro")

	// Bruno: 1 completed
	seedVisit(t, db, "Bruno", "555-0200", "2026-01-07", "12:00:00", completed, "Miguel")

	// Carla: pending only → not listed at all
	seedVisit(t, db, "Carla", "555-0300", "2026-01-08", "13:00:00", string(domain.StatusPending), "Pedro")

	clients, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)

	assert.Equal(t, "Ana", clients[0].ClientName)
	assert.Equal(t, "555-0100", clients[0].ClientPhone)
	assert.Equal(t, int64(3), clients[0].TotalVisits)
	assert.Equal(t, "Pedro", clients[0].PreferredBarber)

	assert.Equal(t, "Bruno", clients[1].ClientName)
	assert.Equal(t, int64(1), clients[1].TotalVisits)
}

func TestTopClientsTieBreaks(t *testing.T) {
	db := testutils.NewTestDB(t)
	uc := ucClient.NewGetTopClients(infraRepo.NewAppointmentGormRepository(db))

	completed := string(domain.StatusCompleted)

	// same phone booked under two spellings: MAX wins
	seedVisit(t, db, "ana", "555-0100", "2026-01-05", "10:00:00", completed, "Zoe")
	seedVisit(t, db, "Ana", "555-0100", "2026-01-12", "10:00:00", completed, "Alberto")

	// equal visit counts → phones ascending
	seedVisit(t, db, "Bruno", "555-0050", "2026-01-07", "12:00:00", completed, "")
	seedVisit(t, db, "Bruno", "555-0050", "2026-01-14", "12:00:00", completed, "")

	clients, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 2)

	assert.Equal(t, "555-0050", clients[0].ClientPhone)
	assert.Equal(t, "555-0100", clients[1].ClientPhone)

	// lexicographic MAX of the group's names
	assert.Equal(t, "ana", clients[1].ClientName)
	// barber tie (Zoe 1, Alberto 1) → lexicographically smallest
	assert.Equal(t, "Alberto", clients[1].PreferredBarber)
	// all-empty barber names → empty preferred barber
	assert.Equal(t, "", clients[0].PreferredBarber)
}
