package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/estilo26/booking-api/internal/config"
	dbpkg "github.com/estilo26/booking-api/internal/db"
	"github.com/estilo26/booking-api/internal/models"
	"github.com/estilo26/booking-api/internal/routes"
	"github.com/estilo26/booking-api/internal/testutils"
)

func setupAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db := testutils.NewTestDB(t)
	require.NoError(t, dbpkg.Seed(db, zap.NewNop()))

	cfg := &config.Config{
		JWTSecret:  "test-secret",
		ServerPort: "0",
	}

	router := testutils.SetupTestRouter(t)
	routes.RegisterRoutes(router, db, cfg, zap.NewNop())
	return router, db
}

func loginToken(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": username,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, resp.Code, "login failed: %s", resp.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	testutils.ParseResponse(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// ------------------------------------------------------
// Auth
// ------------------------------------------------------

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	router, _ := setupAPI(t)

	wrongPassword := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin",
		"password": "wrong",
	}, nil)
	unknownUser := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"username": "ghost",
		"password": "admin123",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownUser.Body.String())
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	router, _ := setupAPI(t)

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/api/appointments", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

// ------------------------------------------------------
// Appointments
// ------------------------------------------------------

func TestBookingFlow(t *testing.T) {
	router, _ := setupAPI(t)

	// Corte (45) + Barba (30), seeded ids 1 and 2
	resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/appointments", gin.H{
		"client_name":  "Carlos",
		"client_phone": "555-0001",
		"service_ids":  []uint{1, 2},
		"date":         "2026-02-12",
		"time":         "10:00",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created models.Appointment
	testutils.ParseResponse(t, resp, &created)
	assert.Equal(t, "11:15:00", created.EndTime)
	assert.Equal(t, "PENDING", created.Status)

	// same slot is rejected with a user-facing message
	dup := testutils.MakeRequest(t, router, http.MethodPost, "/api/appointments", gin.H{
		"client_name":  "Luis",
		"client_phone": "555-0002",
		"date":         "2026-02-12",
		"time":         "10:00",
	}, nil)
	assert.Equal(t, http.StatusConflict, dup.Code)
	assert.Contains(t, dup.Body.String(), "ese horario ya está reservado")

	// a different time on the same day works
	other := testutils.MakeRequest(t, router, http.MethodPost, "/api/appointments", gin.H{
		"client_name":  "Luis",
		"client_phone": "555-0002",
		"date":         "2026-02-12",
		"time":         "11:30",
	}, nil)
	assert.Equal(t, http.StatusCreated, other.Code)

	token := loginToken(t, router, "admin", "admin123")

	// reschedule normalizes the short time form and resets state
	moved := testutils.MakeRequest(t, router, http.MethodPatch,
		fmt.Sprintf("/api/appointments/%d/reschedule", created.ID), gin.H{
			"date": "2026-02-13",
			"time": "14:30",
		}, bearer(token))
	require.Equal(t, http.StatusOK, moved.Code, moved.Body.String())

	var rescheduled models.Appointment
	testutils.ParseResponse(t, moved, &rescheduled)
	assert.Equal(t, "14:30:00", rescheduled.StartTime)
	assert.Equal(t, "15:00:00", rescheduled.EndTime)
	assert.Equal(t, "PENDING", rescheduled.Status)
	assert.True(t, rescheduled.Rescheduled)

	// delete twice: both succeed
	del := testutils.MakeRequest(t, router, http.MethodDelete,
		fmt.Sprintf("/api/appointments/%d", created.ID), nil, bearer(token))
	assert.Equal(t, http.StatusNoContent, del.Code)
	delAgain := testutils.MakeRequest(t, router, http.MethodDelete,
		fmt.Sprintf("/api/appointments/%d", created.ID), nil, bearer(token))
	assert.Equal(t, http.StatusNoContent, delAgain.Code)
}

func TestUpdateStatusEndpoint(t *testing.T) {
	router, _ := setupAPI(t)
	token := loginToken(t, router, "admin", "admin123")

	created := testutils.MakeRequest(t, router, http.MethodPost, "/api/appointments", gin.H{
		"client_name":  "Carlos",
		"client_phone": "555-0001",
		"date":         "2026-02-12",
		"time":         "10:00",
	}, nil)
	require.Equal(t, http.StatusCreated, created.Code)

	var ap models.Appointment
	testutils.ParseResponse(t, created, &ap)

	missing := testutils.MakeRequest(t, router, http.MethodPatch,
		"/api/appointments/999/status", gin.H{"status": "COMPLETED"}, bearer(token))
	assert.Equal(t, http.StatusNotFound, missing.Code)

	freeText := testutils.MakeRequest(t, router, http.MethodPatch,
		fmt.Sprintf("/api/appointments/%d/status", ap.ID), gin.H{"status": "TERMINADA"}, bearer(token))
	assert.Equal(t, http.StatusBadRequest, freeText.Code)

	ok := testutils.MakeRequest(t, router, http.MethodPatch,
		fmt.Sprintf("/api/appointments/%d/status", ap.ID), gin.H{"status": "COMPLETED"}, bearer(token))
	require.Equal(t, http.StatusOK, ok.Code)

	confirmed := testutils.MakeRequest(t, router, http.MethodPatch,
		fmt.Sprintf("/api/appointments/%d/confirm", ap.ID), nil, bearer(token))
	require.Equal(t, http.StatusOK, confirmed.Code)
	assert.Contains(t, confirmed.Body.String(), "CONFIRMED")
}

// ------------------------------------------------------
// Users
// ------------------------------------------------------

func TestCreateUserHashesPassword(t *testing.T) {
	router, db := setupAPI(t)
	token := loginToken(t, router, "admin", "admin123")

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/users", gin.H{
		"username": "pedro",
		"email":    "pedro@estilo26.com",
		"password": "secreto1",
		"role":     "BARBER",
	}, bearer(token))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var stored models.User
	require.NoError(t, db.Where("username = ?", "pedro").First(&stored).Error)
	assert.NotEqual(t, "secreto1", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)

	// duplicate username is a validation failure, not a crash
	dup := testutils.MakeRequest(t, router, http.MethodPost, "/api/users", gin.H{
		"username": "pedro",
		"email":    "pedro2@estilo26.com",
		"password": "secreto2",
		"role":     "BARBER",
	}, bearer(token))
	assert.Equal(t, http.StatusBadRequest, dup.Code)
}

func TestUserCreationIsAdminOnly(t *testing.T) {
	router, _ := setupAPI(t)
	adminToken := loginToken(t, router, "admin", "admin123")

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/users", gin.H{
		"username": "pedro",
		"email":    "pedro@estilo26.com",
		"password": "secreto1",
		"role":     "BARBER",
	}, bearer(adminToken))
	require.Equal(t, http.StatusCreated, resp.Code)

	barberToken := loginToken(t, router, "pedro", "secreto1")
	forbidden := testutils.MakeRequest(t, router, http.MethodPost, "/api/users", gin.H{
		"username": "otro",
		"email":    "otro@estilo26.com",
		"password": "secreto2",
		"role":     "BARBER",
	}, bearer(barberToken))
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
}

// ------------------------------------------------------
// Services
// ------------------------------------------------------

func TestServiceLockedByPastAppointment(t *testing.T) {
	router, db := setupAPI(t)
	token := loginToken(t, router, "admin", "admin123")

	var corte models.Service
	require.NoError(t, db.First(&corte, 1).Error)

	// a long-finished appointment referencing the service
	require.NoError(t, db.Create(&models.Appointment{
		ClientName:      "Carlos",
		ClientPhone:     "555-0001",
		AppointmentDate: "2020-01-01",
		StartTime:       "10:00:00",
		EndTime:         "10:45:00",
		Status:          "COMPLETED",
		Services:        []models.Service{corte},
	}).Error)

	locked := testutils.MakeRequest(t, router, http.MethodPut, "/api/services/1", gin.H{
		"name":             "Corte Premium",
		"price":            250.0,
		"duration_minutes": 50,
	}, bearer(token))
	assert.Equal(t, http.StatusConflict, locked.Code)

	// an untouched service stays editable
	editable := testutils.MakeRequest(t, router, http.MethodPut, "/api/services/3", gin.H{
		"name":             "Cejas",
		"price":            120.0,
		"duration_minutes": 15,
	}, bearer(token))
	assert.Equal(t, http.StatusOK, editable.Code, editable.Body.String())
}

// ------------------------------------------------------
// Loyalty
// ------------------------------------------------------

func TestVIPEndpoint(t *testing.T) {
	router, db := setupAPI(t)
	token := loginToken(t, router, "admin", "admin123")

	for i, date := range []string{"2026-01-05", "2026-01-12", "2026-01-19"} {
		require.NoError(t, db.Create(&models.Appointment{
			ClientName:      "Ana",
			ClientPhone:     "555-0100",
			AppointmentDate: date,
			StartTime:       "10:00:00",
			EndTime:         "10:30:00",
			Status:          "COMPLETED",
			BarberName:      "Pedro",
		}).Error, "visit %d", i)
	}

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/api/clients/vip", nil, bearer(token))
	require.Equal(t, http.StatusOK, resp.Code)

	var body struct {
		Data []struct {
			ClientName      string `json:"client_name"`
			TotalVisits     int64  `json:"total_visits"`
			PreferredBarber string `json:"preferred_barber"`
		} `json:"data"`
		Total int `json:"total"`
	}
	testutils.ParseResponse(t, resp, &body)
	require.Equal(t, 1, body.Total)
	assert.Equal(t, "Ana", body.Data[0].ClientName)
	assert.Equal(t, int64(3), body.Data[0].TotalVisits)
	assert.Equal(t, "Pedro", body.Data[0].PreferredBarber)
}
