package db

import (
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/estilo26/booking-api/internal/models"
)

// Seed loads the official price list and the initial admin account the
// first time the service boots against an empty database.
func Seed(db *gorm.DB, logger *zap.Logger) error {
	var serviceCount int64
	if err := db.Model(&models.Service{}).Count(&serviceCount).Error; err != nil {
		return err
	}

	if serviceCount == 0 {
		logger.Info("empty catalog, seeding official price list")

		services := []models.Service{
			{
				Name:        "Corte de Cabello",
				Description: "Corte clásico, moderno, fade, etc.",
				Price:       200.00,
				DurationMin: 45,
			},
			{
				Name:        "Barba",
				Description: "Perfilado, afeitado o rebaje",
				Price:       150.00,
				DurationMin: 30,
			},
			{
				Name:        "Cejas",
				Description: "Limpieza y delineado de cejas",
				Price:       100.00,
				DurationMin: 15,
			},
		}
		if err := db.Create(&services).Error; err != nil {
			return err
		}
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount == 0 {
		logger.Info("no users, creating initial admin account")

		hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := models.User{
			Username:     "admin",
			Email:        "admin@estilo26.com",
			PasswordHash: string(hashed),
			Role:         models.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}

	return nil
}
