package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/estilo26/booking-api/internal/domain/user"
	"github.com/estilo26/booking-api/internal/httperr"
	"github.com/estilo26/booking-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) ExistsByUsernameOrEmail(
	ctx context.Context,
	username string,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {

	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		// Unique indexes on username and email are the backstop for the
		// pre-check; a lost race surfaces as a validation failure.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("duplicate_user")
		}
		return err
	}
	return nil
}

func (r *UserGormRepository) ListUsers(
	ctx context.Context,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Compile-time check
var _ domain.Repository = (*UserGormRepository)(nil)
