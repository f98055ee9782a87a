package user

import (
	"context"

	"github.com/estilo26/booking-api/internal/models"
)

type Repository interface {
	GetByUsername(
		ctx context.Context,
		username string,
	) (*models.User, error)

	ExistsByUsernameOrEmail(
		ctx context.Context,
		username string,
		email string,
	) (bool, error)

	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	ListUsers(
		ctx context.Context,
	) ([]models.User, error)
}
