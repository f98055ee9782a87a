package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/estilo26/booking-api/internal/domain/user"
	"github.com/estilo26/booking-api/internal/httperr"
	"github.com/estilo26/booking-api/internal/models"
)

// dummyHash is a fixed, well-formed bcrypt hash compared against when
// the username does not exist, so the miss costs a bcrypt verification
// either way and response timing does not reveal which credential was
// wrong.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type Login struct {
	repo domain.Repository
}

func NewLogin(repo domain.Repository) *Login {
	return &Login{repo: repo}
}

// Execute verifies a username/password pair. Every failure path returns
// the same invalid_credentials error; callers must not be able to tell a
// wrong username from a wrong password.
func (uc *Login) Execute(
	ctx context.Context,
	username string,
	password string,
) (*models.User, error) {

	u, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(u.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	return u, nil
}
