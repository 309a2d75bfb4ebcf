package repo

import (
	"errors"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/models"
)

type UserRepository interface {
	CreateUser(user models.User) (models.User, error)
	GetByEmail(email string) (models.User, error)
}

var ErrUserNotFound = errors.New("user not found")
