package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vikalpis/scroll-app/models"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
)

// Users is the gorm-backed user repository.
type Users struct {
	c *Connector
}

func NewUsers(c *Connector) *Users {
	return &Users{c: c}
}

func (u *Users) Create(ctx context.Context, user *models.User) error {
	db, err := u.c.Connect(ctx)
	if err != nil {
		return err
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	db, err := u.c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
