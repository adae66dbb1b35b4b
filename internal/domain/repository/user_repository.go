package repository

import (
	"go-doctors-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindAll(db *gorm.DB) ([]entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	// Upsert creates the user when the email is unknown, otherwise it changes
	// only the named columns. Role is never among them.
	Upsert(db *gorm.DB, user *entity.User, fields []string) (*entity.UpdateOutcome, error)
	// UpdateRole never creates a user.
	UpdateRole(db *gorm.DB, email string, role entity.Role) (*entity.UpdateOutcome, error)
}
