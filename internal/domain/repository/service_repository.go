package repository

import (
	"go-doctors-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	FindAll(db *gorm.DB) ([]entity.Service, error)
	// FindByName returns nil, nil when no service has that name.
	FindByName(db *gorm.DB, name string) (*entity.Service, error)
}
