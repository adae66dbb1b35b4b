package repository

import (
	"go-doctors-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Create(db *gorm.DB, doctor *entity.Doctor) error
	DeleteByEmail(db *gorm.DB, email string) (int64, error)
}
