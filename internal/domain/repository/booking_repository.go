package repository

import (
	"go-doctors-portal/internal/domain/entity"

	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByDate(db *gorm.DB, date string) ([]entity.Booking, error)
	FindByPatient(db *gorm.DB, patient string) ([]entity.Booking, error)
	FindByPatientTreatmentDate(db *gorm.DB, patient, treatment, date string) (*entity.Booking, error)
}
