package repository

import (
	"errors"

	"go-doctors-portal/internal/domain/entity"
	domainRepo "go-doctors-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

// Create relies on idx_bookings_patient_treatment_date; a concurrent
// duplicate surfaces as a unique violation.
func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByDate(db *gorm.DB, date string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("date = ?", date).Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByPatient(db *gorm.DB, patient string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("patient = ?", patient).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByPatientTreatmentDate(db *gorm.DB, patient, treatment, date string) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("patient = ? AND treatment = ? AND date = ?", patient, treatment, date).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}
