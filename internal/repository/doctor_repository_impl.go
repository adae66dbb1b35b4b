package repository

import (
	"go-doctors-portal/internal/domain/entity"
	domainRepo "go-doctors-portal/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Order("created_at ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) DeleteByEmail(db *gorm.DB, email string) (int64, error) {
	result := db.Where("email = ?", email).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
