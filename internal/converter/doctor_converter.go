package converter

import (
	"strings"

	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:        doctor.ID,
		Email:     doctor.Email,
		Name:      doctor.Name,
		Specialty: doctor.Specialty,
		Img:       doctor.Img,
		CreatedAt: doctor.CreatedAt,
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

func CreateDoctorRequestToEntity(req *dto.CreateDoctorRequest) *entity.Doctor {
	return &entity.Doctor{
		Email:     strings.TrimSpace(req.Email),
		Name:      strings.TrimSpace(req.Name),
		Specialty: strings.TrimSpace(req.Specialty),
		Img:       req.Img,
	}
}
