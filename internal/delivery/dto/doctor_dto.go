package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=255"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Specialty string `json:"specialty" validate:"required,max=100"`
	Img       string `json:"img" validate:"omitempty,url"`
}

// Response DTOs

type DoctorResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Img       string    `json:"img,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
