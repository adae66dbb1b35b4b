package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	Treatment string `json:"treatment" validate:"required,max=255"`
	Date      string `json:"date" validate:"required,max=32"`
	Slot      string `json:"slot" validate:"required,max=64"`
	Patient   string `json:"patient" validate:"required,email,max=255"`
}

// Response DTOs

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	Patient   string    `json:"patient"`
	Treatment string    `json:"treatment"`
	Date      string    `json:"date"`
	Slot      string    `json:"slot"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateBookingResponse carries Result on success and the already existing
// Booking when the patient has booked this treatment for the date before.
type CreateBookingResponse struct {
	Success bool             `json:"success"`
	Result  *InsertResult    `json:"result,omitempty"`
	Booking *BookingResponse `json:"booking,omitempty"`
}
