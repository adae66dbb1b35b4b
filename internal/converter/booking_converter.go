package converter

import (
	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:        booking.ID,
		Patient:   booking.Patient,
		Treatment: booking.Treatment,
		Date:      booking.Date,
		Slot:      booking.Slot,
		CreatedAt: booking.CreatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}

func CreateBookingRequestToEntity(req *dto.CreateBookingRequest) *entity.Booking {
	return &entity.Booking{
		Patient:   req.Patient,
		Treatment: req.Treatment,
		Date:      req.Date,
		Slot:      req.Slot,
	}
}
