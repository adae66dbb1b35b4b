package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/delivery/http/middleware"
	"go-doctors-portal/internal/usecase"
	"go-doctors-portal/pkg/response"
	"go-doctors-portal/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) GetPatientBookings(w http.ResponseWriter, r *http.Request) {
	requester, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	bookings, err := h.bookingUsecase.GetPatientBookings(r.Context(), requester, r.URL.Query().Get("patient"))
	if err != nil {
		if errors.Is(err, usecase.ErrPatientMismatch) {
			response.Forbidden(w, "")
			return
		}
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.OK(w, bookings)
}

// CreateBooking answers 200 in both outcomes; success=false carries the
// booking the patient already holds.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSlot) {
			response.BadRequest(w, "Slot is not offered for this treatment")
			return
		}
		response.InternalServerError(w, "Failed to create booking")
		return
	}

	response.OK(w, result)
}
