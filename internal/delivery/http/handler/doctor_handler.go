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

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctorUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get doctors")
		return
	}

	response.OK(w, doctors)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.doctorUsecase.CreateDoctor(r.Context(), actor, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorEmailExists) {
			response.Conflict(w, "Email already exists")
			return
		}
		response.InternalServerError(w, "Failed to create doctor")
		return
	}

	response.JSON(w, http.StatusCreated, result)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	result, err := h.doctorUsecase.DeleteDoctor(r.Context(), actor, mux.Vars(r)["email"])
	if err != nil {
		response.InternalServerError(w, "Failed to delete doctor")
		return
	}

	response.OK(w, result)
}
