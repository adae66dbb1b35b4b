package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/delivery/http/middleware"
	"go-doctors-portal/internal/usecase"
	"go-doctors-portal/pkg/response"
	"go-doctors-portal/pkg/validator"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	userUsecase usecase.UserUsecase
	validator   *validator.CustomValidator
}

func NewUserHandler(userUsecase usecase.UserUsecase, validator *validator.CustomValidator) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		validator:   validator,
	}
}

func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUsecase.ListUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get users")
		return
	}

	response.OK(w, users)
}

// CheckAdmin answers {admin:false} for unknown emails.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	status, err := h.userUsecase.CheckAdmin(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		response.InternalServerError(w, "Failed to check admin role")
		return
	}

	response.OK(w, status)
}

func (h *UserHandler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetUserEmailFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	result, err := h.userUsecase.MakeAdmin(r.Context(), actor, mux.Vars(r)["email"])
	if err != nil {
		response.InternalServerError(w, "Failed to update role")
		return
	}

	response.OK(w, result)
}

// UpsertUser registers the email on first sight and always answers with a
// fresh token. An empty body is allowed.
func (h *UserHandler) UpsertUser(w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]
	if err := h.validator.ValidateVar(email, "required,email"); err != nil {
		response.ValidationError(w, map[string]string{"email": "email must be a valid email address"})
		return
	}

	var req dto.UpsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.userUsecase.UpsertUser(r.Context(), email, &req)
	if err != nil {
		response.InternalServerError(w, "Failed to save user")
		return
	}

	response.OK(w, result)
}
