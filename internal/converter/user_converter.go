package converter

import (
	"go-doctors-portal/internal/delivery/dto"
	"go-doctors-portal/internal/domain/entity"
)

func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Profile:   user.Profile,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	// Regular users carry no role, as they did before roles were modelled.
	if user.Role.IsAdmin() {
		response.Role = string(entity.RoleAdmin)
	}

	return response
}

func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

// UpsertUserRequestToEntity returns the user to write and the columns the
// request actually names.
func UpsertUserRequestToEntity(email string, req *dto.UpsertUserRequest) (*entity.User, []string) {
	user := &entity.User{Email: email}
	var fields []string

	if req.Name != "" {
		user.Name = req.Name
		fields = append(fields, "name")
	}
	if req.Profile != nil {
		user.Profile = entity.JSON(req.Profile)
		fields = append(fields, "profile")
	}

	return user, fields
}
