package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpsertUserRequest struct {
	Name    string                 `json:"name" validate:"omitempty,max=255"`
	Profile map[string]interface{} `json:"profile"`
}

// UnmarshalJSON keeps every top-level field of the body. Fields other than
// name and profile are stored inside profile; explicit profile keys win.
func (r *UpsertUserRequest) UnmarshalJSON(data []byte) error {
	type plain UpsertUserRequest
	var req plain
	if err := json.Unmarshal(data, &req); err != nil {
		return err
	}

	var extra map[string]interface{}
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}
	delete(extra, "name")
	delete(extra, "profile")

	if len(extra) > 0 {
		if req.Profile == nil {
			req.Profile = make(map[string]interface{}, len(extra))
		}
		for k, v := range extra {
			if _, ok := req.Profile[k]; !ok {
				req.Profile[k] = v
			}
		}
	}

	*r = UpsertUserRequest(req)
	return nil
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID              `json:"id"`
	Email     string                 `json:"email"`
	Role      string                 `json:"role,omitempty"`
	Name      string                 `json:"name,omitempty"`
	Profile   map[string]interface{} `json:"profile,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type UpsertUserResponse struct {
	Result UpdateResult `json:"result"`
	Token  string       `json:"token"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}
