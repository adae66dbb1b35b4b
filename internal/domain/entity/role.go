package entity

import (
	"database/sql/driver"
	"fmt"
)

// Role is the only authorization attribute of a user. The users.role column
// is nullable; NULL, empty and unrecognised values all read back as
// RoleRegular.
type Role string

const (
	RoleRegular Role = "regular"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a stored or submitted role name onto the enum.
func ParseRole(name string) Role {
	if Role(name) == RoleAdmin {
		return RoleAdmin
	}
	return RoleRegular
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Value stores regular users as NULL so only admins carry a role.
func (r Role) Value() (driver.Value, error) {
	if r.IsAdmin() {
		return string(RoleAdmin), nil
	}
	return nil, nil
}

func (r *Role) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*r = RoleRegular
	case string:
		*r = ParseRole(v)
	case []byte:
		*r = ParseRole(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Role", value)
	}
	return nil
}
