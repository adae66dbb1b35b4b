package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is keyed by email. Profile holds whatever the portal submitted on
// registration.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role      Role      `gorm:"type:varchar(20)" json:"role"`
	Name      string    `gorm:"type:varchar(255)" json:"name"`
	Profile   JSON      `gorm:"type:jsonb" json:"profile,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UpdateOutcome mirrors the counts a document store reports for an update.
type UpdateOutcome struct {
	MatchedCount  int64
	ModifiedCount int64
	UpsertedCount int64
	UpsertedID    *uuid.UUID
}
