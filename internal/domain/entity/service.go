package entity

import (
	"time"

	"github.com/google/uuid"
)

// Service is a bookable treatment with its fixed daily slot list. Services
// are seeded outside this application and read-only here.
type Service struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Slots     SlotList  `gorm:"type:jsonb;not null" json:"slots"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Service) TableName() string {
	return "services"
}

// HasSlot reports whether slot is one of the configured slots.
func (s *Service) HasSlot(slot string) bool {
	for _, configured := range s.Slots {
		if configured == slot {
			return true
		}
	}
	return false
}
