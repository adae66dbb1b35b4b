package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingUniqueIndex guards the one-booking-per-patient-treatment-day rule.
const BookingUniqueIndex = "idx_bookings_patient_treatment_date"

// Booking is a patient's appointment for one slot of a treatment on a date.
// Patient and Treatment are soft references to users.email and services.name.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Patient   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_bookings_patient_treatment_date,priority:1" json:"patient"`
	Treatment string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_bookings_patient_treatment_date,priority:2" json:"treatment"`
	Date      string    `gorm:"type:varchar(32);not null;index;uniqueIndex:idx_bookings_patient_treatment_date,priority:3" json:"date"`
	Slot      string    `gorm:"type:varchar(64);not null" json:"slot"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Booking) TableName() string {
	return "bookings"
}
