package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DoctorAvailability is one row per (doctor, weekday). Weekday is 0 for
// Monday through 6 for Sunday. Slots holds the day's
// [{"startTime","endTime"}] list; it is empty whenever Available is false.
type DoctorAvailability struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DoctorID  uuid.UUID      `gorm:"not null;uniqueIndex:idx_doctor_weekday" json:"-"`
	Weekday   int            `gorm:"not null;uniqueIndex:idx_doctor_weekday" json:"weekday"`
	Available bool           `gorm:"not null;default:false" json:"available"`
	Slots     datatypes.JSON `gorm:"type:jsonb" json:"slots"`

	Doctor Doctor `gorm:"foreignkey:DoctorID" json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BlockedDate is a calendar date a doctor is unavailable regardless of the
// weekly pattern. Date is an ISO "YYYY-MM-DD" string.
type BlockedDate struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	DoctorID uuid.UUID `gorm:"not null;uniqueIndex:idx_doctor_blocked_date" json:"-"`
	Date     string    `gorm:"size:10;not null;uniqueIndex:idx_doctor_blocked_date" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
