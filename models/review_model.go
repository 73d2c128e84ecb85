package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"not null;unique" json:"appointment_id"`
	PatientID     uuid.UUID `gorm:"not null" json:"patient_id"`
	DoctorID      uuid.UUID `gorm:"not null" json:"doctor_id"`
	Rating        int       `gorm:"not null" json:"rating"`
	Comment       string    `gorm:"type:text" json:"comment"`

	Appointment Appointment `gorm:"foreignkey:AppointmentID" json:"-"`
	Patient     User        `gorm:"foreignkey:PatientID" json:"patient,omitempty"`
	Doctor      User        `gorm:"foreignkey:DoctorID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}
