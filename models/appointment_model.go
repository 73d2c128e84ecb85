package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	PatientID uuid.UUID `gorm:"not null" json:"patient_id"`
	DoctorID  uuid.UUID `gorm:"not null" json:"doctor_id"`

	Date      string `gorm:"size:10;not null" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"startTime"`
	EndTime   string `gorm:"size:5;not null" json:"endTime"`

	Mode   string `gorm:"size:20;not null;default:'video'" json:"mode"`
	Status string `gorm:"size:20;not null;default:'scheduled'" json:"status"`
	Reason *string `gorm:"type:text" json:"reason"`

	VideoLink *string `gorm:"size:255" json:"video_link"`

	Patient User `gorm:"foreignkey:PatientID" json:"patient,omitempty"`
	Doctor  User `gorm:"foreignkey:DoctorID" json:"doctor,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
