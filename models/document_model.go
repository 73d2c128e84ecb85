package models

import (
	"time"

	"github.com/google/uuid"
)

// Document is a generated PDF, currently only reimbursement summaries a
// patient can forward to their insurer.
type Document struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	AppointmentID uuid.UUID `gorm:"not null" json:"appointment_id"`
	PatientID     uuid.UUID `gorm:"not null" json:"patient_id"`
	Kind          string    `gorm:"size:50;not null;default:'reimbursement_summary'" json:"kind"`
	URL           string    `gorm:"size:255;not null" json:"url"`

	CreatedAt time.Time `json:"created_at"`
}
