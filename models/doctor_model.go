package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Doctor struct {
	UserID   uuid.UUID `gorm:"primary_key" json:"user_id"`
	Headline *string   `gorm:"size:255" json:"headline"`
	Bio      *string   `gorm:"type:text" json:"bio"`

	RegistrationNumber *string `gorm:"size:50;unique" json:"registration_number"`
	Specialty          string  `gorm:"size:100" json:"specialty"`

	Specializations datatypes.JSON `gorm:"type:jsonb" json:"specializations"`
	Education       datatypes.JSON `gorm:"type:jsonb" json:"education"`
	Training        datatypes.JSON `gorm:"type:jsonb" json:"training"`
	Awards          datatypes.JSON `gorm:"type:jsonb" json:"awards"`
	Publications    datatypes.JSON `gorm:"type:jsonb" json:"publications"`
	ClinicLocation  datatypes.JSON `gorm:"type:jsonb" json:"clinicLocation"`

	OffersVideo    bool    `gorm:"default:true" json:"offers_video"`
	OffersInPerson bool    `gorm:"default:true" json:"offers_in_person"`
	ConsultationFee float64 `gorm:"type:numeric(10,2);default:0.00" json:"consultation_fee"`

	Status    string  `gorm:"size:20;not null;default:'pending'" json:"status"`
	AvgRating float32 `gorm:"default:0" json:"avg_rating"`

	User User `gorm:"foreignkey:UserID" json:"user"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
