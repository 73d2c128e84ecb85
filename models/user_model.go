package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"firstName"`
	LastName  string    `gorm:"size:100;not null" json:"lastName"`
	Email     string    `gorm:"size:255;not null;unique" json:"email"`
	Role      string    `gorm:"size:20;not null;default:'patient'" json:"role"`

	PhoneCountryCode string `gorm:"size:6" json:"phone_country_code"`
	PhoneNumber      string `gorm:"size:20;unique" json:"phone_number"`

	DOB    string `gorm:"size:10" json:"dob"`
	Gender string `gorm:"size:20" json:"gender"`

	AddressStreet     string `gorm:"size:255" json:"address_street"`
	AddressCity       string `gorm:"size:100" json:"address_city"`
	AddressState      string `gorm:"size:100" json:"address_state"`
	AddressCountry    string `gorm:"size:100" json:"address_country"`
	AddressPostalCode string `gorm:"size:20" json:"address_postal_code"`

	Languages []*Language `gorm:"many2many:user_languages;" json:"languages,omitempty"`

	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`

	EmailVerified bool `gorm:"default:false" json:"email_verified"`
	PhoneVerified bool `gorm:"default:false" json:"phone_verified"`

	// Admin accounts log in with a password; patients and doctors use OTP.
	Password *string `gorm:"size:255" json:"-"`

	OTPHash      *string    `gorm:"size:255" json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
	OTPAttempts  int        `gorm:"default:0" json:"-"`

	EmailVerificationToken *string `gorm:"size:255;unique" json:"-"`

	IsActive bool `gorm:"default:true" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Phone struct {
	CountryCode string `json:"countryCode" validate:"required"`
	Number      string `json:"number" validate:"required,min=7"`
}

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode"`
}
