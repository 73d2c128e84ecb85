package handlers

import (
	"errors"
	"strings"
	"time"

	config "github.com/medconnecter/med_connecter/configs"
	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/medconnecter/med_connecter/notifications"
	"github.com/medconnecter/med_connecter/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

const (
	otpTTL         = 10 * time.Minute
	maxOTPAttempts = 5
)

type RegisterRequest struct {
	Email     string         `json:"email" validate:"required,email"`
	Phone     models.Phone   `json:"phone" validate:"required"`
	FirstName string         `json:"firstName" validate:"required,min=2"`
	LastName  string         `json:"lastName" validate:"required,min=2"`
	DOB       string         `json:"dob" validate:"required,datetime=2006-01-02"`
	Gender    string         `json:"gender" validate:"required,oneof=male female other"`
	Role      string         `json:"role" validate:"required,oneof=patient doctor"`
	Address   models.Address `json:"address"`
	Languages []string       `json:"languages"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func RegisterUser(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	verificationToken, err := utils.GenerateToken()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate verification token"})
	}

	var newUser models.User
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		newUser = models.User{
			Email:                  strings.ToLower(req.Email),
			PhoneCountryCode:       req.Phone.CountryCode,
			PhoneNumber:            req.Phone.Number,
			FirstName:              req.FirstName,
			LastName:               req.LastName,
			DOB:                    req.DOB,
			Gender:                 req.Gender,
			Role:                   req.Role,
			AddressStreet:          req.Address.Street,
			AddressCity:            req.Address.City,
			AddressState:           req.Address.State,
			AddressCountry:         req.Address.Country,
			AddressPostalCode:      req.Address.PostalCode,
			EmailVerificationToken: &verificationToken,
		}
		if err := tx.Create(&newUser).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errors.New("account already exists")
			}
			return err
		}

		if len(req.Languages) > 0 {
			var languages []*models.Language
			if err := tx.Where("code IN ?", req.Languages).Find(&languages).Error; err != nil {
				return err
			}
			if err := tx.Model(&newUser).Association("Languages").Append(languages); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		if err.Error() == "account already exists" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "An account with that email or phone already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create user"})
	}

	frontendURL := config.Config("FRONTEND_URL")
	go notifications.SendEmail(
		newUser.FirstName+" "+newUser.LastName,
		newUser.Email,
		"Verify your Med Connecter account",
		"<h1>Welcome to Med Connecter</h1><p>Click the link below to verify your email address.</p><p><a href='"+frontendURL+"/verify-account?token="+verificationToken+"'>Verify Email</a></p>",
	)

	response := UserResponse{
		ID:        newUser.ID.String(),
		FirstName: newUser.FirstName,
		LastName:  newUser.LastName,
		Email:     newUser.Email,
		Role:      newUser.Role,
		CreatedAt: newUser.CreatedAt,
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// findUserByIdentifier resolves an email or phone identifier to a user.
func findUserByIdentifier(identifier string) (*models.User, error) {
	var user models.User
	query := database.DB
	if strings.Contains(identifier, "@") {
		query = query.Where("email = ?", strings.ToLower(identifier))
	} else {
		normalized := strings.TrimPrefix(identifier, "+")
		query = query.Where("phone_number = ? OR phone_country_code || phone_number = ?", identifier, "+"+normalized)
	}
	if err := query.First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type InitiateLoginRequest struct {
	Identifier string `json:"identifier" validate:"required,min=3"`
}

func InitiateLogin(c *fiber.Ctx) error {
	var req InitiateLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := findUserByIdentifier(req.Identifier)
	if err != nil {
		// do not reveal whether the account exists
		return c.JSON(fiber.Map{"message": "If an account exists, a login code has been sent."})
	}
	if !user.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Account is deactivated"})
	}

	otp, err := utils.GenerateOTP()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate login code"})
	}
	otpHash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate login code"})
	}

	hash := string(otpHash)
	expiry := time.Now().Add(otpTTL)
	user.OTPHash = &hash
	user.OTPExpiresAt = &expiry
	user.OTPAttempts = 0
	if err := database.DB.Save(user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store login code"})
	}

	// Codes are always delivered by email; SMS delivery is not wired up.
	go notifications.SendOTPEmail(user.FirstName+" "+user.LastName, user.Email, otp)

	return c.JSON(fiber.Map{"message": "If an account exists, a login code has been sent."})
}

type DeviceInfo struct {
	DeviceID   string `json:"deviceId"`
	DeviceType string `json:"deviceType"`
}

type VerifyLoginRequest struct {
	Identifier string     `json:"identifier" validate:"required"`
	OTP        string     `json:"otp" validate:"required,min=4"`
	Type       string     `json:"type" validate:"omitempty,oneof=email phone"`
	DeviceInfo DeviceInfo `json:"deviceInfo"`
}

func VerifyLogin(c *fiber.Ctx) error {
	var req VerifyLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	user, err := findUserByIdentifier(req.Identifier)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid identifier or code"})
	}
	if user.OTPHash == nil || user.OTPExpiresAt == nil || user.OTPExpiresAt.Before(time.Now()) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Login code expired. Please request a new one."})
	}
	if user.OTPAttempts >= maxOTPAttempts {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Too many attempts. Please request a new code."})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.OTPHash), []byte(req.OTP)); err != nil {
		user.OTPAttempts++
		database.DB.Save(user)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid identifier or code"})
	}

	user.OTPHash = nil
	user.OTPExpiresAt = nil
	user.OTPAttempts = 0
	if req.Type == "phone" || !strings.Contains(req.Identifier, "@") {
		user.PhoneVerified = true
	} else {
		user.EmailVerified = true
	}
	if err := database.DB.Save(user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete login"})
	}

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"role":    user.Role,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.Config("JWT_SECRET")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"token":   t,
		"user": UserResponse{
			ID:        user.ID.String(),
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		},
	})
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

func VerifyEmail(c *fiber.Ctx) error {
	var req VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.Where("email_verification_token = ?", req.Token).First(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid or expired verification token"})
	}

	user.EmailVerified = true
	user.EmailVerificationToken = nil
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to verify email"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Email verified successfully"})
}
