package handlers

import (
	"time"

	config "github.com/medconnecter/med_connecter/configs"
	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/medconnecter/med_connecter/notifications"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin is the one password-based login; everyone else uses OTP.
func AdminLogin(c *fiber.Ctx) error {
	var req AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.Where("email = ? AND role = ?", req.Email, "admin").First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if user.Password == nil || bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
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

	return c.JSON(fiber.Map{"token": t})
}

func ListPendingDoctors(c *fiber.Ctx) error {
	var pendingDoctors []models.Doctor
	if err := database.DB.Preload("User").Where("status = ?", "pending").Find(&pendingDoctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(pendingDoctors)
}

type VerifyDoctorRequest struct {
	Status string `json:"status" validate:"required,oneof=verified rejected"`
}

// VerifyDoctor approves or rejects a doctor profile after the admin has
// checked the registration number.
func VerifyDoctor(c *fiber.Ctx) error {
	var req VerifyDoctorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	doctorUserID := c.Params("doctorId")

	var doctor models.Doctor
	if err := database.DB.Where("user_id = ?", doctorUserID).First(&doctor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Doctor profile not found"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", doctorUserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Associated user not found"})
	}

	doctor.Status = req.Status
	if err := database.DB.Save(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update doctor status"})
	}

	switch req.Status {
	case "verified":
		go notifications.SendEmail(
			user.FirstName+" "+user.LastName,
			user.Email,
			"Your Doctor Profile has been Verified!",
			"<h1>Congratulations!</h1><p>Your profile has been verified. You can now set your availability and receive appointments.</p>",
		)
	case "rejected":
		go notifications.SendEmail(
			user.FirstName+" "+user.LastName,
			user.Email,
			"Update on Your Doctor Profile",
			"<h1>Profile Update</h1><p>We could not verify your registration details. Please review your profile information and contact support.</p>",
		)
	}

	return c.JSON(fiber.Map{"message": "Doctor status updated successfully"})
}

func DeactivateUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.IsActive = false
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to deactivate user"})
	}

	return c.JSON(fiber.Map{"message": "User deactivated"})
}
