package handlers

import (
	"errors"

	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// CreateReview records a patient's review of a completed appointment and
// refreshes the doctor's average rating in the same transaction.
func CreateReview(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	patientID, _ := uuid.Parse(claims["user_id"].(string))
	appointmentID := c.Params("appointmentId")

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var appointment models.Appointment
	if err := database.DB.First(&appointment, "id = ? AND patient_id = ?", appointmentID, patientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
	}
	if appointment.Status != "completed" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only completed appointments can be reviewed"})
	}

	var existing models.Review
	if err := database.DB.Where("appointment_id = ?", appointment.ID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already reviewed this appointment"})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	var review models.Review
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		review = models.Review{
			AppointmentID: appointment.ID,
			PatientID:     patientID,
			DoctorID:      appointment.DoctorID,
			Rating:        req.Rating,
			Comment:       req.Comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return err
		}

		var avg float32
		if err := tx.Model(&models.Review{}).
			Where("doctor_id = ?", appointment.DoctorID).
			Select("COALESCE(AVG(rating), 0)").
			Row().Scan(&avg); err != nil {
			return err
		}
		return tx.Model(&models.Doctor{}).
			Where("user_id = ?", appointment.DoctorID).
			Update("avg_rating", avg).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save review"})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}
