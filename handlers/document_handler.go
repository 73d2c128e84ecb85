package handlers

import (
	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/medconnecter/med_connecter/services"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GenerateReimbursementSummary produces a PDF summary of a completed
// appointment for the patient to submit to their insurer. Repeated
// requests return the previously generated document.
func GenerateReimbursementSummary(c *fiber.Ctx) error {
	user := c.Locals("user").(*jwt.Token)
	claims := user.Claims.(jwt.MapClaims)
	patientID, _ := uuid.Parse(claims["user_id"].(string))

	appointmentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment ID"})
	}

	var appointment models.Appointment
	if err := database.DB.Preload("Patient").
		First(&appointment, "id = ? AND patient_id = ?", appointmentID, patientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
	}
	if appointment.Status != "completed" {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Summaries are only available for completed appointments"})
	}

	var existing models.Document
	if err := database.DB.First(&existing, "appointment_id = ?", appointment.ID).Error; err == nil {
		return c.JSON(fiber.Map{"document": existing})
	}

	var doctor models.Doctor
	if err := database.DB.Preload("User").First(&doctor, "user_id = ?", appointment.DoctorID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load doctor profile"})
	}

	document, err := services.GenerateReimbursementSummary(appointment, doctor)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not generate summary"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"document": document})
}

func GetMyDocuments(c *fiber.Ctx) error {
	user := c.Locals("user").(*jwt.Token)
	claims := user.Claims.(jwt.MapClaims)
	patientID, _ := uuid.Parse(claims["user_id"].(string))

	var documents []models.Document
	if err := database.DB.Where("patient_id = ?", patientID).
		Order("created_at desc").Find(&documents).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch documents"})
	}

	return c.JSON(fiber.Map{"documents": documents})
}
