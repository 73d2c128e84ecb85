package handlers

import (
	"time"

	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// GetDoctorDashboardStats backs the dashboard overview tiles: today's
// appointments, pending (future scheduled), distinct patients seen and
// completed consultations.
func GetDoctorDashboardStats(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	doctorID, _ := uuid.Parse(claims["user_id"].(string))

	today := time.Now().Format("2006-01-02")

	var todayCount int64
	database.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date = ? AND status IN ?", doctorID, today, []string{"scheduled", "in-progress"}).
		Count(&todayCount)

	var pendingCount int64
	database.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND date > ? AND status = ?", doctorID, today, "scheduled").
		Count(&pendingCount)

	var totalPatients int64
	database.DB.Model(&models.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Distinct("patient_id").
		Count(&totalPatients)

	var completedCount int64
	database.DB.Model(&models.Appointment{}).
		Where("doctor_id = ? AND status = ?", doctorID, "completed").
		Count(&completedCount)

	return c.JSON(fiber.Map{
		"todayAppointments":      todayCount,
		"pendingAppointments":    pendingCount,
		"totalPatients":          totalPatients,
		"completedConsultations": completedCount,
	})
}
