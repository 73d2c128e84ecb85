package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/medconnecter/med_connecter/notifications"
	"github.com/medconnecter/med_connecter/schedule"
	"github.com/medconnecter/med_connecter/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// weekdayOf maps an ISO date to the Monday-first weekday index used by
// the availability rows.
func weekdayOf(date string) (int, error) {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	return (int(parsed.Weekday()) + 6) % 7, nil
}

type bookableSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Booked    bool   `json:"booked"`
}

// GetDoctorBookableSlots lists a doctor's slots for one calendar date:
// the weekly pattern for that weekday, minus blocked dates, with slots
// already taken by an appointment flagged.
func GetDoctorBookableSlots(c *fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid doctor id"})
	}
	date := c.Query("date")
	weekday, err := weekdayOf(date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "date must be YYYY-MM-DD"})
	}

	var blockedCount int64
	database.DB.Model(&models.BlockedDate{}).Where("doctor_id = ? AND date = ?", doctorID, date).Count(&blockedCount)
	if blockedCount > 0 {
		return c.JSON(fiber.Map{"date": date, "slots": []bookableSlot{}})
	}

	var row models.DoctorAvailability
	err = database.DB.Where("doctor_id = ? AND weekday = ?", doctorID, weekday).First(&row).Error
	if err != nil || !row.Available {
		return c.JSON(fiber.Map{"date": date, "slots": []bookableSlot{}})
	}

	var slots []schedule.TimeSlot
	if len(row.Slots) > 0 {
		if err := json.Unmarshal(row.Slots, &slots); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load availability"})
		}
	}

	var taken []models.Appointment
	database.DB.Where("doctor_id = ? AND date = ? AND status IN ?", doctorID, date, []string{"scheduled", "in-progress"}).Find(&taken)

	out := make([]bookableSlot, 0, len(slots))
	for _, slot := range slots {
		booked := false
		for _, appt := range taken {
			if slot.StartTime < appt.EndTime && slot.EndTime > appt.StartTime {
				booked = true
				break
			}
		}
		out = append(out, bookableSlot{StartTime: slot.StartTime, EndTime: slot.EndTime, Booked: booked})
	}

	return c.JSON(fiber.Map{"date": date, "slots": out})
}

type CreateAppointmentRequest struct {
	DoctorID  string  `json:"doctor_id" validate:"required,uuid"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string  `json:"startTime" validate:"required"`
	EndTime   string  `json:"endTime" validate:"required"`
	Mode      string  `json:"mode" validate:"required,oneof=video in-person"`
	Reason    *string `json:"reason"`
}

func CreateAppointment(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	patientID, _ := uuid.Parse(claims["user_id"].(string))

	var req CreateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !schedule.IsValidTime(req.StartTime) || !schedule.IsValidTime(req.EndTime) || req.StartTime >= req.EndTime {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid appointment time range"})
	}
	if req.Date < time.Now().Format("2006-01-02") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Appointments cannot be booked in the past"})
	}

	doctorID, _ := uuid.Parse(req.DoctorID)

	var doctor models.Doctor
	if err := database.DB.Preload("User").Where("user_id = ? AND status = ?", doctorID, "verified").First(&doctor).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Doctor not found"})
	}
	if req.Mode == "video" && !doctor.OffersVideo {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This doctor does not offer video consultations"})
	}
	if req.Mode == "in-person" && !doctor.OffersInPerson {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This doctor does not offer in-person consultations"})
	}

	var blockedCount int64
	database.DB.Model(&models.BlockedDate{}).Where("doctor_id = ? AND date = ?", doctorID, req.Date).Count(&blockedCount)
	if blockedCount > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "The doctor is unavailable on that date"})
	}

	weekday, _ := weekdayOf(req.Date)
	var row models.DoctorAvailability
	err := database.DB.Where("doctor_id = ? AND weekday = ?", doctorID, weekday).First(&row).Error
	if err != nil || !row.Available {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "The doctor is not available on that day"})
	}
	var slots []schedule.TimeSlot
	if len(row.Slots) > 0 {
		_ = json.Unmarshal(row.Slots, &slots)
	}
	withinPattern := false
	for _, slot := range slots {
		if req.StartTime >= slot.StartTime && req.EndTime <= slot.EndTime {
			withinPattern = true
			break
		}
	}
	if !withinPattern {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "The requested time is outside the doctor's availability"})
	}

	var appointment models.Appointment
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		var overlapping int64
		err := tx.Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("doctor_id = ? AND date = ? AND status IN ? AND start_time < ? AND end_time > ?",
				doctorID, req.Date, []string{"scheduled", "in-progress"}, req.EndTime, req.StartTime).
			Count(&overlapping).Error
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return errors.New("slot already booked")
		}

		appointment = models.Appointment{
			PatientID: patientID,
			DoctorID:  doctorID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
			Mode:      req.Mode,
			Reason:    req.Reason,
		}
		if req.Mode == "video" {
			link := fmt.Sprintf("https://meet.medconnecter.nl/%s", uuid.New().String())
			appointment.VideoLink = &link
		}
		return tx.Create(&appointment).Error
	})
	if err != nil {
		if err.Error() == "slot already booked" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "That time slot has just been booked. Please pick another."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create appointment"})
	}

	var patient models.User
	database.DB.Where("id = ?", patientID).First(&patient)

	go notifications.SendEmail(
		patient.FirstName+" "+patient.LastName,
		patient.Email,
		"Your Appointment is Scheduled",
		fmt.Sprintf("<h1>Appointment Scheduled</h1><p>Your %s appointment with Dr. %s %s on %s at %s is confirmed.</p>",
			req.Mode, doctor.User.FirstName, doctor.User.LastName, req.Date, req.StartTime),
	)
	go notifications.SendEmail(
		doctor.User.FirstName+" "+doctor.User.LastName,
		doctor.User.Email,
		"New Appointment Booked",
		fmt.Sprintf("<h1>New Appointment</h1><p>%s %s booked a %s appointment on %s at %s.</p>",
			patient.FirstName, patient.LastName, req.Mode, req.Date, req.StartTime),
	)
	go notifyUser(doctorID, "appointment_booked", "New appointment",
		fmt.Sprintf("%s %s booked %s %s-%s", patient.FirstName, patient.LastName, req.Date, req.StartTime, req.EndTime))

	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// notifyUser stores a notification row and pushes it to the hub if the
// user has a live connection.
func notifyUser(userID uuid.UUID, kind, title, body string) {
	notification := models.Notification{UserID: userID, Type: kind, Title: title, Body: body}
	if err := database.DB.Create(&notification).Error; err != nil {
		return
	}
	websocket.Push <- &notification
}

func GetMyAppointments(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	patientID, _ := uuid.Parse(claims["user_id"].(string))

	var appointments []models.Appointment
	query := database.DB.Preload("Doctor").Where("patient_id = ?", patientID)

	today := time.Now().Format("2006-01-02")
	switch c.Query("scope") {
	case "past":
		query = query.Where("date < ?", today).Order("date desc, start_time desc")
	case "cancelled":
		query = query.Where("status = ?", "cancelled").Order("date desc")
	default:
		query = query.Where("date >= ? AND status IN ?", today, []string{"scheduled", "in-progress"}).Order("date asc, start_time asc")
	}
	query.Find(&appointments)

	return c.JSON(appointments)
}

func GetDoctorAppointments(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	doctorID, _ := uuid.Parse(claims["user_id"].(string))

	var appointments []models.Appointment
	query := database.DB.Preload("Patient").Where("doctor_id = ?", doctorID)

	today := time.Now().Format("2006-01-02")
	switch c.Query("scope") {
	case "today":
		query = query.Where("date = ?", today).Order("start_time asc")
	case "past":
		query = query.Where("date < ?", today).Order("date desc, start_time desc")
	case "cancelled":
		query = query.Where("status = ?", "cancelled").Order("date desc")
	default:
		query = query.Where("date >= ? AND status IN ?", today, []string{"scheduled", "in-progress"}).Order("date asc, start_time asc")
	}
	query.Find(&appointments)

	return c.JSON(appointments)
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in-progress completed cancelled no_show"`
}

var allowedTransitions = map[string][]string{
	"scheduled":   {"in-progress", "completed", "cancelled", "no_show"},
	"in-progress": {"completed", "cancelled"},
}

// UpdateAppointmentStatus lets the doctor move an appointment through its
// lifecycle. Terminal states reject further changes.
func UpdateAppointmentStatus(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	doctorID, _ := uuid.Parse(claims["user_id"].(string))
	appointmentID := c.Params("appointmentId")

	var req UpdateAppointmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var appointment models.Appointment
	if err := database.DB.Preload("Patient").First(&appointment, "id = ? AND doctor_id = ?", appointmentID, doctorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
	}

	allowed := false
	for _, next := range allowedTransitions[appointment.Status] {
		if next == req.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot move appointment from " + appointment.Status + " to " + req.Status})
	}

	appointment.Status = req.Status
	if err := database.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update appointment"})
	}

	go notifyUser(appointment.PatientID, "appointment_"+req.Status, "Appointment update",
		fmt.Sprintf("Your appointment on %s at %s is now %s", appointment.Date, appointment.StartTime, req.Status))

	return c.JSON(appointment)
}

// CancelAppointment is the patient-side cancellation.
func CancelAppointment(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	patientID, _ := uuid.Parse(claims["user_id"].(string))
	appointmentID := c.Params("appointmentId")

	var appointment models.Appointment
	if err := database.DB.Preload("Doctor").First(&appointment, "id = ? AND patient_id = ?", appointmentID, patientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Appointment not found"})
	}
	if appointment.Status != "scheduled" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Only scheduled appointments can be cancelled"})
	}

	appointment.Status = "cancelled"
	if err := database.DB.Save(&appointment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to cancel appointment"})
	}

	go notifications.SendEmail(
		appointment.Doctor.FirstName+" "+appointment.Doctor.LastName,
		appointment.Doctor.Email,
		"Appointment Cancelled",
		fmt.Sprintf("<h1>Appointment Cancelled</h1><p>The appointment on %s at %s was cancelled by the patient.</p>", appointment.Date, appointment.StartTime),
	)
	go notifyUser(appointment.DoctorID, "appointment_cancelled", "Appointment cancelled",
		fmt.Sprintf("The appointment on %s at %s was cancelled", appointment.Date, appointment.StartTime))

	return c.JSON(appointment)
}
