package handlers

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/medconnecter/med_connecter/schedule"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListTimeOptions returns the 48 selectable slot boundaries the front end
// renders in its start/end dropdowns.
func ListTimeOptions(c *fiber.Ctx) error {
	return c.JSON(schedule.TimeOptions())
}

type UpdateAvailabilityRequest struct {
	Availability []schedule.DayAvailability `json:"availability" validate:"required"`
}

var weekdayIndex = func() map[string]int {
	m := make(map[string]int, len(schedule.Weekdays))
	for i, name := range schedule.Weekdays {
		m[strings.ToLower(name)] = i
	}
	return m
}()

// UpdateWeeklyAvailability replaces the caller's entire weekly pattern.
// The body carries only days that are available with at least one slot;
// every other day is reset to unavailable.
func UpdateWeeklyAvailability(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	doctorID, _ := uuid.Parse(claims["user_id"].(string))

	var req UpdateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	slotsByWeekday := make(map[int][]schedule.TimeSlot, len(req.Availability))
	for _, day := range req.Availability {
		index, ok := weekdayIndex[day.Day]
		if !ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown day: " + day.Day})
		}
		if _, seen := slotsByWeekday[index]; seen {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Duplicate day: " + day.Day})
		}
		if len(day.Slots) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Day " + day.Day + " has no slots"})
		}
		for _, slot := range day.Slots {
			if !schedule.IsValidTime(slot.StartTime) || !schedule.IsValidTime(slot.EndTime) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slot times must be on 30-minute boundaries"})
			}
			if slot.StartTime >= slot.EndTime {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slot start time must be before end time"})
			}
		}
		slotsByWeekday[index] = day.Slots
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for weekday := range schedule.Weekdays {
			slots, available := slotsByWeekday[weekday]
			if !available {
				slots = []schedule.TimeSlot{}
			}
			slotsJSON, err := json.Marshal(slots)
			if err != nil {
				return err
			}
			row := models.DoctorAvailability{
				DoctorID:  doctorID,
				Weekday:   weekday,
				Available: available,
				Slots:     datatypes.JSON(slotsJSON),
			}
			err = tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "doctor_id"}, {Name: "weekday"}},
				DoUpdates: clause.AssignmentColumns([]string{"available", "slots", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save availability"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Availability updated successfully"})
}

// loadWeeklyAvailability reads a doctor's stored pattern into the full
// seven-day shape, defaulting missing days to unavailable.
func loadWeeklyAvailability(doctorID uuid.UUID) ([]schedule.DaySchedule, error) {
	var rows []models.DoctorAvailability
	if err := database.DB.Where("doctor_id = ?", doctorID).Order("weekday asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	week := make([]schedule.DaySchedule, len(schedule.Weekdays))
	for i, name := range schedule.Weekdays {
		week[i] = schedule.DaySchedule{Day: name, Slots: []schedule.TimeSlot{}}
	}
	for _, row := range rows {
		if row.Weekday < 0 || row.Weekday >= len(week) {
			continue
		}
		var slots []schedule.TimeSlot
		if len(row.Slots) > 0 {
			if err := json.Unmarshal(row.Slots, &slots); err != nil {
				return nil, err
			}
		}
		if slots == nil {
			slots = []schedule.TimeSlot{}
		}
		week[row.Weekday].Available = row.Available
		week[row.Weekday].Slots = slots
	}
	return week, nil
}

func GetMyAvailability(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	doctorID, _ := uuid.Parse(claims["user_id"].(string))

	week, err := loadWeeklyAvailability(doctorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load availability"})
	}
	return c.JSON(fiber.Map{"availability": week})
}

func GetDoctorAvailability(c *fiber.Ctx) error {
	doctorID, err := uuid.Parse(c.Params("doctorId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid doctor id"})
	}

	week, err := loadWeeklyAvailability(doctorID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load availability"})
	}
	return c.JSON(fiber.Map{"availability": week})
}

type AddBlockedDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

func AddBlockedDate(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	doctorID, _ := uuid.Parse(claims["user_id"].(string))

	var req AddBlockedDateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if req.Date < time.Now().Format("2006-01-02") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Blocked dates must be today or later"})
	}

	var count int64
	database.DB.Model(&models.BlockedDate{}).Where("doctor_id = ? AND date = ?", doctorID, req.Date).Count(&count)
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Date is already blocked"})
	}

	blocked := models.BlockedDate{DoctorID: doctorID, Date: req.Date}
	if err := database.DB.Create(&blocked).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to block date"})
	}

	return c.Status(fiber.StatusCreated).JSON(blocked)
}

func ListBlockedDates(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	doctorID, _ := uuid.Parse(claims["user_id"].(string))

	var blocked []models.BlockedDate
	database.DB.Where("doctor_id = ?", doctorID).Order("created_at asc").Find(&blocked)

	return c.JSON(blocked)
}

func RemoveBlockedDate(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	doctorID, _ := uuid.Parse(claims["user_id"].(string))
	date := c.Params("date")

	database.DB.Where("doctor_id = ? AND date = ?", doctorID, date).Delete(&models.BlockedDate{})

	return c.SendStatus(fiber.StatusNoContent)
}
