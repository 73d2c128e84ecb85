package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/medconnecter/med_connecter/notifications"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListDoctors is the public search endpoint. Filters mirror the search
// panel: specialty, consultation mode, gender, language, max fee, minimum
// rating and verified-only. Only verified doctors are ever listed.
func ListDoctors(c *fiber.Ctx) error {
	var doctors []models.Doctor
	query := database.DB.Preload("User").Preload("User.Languages").Where("doctors.status = ?", "verified")

	if specialty := c.Query("specialty"); specialty != "" && specialty != "all-specialties" {
		query = query.Where("LOWER(doctors.specialty) = LOWER(?)", specialty)
	}
	if mode := c.Query("consultation_type"); mode != "" {
		switch mode {
		case "video":
			query = query.Where("doctors.offers_video = true")
		case "in-person":
			query = query.Where("doctors.offers_in_person = true")
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "consultation_type must be video or in-person"})
		}
	}
	if gender := c.Query("gender"); gender != "" {
		query = query.Joins("JOIN users ON users.id = doctors.user_id").Where("users.gender = ?", gender)
	}
	if language := c.Query("language"); language != "" {
		query = query.
			Joins("JOIN user_languages ON user_languages.user_id = doctors.user_id").
			Joins("JOIN languages ON languages.id = user_languages.language_id").
			Where("languages.code = ?", language)
	}
	if maxFee := c.Query("max_fee"); maxFee != "" {
		fee, err := strconv.ParseFloat(maxFee, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "max_fee must be a number"})
		}
		query = query.Where("doctors.consultation_fee <= ?", fee)
	}
	if minRating := c.Query("min_rating"); minRating != "" {
		query = query.Where("doctors.avg_rating >= ?", minRating)
	}

	if err := query.Order("doctors.avg_rating desc").Find(&doctors).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to retrieve doctors"})
	}

	return c.JSON(fiber.Map{"doctors": doctors})
}

func GetDoctorPublicProfile(c *fiber.Ctx) error {
	doctorID := c.Params("doctorId")

	var doctor models.Doctor
	err := database.DB.Preload("User").Preload("User.Languages").
		Where("user_id = ? AND status = ?", doctorID, "verified").
		First(&doctor).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Doctor not found"})
	}

	return c.JSON(fiber.Map{"doctor": doctor})
}

func GetMyDoctorProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var doctor models.Doctor
	err := database.DB.Preload("User").Preload("User.Languages").
		Where("user_id = ?", userID).
		First(&doctor).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Doctor profile not found. Complete your profile first."})
	}

	return c.JSON(fiber.Map{"doctor": doctor})
}

type DoctorProfileRequest struct {
	Headline           *string         `json:"headline"`
	Bio                *string         `json:"bio"`
	RegistrationNumber *string         `json:"registrationNumber"`
	Specialty          *string         `json:"specialty"`
	Specializations    json.RawMessage `json:"specializations"`
	Education          json.RawMessage `json:"education"`
	Training           json.RawMessage `json:"training"`
	Awards             json.RawMessage `json:"awards"`
	Publications       json.RawMessage `json:"publications"`
	ClinicLocation     json.RawMessage `json:"clinicLocation"`
	OffersVideo        *bool           `json:"offersVideo"`
	OffersInPerson     *bool           `json:"offersInPerson"`
	ConsultationFee    *float64        `json:"consultationFee"`
}

// UpsertMyDoctorProfile serves profile completion. The first save creates
// the doctor record in pending state and notifies the admins; later saves
// update the editable fields without touching verification status.
func UpsertMyDoctorProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID, _ := uuid.Parse(claims["user_id"].(string))

	var req DoctorProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}
	if user.Role != "doctor" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Only doctor accounts can complete a doctor profile"})
	}

	var doctor models.Doctor
	err := database.DB.Where("user_id = ?", userID).First(&doctor).Error
	created := false
	if errors.Is(err, gorm.ErrRecordNotFound) {
		doctor = models.Doctor{UserID: userID, Status: "pending"}
		created = true
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	if req.Headline != nil {
		doctor.Headline = req.Headline
	}
	if req.Bio != nil {
		doctor.Bio = req.Bio
	}
	if req.RegistrationNumber != nil {
		doctor.RegistrationNumber = req.RegistrationNumber
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.Specializations != nil {
		doctor.Specializations = datatypes.JSON(req.Specializations)
	}
	if req.Education != nil {
		doctor.Education = datatypes.JSON(req.Education)
	}
	if req.Training != nil {
		doctor.Training = datatypes.JSON(req.Training)
	}
	if req.Awards != nil {
		doctor.Awards = datatypes.JSON(req.Awards)
	}
	if req.Publications != nil {
		doctor.Publications = datatypes.JSON(req.Publications)
	}
	if req.ClinicLocation != nil {
		doctor.ClinicLocation = datatypes.JSON(req.ClinicLocation)
	}
	if req.OffersVideo != nil {
		doctor.OffersVideo = *req.OffersVideo
	}
	if req.OffersInPerson != nil {
		doctor.OffersInPerson = *req.OffersInPerson
	}
	if req.ConsultationFee != nil {
		doctor.ConsultationFee = *req.ConsultationFee
	}

	if err := database.DB.Save(&doctor).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save doctor profile"})
	}

	if created {
		go notifications.SendEmail(
			user.FirstName+" "+user.LastName,
			user.Email,
			"Your Doctor Profile is Under Review",
			"<h1>Profile Received</h1><p>Thank you for completing your profile. Our team will verify your registration details and notify you once your profile is live.</p>",
		)
	}

	return c.JSON(fiber.Map{"doctor": doctor})
}

func GetDoctorReviews(c *fiber.Ctx) error {
	doctorID := c.Params("doctorId")

	var reviews []models.Review
	database.DB.Preload("Patient").Where("doctor_id = ?", doctorID).Order("created_at desc").Find(&reviews)

	return c.JSON(reviews)
}
