package handlers

import (
	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type UpdateProfileRequest struct {
	FirstName         *string         `json:"firstName"`
	LastName          *string         `json:"lastName"`
	ProfilePictureURL *string         `json:"profile_picture_url"`
	Address           *models.Address `json:"address"`
	Languages         []string        `json:"languages"`
}

func GetProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	if err := database.DB.Preload("Languages").Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(user)
}

func UpdateProfile(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	userID := claims["user_id"].(string)

	var user models.User
	if err := database.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.ProfilePictureURL != nil {
		user.ProfilePictureURL = req.ProfilePictureURL
	}
	if req.Address != nil {
		user.AddressStreet = req.Address.Street
		user.AddressCity = req.Address.City
		user.AddressState = req.Address.State
		user.AddressCountry = req.Address.Country
		user.AddressPostalCode = req.Address.PostalCode
	}

	database.DB.Save(&user)

	if req.Languages != nil {
		var languages []*models.Language
		database.DB.Where("code IN ?", req.Languages).Find(&languages)
		database.DB.Model(&user).Association("Languages").Replace(languages)
	}

	return c.JSON(user)
}
