package handlers

import (
	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/gofiber/fiber/v2"
)

// ListLanguages returns the languages doctors can list on their profile
// and patients can filter searches by.
func ListLanguages(c *fiber.Ctx) error {
	var languages []models.Language
	if err := database.DB.Order("name asc").Find(&languages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch languages"})
	}
	return c.JSON(fiber.Map{"languages": languages})
}
