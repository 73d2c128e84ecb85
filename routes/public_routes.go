package routes

import (
	"github.com/medconnecter/med_connecter/handlers"
	"github.com/gofiber/fiber/v2"
)

func PublicRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/languages", handlers.ListLanguages)
	api.Get("/time-options", handlers.ListTimeOptions)
}
