package routes

import (
	"github.com/medconnecter/med_connecter/handlers"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.RegisterUser)
	auth.Post("/login/initiate", handlers.InitiateLogin)
	auth.Post("/login/verify", handlers.VerifyLogin)
	auth.Post("/verify/email", handlers.VerifyEmail)
}
