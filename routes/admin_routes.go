package routes

import (
	"github.com/medconnecter/med_connecter/handlers"
	"github.com/medconnecter/med_connecter/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Post("/admin/login", handlers.AdminLogin)

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/doctors/pending", handlers.ListPendingDoctors)
	admin.Put("/doctors/:doctorId/verify", handlers.VerifyDoctor)
	admin.Put("/users/:userId/deactivate", handlers.DeactivateUser)
}
