package routes

import (
	"github.com/medconnecter/med_connecter/handlers"
	"github.com/medconnecter/med_connecter/middleware"
	"github.com/gofiber/fiber/v2"
)

func AppointmentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	appointments := api.Group("/appointments", middleware.Protected())
	appointments.Post("", handlers.CreateAppointment)
	appointments.Get("/me", handlers.GetMyAppointments)
	appointments.Patch("/:appointmentId/status", middleware.DoctorRequired(), handlers.UpdateAppointmentStatus)
	appointments.Post("/:appointmentId/cancel", handlers.CancelAppointment)
	appointments.Post("/:appointmentId/review", handlers.CreateReview)
	appointments.Post("/:id/summary", handlers.GenerateReimbursementSummary)

	documents := api.Group("/documents", middleware.Protected())
	documents.Get("", handlers.GetMyDocuments)
}
