package routes

import (
	"github.com/medconnecter/med_connecter/handlers"
	"github.com/medconnecter/med_connecter/middleware"
	"github.com/gofiber/fiber/v2"
)

func DoctorRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/doctors", handlers.ListDoctors)

	// Static doctor paths are registered ahead of the :doctorId routes.
	api.Get("/doctors/profile", middleware.Protected(), handlers.GetMyDoctorProfile)
	api.Post("/doctors/profile", middleware.Protected(), handlers.UpsertMyDoctorProfile)

	api.Get("/doctors/availability", middleware.Protected(), middleware.DoctorRequired(), handlers.GetMyAvailability)
	api.Put("/doctors/availability", middleware.Protected(), middleware.DoctorRequired(), handlers.UpdateWeeklyAvailability)

	blocked := api.Group("/doctors/blocked-dates", middleware.Protected(), middleware.DoctorRequired())
	blocked.Get("", handlers.ListBlockedDates)
	blocked.Post("", handlers.AddBlockedDate)
	blocked.Delete("/:date", handlers.RemoveBlockedDate)

	api.Get("/doctors/dashboard/stats", middleware.Protected(), middleware.DoctorRequired(), handlers.GetDoctorDashboardStats)
	api.Get("/doctors/appointments", middleware.Protected(), middleware.DoctorRequired(), handlers.GetDoctorAppointments)

	api.Get("/doctors/:doctorId", handlers.GetDoctorPublicProfile)
	api.Get("/doctors/:doctorId/availability", handlers.GetDoctorAvailability)
	api.Get("/doctors/:doctorId/slots", handlers.GetDoctorBookableSlots)
	api.Get("/doctors/:doctorId/reviews", handlers.GetDoctorReviews)
}
