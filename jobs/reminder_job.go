package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
	"github.com/medconnecter/med_connecter/notifications"
)

func SendAppointmentReminders() {
	log.Println("Running job: SendAppointmentReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcomingAppointments []models.Appointment

	err := database.DB.
		Preload("Patient").
		Preload("Doctor").
		Where("status = ? AND date = ? AND start_time >= ? AND start_time < ?",
			"scheduled", lowerBound.Format("2006-01-02"), lowerBound.Format("15:04"), upperBound.Format("15:04")).
		Find(&upcomingAppointments).Error

	if err != nil {
		log.Printf("Error checking for upcoming appointments: %v", err)
		return
	}

	if len(upcomingAppointments) == 0 {
		return
	}

	for _, appointment := range upcomingAppointments {
		log.Printf("Sending reminder for appointment ID: %s", appointment.ID)

		emailSubject := "Reminder: Your Consultation Starts in 1 Hour"
		emailBody := reminderEmailBody(appointment)

		patientName := appointment.Patient.FirstName + " " + appointment.Patient.LastName
		doctorName := appointment.Doctor.FirstName + " " + appointment.Doctor.LastName
		go notifications.SendEmail(patientName, appointment.Patient.Email, emailSubject, emailBody)
		go notifications.SendEmail(doctorName, appointment.Doctor.Email, emailSubject, emailBody)
	}
}

// reminderEmailBody includes a join link only for video consultations
// that actually carry one.
func reminderEmailBody(appointment models.Appointment) string {
	joinLine := ""
	if appointment.Mode == "video" && appointment.VideoLink != nil && *appointment.VideoLink != "" {
		joinLine = fmt.Sprintf("<p><b>Video Link:</b> <a href='%s'>Join Consultation</a></p>", *appointment.VideoLink)
	}
	return fmt.Sprintf(
		"<h1>Consultation Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your consultation is scheduled to start in one hour at %s.</p>%s",
		appointment.StartTime,
		joinLine,
	)
}
