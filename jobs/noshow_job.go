package jobs

import (
	"log"
	"time"

	"github.com/medconnecter/med_connecter/database"
	"github.com/medconnecter/med_connecter/models"
)

// CheckForMissedAppointments marks scheduled appointments whose end time
// passed more than 15 minutes ago as no_show.
func CheckForMissedAppointments() {
	log.Println("Running job: CheckForMissedAppointments...")

	cutoff := time.Now().Add(-15 * time.Minute)

	result := database.DB.Model(&models.Appointment{}).
		Where("status = ? AND (date < ? OR (date = ? AND end_time <= ?))",
			"scheduled", cutoff.Format("2006-01-02"), cutoff.Format("2006-01-02"), cutoff.Format("15:04")).
		Update("status", "no_show")

	if result.Error != nil {
		log.Printf("Error checking for missed appointments: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Marked %d appointment(s) as no_show.", result.RowsAffected)
	}
}
