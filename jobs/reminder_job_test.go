package jobs

import (
	"testing"

	"github.com/medconnecter/med_connecter/models"
	"github.com/stretchr/testify/assert"
)

func TestReminderEmailBody(t *testing.T) {
	t.Run("video appointment with a link includes the join link", func(t *testing.T) {
		link := "https://meet.medconnecter.nl/abc"
		body := reminderEmailBody(models.Appointment{
			Mode:      "video",
			StartTime: "10:00",
			VideoLink: &link,
		})

		assert.Contains(t, body, "start in one hour at 10:00")
		assert.Contains(t, body, "https://meet.medconnecter.nl/abc")
	})

	t.Run("in-person appointment has no join link", func(t *testing.T) {
		body := reminderEmailBody(models.Appointment{
			Mode:      "in-person",
			StartTime: "14:30",
		})

		assert.Contains(t, body, "14:30")
		assert.NotContains(t, body, "Video Link")
	})

	t.Run("video appointment without a link omits the join line", func(t *testing.T) {
		empty := ""
		body := reminderEmailBody(models.Appointment{
			Mode:      "video",
			StartTime: "09:00",
			VideoLink: &empty,
		})

		assert.NotContains(t, body, "Video Link")
	})
}
