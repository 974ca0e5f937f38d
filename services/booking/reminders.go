package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"trimly/models"
)

// TypeReminderSend is the asynq task type for appointment reminders.
const TypeReminderSend = "reminder:send"

// ReminderScheduler enqueues a reminder to fire before the appointment.
type ReminderScheduler interface {
	Schedule(ctx context.Context, appt *models.Appointment) error
}

// AsynqReminderScheduler enqueues reminder tasks on Redis. Lead is how long
// before the appointment the reminder fires.
type AsynqReminderScheduler struct {
	Client   *asynq.Client
	Location *time.Location
	Lead     time.Duration
}

func (r *AsynqReminderScheduler) Schedule(ctx context.Context, appt *models.Appointment) error {
	at, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, r.Location)
	if err != nil {
		return fmt.Errorf("failed to parse appointment time: %w", err)
	}
	fireAt := at.Add(-r.Lead)
	if !fireAt.After(time.Now().In(r.Location)) {
		// Booked inside the lead window; a reminder would be noise.
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		AppointmentID: appt.ID,
		BarberID:      appt.BarberID,
		BranchID:      appt.BranchID,
		Date:          appt.Date,
		Time:          appt.Time,
		CustomerName:  appt.CustomerName,
		CustomerPhone: appt.CustomerPhone,
		Services:      appt.Services,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := r.Client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
