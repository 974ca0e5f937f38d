package notification

import (
	"context"

	"go.uber.org/zap"

	"trimly/models"
)

// Notifier delivers appointment reminders to customers.
type Notifier interface {
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}

// LogNotifier writes reminders to the log. It stands in for an SMS or push
// gateway; swap it out behind the interface when one is wired up.
type LogNotifier struct {
	Logger *zap.Logger
}

func (n *LogNotifier) SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error {
	n.Logger.Info("appointment reminder",
		zap.String("appointmentId", payload.AppointmentID),
		zap.String("customerName", payload.CustomerName),
		zap.String("customerPhone", payload.CustomerPhone),
		zap.String("barberId", payload.BarberID),
		zap.String("branchId", payload.BranchID),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time),
		zap.Strings("services", payload.Services))
	return nil
}
