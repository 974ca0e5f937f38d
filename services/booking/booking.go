package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apptRepo "trimly/database/repository/appointment"
	barberRepo "trimly/database/repository/barber"
	"trimly/database/repository"
	"trimly/models"
	"trimly/services/availability"
	"trimly/services/schedule"
)

// SessionRequest is the payload to start a booking session. Either BarberID
// or BarberName identifies the barber; ids are canonical and names are
// normalized through the directory at this edge only.
type SessionRequest struct {
	BarberID      string   `json:"barberId"`
	BarberName    string   `json:"barberName,omitempty"`
	BranchID      string   `json:"branchId" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	Time          string   `json:"time" binding:"required"`
	CustomerName  string   `json:"customerName" binding:"required"`
	CustomerPhone string   `json:"customerPhone" binding:"required"`
	CustomerEmail string   `json:"customerEmail,omitempty"`
	Services      []string `json:"services,omitempty"`
}

// BookingService owns the two-step booking flow: hold a slot in a session,
// then confirm it into an appointment.
type BookingService interface {
	StartSession(ctx context.Context, req SessionRequest) (*models.BookingSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.Appointment, error)
	CancelSession(ctx context.Context, sessionID string) error
	List(ctx context.Context, filter apptRepo.AppointmentFilter) ([]models.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// DefaultBookingService is a concrete implementation. Payments and
// Reminders may be nil; the flow simply skips them.
type DefaultBookingService struct {
	Engine       availability.Engine
	Appointments apptRepo.AppointmentRepository
	Barbers      barberRepo.BarberRepository
	Cache        *redis.Client
	Payments     PaymentService
	Reminders    ReminderScheduler
	HoldTTL      time.Duration
	Logger       *zap.Logger
}

func (s *DefaultBookingService) StartSession(ctx context.Context, req SessionRequest) (*models.BookingSession, error) {
	barberID, err := s.resolveBarberID(ctx, req)
	if err != nil {
		return nil, err
	}

	day, err := s.Engine.ComputeDaySlots(ctx, req.Date, barberID, req.BranchID)
	if err != nil {
		return nil, err
	}
	if !slotAvailable(day, req.Time) {
		return nil, ErrSlotUnavailable
	}

	session := &models.BookingSession{
		ID:            uuid.New().String(),
		BarberID:      barberID,
		BranchID:      req.BranchID,
		Date:          req.Date,
		Time:          req.Time,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		Services:      req.Services,
		CreatedAt:     time.Now(),
	}

	// Hold the slot for the session's lifetime. SetNX loses to an existing
	// hold, so two customers cannot stage the same slot at once.
	ok, err := s.Cache.SetNX(ctx, holdKey(session), session.ID, s.HoldTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to hold slot: %w", err)
	}
	if !ok {
		return nil, ErrSlotHeld
	}

	if s.Payments != nil {
		intentID, clientSecret, err := s.Payments.CreateDepositIntent(ctx, session)
		if err != nil {
			// Release the hold; the customer can retry.
			s.Cache.Del(ctx, holdKey(session))
			return nil, fmt.Errorf("failed to create deposit intent: %w", err)
		}
		session.PaymentIntentID = intentID
		session.PaymentClientSecret = clientSecret
	}

	data, err := json.Marshal(session)
	if err != nil {
		s.Cache.Del(ctx, holdKey(session))
		return nil, fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionKey(session.ID), data, s.HoldTTL).Err(); err != nil {
		s.Cache.Del(ctx, holdKey(session))
		return nil, fmt.Errorf("failed to cache booking session: %w", err)
	}

	s.Logger.Info("booking session started",
		zap.String("sessionId", session.ID),
		zap.String("barberId", session.BarberID),
		zap.String("date", session.Date),
		zap.String("time", session.Time))
	return session, nil
}

func (s *DefaultBookingService) Confirm(ctx context.Context, sessionID string) (*models.Appointment, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		CustomerName:  session.CustomerName,
		CustomerPhone: session.CustomerPhone,
		CustomerEmail: session.CustomerEmail,
		BarberID:      session.BarberID,
		BranchID:      session.BranchID,
		Date:          session.Date,
		Time:          session.Time,
		Services:      session.Services,
		DepositID:     session.PaymentIntentID,
	}
	// The unique slot index is the real gate here; the session hold only
	// narrows the window.
	if err := s.Appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.Cache.Del(ctx, holdKey(session), sessionKey(session.ID))

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(ctx, appt); err != nil {
			// The appointment stands either way.
			s.Logger.Warn("failed to schedule reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	s.Logger.Info("appointment confirmed",
		zap.String("appointmentId", appt.ID),
		zap.String("barberId", appt.BarberID),
		zap.String("date", appt.Date),
		zap.String("time", appt.Time))
	return appt, nil
}

func (s *DefaultBookingService) CancelSession(ctx context.Context, sessionID string) error {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	s.Cache.Del(ctx, holdKey(session), sessionKey(session.ID))
	s.Logger.Info("booking session cancelled", zap.String("sessionId", sessionID))
	return nil
}

func (s *DefaultBookingService) List(ctx context.Context, filter apptRepo.AppointmentFilter) ([]models.Appointment, error) {
	return s.Appointments.List(ctx, filter)
}

func (s *DefaultBookingService) Delete(ctx context.Context, id string) error {
	return s.Appointments.Delete(ctx, id)
}

func (s *DefaultBookingService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingService) resolveBarberID(ctx context.Context, req SessionRequest) (string, error) {
	if models.IsAnyBarber(req.BarberID) && req.BarberName == "" {
		return models.AnyBarber, nil
	}
	if req.BarberID != "" && !models.IsAnyBarber(req.BarberID) {
		if _, err := s.Barbers.GetByID(ctx, req.BarberID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return "", schedule.NewValidationError("barberId", "unknown barber")
			}
			return "", err
		}
		return req.BarberID, nil
	}
	barber, err := s.Barbers.GetByName(ctx, req.BarberName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", schedule.NewValidationError("barberName", "unknown barber")
		}
		return "", err
	}
	return barber.ID, nil
}

func slotAvailable(day *models.DayAvailability, clock string) bool {
	for _, slot := range day.TimeSlots {
		if slot.Time == clock {
			return slot.Available
		}
	}
	return false
}

func holdKey(s *models.BookingSession) string {
	return fmt.Sprintf("hold:%s:%s:%s:%s", s.BranchID, s.BarberID, s.Date, s.Time)
}

func sessionKey(id string) string {
	return "session:" + id
}
