package booking

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apptRepo "trimly/database/repository/appointment"
	"trimly/database/repository"
	"trimly/models"
	"trimly/services/schedule"
)

// stubEngine marks every requested slot available unless closed is set.
type stubEngine struct {
	closed bool
}

func (e *stubEngine) ComputeDaySlots(ctx context.Context, date, barberID, branchID string) (*models.DayAvailability, error) {
	return &models.DayAvailability{
		Date:     date,
		BarberID: barberID,
		BranchID: branchID,
		TimeSlots: []models.TimeSlot{
			{Time: "11:00", Available: !e.closed},
			{Time: "11:30", Available: false},
		},
	}, nil
}

func (e *stubEngine) ResolveDates(ctx context.Context, barberID, branchID string) ([]string, error) {
	return nil, nil
}

type memAppointments struct {
	appts map[string]*models.Appointment
	slots map[string]bool
}

func newMemAppointments() *memAppointments {
	return &memAppointments{
		appts: make(map[string]*models.Appointment),
		slots: make(map[string]bool),
	}
}

func slotIndexKey(a *models.Appointment) string {
	return a.BarberID + "|" + a.BranchID + "|" + a.Date + "|" + a.Time
}

func (m *memAppointments) List(ctx context.Context, filter apptRepo.AppointmentFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		out = append(out, *a)
	}
	return out, nil
}

func (m *memAppointments) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	a, ok := m.appts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *memAppointments) Create(ctx context.Context, appt *models.Appointment) error {
	key := slotIndexKey(appt)
	if m.slots[key] {
		return repository.ErrSlotTaken
	}
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	m.slots[key] = true
	cp := *appt
	m.appts[appt.ID] = &cp
	return nil
}

func (m *memAppointments) Delete(ctx context.Context, id string) error {
	a, ok := m.appts[id]
	if !ok {
		return repository.ErrNotFound
	}
	delete(m.slots, slotIndexKey(a))
	delete(m.appts, id)
	return nil
}

func (m *memAppointments) BookedTimes(ctx context.Context, barberID, branchID, date string) (map[string]bool, error) {
	return map[string]bool{}, nil
}

type memBarbers struct {
	barbers map[string]*models.Barber
}

func (m *memBarbers) List(ctx context.Context, branchID string) ([]models.Barber, error) {
	return nil, nil
}

func (m *memBarbers) GetByID(ctx context.Context, id string) (*models.Barber, error) {
	b, ok := m.barbers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return b, nil
}

func (m *memBarbers) GetByName(ctx context.Context, name string) (*models.Barber, error) {
	for _, b := range m.barbers {
		if b.Name == name {
			return b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memBarbers) Create(ctx context.Context, barber *models.Barber) error { return nil }

type recordingScheduler struct {
	scheduled []*models.Appointment
}

func (r *recordingScheduler) Schedule(ctx context.Context, appt *models.Appointment) error {
	r.scheduled = append(r.scheduled, appt)
	return nil
}

func newTestBookingService(t *testing.T) (*DefaultBookingService, *miniredis.Miniredis, *memAppointments, *recordingScheduler) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	appts := newMemAppointments()
	reminders := &recordingScheduler{}
	svc := &DefaultBookingService{
		Engine:       &stubEngine{},
		Appointments: appts,
		Barbers: &memBarbers{barbers: map[string]*models.Barber{
			"b-1": {ID: "b-1", Name: "Ali", BranchID: "br-1", Active: true},
		}},
		Cache:     cache,
		Reminders: reminders,
		HoldTTL:   10 * time.Minute,
		Logger:    zap.NewNop(),
	}
	return svc, mr, appts, reminders
}

func validRequest() SessionRequest {
	return SessionRequest{
		BarberID:      "b-1",
		BranchID:      "br-1",
		Date:          "2026-09-12",
		Time:          "11:00",
		CustomerName:  "Hamza",
		CustomerPhone: "+923001234567",
		Services:      []string{"haircut"},
	}
}

func TestStartSessionHoldsSlot(t *testing.T) {
	svc, mr, _, _ := newTestBookingService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "b-1", session.BarberID)

	assert.True(t, mr.Exists("hold:br-1:b-1:2026-09-12:11:00"))
	assert.True(t, mr.Exists("session:"+session.ID))

	// A second customer racing for the same slot loses to the hold.
	_, err = svc.StartSession(ctx, validRequest())
	assert.ErrorIs(t, err, ErrSlotHeld)
}

func TestStartSessionUnavailableSlot(t *testing.T) {
	svc, _, _, _ := newTestBookingService(t)

	req := validRequest()
	req.Time = "11:30"
	_, err := svc.StartSession(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	req.Time = "23:00"
	_, err = svc.StartSession(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotUnavailable, "times off the grid are unavailable")
}

func TestStartSessionUnknownBarber(t *testing.T) {
	svc, _, _, _ := newTestBookingService(t)

	req := validRequest()
	req.BarberID = "b-404"
	_, err := svc.StartSession(context.Background(), req)
	var vErr *schedule.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestStartSessionResolvesBarberName(t *testing.T) {
	svc, _, _, _ := newTestBookingService(t)

	req := validRequest()
	req.BarberID = ""
	req.BarberName = "Ali"
	session, err := svc.StartSession(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "b-1", session.BarberID, "names normalize to the canonical id")
}

func TestConfirmCreatesAppointment(t *testing.T) {
	svc, mr, appts, reminders := newTestBookingService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, validRequest())
	require.NoError(t, err)

	appt, err := svc.Confirm(ctx, session.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "2026-09-12", appt.Date)
	assert.Equal(t, "11:00", appt.Time)
	assert.Len(t, appts.appts, 1)
	require.Len(t, reminders.scheduled, 1)
	assert.Equal(t, appt.ID, reminders.scheduled[0].ID)

	assert.False(t, mr.Exists("hold:br-1:b-1:2026-09-12:11:00"), "hold released on confirm")
	assert.False(t, mr.Exists("session:"+session.ID))

	_, err = svc.Confirm(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound, "a session confirms once")
}

func TestConfirmExpiredSession(t *testing.T) {
	svc, mr, _, _ := newTestBookingService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, validRequest())
	require.NoError(t, err)

	mr.FastForward(11 * time.Minute)

	_, err = svc.Confirm(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmSlotTaken(t *testing.T) {
	svc, _, appts, _ := newTestBookingService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, validRequest())
	require.NoError(t, err)

	// Someone booked the slot out-of-band between hold and confirm.
	require.NoError(t, appts.Create(ctx, &models.Appointment{
		BarberID: "b-1", BranchID: "br-1", Date: "2026-09-12", Time: "11:00",
		CustomerName: "Walk-in",
	}))

	_, err = svc.Confirm(ctx, session.ID)
	assert.ErrorIs(t, err, repository.ErrSlotTaken)
}

func TestCancelSessionReleasesHold(t *testing.T) {
	svc, mr, _, _ := newTestBookingService(t)
	ctx := context.Background()

	session, err := svc.StartSession(ctx, validRequest())
	require.NoError(t, err)

	require.NoError(t, svc.CancelSession(ctx, session.ID))
	assert.False(t, mr.Exists("hold:br-1:b-1:2026-09-12:11:00"))

	// The slot opens up again for the next customer.
	_, err = svc.StartSession(ctx, validRequest())
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.CancelSession(ctx, "missing"), ErrSessionNotFound)
}
