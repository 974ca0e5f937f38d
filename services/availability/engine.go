package availability

import (
	"context"
	"time"

	"go.uber.org/zap"

	apptRepo "trimly/database/repository/appointment"
	leaveRepo "trimly/database/repository/leave"
	shiftRepo "trimly/database/repository/shift"
	"trimly/models"
	"trimly/services/schedule"
)

// Engine computes bookable slots and bookable dates. Results are derived
// fresh on every call; nothing is cached or materialized.
type Engine interface {
	ComputeDaySlots(ctx context.Context, date, barberID, branchID string) (*models.DayAvailability, error)
	ResolveDates(ctx context.Context, barberID, branchID string) ([]string, error)
}

// DefaultEngine combines the shift, leave and booking stores with an
// injected clock fixed to one timezone.
type DefaultEngine struct {
	Shifts       shiftRepo.ShiftRepository
	Leaves       leaveRepo.LeaveRepository
	Appointments apptRepo.AppointmentRepository

	Clock    Clock
	Location *time.Location

	// Canonical grid bounds in minutes from midnight, and the step between
	// candidate slots. The grid is the same for every barber and branch.
	DayStart int
	DayEnd   int
	Step     int

	Logger *zap.Logger
}

// ComputeDaySlots returns the full grid for one (date, barber, branch)
// query. A slot is available only when the barber is on shift and off
// break, not on approved leave, the slot is unbooked, and the time has not
// passed yet. "No preference" bypasses the shift, leave and booking checks
// but never the time check.
func (e *DefaultEngine) ComputeDaySlots(ctx context.Context, date, barberID, branchID string) (*models.DayAvailability, error) {
	if _, err := time.ParseInLocation("2006-01-02", date, e.Location); err != nil {
		return nil, schedule.NewValidationError("date", "expected YYYY-MM-DD")
	}

	now := e.Clock.Now().In(e.Location)
	today := now.Format("2006-01-02")
	nowMinute := now.Hour()*60 + now.Minute()

	grid := e.grid()
	day := &models.DayAvailability{
		Date:      date,
		BarberID:  barberID,
		BranchID:  branchID,
		TimeSlots: make([]models.TimeSlot, 0, len(grid)),
	}

	if models.IsAnyBarber(barberID) {
		for _, t := range grid {
			day.TimeSlots = append(day.TimeSlots, models.TimeSlot{
				Time:      models.FormatClock(t),
				Available: timeEligible(date, today, t, nowMinute),
			})
		}
		return day, nil
	}

	shifts, err := e.Shifts.ListForDay(ctx, barberID, branchID, date)
	if err != nil {
		return nil, err
	}
	leaves, err := e.Leaves.ListApprovedForDay(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	booked, err := e.Appointments.BookedTimes(ctx, barberID, branchID, date)
	if err != nil {
		return nil, err
	}

	for _, t := range grid {
		clock := models.FormatClock(t)
		available := shiftEligible(shifts, t) &&
			leaveEligible(leaves, t) &&
			!booked[clock] &&
			timeEligible(date, today, t, nowMinute)
		day.TimeSlots = append(day.TimeSlots, models.TimeSlot{Time: clock, Available: available})
	}

	e.Logger.Debug("computed day availability",
		zap.String("date", date),
		zap.String("barberId", barberID),
		zap.Int("shifts", len(shifts)),
		zap.Int("approvedLeaves", len(leaves)))
	return day, nil
}

func (e *DefaultEngine) grid() []int {
	var grid []int
	for t := e.DayStart; t < e.DayEnd; t += e.Step {
		grid = append(grid, t)
	}
	return grid
}

// shiftEligible: the barber must have at least one shift covering the slot.
// No shift at all means the whole day is closed for that barber; there is
// no branch-hours fallback. Overlapping shifts are OR'd, and each shift's
// breaks subtract only from that shift's own coverage.
func shiftEligible(shifts []models.Shift, t int) bool {
	for _, s := range shifts {
		if s.Covers(t) {
			return true
		}
	}
	return false
}

// leaveEligible: every approved leave must leave the slot untouched. A
// full-day leave blocks unconditionally.
func leaveEligible(leaves []models.Leave, t int) bool {
	for _, l := range leaves {
		if l.Blocks(t) {
			return false
		}
	}
	return true
}

// timeEligible: future dates pass; today passes only for times strictly
// after "now"; past dates never pass. Dates compare lexically, which is
// sound for zero-padded "2006-01-02".
func timeEligible(date, today string, t, nowMinute int) bool {
	if date > today {
		return true
	}
	if date < today {
		return false
	}
	return t > nowMinute
}
