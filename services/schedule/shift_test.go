package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trimly/database/repository"
	shiftRepo "trimly/database/repository/shift"
	"trimly/models"
)

// fakeShiftRepo keeps shifts in memory and mirrors the store's overlap
// rejection: a write conflicting with a sibling on the same barber and date
// fails with ErrShiftOverlap.
type fakeShiftRepo struct {
	shifts map[string]*models.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[string]*models.Shift)}
}

func (f *fakeShiftRepo) List(ctx context.Context, filter shiftRepo.ShiftFilter) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range f.shifts {
		if filter.BarberID != "" && s.BarberID != filter.BarberID {
			continue
		}
		if filter.BranchID != "" && s.BranchID != filter.BranchID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (*models.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeShiftRepo) ListForDay(ctx context.Context, barberID, branchID, date string) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range f.shifts {
		if s.BarberID == barberID && s.BranchID == branchID && s.Date == date {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) checkOverlap(candidate *models.Shift) error {
	for _, s := range f.shifts {
		if s.ID == candidate.ID || s.BarberID != candidate.BarberID || s.Date != candidate.Date {
			continue
		}
		if candidate.Interval.Overlaps(s.Interval) {
			return repository.ErrShiftOverlap
		}
	}
	return nil
}

func (f *fakeShiftRepo) Create(ctx context.Context, shift *models.Shift) error {
	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}
	if err := f.checkOverlap(shift); err != nil {
		return err
	}
	cp := *shift
	f.shifts[shift.ID] = &cp
	return nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, shift *models.Shift) error {
	if _, ok := f.shifts[shift.ID]; !ok {
		return repository.ErrNotFound
	}
	if err := f.checkOverlap(shift); err != nil {
		return err
	}
	cp := *shift
	f.shifts[shift.ID] = &cp
	return nil
}

func (f *fakeShiftRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.shifts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.shifts, id)
	return nil
}

func (f *fakeShiftRepo) DistinctDates(ctx context.Context, barberID, branchID, fromDate string) ([]string, error) {
	seen := map[string]bool{}
	var dates []string
	for _, s := range f.shifts {
		if s.BarberID != barberID || s.BranchID != branchID || s.Date < fromDate || seen[s.Date] {
			continue
		}
		seen[s.Date] = true
		dates = append(dates, s.Date)
	}
	return dates, nil
}

func newShiftService(repo shiftRepo.ShiftRepository) *DefaultShiftService {
	return &DefaultShiftService{Repo: repo, Logger: zap.NewNop()}
}

func TestCreateShift(t *testing.T) {
	svc := newShiftService(newFakeShiftRepo())

	shift, err := svc.Create(context.Background(), CreateShiftRequest{
		BarberID:  "b-1",
		BranchID:  "br-1",
		Date:      "2026-09-10",
		StartTime: "10:00",
		EndTime:   "18:00",
		Breaks:    []BreakInput{{StartTime: "13:00", EndTime: "14:00"}},
		Type:      models.ShiftFull,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, shift.ID)
	assert.Equal(t, models.Interval{Start: 600, End: 1080}, shift.Interval)
	require.Len(t, shift.Breaks, 1)
	assert.Equal(t, models.Interval{Start: 780, End: 840}, shift.Breaks[0])
}

func TestCreateShiftRejectsOverlap(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newShiftService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateShiftRequest{
		BarberID: "b-1", BranchID: "br-1", Date: "2026-09-10",
		StartTime: "09:00", EndTime: "13:00",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreateShiftRequest{
		BarberID: "b-1", BranchID: "br-1", Date: "2026-09-10",
		StartTime: "12:00", EndTime: "17:00",
	})
	assert.ErrorIs(t, err, repository.ErrShiftOverlap)

	// Back-to-back shifts touch at 13:00 but do not overlap.
	_, err = svc.Create(ctx, CreateShiftRequest{
		BarberID: "b-1", BranchID: "br-1", Date: "2026-09-10",
		StartTime: "13:00", EndTime: "17:00",
	})
	assert.NoError(t, err)

	// Same interval for a different barber is fine.
	_, err = svc.Create(ctx, CreateShiftRequest{
		BarberID: "b-2", BranchID: "br-1", Date: "2026-09-10",
		StartTime: "12:00", EndTime: "17:00",
	})
	assert.NoError(t, err)
}

func TestCreateShiftValidation(t *testing.T) {
	svc := newShiftService(newFakeShiftRepo())
	ctx := context.Background()

	var vErr *ValidationError

	_, err := svc.Create(ctx, CreateShiftRequest{
		BarberID: "b-1", BranchID: "br-1", Date: "10/09/2026",
		StartTime: "10:00", EndTime: "18:00",
	})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Create(ctx, CreateShiftRequest{
		BarberID: "b-1", BranchID: "br-1", Date: "2026-09-10",
		StartTime: "18:00", EndTime: "10:00",
	})
	assert.ErrorAs(t, err, &vErr)

	_, err = svc.Create(ctx, CreateShiftRequest{
		BarberID: "b-1", BranchID: "br-1", Date: "2026-09-10",
		StartTime: "10:00", EndTime: "18:00",
		Breaks:    []BreakInput{{StartTime: "14:00", EndTime: "13:00"}},
	})
	assert.ErrorAs(t, err, &vErr)
}

func TestUpdateShiftPartialOverride(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newShiftService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateShiftRequest{
		BarberID: "b-1", BranchID: "br-1", Date: "2026-09-10",
		StartTime: "10:00", EndTime: "18:00",
		Breaks: []BreakInput{{StartTime: "13:00", EndTime: "14:00"}},
	})
	require.NoError(t, err)

	newEnd := "20:00"
	updated, err := svc.Update(ctx, created.ID, UpdateShiftRequest{EndTime: &newEnd})
	require.NoError(t, err)
	assert.Equal(t, models.Interval{Start: 600, End: 1200}, updated.Interval, "start kept, end overridden")
	assert.Len(t, updated.Breaks, 1, "breaks untouched when omitted")

	noBreaks := []BreakInput{}
	updated, err = svc.Update(ctx, created.ID, UpdateShiftRequest{Breaks: &noBreaks})
	require.NoError(t, err)
	assert.Empty(t, updated.Breaks, "explicit empty list clears breaks")
}

func TestUpdateShiftOverlapExcludesSelf(t *testing.T) {
	repo := newFakeShiftRepo()
	svc := newShiftService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateShiftRequest{
		BarberID: "b-1", BranchID: "br-1", Date: "2026-09-10",
		StartTime: "10:00", EndTime: "14:00",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateShiftRequest{
		BarberID: "b-1", BranchID: "br-1", Date: "2026-09-10",
		StartTime: "15:00", EndTime: "19:00",
	})
	require.NoError(t, err)

	// Growing inside its own old window must not conflict with itself.
	newEnd := "15:00"
	_, err = svc.Update(ctx, created.ID, UpdateShiftRequest{EndTime: &newEnd})
	assert.NoError(t, err)

	// Growing into the sibling must conflict.
	newEnd = "16:00"
	_, err = svc.Update(ctx, created.ID, UpdateShiftRequest{EndTime: &newEnd})
	assert.ErrorIs(t, err, repository.ErrShiftOverlap)
}

func TestDeleteShiftNotFound(t *testing.T) {
	svc := newShiftService(newFakeShiftRepo())
	err := svc.Delete(context.Background(), "missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}
