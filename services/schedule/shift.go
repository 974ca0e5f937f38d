package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	shiftRepo "trimly/database/repository/shift"
	"trimly/models"
)

// BreakInput is one break sub-interval in a shift request.
type BreakInput struct {
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// CreateShiftRequest is the payload for scheduling a working block.
type CreateShiftRequest struct {
	BarberID  string       `json:"barberId" binding:"required"`
	BranchID  string       `json:"branchId" binding:"required"`
	Date      string       `json:"date" binding:"required"`
	StartTime string       `json:"startTime" binding:"required"`
	EndTime   string       `json:"endTime" binding:"required"`
	Breaks    []BreakInput `json:"breaks,omitempty"`
	Type      string       `json:"type,omitempty"`
}

// UpdateShiftRequest carries partial overrides; nil fields keep the stored
// value. The effective interval is re-validated for overlap against sibling
// shifts excluding the shift itself.
type UpdateShiftRequest struct {
	StartTime *string       `json:"startTime,omitempty"`
	EndTime   *string       `json:"endTime,omitempty"`
	Breaks    *[]BreakInput `json:"breaks,omitempty"`
	Type      *string       `json:"type,omitempty"`
}

// ShiftService validates and persists shifts.
type ShiftService interface {
	List(ctx context.Context, filter shiftRepo.ShiftFilter) ([]models.Shift, error)
	Create(ctx context.Context, req CreateShiftRequest) (*models.Shift, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) (*models.Shift, error)
	Delete(ctx context.Context, id string) error
}

// DefaultShiftService is a concrete implementation over the shift store.
type DefaultShiftService struct {
	Repo   shiftRepo.ShiftRepository
	Logger *zap.Logger
}

func (s *DefaultShiftService) List(ctx context.Context, filter shiftRepo.ShiftFilter) ([]models.Shift, error) {
	return s.Repo.List(ctx, filter)
}

func (s *DefaultShiftService) Create(ctx context.Context, req CreateShiftRequest) (*models.Shift, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	interval, err := models.ParseInterval(req.StartTime, req.EndTime)
	if err != nil {
		return nil, NewValidationError("startTime", err.Error())
	}
	breaks, err := parseBreaks(req.Breaks)
	if err != nil {
		return nil, err
	}

	shift := &models.Shift{
		BarberID: req.BarberID,
		BranchID: req.BranchID,
		Date:     req.Date,
		Interval: interval,
		Breaks:   breaks,
		Type:     req.Type,
	}
	if err := s.Repo.Create(ctx, shift); err != nil {
		return nil, err
	}
	s.Logger.Info("shift created",
		zap.String("id", shift.ID),
		zap.String("barberId", shift.BarberID),
		zap.String("date", shift.Date))
	return shift, nil
}

func (s *DefaultShiftService) Update(ctx context.Context, id string, req UpdateShiftRequest) (*models.Shift, error) {
	shift, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Resolve the effective interval from partial overrides.
	startTime := models.FormatClock(shift.Interval.Start)
	endTime := models.FormatClock(shift.Interval.End)
	if req.StartTime != nil {
		startTime = *req.StartTime
	}
	if req.EndTime != nil {
		endTime = *req.EndTime
	}
	interval, err := models.ParseInterval(startTime, endTime)
	if err != nil {
		return nil, NewValidationError("startTime", err.Error())
	}
	shift.Interval = interval

	if req.Breaks != nil {
		breaks, err := parseBreaks(*req.Breaks)
		if err != nil {
			return nil, err
		}
		shift.Breaks = breaks
	}
	if req.Type != nil {
		shift.Type = *req.Type
	}

	if err := s.Repo.Update(ctx, shift); err != nil {
		return nil, err
	}
	s.Logger.Info("shift updated", zap.String("id", shift.ID))
	return shift, nil
}

func (s *DefaultShiftService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.Logger.Info("shift deleted", zap.String("id", id))
	return nil
}

func parseBreaks(inputs []BreakInput) ([]models.Interval, error) {
	if len(inputs) == 0 {
		return nil, nil
	}
	breaks := make([]models.Interval, 0, len(inputs))
	for _, b := range inputs {
		iv, err := models.ParseInterval(b.StartTime, b.EndTime)
		if err != nil {
			return nil, NewValidationError("breaks", err.Error())
		}
		breaks = append(breaks, iv)
	}
	return breaks, nil
}

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return NewValidationError("date", "expected YYYY-MM-DD")
	}
	return nil
}
