package schedule

import (
	"context"

	"go.uber.org/zap"

	leaveRepo "trimly/database/repository/leave"
	"trimly/models"
)

// CreateLeaveRequest is the payload for a leave request. StartTime and
// EndTime must be given together; omitting both means a full-day leave.
type CreateLeaveRequest struct {
	BarberID  string `json:"barberId" binding:"required"`
	Type      string `json:"type" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	Reason    string `json:"reason,omitempty"`
}

// LeaveService validates and persists leave requests. Overlapping leaves
// are permitted; only the approval status gates availability.
type LeaveService interface {
	List(ctx context.Context, filter leaveRepo.LeaveFilter) ([]models.Leave, error)
	Create(ctx context.Context, req CreateLeaveRequest) (*models.Leave, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Leave, error)
}

// DefaultLeaveService is a concrete implementation over the leave store.
type DefaultLeaveService struct {
	Repo   leaveRepo.LeaveRepository
	Logger *zap.Logger
}

func (s *DefaultLeaveService) List(ctx context.Context, filter leaveRepo.LeaveFilter) ([]models.Leave, error) {
	return s.Repo.List(ctx, filter)
}

func (s *DefaultLeaveService) Create(ctx context.Context, req CreateLeaveRequest) (*models.Leave, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if (req.StartTime == "") != (req.EndTime == "") {
		return nil, NewValidationError("startTime", "startTime and endTime must be given together")
	}

	var interval *models.Interval
	if req.StartTime != "" {
		iv, err := models.ParseInterval(req.StartTime, req.EndTime)
		if err != nil {
			return nil, NewValidationError("startTime", err.Error())
		}
		interval = &iv
	}

	leave := &models.Leave{
		BarberID: req.BarberID,
		Date:     req.Date,
		Interval: interval,
		Type:     req.Type,
		Reason:   req.Reason,
		Status:   models.LeavePending,
	}
	if err := s.Repo.Create(ctx, leave); err != nil {
		return nil, err
	}
	s.Logger.Info("leave requested",
		zap.String("id", leave.ID),
		zap.String("barberId", leave.BarberID),
		zap.String("date", leave.Date),
		zap.Bool("fullDay", leave.FullDay()))
	return leave, nil
}

func (s *DefaultLeaveService) UpdateStatus(ctx context.Context, id, status string) (*models.Leave, error) {
	switch status {
	case models.LeavePending, models.LeaveApproved, models.LeaveDenied:
	default:
		return nil, NewValidationError("status", "must be pending, approved or denied")
	}

	leave, err := s.Repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("leave status updated", zap.String("id", id), zap.String("status", status))
	return leave, nil
}
