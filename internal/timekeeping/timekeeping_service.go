package timekeeping

import (
	"context"
	"time"

	"go-hrm/internal/domain"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/store"
	timekeepingerrors "go-hrm/internal/timekeeping/errors"

	"go.uber.org/zap"
)

type Service interface {
	CreateShift(ctx context.Context, req CreateWorkShiftRequest) (WorkShiftResponse, error)
	GetAllShifts(ctx context.Context) ([]WorkShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error

	CreateEntry(ctx context.Context, req CreateTimeEntryRequest) (TimeEntryResponse, error)
	GetAllEntries(ctx context.Context) ([]TimeEntryResponse, error)
	UpdateEntry(ctx context.Context, id string, req UpdateTimeEntryRequest) (TimeEntryResponse, error)
	DeleteEntry(ctx context.Context, id string) error
}

type service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("timekeeping.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timekeeping.service")
	}
	return &service{store: st, logger: l}
}

func (s *service) CreateShift(ctx context.Context, req CreateWorkShiftRequest) (WorkShiftResponse, error) {
	if err := apperror.Validate(req); err != nil {
		return WorkShiftResponse{}, err
	}
	if req.StartTime >= req.EndTime {
		return WorkShiftResponse{}, timekeepingerrors.ErrInvalidTimeRange
	}

	var created domain.WorkShift
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		created = domain.WorkShift{
			ID:        tx.NextID(domain.ColWorkShifts),
			Name:      req.Name,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		}
		tx.Snap.WorkShifts = append(tx.Snap.WorkShifts, created)
		return nil
	})
	if err != nil {
		return WorkShiftResponse{}, err
	}

	s.logger.Info("create work shift success", zap.String("work_shift_id", created.ID))
	return mapShiftToResponse(created), nil
}

func (s *service) GetAllShifts(_ context.Context) ([]WorkShiftResponse, error) {
	snap := s.store.State()
	res := make([]WorkShiftResponse, len(snap.WorkShifts))
	for i, ws := range snap.WorkShifts {
		res[i] = mapShiftToResponse(ws)
	}
	return res, nil
}

// DeleteShift refuses while any time entry references the shift.
func (s *service) DeleteShift(ctx context.Context, id string) error {
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.WorkShiftByID(id); !ok {
			return timekeepingerrors.ErrWorkShiftNotFound
		}
		for _, te := range tx.Snap.TimeEntries {
			if te.WorkShiftID == id {
				return timekeepingerrors.ErrWorkShiftInUse
			}
		}

		kept := tx.Snap.WorkShifts[:0:0]
		for _, ws := range tx.Snap.WorkShifts {
			if ws.ID != id {
				kept = append(kept, ws)
			}
		}
		tx.Snap.WorkShifts = kept
		return nil
	})
	if err != nil {
		s.logger.Warn("delete work shift refused", zap.String("work_shift_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete work shift success", zap.String("work_shift_id", id))
	return nil
}

func (s *service) CreateEntry(ctx context.Context, req CreateTimeEntryRequest) (TimeEntryResponse, error) {
	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("create time entry validation failed", zap.Error(err))
		return TimeEntryResponse{}, err
	}
	workDate, err := parseDate(req.WorkDate)
	if err != nil {
		return TimeEntryResponse{}, err
	}

	var created domain.TimeEntry
	err = s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.EmployeeByID(req.EmployeeID); !ok {
			return timekeepingerrors.ErrEmployeeNotFound
		}
		if _, ok := tx.Snap.DepartmentByID(req.DepartmentID); !ok {
			return timekeepingerrors.ErrDepartmentNotFound
		}
		if _, ok := tx.Snap.WorkShiftByID(req.WorkShiftID); !ok {
			return timekeepingerrors.ErrWorkShiftNotFound
		}

		created = domain.TimeEntry{
			ID:           tx.NextID(domain.ColTimeEntries),
			EmployeeID:   req.EmployeeID,
			DepartmentID: req.DepartmentID,
			WorkShiftID:  req.WorkShiftID,
			WorkDate:     workDate,
			Status:       req.Status,
		}
		tx.Snap.TimeEntries = append(tx.Snap.TimeEntries, created)
		return nil
	})
	if err != nil {
		return TimeEntryResponse{}, err
	}

	s.logger.Info("create time entry success",
		zap.String("time_entry_id", created.ID),
		zap.String("employee_id", created.EmployeeID),
	)
	return mapEntryToResponse(created), nil
}

func (s *service) GetAllEntries(_ context.Context) ([]TimeEntryResponse, error) {
	snap := s.store.State()
	res := make([]TimeEntryResponse, len(snap.TimeEntries))
	for i, te := range snap.TimeEntries {
		res[i] = mapEntryToResponse(te)
	}
	return res, nil
}

func (s *service) UpdateEntry(ctx context.Context, id string, req UpdateTimeEntryRequest) (TimeEntryResponse, error) {
	if err := apperror.Validate(req); err != nil {
		return TimeEntryResponse{}, err
	}

	var updated domain.TimeEntry
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		te, ok := tx.Snap.TimeEntryByID(id)
		if !ok {
			return timekeepingerrors.ErrTimeEntryNotFound
		}

		if req.WorkShiftID != nil {
			if _, ok := tx.Snap.WorkShiftByID(*req.WorkShiftID); !ok {
				return timekeepingerrors.ErrWorkShiftNotFound
			}
			te.WorkShiftID = *req.WorkShiftID
		}
		if req.WorkDate != nil {
			t, err := parseDate(*req.WorkDate)
			if err != nil {
				return err
			}
			te.WorkDate = t
		}
		if req.Status != nil {
			te.Status = *req.Status
		}

		updated = *te
		return nil
	})
	if err != nil {
		return TimeEntryResponse{}, err
	}

	s.logger.Info("update time entry success", zap.String("time_entry_id", id))
	return mapEntryToResponse(updated), nil
}

func (s *service) DeleteEntry(ctx context.Context, id string) error {
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.TimeEntryByID(id); !ok {
			return timekeepingerrors.ErrTimeEntryNotFound
		}
		kept := tx.Snap.TimeEntries[:0:0]
		for _, te := range tx.Snap.TimeEntries {
			if te.ID != id {
				kept = append(kept, te)
			}
		}
		tx.Snap.TimeEntries = kept
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("delete time entry success", zap.String("time_entry_id", id))
	return nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, timekeepingerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapShiftToResponse(ws domain.WorkShift) WorkShiftResponse {
	return WorkShiftResponse{
		ID:        ws.ID,
		Name:      ws.Name,
		StartTime: ws.StartTime,
		EndTime:   ws.EndTime,
	}
}

func mapEntryToResponse(te domain.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:           te.ID,
		EmployeeID:   te.EmployeeID,
		DepartmentID: te.DepartmentID,
		WorkShiftID:  te.WorkShiftID,
		WorkDate:     te.WorkDate.Format("2006-01-02"),
		Status:       te.Status,
	}
}
