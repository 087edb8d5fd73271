package overtime

import (
	"context"
	"time"

	"go-hrm/internal/approval"
	"go-hrm/internal/domain"
	"go-hrm/internal/events"
	overtimeerrors "go-hrm/internal/overtime/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventPublisher interface {
	PublishApprovalDecided(ctx context.Context, event events.ApprovalDecidedEvent) error
}

type noopEventPublisher struct{}

func (noopEventPublisher) PublishApprovalDecided(context.Context, events.ApprovalDecidedEvent) error {
	return nil
}

type Service interface {
	CreateType(ctx context.Context, req CreateOvertimeTypeRequest) (OvertimeTypeResponse, error)
	GetAllTypes(ctx context.Context) ([]OvertimeTypeResponse, error)
	DeleteType(ctx context.Context, id string) error

	Create(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	GetAll(ctx context.Context) ([]OvertimeResponse, error)
	GetByID(ctx context.Context, id string) (OvertimeResponse, error)
	Update(ctx context.Context, id string, req UpdateOvertimeRequest) (OvertimeResponse, error)
	Delete(ctx context.Context, id string) error

	DepartmentApprove(ctx context.Context, id, approverID string) (OvertimeResponse, error)
	Approve(ctx context.Context, id, approverID string) (OvertimeResponse, error)
	Reject(ctx context.Context, id, rejectorID, reason string) (OvertimeResponse, error)
}

type service struct {
	store     *store.Store
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(st *store.Store, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("overtime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("overtime.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{store: st, publisher: publisher, logger: l, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) CreateType(ctx context.Context, req CreateOvertimeTypeRequest) (OvertimeTypeResponse, error) {
	if err := apperror.Validate(req); err != nil {
		return OvertimeTypeResponse{}, err
	}

	var created domain.OvertimeType
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		created = domain.OvertimeType{
			ID:   tx.NextID(domain.ColOvertimeTypes),
			Name: req.Name,
		}
		tx.Snap.OvertimeTypes = append(tx.Snap.OvertimeTypes, created)
		return nil
	})
	if err != nil {
		return OvertimeTypeResponse{}, err
	}

	s.logger.Info("create overtime type success", zap.String("overtime_type_id", created.ID))
	return OvertimeTypeResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *service) GetAllTypes(_ context.Context) ([]OvertimeTypeResponse, error) {
	snap := s.store.State()
	res := make([]OvertimeTypeResponse, len(snap.OvertimeTypes))
	for i, ot := range snap.OvertimeTypes {
		res[i] = OvertimeTypeResponse{ID: ot.ID, Name: ot.Name}
	}
	return res, nil
}

func (s *service) DeleteType(ctx context.Context, id string) error {
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.OvertimeTypeByID(id); !ok {
			return overtimeerrors.ErrOvertimeTypeNotFound
		}
		for _, o := range tx.Snap.Overtimes {
			if o.OvertimeTypeID == id {
				return overtimeerrors.ErrOvertimeTypeInUse
			}
		}

		kept := tx.Snap.OvertimeTypes[:0:0]
		for _, ot := range tx.Snap.OvertimeTypes {
			if ot.ID != id {
				kept = append(kept, ot)
			}
		}
		tx.Snap.OvertimeTypes = kept
		return nil
	})
	if err != nil {
		s.logger.Warn("delete overtime type refused", zap.String("overtime_type_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete overtime type success", zap.String("overtime_type_id", id))
	return nil
}

func (s *service) Create(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error) {
	s.logger.Debug("create overtime requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("overtime_date", req.OvertimeDate),
	)
	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("create overtime validation failed", zap.Error(err))
		return OvertimeResponse{}, err
	}
	overtimeDate, err := parseDate(req.OvertimeDate)
	if err != nil {
		return OvertimeResponse{}, err
	}
	hours, err := hoursBetween(req.StartTime, req.EndTime)
	if err != nil {
		return OvertimeResponse{}, err
	}

	var created domain.Overtime
	err = s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.EmployeeByID(req.EmployeeID); !ok {
			return overtimeerrors.ErrEmployeeNotFound
		}
		if _, ok := tx.Snap.DepartmentByID(req.DepartmentID); !ok {
			return overtimeerrors.ErrDepartmentNotFound
		}
		if !employeeInDepartment(tx.Snap, req.EmployeeID, req.DepartmentID) {
			return overtimeerrors.ErrEmployeeNotInDepartment
		}
		if _, ok := tx.Snap.OvertimeTypeByID(req.OvertimeTypeID); !ok {
			return overtimeerrors.ErrOvertimeTypeNotFound
		}

		created = domain.Overtime{
			ID:             tx.NextID(domain.ColOvertimes),
			EmployeeID:     req.EmployeeID,
			DepartmentID:   req.DepartmentID,
			OvertimeTypeID: req.OvertimeTypeID,
			OvertimeDate:   overtimeDate,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Hours:          hours,
			Reason:         req.Reason,
			Approval:       approval.NewState(),
		}
		tx.Snap.Overtimes = append(tx.Snap.Overtimes, created)
		return nil
	})
	if err != nil {
		return OvertimeResponse{}, err
	}

	s.logger.Info("create overtime success",
		zap.String("overtime_id", created.ID),
		zap.String("employee_id", created.EmployeeID),
		zap.Float64("hours", created.Hours),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(_ context.Context) ([]OvertimeResponse, error) {
	snap := s.store.State()
	res := make([]OvertimeResponse, len(snap.Overtimes))
	for i, o := range snap.Overtimes {
		res[i] = mapToResponse(o)
	}
	return res, nil
}

func (s *service) GetByID(_ context.Context, id string) (OvertimeResponse, error) {
	o, ok := s.store.State().OvertimeByID(id)
	if !ok {
		return OvertimeResponse{}, overtimeerrors.ErrOvertimeNotFound
	}
	return mapToResponse(*o), nil
}

// Update is legal only while the request has not reached a terminal state.
func (s *service) Update(ctx context.Context, id string, req UpdateOvertimeRequest) (OvertimeResponse, error) {
	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("update overtime validation failed", zap.Error(err))
		return OvertimeResponse{}, err
	}

	var updated domain.Overtime
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		o, ok := tx.Snap.OvertimeByID(id)
		if !ok {
			return overtimeerrors.ErrOvertimeNotFound
		}
		if !o.Approval.Mutable() {
			return approval.ErrImmutable
		}

		if req.OvertimeTypeID != nil {
			if _, ok := tx.Snap.OvertimeTypeByID(*req.OvertimeTypeID); !ok {
				return overtimeerrors.ErrOvertimeTypeNotFound
			}
			o.OvertimeTypeID = *req.OvertimeTypeID
		}
		if req.OvertimeDate != nil {
			t, err := parseDate(*req.OvertimeDate)
			if err != nil {
				return err
			}
			o.OvertimeDate = t
		}
		startTime, endTime := o.StartTime, o.EndTime
		if req.StartTime != nil {
			startTime = *req.StartTime
		}
		if req.EndTime != nil {
			endTime = *req.EndTime
		}
		hours, err := hoursBetween(startTime, endTime)
		if err != nil {
			return err
		}
		o.StartTime = startTime
		o.EndTime = endTime
		o.Hours = hours
		if req.Reason != nil {
			o.Reason = *req.Reason
		}

		updated = *o
		return nil
	})
	if err != nil {
		return OvertimeResponse{}, err
	}

	s.logger.Info("update overtime success", zap.String("overtime_id", id))
	return mapToResponse(updated), nil
}

// Delete is legal only while the request has not reached a terminal state;
// decided requests stay as audit history.
func (s *service) Delete(ctx context.Context, id string) error {
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		o, ok := tx.Snap.OvertimeByID(id)
		if !ok {
			return overtimeerrors.ErrOvertimeNotFound
		}
		if !o.Approval.Mutable() {
			return approval.ErrImmutable
		}

		kept := tx.Snap.Overtimes[:0:0]
		for _, cur := range tx.Snap.Overtimes {
			if cur.ID != id {
				kept = append(kept, cur)
			}
		}
		tx.Snap.Overtimes = kept
		return nil
	})
	if err != nil {
		s.logger.Warn("delete overtime refused", zap.String("overtime_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete overtime success", zap.String("overtime_id", id))
	return nil
}

func (s *service) DepartmentApprove(ctx context.Context, id, approverID string) (OvertimeResponse, error) {
	return s.transition(ctx, id, approverID, "overtime.department_approved", func(st *approval.State, now time.Time) error {
		return st.DepartmentApprove(approverID, now)
	})
}

func (s *service) Approve(ctx context.Context, id, approverID string) (OvertimeResponse, error) {
	return s.transition(ctx, id, approverID, "overtime.approved", func(st *approval.State, now time.Time) error {
		return st.Approve(approverID, now)
	})
}

func (s *service) Reject(ctx context.Context, id, rejectorID, reason string) (OvertimeResponse, error) {
	return s.transition(ctx, id, rejectorID, "overtime.rejected", func(st *approval.State, now time.Time) error {
		return st.Reject(rejectorID, reason, now)
	})
}

func (s *service) transition(
	ctx context.Context,
	id, actorID, eventType string,
	step func(st *approval.State, now time.Time) error,
) (OvertimeResponse, error) {
	now := s.now()

	var updated domain.Overtime
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		o, ok := tx.Snap.OvertimeByID(id)
		if !ok {
			return overtimeerrors.ErrOvertimeNotFound
		}
		if err := step(&o.Approval, now); err != nil {
			return err
		}
		updated = *o
		return nil
	})
	if err != nil {
		s.logger.Warn("overtime transition refused",
			zap.String("overtime_id", id),
			zap.String("actor_id", actorID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return OvertimeResponse{}, err
	}

	s.logger.Info("overtime transition success",
		zap.String("overtime_id", id),
		zap.String("status", string(updated.Approval.Status)),
	)

	event := events.ApprovalDecidedEvent{
		EventID:     uuid.NewString(),
		EventType:   eventType,
		RequestKind: "overtime",
		RequestID:   updated.ID,
		EmployeeID:  updated.EmployeeID,
		ActorID:     actorID,
		Status:      string(updated.Approval.Status),
		OccurredAt:  now,
	}
	if err := s.publisher.PublishApprovalDecided(ctx, event); err != nil {
		s.logger.Error("publish overtime decision failed",
			zap.String("overtime_id", updated.ID),
			zap.Error(err),
		)
	}

	return mapToResponse(updated), nil
}

func employeeInDepartment(snap *domain.Snapshot, employeeID, departmentID string) bool {
	for _, link := range snap.DepartmentEmployees {
		if link.EmployeeID == employeeID && link.DepartmentID == departmentID {
			return true
		}
	}
	return false
}

// hoursBetween derives the worked hours from an HH:MM window on one day.
func hoursBetween(start, end string) (float64, error) {
	startClock, err := parseClock(start)
	if err != nil {
		return 0, err
	}
	endClock, err := parseClock(end)
	if err != nil {
		return 0, err
	}
	if !startClock.Before(endClock) {
		return 0, overtimeerrors.ErrInvalidTimeRange
	}
	return endClock.Sub(startClock).Hours(), nil
}

func parseClock(v string) (time.Time, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return time.Time{}, overtimeerrors.ErrInvalidTimeFormat
	}
	return t, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, overtimeerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(o domain.Overtime) OvertimeResponse {
	resp := OvertimeResponse{
		ID:             o.ID,
		EmployeeID:     o.EmployeeID,
		DepartmentID:   o.DepartmentID,
		OvertimeTypeID: o.OvertimeTypeID,
		OvertimeDate:   o.OvertimeDate.Format("2006-01-02"),
		StartTime:      o.StartTime,
		EndTime:        o.EndTime,
		Hours:          o.Hours,
		Reason:         o.Reason,

		Status:                 string(o.Approval.Status),
		DepartmentApprovedByID: o.Approval.DepartmentApprovedByID,
		ApprovedByID:           o.Approval.ApprovedByID,
		RejectedByID:           o.Approval.RejectedByID,
		RejectionReason:        o.Approval.RejectionReason,
	}
	resp.DepartmentApprovedAt = formatTimestamp(o.Approval.DepartmentApprovedAt)
	resp.ApprovedAt = formatTimestamp(o.Approval.ApprovedAt)
	resp.RejectedAt = formatTimestamp(o.Approval.RejectedAt)
	return resp
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}
