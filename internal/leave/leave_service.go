package leave

import (
	"context"
	"time"

	"go-hrm/internal/approval"
	"go-hrm/internal/domain"
	"go-hrm/internal/events"
	leaveerrors "go-hrm/internal/leave/errors"
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
	CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	GetAllTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	DeleteType(ctx context.Context, id string) error

	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error

	DepartmentApprove(ctx context.Context, id, approverID string) (LeaveResponse, error)
	Approve(ctx context.Context, id, approverID string) (LeaveResponse, error)
	Reject(ctx context.Context, id, rejectorID, reason string) (LeaveResponse, error)
}

type service struct {
	store     *store.Store
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(st *store.Store, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{store: st, publisher: publisher, logger: l, now: func() time.Time { return time.Now().UTC() }}
}

func (s *service) CreateType(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	if err := apperror.Validate(req); err != nil {
		return LeaveTypeResponse{}, err
	}

	var created domain.LeaveType
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		created = domain.LeaveType{
			ID:   tx.NextID(domain.ColLeaveTypes),
			Name: req.Name,
		}
		tx.Snap.LeaveTypes = append(tx.Snap.LeaveTypes, created)
		return nil
	})
	if err != nil {
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("create leave type success", zap.String("leave_type_id", created.ID))
	return LeaveTypeResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *service) GetAllTypes(_ context.Context) ([]LeaveTypeResponse, error) {
	snap := s.store.State()
	res := make([]LeaveTypeResponse, len(snap.LeaveTypes))
	for i, lt := range snap.LeaveTypes {
		res[i] = LeaveTypeResponse{ID: lt.ID, Name: lt.Name}
	}
	return res, nil
}

func (s *service) DeleteType(ctx context.Context, id string) error {
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.LeaveTypeByID(id); !ok {
			return leaveerrors.ErrLeaveTypeNotFound
		}
		for _, l := range tx.Snap.Leaves {
			if l.LeaveTypeID == id {
				return leaveerrors.ErrLeaveTypeInUse
			}
		}

		kept := tx.Snap.LeaveTypes[:0:0]
		for _, lt := range tx.Snap.LeaveTypes {
			if lt.ID != id {
				kept = append(kept, lt)
			}
		}
		tx.Snap.LeaveTypes = kept
		return nil
	})
	if err != nil {
		s.logger.Warn("delete leave type refused", zap.String("leave_type_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete leave type success", zap.String("leave_type_id", id))
	return nil
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)
	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("create leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	var created domain.Leave
	err = s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.EmployeeByID(req.EmployeeID); !ok {
			return leaveerrors.ErrEmployeeNotFound
		}
		if _, ok := tx.Snap.DepartmentByID(req.DepartmentID); !ok {
			return leaveerrors.ErrDepartmentNotFound
		}
		if !employeeInDepartment(tx.Snap, req.EmployeeID, req.DepartmentID) {
			return leaveerrors.ErrEmployeeNotInDepartment
		}
		if _, ok := tx.Snap.LeaveTypeByID(req.LeaveTypeID); !ok {
			return leaveerrors.ErrLeaveTypeNotFound
		}

		created = domain.Leave{
			ID:           tx.NextID(domain.ColLeaves),
			EmployeeID:   req.EmployeeID,
			DepartmentID: req.DepartmentID,
			LeaveTypeID:  req.LeaveTypeID,
			StartDate:    startDate,
			EndDate:      endDate,
			NumberOfDays: daysInclusive(startDate, endDate),
			Reason:       req.Reason,
			Approval:     approval.NewState(),
		}
		tx.Snap.Leaves = append(tx.Snap.Leaves, created)
		return nil
	})
	if err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("create leave success",
		zap.String("leave_id", created.ID),
		zap.String("employee_id", created.EmployeeID),
		zap.Int("number_of_days", created.NumberOfDays),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(_ context.Context) ([]LeaveResponse, error) {
	return mapToListResponse(s.store.State().Leaves), nil
}

func (s *service) GetByID(_ context.Context, id string) (LeaveResponse, error) {
	l, ok := s.store.State().LeaveByID(id)
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	return mapToResponse(*l), nil
}

// Update is legal only while the request has not reached a terminal state.
func (s *service) Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("update leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	var updated domain.Leave
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		l, ok := tx.Snap.LeaveByID(id)
		if !ok {
			return leaveerrors.ErrLeaveNotFound
		}
		if !l.Approval.Mutable() {
			return approval.ErrImmutable
		}

		if req.LeaveTypeID != nil {
			if _, ok := tx.Snap.LeaveTypeByID(*req.LeaveTypeID); !ok {
				return leaveerrors.ErrLeaveTypeNotFound
			}
			l.LeaveTypeID = *req.LeaveTypeID
		}
		startDate, endDate := l.StartDate, l.EndDate
		if req.StartDate != nil {
			t, err := parseDate(*req.StartDate)
			if err != nil {
				return err
			}
			startDate = t
		}
		if req.EndDate != nil {
			t, err := parseDate(*req.EndDate)
			if err != nil {
				return err
			}
			endDate = t
		}
		if startDate.After(endDate) {
			return leaveerrors.ErrInvalidDateRange
		}
		l.StartDate = startDate
		l.EndDate = endDate
		l.NumberOfDays = daysInclusive(startDate, endDate)
		if req.Reason != nil {
			l.Reason = *req.Reason
		}

		updated = *l
		return nil
	})
	if err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("update leave success", zap.String("leave_id", id))
	return mapToResponse(updated), nil
}

// Delete is legal only while the request has not reached a terminal state;
// decided requests stay as audit history.
func (s *service) Delete(ctx context.Context, id string) error {
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		l, ok := tx.Snap.LeaveByID(id)
		if !ok {
			return leaveerrors.ErrLeaveNotFound
		}
		if !l.Approval.Mutable() {
			return approval.ErrImmutable
		}

		kept := tx.Snap.Leaves[:0:0]
		for _, cur := range tx.Snap.Leaves {
			if cur.ID != id {
				kept = append(kept, cur)
			}
		}
		tx.Snap.Leaves = kept
		return nil
	})
	if err != nil {
		s.logger.Warn("delete leave refused", zap.String("leave_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete leave success", zap.String("leave_id", id))
	return nil
}

func (s *service) DepartmentApprove(ctx context.Context, id, approverID string) (LeaveResponse, error) {
	return s.transition(ctx, id, approverID, "leave.department_approved", func(st *approval.State, now time.Time) error {
		return st.DepartmentApprove(approverID, now)
	})
}

func (s *service) Approve(ctx context.Context, id, approverID string) (LeaveResponse, error) {
	return s.transition(ctx, id, approverID, "leave.approved", func(st *approval.State, now time.Time) error {
		return st.Approve(approverID, now)
	})
}

func (s *service) Reject(ctx context.Context, id, rejectorID, reason string) (LeaveResponse, error) {
	return s.transition(ctx, id, rejectorID, "leave.rejected", func(st *approval.State, now time.Time) error {
		return st.Reject(rejectorID, reason, now)
	})
}

func (s *service) transition(
	ctx context.Context,
	id, actorID, eventType string,
	step func(st *approval.State, now time.Time) error,
) (LeaveResponse, error) {
	now := s.now()

	var updated domain.Leave
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		l, ok := tx.Snap.LeaveByID(id)
		if !ok {
			return leaveerrors.ErrLeaveNotFound
		}
		if err := step(&l.Approval, now); err != nil {
			return err
		}
		updated = *l
		return nil
	})
	if err != nil {
		s.logger.Warn("leave transition refused",
			zap.String("leave_id", id),
			zap.String("actor_id", actorID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	s.logger.Info("leave transition success",
		zap.String("leave_id", id),
		zap.String("status", string(updated.Approval.Status)),
	)

	event := events.ApprovalDecidedEvent{
		EventID:     uuid.NewString(),
		EventType:   eventType,
		RequestKind: "leave",
		RequestID:   updated.ID,
		EmployeeID:  updated.EmployeeID,
		ActorID:     actorID,
		Status:      string(updated.Approval.Status),
		OccurredAt:  now,
	}
	if err := s.publisher.PublishApprovalDecided(ctx, event); err != nil {
		s.logger.Error("publish leave decision failed",
			zap.String("leave_id", updated.ID),
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

// daysInclusive counts both endpoints: 2024-03-01..2024-03-05 is 5 days.
func daysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if startDate.After(endDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l domain.Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		DepartmentID: l.DepartmentID,
		LeaveTypeID:  l.LeaveTypeID,
		StartDate:    l.StartDate.Format("2006-01-02"),
		EndDate:      l.EndDate.Format("2006-01-02"),
		NumberOfDays: l.NumberOfDays,
		Reason:       l.Reason,

		Status:                 string(l.Approval.Status),
		DepartmentApprovedByID: l.Approval.DepartmentApprovedByID,
		ApprovedByID:           l.Approval.ApprovedByID,
		RejectedByID:           l.Approval.RejectedByID,
		RejectionReason:        l.Approval.RejectionReason,
	}
	resp.DepartmentApprovedAt = formatTimestamp(l.Approval.DepartmentApprovedAt)
	resp.ApprovedAt = formatTimestamp(l.Approval.ApprovedAt)
	resp.RejectedAt = formatTimestamp(l.Approval.RejectedAt)
	return resp
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapToListResponse(leaves []domain.Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
