package department

import (
	"context"
	"time"

	departmenterrors "go-hrm/internal/department/errors"
	"go-hrm/internal/domain"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/store"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id string) (DepartmentResponse, error)
	Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{store: st, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("create department validation failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	foundingDate, err := parseDate(req.FoundingDate)
	if err != nil {
		return DepartmentResponse{}, err
	}

	var created domain.Department
	err = s.store.Apply(ctx, func(tx *store.Tx) error {
		created = domain.Department{
			ID:           tx.NextID(domain.ColDepartments),
			Code:         req.Code,
			Name:         req.Name,
			FoundingDate: foundingDate,
		}
		tx.Snap.Departments = append(tx.Snap.Departments, created)
		return nil
	})
	if err != nil {
		return DepartmentResponse{}, err
	}

	s.logger.Info("create department success",
		zap.String("department_id", created.ID),
		zap.String("code", created.Code),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(_ context.Context) ([]DepartmentResponse, error) {
	snap := s.store.State()
	return mapToListResponse(snap.Departments), nil
}

func (s *service) GetByID(_ context.Context, id string) (DepartmentResponse, error) {
	dept, ok := s.store.State().DepartmentByID(id)
	if !ok {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentNotFound
	}
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("update department validation failed", zap.Error(err))
		return DepartmentResponse{}, err
	}
	var foundingDate time.Time
	if req.FoundingDate != nil {
		var err error
		foundingDate, err = parseDate(*req.FoundingDate)
		if err != nil {
			return DepartmentResponse{}, err
		}
	}

	var updated domain.Department
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		dept, ok := tx.Snap.DepartmentByID(id)
		if !ok {
			return departmenterrors.ErrDepartmentNotFound
		}
		if req.Code != nil {
			dept.Code = *req.Code
		}
		if req.Name != nil {
			dept.Name = *req.Name
		}
		if req.FoundingDate != nil {
			dept.FoundingDate = foundingDate
		}
		if req.HeadID != nil {
			// The head must currently be linked to this department;
			// an empty value clears the reference.
			if *req.HeadID != "" && !isMember(tx.Snap, id, *req.HeadID) {
				return departmenterrors.ErrHeadNotMember
			}
			dept.HeadID = *req.HeadID
		}
		updated = *dept
		return nil
	})
	if err != nil {
		return DepartmentResponse{}, err
	}

	s.logger.Info("update department success", zap.String("department_id", id))
	return mapToResponse(updated), nil
}

// Delete refuses while any employee link references the department. This is
// the documented policy for departments; contrast with positions, whose
// links cascade.
func (s *service) Delete(ctx context.Context, id string) error {
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.DepartmentByID(id); !ok {
			return departmenterrors.ErrDepartmentNotFound
		}
		for _, link := range tx.Snap.DepartmentEmployees {
			if link.DepartmentID == id {
				return departmenterrors.ErrDepartmentInUse
			}
		}

		kept := tx.Snap.Departments[:0:0]
		for _, d := range tx.Snap.Departments {
			if d.ID != id {
				kept = append(kept, d)
			}
		}
		tx.Snap.Departments = kept
		return nil
	})
	if err != nil {
		s.logger.Warn("delete department refused",
			zap.String("department_id", id),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("delete department success", zap.String("department_id", id))
	return nil
}

func isMember(snap *domain.Snapshot, departmentID, employeeID string) bool {
	for _, link := range snap.DepartmentEmployees {
		if link.DepartmentID == departmentID && link.EmployeeID == employeeID {
			return true
		}
	}
	return false
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, departmenterrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(dept domain.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:           dept.ID,
		Code:         dept.Code,
		Name:         dept.Name,
		FoundingDate: dept.FoundingDate.Format("2006-01-02"),
		HeadID:       dept.HeadID,
	}
}

func mapToListResponse(depts []domain.Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
