package employee

import (
	"context"
	"time"

	"go-hrm/internal/domain"
	employeeerrors "go-hrm/internal/employee/errors"
	"go-hrm/internal/events"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store     *store.Store
	publisher EventPublisher
	logger    *zap.Logger
}

func NewService(st *store.Store, publisher EventPublisher, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if publisher == nil {
		publisher = noopEventPublisher{}
	}
	return &service{store: st, publisher: publisher, logger: l}
}

// Create inserts the employee together with its department and position
// links as one commit: either the whole batch lands or none of it does.
func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("create employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	contractDate, err := parseDate(req.ContractDate)
	if err != nil {
		return EmployeeResponse{}, err
	}
	departmentIDs := dedupe(req.DepartmentIDs)
	positionIDs := dedupe(req.PositionIDs)

	var created domain.Employee
	err = s.store.Apply(ctx, func(tx *store.Tx) error {
		for _, id := range departmentIDs {
			if _, ok := tx.Snap.DepartmentByID(id); !ok {
				return employeeerrors.ErrDepartmentNotFound
			}
		}
		for _, id := range positionIDs {
			if _, ok := tx.Snap.PositionByID(id); !ok {
				return employeeerrors.ErrPositionNotFound
			}
		}

		created = domain.Employee{
			ID:               tx.NextID(domain.ColEmployees),
			Code:             req.Code,
			Name:             req.Name,
			Address:          req.Address,
			Phone:            req.Phone,
			IdentityCard:     req.IdentityCard,
			ContractDate:     contractDate,
			AcademicDegreeID: req.AcademicDegreeID,
			AcademicTitleID:  req.AcademicTitleID,
		}
		tx.Snap.Employees = append(tx.Snap.Employees, created)

		// Join-row ids come from the same monotonic counter, one call per
		// row, so a batch can never hand out colliding ids.
		for _, depID := range departmentIDs {
			tx.Snap.DepartmentEmployees = append(tx.Snap.DepartmentEmployees, domain.DepartmentEmployee{
				ID:           tx.NextID(domain.ColDepartmentEmployees),
				EmployeeID:   created.ID,
				DepartmentID: depID,
			})
		}
		for _, posID := range positionIDs {
			tx.Snap.PositionEmployees = append(tx.Snap.PositionEmployees, domain.PositionEmployee{
				ID:         tx.NextID(domain.ColPositionEmployees),
				EmployeeID: created.ID,
				PositionID: posID,
			})
		}
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("employee_id", created.ID),
		zap.String("code", created.Code),
		zap.Int("departments", len(departmentIDs)),
		zap.Int("positions", len(positionIDs)),
	)

	event := events.EmployeeCreatedEvent{
		EventID:    uuid.NewString(),
		EventType:  "employee.created",
		EmployeeID: created.ID,
		Code:       created.Code,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishEmployeeCreated(ctx, event); err != nil {
		s.logger.Error("publish employee created failed",
			zap.String("employee_id", created.ID),
			zap.Error(err),
		)
	}

	return s.mapToResponse(created), nil
}

func (s *service) GetAll(_ context.Context) ([]EmployeeResponse, error) {
	snap := s.store.State()
	res := make([]EmployeeResponse, len(snap.Employees))
	for i, e := range snap.Employees {
		res[i] = mapToResponse(e, snap)
	}
	return res, nil
}

func (s *service) GetByID(_ context.Context, id string) (EmployeeResponse, error) {
	snap := s.store.State()
	emp, ok := snap.EmployeeByID(id)
	if !ok {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	return mapToResponse(*emp, snap), nil
}

// Update merges scalar fields. A supplied link slice replaces the whole
// link set for that relation (replace-all); a nil slice leaves it alone.
func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("update employee validation failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	var contractDate time.Time
	if req.ContractDate != nil {
		var err error
		contractDate, err = parseDate(*req.ContractDate)
		if err != nil {
			return EmployeeResponse{}, err
		}
	}

	var updated domain.Employee
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		emp, ok := tx.Snap.EmployeeByID(id)
		if !ok {
			return employeeerrors.ErrEmployeeNotFound
		}

		if req.Code != nil {
			emp.Code = *req.Code
		}
		if req.Name != nil {
			emp.Name = *req.Name
		}
		if req.Address != nil {
			emp.Address = *req.Address
		}
		if req.Phone != nil {
			emp.Phone = *req.Phone
		}
		if req.IdentityCard != nil {
			emp.IdentityCard = *req.IdentityCard
		}
		if req.ContractDate != nil {
			emp.ContractDate = contractDate
		}
		if req.AcademicDegreeID != nil {
			emp.AcademicDegreeID = *req.AcademicDegreeID
		}
		if req.AcademicTitleID != nil {
			emp.AcademicTitleID = *req.AcademicTitleID
		}

		if req.DepartmentIDs != nil {
			departmentIDs := dedupe(*req.DepartmentIDs)
			for _, depID := range departmentIDs {
				if _, ok := tx.Snap.DepartmentByID(depID); !ok {
					return employeeerrors.ErrDepartmentNotFound
				}
			}
			links := tx.Snap.DepartmentEmployees[:0:0]
			for _, link := range tx.Snap.DepartmentEmployees {
				if link.EmployeeID != id {
					links = append(links, link)
				}
			}
			for _, depID := range departmentIDs {
				links = append(links, domain.DepartmentEmployee{
					ID:           tx.NextID(domain.ColDepartmentEmployees),
					EmployeeID:   id,
					DepartmentID: depID,
				})
			}
			tx.Snap.DepartmentEmployees = links
		}

		if req.PositionIDs != nil {
			positionIDs := dedupe(*req.PositionIDs)
			for _, posID := range positionIDs {
				if _, ok := tx.Snap.PositionByID(posID); !ok {
					return employeeerrors.ErrPositionNotFound
				}
			}
			links := tx.Snap.PositionEmployees[:0:0]
			for _, link := range tx.Snap.PositionEmployees {
				if link.EmployeeID != id {
					links = append(links, link)
				}
			}
			for _, posID := range positionIDs {
				links = append(links, domain.PositionEmployee{
					ID:         tx.NextID(domain.ColPositionEmployees),
					EmployeeID: id,
					PositionID: posID,
				})
			}
			tx.Snap.PositionEmployees = links
		}

		updated = *emp
		return nil
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return s.mapToResponse(updated), nil
}

// Delete cascades the employee's join rows, leaves, overtimes and time
// entries. A live contract blocks deletion instead.
func (s *service) Delete(ctx context.Context, id string) error {
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.EmployeeByID(id); !ok {
			return employeeerrors.ErrEmployeeNotFound
		}
		for _, c := range tx.Snap.Contracts {
			if c.EmployeeID == id {
				return employeeerrors.ErrEmployeeHasContracts
			}
		}

		employees := tx.Snap.Employees[:0:0]
		for _, e := range tx.Snap.Employees {
			if e.ID != id {
				employees = append(employees, e)
			}
		}
		tx.Snap.Employees = employees

		depLinks := tx.Snap.DepartmentEmployees[:0:0]
		for _, link := range tx.Snap.DepartmentEmployees {
			if link.EmployeeID != id {
				depLinks = append(depLinks, link)
			}
		}
		tx.Snap.DepartmentEmployees = depLinks

		posLinks := tx.Snap.PositionEmployees[:0:0]
		for _, link := range tx.Snap.PositionEmployees {
			if link.EmployeeID != id {
				posLinks = append(posLinks, link)
			}
		}
		tx.Snap.PositionEmployees = posLinks

		leaves := tx.Snap.Leaves[:0:0]
		for _, l := range tx.Snap.Leaves {
			if l.EmployeeID != id {
				leaves = append(leaves, l)
			}
		}
		tx.Snap.Leaves = leaves

		overtimes := tx.Snap.Overtimes[:0:0]
		for _, o := range tx.Snap.Overtimes {
			if o.EmployeeID != id {
				overtimes = append(overtimes, o)
			}
		}
		tx.Snap.Overtimes = overtimes

		entries := tx.Snap.TimeEntries[:0:0]
		for _, te := range tx.Snap.TimeEntries {
			if te.EmployeeID != id {
				entries = append(entries, te)
			}
		}
		tx.Snap.TimeEntries = entries

		// Departments that pointed at this employee as head lose the
		// reference rather than dangling.
		for i := range tx.Snap.Departments {
			if tx.Snap.Departments[i].HeadID == id {
				tx.Snap.Departments[i].HeadID = ""
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("delete employee refused",
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	var out []string
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, employeeerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func (s *service) mapToResponse(e domain.Employee) EmployeeResponse {
	return mapToResponse(e, s.store.State())
}

func mapToResponse(e domain.Employee, snap *domain.Snapshot) EmployeeResponse {
	resp := EmployeeResponse{
		ID:               e.ID,
		Code:             e.Code,
		Name:             e.Name,
		Address:          e.Address,
		Phone:            e.Phone,
		IdentityCard:     e.IdentityCard,
		ContractDate:     e.ContractDate.Format("2006-01-02"),
		AcademicDegreeID: e.AcademicDegreeID,
		AcademicTitleID:  e.AcademicTitleID,
		DepartmentIDs:    []string{},
		PositionIDs:      []string{},
	}
	for _, link := range snap.DepartmentEmployees {
		if link.EmployeeID == e.ID {
			resp.DepartmentIDs = append(resp.DepartmentIDs, link.DepartmentID)
		}
	}
	for _, link := range snap.PositionEmployees {
		if link.EmployeeID == e.ID {
			resp.PositionIDs = append(resp.PositionIDs, link.PositionID)
		}
	}
	return resp
}
