package contract

import (
	"context"
	"time"

	contracterrors "go-hrm/internal/contract/errors"
	"go-hrm/internal/domain"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/store"

	"go.uber.org/zap"
)

type Service interface {
	CreateType(ctx context.Context, req CreateContractTypeRequest) (ContractTypeResponse, error)
	GetAllTypes(ctx context.Context) ([]ContractTypeResponse, error)
	DeleteType(ctx context.Context, id string) error

	Create(ctx context.Context, req CreateContractRequest) (ContractResponse, error)
	GetAll(ctx context.Context) ([]ContractResponse, error)
	GetByID(ctx context.Context, id string) (ContractResponse, error)
	Update(ctx context.Context, id string, req UpdateContractRequest) (ContractResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("contract.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("contract.service")
	}
	return &service{store: st, logger: l}
}

func (s *service) CreateType(ctx context.Context, req CreateContractTypeRequest) (ContractTypeResponse, error) {
	if err := apperror.Validate(req); err != nil {
		return ContractTypeResponse{}, err
	}

	var created domain.ContractType
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		created = domain.ContractType{
			ID:   tx.NextID(domain.ColContractTypes),
			Name: req.Name,
		}
		tx.Snap.ContractTypes = append(tx.Snap.ContractTypes, created)
		return nil
	})
	if err != nil {
		return ContractTypeResponse{}, err
	}

	s.logger.Info("create contract type success", zap.String("contract_type_id", created.ID))
	return ContractTypeResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *service) GetAllTypes(_ context.Context) ([]ContractTypeResponse, error) {
	snap := s.store.State()
	res := make([]ContractTypeResponse, len(snap.ContractTypes))
	for i, ct := range snap.ContractTypes {
		res[i] = ContractTypeResponse{ID: ct.ID, Name: ct.Name}
	}
	return res, nil
}

// DeleteType refuses while any contract still references the type.
func (s *service) DeleteType(ctx context.Context, id string) error {
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.ContractTypeByID(id); !ok {
			return contracterrors.ErrContractTypeNotFound
		}
		for _, c := range tx.Snap.Contracts {
			if c.ContractTypeID == id {
				return contracterrors.ErrContractTypeInUse
			}
		}

		kept := tx.Snap.ContractTypes[:0:0]
		for _, ct := range tx.Snap.ContractTypes {
			if ct.ID != id {
				kept = append(kept, ct)
			}
		}
		tx.Snap.ContractTypes = kept
		return nil
	})
	if err != nil {
		s.logger.Warn("delete contract type refused",
			zap.String("contract_type_id", id),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("delete contract type success", zap.String("contract_type_id", id))
	return nil
}

func (s *service) Create(ctx context.Context, req CreateContractRequest) (ContractResponse, error) {
	if err := apperror.Validate(req); err != nil {
		s.logger.Warn("create contract validation failed", zap.Error(err))
		return ContractResponse{}, err
	}
	startDate, endDate, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return ContractResponse{}, err
	}

	var created domain.Contract
	err = s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.EmployeeByID(req.EmployeeID); !ok {
			return contracterrors.ErrEmployeeNotFound
		}
		if _, ok := tx.Snap.ContractTypeByID(req.ContractTypeID); !ok {
			return contracterrors.ErrContractTypeNotFound
		}

		created = domain.Contract{
			ID:             tx.NextID(domain.ColContracts),
			EmployeeID:     req.EmployeeID,
			ContractTypeID: req.ContractTypeID,
			BaseSalary:     req.BaseSalary,
			Allowance:      req.Allowance,
			StartDate:      startDate,
			EndDate:        endDate,
		}
		tx.Snap.Contracts = append(tx.Snap.Contracts, created)
		return nil
	})
	if err != nil {
		return ContractResponse{}, err
	}

	s.logger.Info("create contract success",
		zap.String("contract_id", created.ID),
		zap.String("employee_id", created.EmployeeID),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(_ context.Context) ([]ContractResponse, error) {
	snap := s.store.State()
	res := make([]ContractResponse, len(snap.Contracts))
	for i, c := range snap.Contracts {
		res[i] = mapToResponse(c)
	}
	return res, nil
}

func (s *service) GetByID(_ context.Context, id string) (ContractResponse, error) {
	c, ok := s.store.State().ContractByID(id)
	if !ok {
		return ContractResponse{}, contracterrors.ErrContractNotFound
	}
	return mapToResponse(*c), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateContractRequest) (ContractResponse, error) {
	if err := apperror.Validate(req); err != nil {
		return ContractResponse{}, err
	}

	var updated domain.Contract
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		c, ok := tx.Snap.ContractByID(id)
		if !ok {
			return contracterrors.ErrContractNotFound
		}

		if req.ContractTypeID != nil {
			if _, ok := tx.Snap.ContractTypeByID(*req.ContractTypeID); !ok {
				return contracterrors.ErrContractTypeNotFound
			}
			c.ContractTypeID = *req.ContractTypeID
		}
		if req.BaseSalary != nil {
			c.BaseSalary = *req.BaseSalary
		}
		if req.Allowance != nil {
			c.Allowance = *req.Allowance
		}
		if req.StartDate != nil {
			t, err := parseDate(*req.StartDate)
			if err != nil {
				return err
			}
			c.StartDate = t
		}
		if req.EndDate != nil {
			if *req.EndDate == "" {
				c.EndDate = nil
			} else {
				t, err := parseDate(*req.EndDate)
				if err != nil {
					return err
				}
				c.EndDate = &t
			}
		}
		if c.EndDate != nil && c.EndDate.Before(c.StartDate) {
			return contracterrors.ErrInvalidDateRange
		}

		updated = *c
		return nil
	})
	if err != nil {
		return ContractResponse{}, err
	}

	s.logger.Info("update contract success", zap.String("contract_id", id))
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.ContractByID(id); !ok {
			return contracterrors.ErrContractNotFound
		}
		kept := tx.Snap.Contracts[:0:0]
		for _, c := range tx.Snap.Contracts {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		tx.Snap.Contracts = kept
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("delete contract success", zap.String("contract_id", id))
	return nil
}

func parseDates(start, end string) (time.Time, *time.Time, error) {
	startDate, err := parseDate(start)
	if err != nil {
		return time.Time{}, nil, err
	}
	if end == "" {
		return startDate, nil, nil
	}
	endDate, err := parseDate(end)
	if err != nil {
		return time.Time{}, nil, err
	}
	if endDate.Before(startDate) {
		return time.Time{}, nil, contracterrors.ErrInvalidDateRange
	}
	return startDate, &endDate, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, contracterrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(c domain.Contract) ContractResponse {
	resp := ContractResponse{
		ID:             c.ID,
		EmployeeID:     c.EmployeeID,
		ContractTypeID: c.ContractTypeID,
		BaseSalary:     c.BaseSalary,
		Allowance:      c.Allowance,
		StartDate:      c.StartDate.Format("2006-01-02"),
	}
	if c.EndDate != nil {
		resp.EndDate = c.EndDate.Format("2006-01-02")
	}
	return resp
}
