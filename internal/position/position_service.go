package position

import (
	"context"

	"go-hrm/internal/domain"
	positionerrors "go-hrm/internal/position/errors"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/store"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	GetAll(ctx context.Context) ([]PositionResponse, error)
	GetByID(ctx context.Context, id string) (PositionResponse, error)
	Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	store  *store.Store
	logger *zap.Logger
}

func NewService(st *store.Store, logger ...*zap.Logger) Service {
	l := zap.L().Named("position.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("position.service")
	}
	return &service{store: st, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePositionRequest) (PositionResponse, error) {
	if err := apperror.Validate(req); err != nil {
		return PositionResponse{}, err
	}

	var created domain.Position
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		created = domain.Position{
			ID:   tx.NextID(domain.ColPositions),
			Name: req.Name,
		}
		tx.Snap.Positions = append(tx.Snap.Positions, created)
		return nil
	})
	if err != nil {
		return PositionResponse{}, err
	}

	s.logger.Info("create position success", zap.String("position_id", created.ID))
	return mapToResponse(created), nil
}

func (s *service) GetAll(_ context.Context) ([]PositionResponse, error) {
	return mapToListResponse(s.store.State().Positions), nil
}

func (s *service) GetByID(_ context.Context, id string) (PositionResponse, error) {
	post, ok := s.store.State().PositionByID(id)
	if !ok {
		return PositionResponse{}, positionerrors.ErrPositionNotFound
	}
	return mapToResponse(*post), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePositionRequest) (PositionResponse, error) {
	if err := apperror.Validate(req); err != nil {
		return PositionResponse{}, err
	}

	var updated domain.Position
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		post, ok := tx.Snap.PositionByID(id)
		if !ok {
			return positionerrors.ErrPositionNotFound
		}
		if req.Name != nil {
			post.Name = *req.Name
		}
		updated = *post
		return nil
	})
	if err != nil {
		return PositionResponse{}, err
	}

	s.logger.Info("update position success", zap.String("position_id", id))
	return mapToResponse(updated), nil
}

// Delete always succeeds for an existing position: a position is a label,
// so its employee links cascade instead of blocking the way department
// links do.
func (s *service) Delete(ctx context.Context, id string) error {
	var removedLinks int
	err := s.store.Apply(ctx, func(tx *store.Tx) error {
		if _, ok := tx.Snap.PositionByID(id); !ok {
			return positionerrors.ErrPositionNotFound
		}

		kept := tx.Snap.Positions[:0:0]
		for _, p := range tx.Snap.Positions {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		tx.Snap.Positions = kept

		links := tx.Snap.PositionEmployees[:0:0]
		for _, link := range tx.Snap.PositionEmployees {
			if link.PositionID != id {
				links = append(links, link)
			} else {
				removedLinks++
			}
		}
		tx.Snap.PositionEmployees = links
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("delete position success",
		zap.String("position_id", id),
		zap.Int("removed_links", removedLinks),
	)
	return nil
}

func mapToResponse(p domain.Position) PositionResponse {
	return PositionResponse{ID: p.ID, Name: p.Name}
}

func mapToListResponse(positions []domain.Position) []PositionResponse {
	res := make([]PositionResponse, len(positions))
	for i, p := range positions {
		res[i] = mapToResponse(p)
	}
	return res
}
