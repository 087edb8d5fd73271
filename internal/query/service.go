package query

import (
	"go-hrm/internal/domain"
	"go-hrm/internal/store"
)

// Service binds the pure filter functions to a live store, so callers read
// the current snapshot without holding one themselves.
type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Leaves(f Filter) []domain.Leave {
	return Leaves(s.store.State(), f)
}

func (s *Service) Overtimes(f Filter) []domain.Overtime {
	return Overtimes(s.store.State(), f)
}

func (s *Service) TimeEntries(f Filter) []domain.TimeEntry {
	return TimeEntries(s.store.State(), f)
}

func (s *Service) LeavesPage(f Filter, page, size int) Page[domain.Leave] {
	return Paginate(s.Leaves(f), page, size)
}

func (s *Service) OvertimesPage(f Filter, page, size int) Page[domain.Overtime] {
	return Paginate(s.Overtimes(f), page, size)
}

func (s *Service) TimeEntriesPage(f Filter, page, size int) Page[domain.TimeEntry] {
	return Paginate(s.TimeEntries(f), page, size)
}
