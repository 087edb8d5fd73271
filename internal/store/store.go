// Package store is the single serialization point for every write. A
// mutation runs against a clone of the current snapshot and either commits
// as a whole-pointer swap or leaves the committed state untouched; readers
// always see a fully committed snapshot.
package store

import (
	"context"

	"sync"

	"go-hrm/internal/domain"
	"go-hrm/internal/shared/counter"

	"go.uber.org/zap"
)

//go:generate mockgen -source=store.go -destination=mock/sink_mock.go -package=mock
// Sink is the durable persistence boundary: an opaque whole-snapshot
// key-value slot. Load returns (nil, nil) when nothing was ever saved.
type Sink interface {
	Load(ctx context.Context) (*domain.Snapshot, error)
	Save(ctx context.Context, snap *domain.Snapshot) error
}

// Listener receives the newly committed snapshot, synchronously, once per
// committed mutation.
type Listener func(snap *domain.Snapshot)

type Store struct {
	writeMu sync.Mutex   // serializes Apply end to end
	mu      sync.RWMutex // guards snap and subs

	snap    *domain.Snapshot
	alloc   *counter.Allocator
	sink    Sink
	subs    map[int]Listener
	nextSub int
	logger  *zap.Logger
}

// New builds a store over an initial snapshot with no durable sink.
// Tests and callers that persist elsewhere use this directly.
func New(snap *domain.Snapshot, logger ...*zap.Logger) *Store {
	l := zap.L().Named("store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("store")
	}
	if snap == nil {
		snap = domain.NewSnapshot()
	}
	s := &Store{
		snap:   snap,
		alloc:  counter.NewAllocator(),
		subs:   make(map[int]Listener),
		logger: l,
	}
	for _, col := range domain.Collections() {
		s.alloc.Seed(col, snap.IDs(col))
	}
	return s
}

// Open loads the last saved snapshot from the sink (absent means empty) and
// keeps the sink attached for write-through saves after each commit.
func Open(ctx context.Context, sink Sink, logger ...*zap.Logger) (*Store, error) {
	snap, err := sink.Load(ctx)
	if err != nil {
		return nil, err
	}
	s := New(snap, logger...)
	s.sink = sink
	return s, nil
}

// State returns the current committed snapshot. Callers must treat it as
// read-only; it is shared with every other reader.
func (s *Store) State() *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Subscribe registers a listener and returns its unsubscribe function.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Flush saves the current committed snapshot to the sink. Used on shutdown
// to close the window a failed write-through may have left open. No-op
// without a sink.
func (s *Store) Flush(ctx context.Context) error {
	if s.sink == nil {
		return nil
	}
	return s.sink.Save(ctx, s.State())
}

// Tx is the mutable view handed to a mutation: a private clone of the
// snapshot plus id allocation. Nothing a mutation does is visible until
// Apply commits it.
type Tx struct {
	Snap  *domain.Snapshot
	alloc *counter.Allocator
}

// NextID allocates the next id for a collection. The counter advances even
// if the mutation later fails; ids are never reused.
func (tx *Tx) NextID(collection string) string {
	return tx.alloc.NextID(collection)
}

// Apply runs mutate against a clone of the current snapshot. A nil return
// commits the clone, notifies subscribers synchronously and write-through
// saves to the sink; any error discards the clone and leaves the committed
// snapshot untouched.
func (s *Store) Apply(ctx context.Context, mutate func(tx *Tx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	cur := s.snap
	s.mu.RUnlock()

	tx := &Tx{Snap: cur.Clone(), alloc: s.alloc}
	if err := mutate(tx); err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = tx.Snap
	listeners := make([]Listener, 0, len(s.subs))
	for _, l := range s.subs {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(tx.Snap)
	}

	// Best effort: a sink failure never un-commits the in-memory state.
	// A crash between commit and save loses the last write, nothing more.
	if s.sink != nil {
		if err := s.sink.Save(ctx, tx.Snap); err != nil {
			s.logger.Error("snapshot write-through failed", zap.Error(err))
		}
	}
	return nil
}
