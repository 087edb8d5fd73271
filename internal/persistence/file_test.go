package persistence_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"go-hrm/internal/domain"
	"go-hrm/internal/persistence"

	"github.com/stretchr/testify/assert"
)

func TestFileSink(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file loads as empty", func(t *testing.T) {
		sink := persistence.NewFileSink(filepath.Join(t.TempDir(), "snapshot.json"))

		snap, err := sink.Load(ctx)
		assert.NoError(t, err)
		assert.Nil(t, snap)
	})

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data", "snapshot.json")
		sink := persistence.NewFileSink(path)

		saved := &domain.Snapshot{
			Employees: []domain.Employee{{
				ID:           "1",
				Code:         "EMP001",
				Name:         "Nguyen Van A",
				IdentityCard: "012345678901",
				ContractDate: time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC),
			}},
			Departments: []domain.Department{{ID: "1", Code: "D001", Name: "Engineering"}},
		}
		assert.NoError(t, sink.Save(ctx, saved))

		loaded, err := sink.Load(ctx)
		assert.NoError(t, err)
		assert.Equal(t, saved, loaded)
	})

	t.Run("save overwrites the previous snapshot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "snapshot.json")
		sink := persistence.NewFileSink(path)

		assert.NoError(t, sink.Save(ctx, &domain.Snapshot{
			Positions: []domain.Position{{ID: "1", Name: "Engineer"}},
		}))
		assert.NoError(t, sink.Save(ctx, &domain.Snapshot{
			Positions: []domain.Position{{ID: "1", Name: "Engineer"}, {ID: "2", Name: "Manager"}},
		}))

		loaded, err := sink.Load(ctx)
		assert.NoError(t, err)
		assert.Len(t, loaded.Positions, 2)
	})
}
