package persistence_test

import (
	"context"
	"encoding/json"
	"testing"

	"go-hrm/internal/domain"
	"go-hrm/internal/persistence"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupPostgresSink(t *testing.T) (*persistence.PostgresSink, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	assert.NoError(t, err)

	return persistence.NewPostgresSink(gdb, "default"), mock
}

func TestPostgresSink(t *testing.T) {
	ctx := context.Background()

	t.Run("empty slot loads as empty", func(t *testing.T) {
		sink, mock := setupPostgresSink(t)

		mock.ExpectQuery(`SELECT payload FROM hr_snapshots`).
			WithArgs("default").
			WillReturnRows(sqlmock.NewRows([]string{"payload"}))

		snap, err := sink.Load(ctx)
		assert.NoError(t, err)
		assert.Nil(t, snap)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("load decodes the stored row", func(t *testing.T) {
		sink, mock := setupPostgresSink(t)

		saved := &domain.Snapshot{
			Positions: []domain.Position{{ID: "1", Name: "Engineer"}},
		}
		payload, _ := json.Marshal(saved)
		mock.ExpectQuery(`SELECT payload FROM hr_snapshots`).
			WithArgs("default").
			WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(payload))

		loaded, err := sink.Load(ctx)
		assert.NoError(t, err)
		assert.Equal(t, saved.Positions, loaded.Positions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("save upserts the slot row", func(t *testing.T) {
		sink, mock := setupPostgresSink(t)

		mock.ExpectExec(`INSERT INTO hr_snapshots`).
			WithArgs("default", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := sink.Save(ctx, &domain.Snapshot{})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("migrate creates the table", func(t *testing.T) {
		sink, mock := setupPostgresSink(t)

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS hr_snapshots`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, sink.Migrate(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
