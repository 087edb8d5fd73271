package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	"go-hrm/internal/domain"

	"gorm.io/gorm"
)

const DefaultSnapshotSlot = "default"

// PostgresSink keeps the serialized snapshot in one keyed row of the
// hr_snapshots table, upserted on every save.
type PostgresSink struct {
	db   *gorm.DB
	slot string
}

func NewPostgresSink(db *gorm.DB, slot string) *PostgresSink {
	if slot == "" {
		slot = DefaultSnapshotSlot
	}
	return &PostgresSink{db: db, slot: slot}
}

// Migrate creates the snapshot table when it does not exist yet.
func (p *PostgresSink) Migrate(ctx context.Context) error {
	return p.db.WithContext(ctx).Exec(`
		CREATE TABLE IF NOT EXISTS hr_snapshots (
			slot varchar(64) PRIMARY KEY,
			payload jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`).Error
}

func (p *PostgresSink) Load(ctx context.Context) (*domain.Snapshot, error) {
	var row struct {
		Payload []byte
	}
	err := p.db.WithContext(ctx).
		Raw(`SELECT payload FROM hr_snapshots WHERE slot = ?`, p.slot).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("load snapshot from postgres: %w", err)
	}
	if len(row.Payload) == 0 {
		return nil, nil
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(row.Payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot from postgres: %w", err)
	}
	return &snap, nil
}

func (p *PostgresSink) Save(ctx context.Context, snap *domain.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	// Atomic UPSERT keyed by slot, same pattern as a counter row
	err = p.db.WithContext(ctx).Exec(`
		INSERT INTO hr_snapshots (slot, payload, updated_at)
		VALUES (?, ?, now())
		ON CONFLICT (slot) DO UPDATE
		SET payload = EXCLUDED.payload, updated_at = now()
	`, p.slot, payload).Error
	if err != nil {
		return fmt.Errorf("save snapshot to postgres: %w", err)
	}
	return nil
}
