package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/model"
)

// SnapshotRepository persists the whole test catalog and submission
// ledger as a single JSON blob. Every mutation rewrites the blob;
// readers always see a complete, self-consistent state.
type SnapshotRepository struct {
	kv KV
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(kv KV) *SnapshotRepository {
	return &SnapshotRepository{kv: kv}
}

// Load reads the stored snapshot. An absent key means first boot and
// yields the seed catalog. A blob that fails to parse is discarded in
// favor of the seed rather than crashing the server; the broken value
// is overwritten on the next save.
func (r *SnapshotRepository) Load(ctx context.Context) (model.Snapshot, error) {
	raw, err := r.kv.Get(ctx, config.CacheKey.TestSnapshotKey())
	if errors.Is(err, ErrKeyNotFound) {
		return model.DefaultSnapshot(), nil
	}
	if err != nil {
		return model.Snapshot{}, err
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.Warn().Err(err).Msg("stored snapshot is corrupt, falling back to seed data")
		return model.DefaultSnapshot(), nil
	}
	return model.SnapshotFromAny(decoded), nil
}

// Save overwrites the stored snapshot.
func (r *SnapshotRepository) Save(ctx context.Context, snap model.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return r.kv.Set(ctx, config.CacheKey.TestSnapshotKey(), string(raw))
}

// Reset drops the stored snapshot so the next load yields seed data.
func (r *SnapshotRepository) Reset(ctx context.Context) error {
	return r.kv.Del(ctx, config.CacheKey.TestSnapshotKey())
}
