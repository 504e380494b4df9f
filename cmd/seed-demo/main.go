package main

import (
	"context"
	"fmt"

	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/database"
	"github.com/smartedurural/smartedu-backend/internal/logger"
	"github.com/smartedurural/smartedu-backend/internal/model"
	"github.com/smartedurural/smartedu-backend/internal/repository"
)

// Restores the demo snapshot, wiping every published test and submission.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	snapshotRepo := repository.NewSnapshotRepository(repository.NewRedisKV(rdb))

	snap := model.DefaultSnapshot()
	if err := snapshotRepo.Save(ctx, snap); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed snapshot")
	}

	fmt.Printf("Seeded demo snapshot: %d tests, %d completed rows, %d submissions\n",
		len(snap.AvailableTests), len(snap.CompletedTests), len(snap.Submissions))
}
