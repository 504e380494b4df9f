package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/smartedurural/smartedu-backend/internal/config"
	"github.com/smartedurural/smartedu-backend/internal/model"
)

// ResourceCounterWorker consumes resource_access_queue and bumps the
// per-student resources-accessed counter.
type ResourceCounterWorker struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewResourceCounterWorker creates a new ResourceCounterWorker.
func NewResourceCounterWorker(rdb *redis.Client, log zerolog.Logger) *ResourceCounterWorker {
	return &ResourceCounterWorker{
		rdb: rdb,
		log: log.With().Str("component", "resource_counter_worker").Logger(),
	}
}

// Start begins the infinite worker loop. Call in a goroutine.
func (w *ResourceCounterWorker) Start(ctx context.Context) {
	w.log.Info().Msg("Worker started")

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopping...")
			// Drain remaining items before exit.
			w.drain(context.Background())
			w.log.Info().Msg("Worker stopped")
			return
		default:
			w.processNext(ctx)
		}
	}
}

func (w *ResourceCounterWorker) processNext(ctx context.Context) {
	// BLPop blocks until an item is available or timeout (1 second).
	result, err := w.rdb.BLPop(ctx, time.Second, config.WorkerKey.ResourceAccessQueue).Result()
	if err != nil {
		if err != redis.Nil && ctx.Err() == nil {
			w.log.Error().Err(err).Msg("BLPop error")
		}
		return
	}

	if len(result) < 2 {
		return
	}

	if err := w.applyEvent(ctx, []byte(result[1])); err != nil {
		w.log.Error().Err(err).Msg("Counter update error, retrying in 5s")
		// Push back to queue for retry.
		w.rdb.RPush(ctx, config.WorkerKey.ResourceAccessQueue, result[1])
		time.Sleep(5 * time.Second)
	}
}

func (w *ResourceCounterWorker) applyEvent(ctx context.Context, raw []byte) error {
	var event model.ResourceAccessEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		// A malformed item would loop forever if requeued; log and drop it.
		w.log.Error().Err(err).Msg("Unmarshal error, dropping item")
		return nil
	}
	if event.StudentID == "" {
		return nil
	}

	return w.rdb.Incr(ctx, config.CacheKey.ResourcesAccessedKey(event.StudentID)).Err()
}

// drain processes all remaining items in the queue before shutdown.
func (w *ResourceCounterWorker) drain(ctx context.Context) {
	drained := 0
	for {
		result, err := w.rdb.LPop(ctx, config.WorkerKey.ResourceAccessQueue).Result()
		if err != nil {
			break
		}

		if err := w.applyEvent(ctx, []byte(result)); err != nil {
			w.log.Error().Err(err).Msg("Drain counter update error")
			w.rdb.RPush(ctx, config.WorkerKey.ResourceAccessQueue, result)
			break
		}
		drained++
	}

	if drained > 0 {
		w.log.Info().Int("count", drained).Msg("Drained remaining items")
	}
}
