// Command queuestat prints a point-in-time census of every stage queue.
// It connects to the same Redis the daemon uses; without REDIS_ADDR there
// is nothing to inspect (the in-process backend lives inside the daemon).
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/queue"
)

func main() {
	cfg := common.LoadConfig()
	if cfg.Redis.Addr == "" {
		log.Println("ERROR: REDIS_ADDR env var is required")
		log.Println("  export REDIS_ADDR=localhost:6379")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	backend, err := queue.NewRedisBackend(ctx, cfg.Redis, logger)
	if err != nil {
		log.Fatalf("connecting to redis: %v", err)
	}
	defer backend.Close()

	fmt.Printf("%-12s %8s %8s %8s %10s %8s  %s\n",
		"STAGE", "WAITING", "DELAYED", "ACTIVE", "COMPLETED", "FAILED", "STATE")
	for _, stage := range constants.AllStages {
		counts, err := backend.Counts(ctx, stage)
		if err != nil {
			log.Fatalf("reading %s counts: %v", stage, err)
		}
		state := "running"
		if paused, err := backend.Paused(ctx, stage); err == nil && paused {
			state = "paused"
		}
		fmt.Printf("%-12s %8d %8d %8d %10d %8d  %s\n",
			stage, counts.Waiting, counts.Delayed, counts.Active,
			counts.Completed, counts.Failed, state)
	}
}
