package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joseph-ayodele/orderflow/constants"
	"github.com/joseph-ayodele/orderflow/internal/common"
	"github.com/joseph-ayodele/orderflow/internal/deadletter"
	"github.com/joseph-ayodele/orderflow/internal/events"
	"github.com/joseph-ayodele/orderflow/internal/export"
	"github.com/joseph-ayodele/orderflow/internal/gateway"
	"github.com/joseph-ayodele/orderflow/internal/health"
	"github.com/joseph-ayodele/orderflow/internal/ingest"
	"github.com/joseph-ayodele/orderflow/internal/orchestrator"
	"github.com/joseph-ayodele/orderflow/internal/queue"
	repo "github.com/joseph-ayodele/orderflow/internal/repository"
	svc "github.com/joseph-ayodele/orderflow/internal/server"
	"github.com/joseph-ayodele/orderflow/internal/stages"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	// queue backend: Redis when configured, in-process otherwise
	var backend queue.Backend
	if cfg.Redis.Addr != "" {
		rb, err := queue.NewRedisBackend(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Error("failed to connect to redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		backend = rb
	} else {
		logger.Warn("REDIS_ADDR not set, using in-process queue backend")
		backend = queue.NewMemoryBackend()
	}
	defer backend.Close()

	workflowsRepo := repo.NewWorkflowRepository(entc, logger)
	deadLettersRepo := repo.NewDeadLetterRepository(entc, logger)
	merchantsRepo := repo.NewMerchantRepository(entc, logger)
	documentsRepo := repo.NewDocumentRepository(entc, logger)
	ordersRepo := repo.NewPurchaseOrderRepository(entc, logger)

	publisher := events.NewPublisher(backend, logger)

	priorities := queue.PriorityPolicy{
		LargePayloadBytes: cfg.Pipeline.LargePayloadBytes,
		LowDelay:          cfg.Pipeline.LowPriorityDelay,
		BatchDelay:        cfg.Pipeline.BatchDelay,
	}
	policy := orchestrator.ConfidencePolicy{Thresholds: cfg.Pipeline.ReviewThresholds}

	// the registry's sink is the orchestrator; bind after both exist
	sink := &queue.LateSink{}
	registry := queue.NewRegistry(backend, sink, logger)
	orch := orchestrator.New(workflowsRepo, deadLettersRepo, registry, backend, publisher, policy, priorities, logger)
	sink.Bind(orch)

	extractor := stages.NewRemoteExtractor(cfg.Collaborators.ExtractorURL, cfg.Collaborators.CallTimeout, logger)
	persister := stages.NewOrderPersister(ordersRepo, logger)
	syncer := stages.NewRecordingSyncer(
		stages.NewRemoteSyncer(cfg.Collaborators.SyncURL, cfg.Collaborators.CallTimeout, logger),
		ordersRepo, logger,
	)
	broadcaster := stages.NewChannelBroadcaster(publisher)

	register := func(name string, handler queue.Handler) {
		if err := registry.Register(name, cfg.Pipeline.Stages[name], handler, stages.PayloadSchema(name)); err != nil {
			logger.Error("stage registration failed", "stage", name, "error", err)
			os.Exit(1)
		}
	}
	register(constants.StageExtract, stages.ExtractHandler(extractor))
	register(constants.StagePersist, stages.PersistHandler(persister))
	register(constants.StageSync, stages.SyncHandler(syncer))
	register(constants.StageBroadcast, stages.BroadcastHandler(broadcaster))
	if cfg.Collaborators.ImageURL != "" {
		imageProc := stages.NewRemoteImageProcessor(cfg.Collaborators.ImageURL, cfg.Collaborators.CallTimeout, logger)
		register(constants.StageImage, stages.ImageHandler(imageProc))
	}

	registry.StartAll(ctx)

	// repair anything a previous crash left behind
	if err := orch.RecoverStalled(ctx, 30*time.Second); err != nil {
		logger.Warn("startup recovery incomplete", "error", err)
	}

	monitor := health.NewMonitor(backend, registry, pool, cfg.Health, logger)
	go monitor.Run(ctx)

	// recovery sweep on a timer as well; cheap and idempotent
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := orch.RecoverStalled(ctx, time.Minute); err != nil {
					logger.Warn("recovery sweep failed", "error", err)
				}
			}
		}
	}()

	// optional drop-folder intake
	if cfg.Ingest.WatchDir != "" {
		merchant, err := merchantsRepo.Ensure(ctx, cfg.Ingest.ShopDomain)
		if err != nil {
			logger.Error("failed to resolve watch merchant", "shop_domain", cfg.Ingest.ShopDomain, "error", err)
			os.Exit(1)
		}
		ingestor := ingest.NewFSIngestor(documentsRepo, orch, constants.PriorityBatch, logger)
		watcher, err := ingest.NewWatcher(ingest.WatchConfig{
			Root:        cfg.Ingest.WatchDir,
			InitialScan: true,
			Debounce:    cfg.Ingest.Debounce,
		}, ingestor, logger)
		if err != nil {
			logger.Error("failed to start drop-folder watcher", "dir", cfg.Ingest.WatchDir, "error", err)
			os.Exit(1)
		}
		go func() {
			if err := watcher.Run(ctx, merchant.ID); err != nil && ctx.Err() == nil {
				logger.Error("drop-folder watcher stopped", "error", err)
			}
		}()
	}

	dlService := deadletter.NewService(deadLettersRepo, orch, logger)
	exporter := export.NewService(workflowsRepo, deadLettersRepo, logger)

	grpcSrv := svc.NewGRPCServer(cfg.Server.GRPCAddr,
		svc.NewWorkflowsServer(orch, workflowsRepo, merchantsRepo, logger),
		svc.NewDeadLettersServer(dlService, exporter, logger),
		svc.NewAdminServer(monitor, logger),
		logger,
	)
	go func() {
		if err := grpcSrv.Serve(); err != nil {
			logger.Error("grpc serve error", "error", err)
			stop()
		}
	}()

	gw := gateway.NewServer(cfg.Server.HTTPAddr, merchantsRepo, workflowsRepo, backend, monitor, cfg.Server.SSEHeartbeat, logger)
	go func() {
		if err := gw.ListenAndServe(); err != nil {
			logger.Error("gateway serve error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()
	if err := gw.Shutdown(shutdownCtx); err != nil {
		logger.Warn("gateway shutdown incomplete", "error", err)
	}
	registry.StopAll(shutdownCtx)
	grpcSrv.GracefulStop()
	logger.Info("shutdown complete")
}
