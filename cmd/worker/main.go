package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/aggregator"
	"github.com/geoapi-pt/internal/config"
	"github.com/geoapi-pt/internal/domain/repository"
	"github.com/geoapi-pt/internal/pkg/logger"
	"github.com/geoapi-pt/internal/repository/artifact"
	"github.com/geoapi-pt/internal/repository/geodata"
	"github.com/geoapi-pt/internal/repository/postgres"
)

// runHistoryLimit - сколько прошлых запусков печатать после сохранения отчёта
const runHistoryLimit = 5

func main() {
	// os.Exit пропускает defer, поэтому вся работа с отложенной очисткой
	// живёт в run, а код выхода выбирается здесь
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting postal artifact pipeline")
	log.Info("Configuration loaded",
		zap.String("address_feed", cfg.Data.AddressFeedPath),
		zap.String("artifacts_root", cfg.Artifacts.Root),
		zap.Int("workers", cfg.Pipeline.Workers),
	)

	// 3. Load the postal registry and the address feed
	registry, err := geodata.LoadRegistry(cfg.Data.RegistryPath, cfg.Data.RegistryCP4Path, log)
	if err != nil {
		log.Error("Failed to load postal registry", zap.Error(err))
		return err
	}
	log.Info("Postal registry loaded", zap.Int("entries", registry.Len()))

	points, err := geodata.LoadAddressPoints(cfg.Data.AddressFeedPath, log)
	if err != nil {
		log.Error("Failed to load address feed", zap.Error(err))
		return err
	}
	log.Info("Address feed loaded", zap.Int("points", len(points)))

	// 4. Artifact store
	store := artifact.NewStore(cfg.Artifacts.Root, log)

	// 5. Assemble artifacts; SIGINT/SIGTERM cancels the run
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	agg := aggregator.New(registry, store, log,
		aggregator.WithWorkers(cfg.Pipeline.Workers),
	)

	report, runErr := agg.Run(ctx, points)

	// 6. Persist the run report (optional)
	if report != nil && cfg.Database.Enabled {
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Error("Failed to connect to PostgreSQL, run report not saved", zap.Error(err))
		} else {
			defer func() {
				if err := db.Close(); err != nil {
					log.Error("Failed to close PostgreSQL connection", zap.Error(err))
				}
			}()
			// Отчёт сохраняем даже после отмены запуска сигналом
			saveCtx, saveCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer saveCancel()

			reportRepo := postgres.NewReportRepository(db)
			if err := reportRepo.SaveRunReport(saveCtx, report); err != nil {
				log.Error("Failed to save run report", zap.Error(err))
			} else {
				log.Info("Run report saved", zap.String("run_id", report.ID))
				logRunHistory(saveCtx, reportRepo, log)
			}
		}
	}

	if report != nil {
		log.Info("Pipeline finished",
			zap.String("run_id", report.ID),
			zap.Duration("duration", report.Duration),
			zap.Int("codes_written", report.CodesWritten),
			zap.Int("prefixes", report.PrefixesTotal),
			zap.Int("unknown_codes", len(report.UnknownCodes)),
			zap.Int("failed", len(report.Failed)),
		)
	}

	if runErr != nil {
		log.Error("Pipeline completed with errors", zap.Error(runErr))
		return runErr
	}
	return nil
}

// logRunHistory печатает хвост истории запусков, новые первыми
func logRunHistory(ctx context.Context, repo repository.ReportRepository, log *zap.Logger) {
	reports, err := repo.LastRunReports(ctx, runHistoryLimit)
	if err != nil {
		log.Warn("Failed to load run history", zap.Error(err))
		return
	}
	for _, r := range reports {
		log.Info("Previous run",
			zap.String("run_id", r.ID),
			zap.Time("started_at", r.StartedAt),
			zap.Int("codes_written", r.CodesWritten),
			zap.Int("unknown_codes", len(r.UnknownCodes)),
			zap.Int("failed", len(r.Failed)),
		)
	}
}
