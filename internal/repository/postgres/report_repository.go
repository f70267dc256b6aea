package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/domain/repository"
)

type reportRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

// NewReportRepository создает хранилище отчётов пакетных запусков
func NewReportRepository(db *DB) repository.ReportRepository {
	return &reportRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// EnsureSchema создает таблицу отчётов, если её нет. Конвейер - единст-
// венный писатель, поэтому миграции сведены к одному идемпотентному DDL.
func (r *reportRepository) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS aggregation_runs (
			id              UUID PRIMARY KEY,
			started_at      TIMESTAMPTZ NOT NULL,
			duration_ms     BIGINT NOT NULL,
			address_points  INTEGER NOT NULL,
			codes_total     INTEGER NOT NULL,
			codes_written   INTEGER NOT NULL,
			prefixes_total  INTEGER NOT NULL,
			unknown_codes   TEXT[] NOT NULL DEFAULT '{}',
			failed          JSONB NOT NULL DEFAULT '[]'
		)
	`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure aggregation_runs schema: %w", err)
	}
	return nil
}

func (r *reportRepository) SaveRunReport(ctx context.Context, report *domain.RunReport) error {
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}

	failed, err := json.Marshal(report.Failed)
	if err != nil {
		return fmt.Errorf("marshal failed codes: %w", err)
	}

	const query = `
		INSERT INTO aggregation_runs
			(id, started_at, duration_ms, address_points, codes_total,
			 codes_written, prefixes_total, unknown_codes, failed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err = r.db.ExecContext(ctx, query,
		report.ID,
		report.StartedAt,
		report.Duration.Milliseconds(),
		report.AddressPoints,
		report.CodesTotal,
		report.CodesWritten,
		report.PrefixesTotal,
		pq.Array(report.UnknownCodes),
		failed,
	)
	if err != nil {
		r.logger.Error("Failed to save run report",
			zap.String("run_id", report.ID), zap.Error(err))
		return fmt.Errorf("save run report: %w", err)
	}

	r.logger.Info("Run report saved", zap.String("run_id", report.ID))
	return nil
}

func (r *reportRepository) LastRunReports(ctx context.Context, limit int) ([]*domain.RunReport, error) {
	const query = `
		SELECT id, started_at, duration_ms, address_points, codes_total,
		       codes_written, prefixes_total, unknown_codes, failed
		FROM aggregation_runs
		ORDER BY started_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query run reports: %w", err)
	}
	defer rows.Close()

	var reports []*domain.RunReport
	for rows.Next() {
		var (
			report     domain.RunReport
			durationMS int64
			unknown    pq.StringArray
			failed     []byte
		)
		if err := rows.Scan(
			&report.ID, &report.StartedAt, &durationMS,
			&report.AddressPoints, &report.CodesTotal, &report.CodesWritten,
			&report.PrefixesTotal, &unknown, &failed,
		); err != nil {
			return nil, fmt.Errorf("scan run report: %w", err)
		}
		report.Duration = time.Duration(durationMS) * time.Millisecond
		report.UnknownCodes = unknown
		if err := json.Unmarshal(failed, &report.Failed); err != nil {
			return nil, fmt.Errorf("decode failed codes: %w", err)
		}
		reports = append(reports, &report)
	}
	return reports, rows.Err()
}
