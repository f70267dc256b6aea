package aggregator

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/pkg/errors"
)

const defaultWorkers = 8

// job - одна единица работы пула: полный код либо префикс CP4
type job struct {
	code     string
	points   []domain.AddressPoint
	suffixes []string // только для префиксов
	prefix   bool
}

// Run выполняет полный пакетный запуск: группировка, параллельная сборка
// и запись артефактов. Коды без записи в реестре пропускаются и попадают
// в отчёт; ошибки записи собираются по всем кодам и возвращаются одним
// отчётом в конце, а не прерывают запуск на первом коде.
func (a *Aggregator) Run(ctx context.Context, points []domain.AddressPoint) (*domain.RunReport, error) {
	report := &domain.RunReport{
		ID:            uuid.NewString(),
		StartedAt:     time.Now().UTC(),
		AddressPoints: len(points),
	}

	a.logger.Info("Aggregation run started",
		zap.String("run_id", report.ID),
		zap.Int("address_points", len(points)),
		zap.Int("workers", a.workers),
	)

	groups := a.GroupByCode(points)
	prefixGroups := a.GroupByPrefix(groups)
	report.CodesTotal = len(groups)
	report.PrefixesTotal = len(prefixGroups)

	suffixes := make(map[string][]string, len(prefixGroups))
	for code := range groups {
		cp4 := code[:4]
		suffixes[cp4] = append(suffixes[cp4], code[5:])
	}

	// Подача задач в отсортированном порядке делает повторные запуски
	// детерминированными.
	jobs := make([]job, 0, len(groups)+len(prefixGroups))
	for _, code := range sortedKeys(groups) {
		jobs = append(jobs, job{code: code, points: groups[code]})
	}
	for _, cp4 := range sortedKeys(prefixGroups) {
		jobs = append(jobs, job{code: cp4, points: prefixGroups[cp4], suffixes: suffixes[cp4], prefix: true})
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		written int
	)
	jobCh := make(chan job)

	for range a.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobCh {
				err := a.process(ctx, j)
				mu.Lock()
				switch e := err.(type) {
				case nil:
					written++
				case *errors.UnknownCodeError:
					report.UnknownCodes = append(report.UnknownCodes, e.Code)
					a.logger.Warn("Code missing from registry, artifact skipped",
						zap.String("code", e.Code))
				default:
					report.Failed = append(report.Failed, domain.CodeFailure{
						Code:   j.code,
						Reason: err.Error(),
					})
					a.logger.Error("Failed to assemble artifact",
						zap.String("code", j.code), zap.Error(err))
				}
				mu.Unlock()
			}
		}()
	}

	for _, j := range jobs {
		select {
		case jobCh <- j:
		case <-ctx.Done():
			close(jobCh)
			wg.Wait()
			return report, ctx.Err()
		}
	}
	close(jobCh)
	wg.Wait()

	report.CodesWritten = written
	report.Duration = time.Since(report.StartedAt)
	sort.Strings(report.UnknownCodes)
	sort.Slice(report.Failed, func(i, j int) bool {
		return report.Failed[i].Code < report.Failed[j].Code
	})

	a.logger.Info("Aggregation run finished",
		zap.String("run_id", report.ID),
		zap.Int("written", report.CodesWritten),
		zap.Int("unknown_codes", len(report.UnknownCodes)),
		zap.Int("failed", len(report.Failed)),
		zap.Duration("duration", report.Duration),
	)

	if !report.OK() {
		return report, fmt.Errorf("aggregation run %s: %d codes failed", report.ID, len(report.Failed))
	}
	return report, nil
}

func (a *Aggregator) process(ctx context.Context, j job) error {
	if j.prefix {
		record, err := a.AssemblePrefixRecord(j.code, j.points, j.suffixes)
		if err != nil {
			return err
		}
		return a.store.PutPrefixRecord(ctx, record)
	}

	record, err := a.AssembleRecord(j.code, j.points)
	if err != nil {
		return err
	}
	return a.store.PutRecord(ctx, record)
}

func sortedKeys(m map[string][]domain.AddressPoint) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
