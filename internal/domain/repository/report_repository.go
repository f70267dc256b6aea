package repository

import (
	"context"

	"github.com/geoapi-pt/internal/domain"
)

// ReportRepository сохраняет историю пакетных запусков конвейера для
// операторов. Необязательная зависимость: без настроенной БД конвейер
// печатает отчёт только в лог.
type ReportRepository interface {
	// SaveRunReport сохраняет итог одного запуска
	SaveRunReport(ctx context.Context, report *domain.RunReport) error

	// LastRunReports возвращает последние запуски, новые первыми
	LastRunReports(ctx context.Context, limit int) ([]*domain.RunReport, error)
}
