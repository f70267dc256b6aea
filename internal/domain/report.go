package domain

import "time"

// CodeFailure - одна проблема конкретного кода в пакетном запуске
type CodeFailure struct {
	Code   string `json:"code" db:"code"`
	Reason string `json:"reason" db:"reason"`
}

// RunReport - итог одного запуска сборочного конвейера. Коды без записи
// в реестре перечислены отдельно: они пропускаются штатно, а Failed
// означает ошибки записи артефактов.
type RunReport struct {
	ID            string        `json:"id" db:"id"`
	StartedAt     time.Time     `json:"started_at" db:"started_at"`
	Duration      time.Duration `json:"duration" db:"-"`
	AddressPoints int           `json:"address_points" db:"address_points"`
	CodesTotal    int           `json:"codes_total" db:"codes_total"`
	CodesWritten  int           `json:"codes_written" db:"codes_written"`
	PrefixesTotal int           `json:"prefixes_total" db:"prefixes_total"`
	UnknownCodes  []string      `json:"unknown_codes,omitempty" db:"-"`
	Failed        []CodeFailure `json:"failed,omitempty" db:"-"`
}

// OK сообщает, завершился ли запуск без ошибок записи
func (r *RunReport) OK() bool {
	return len(r.Failed) == 0
}
