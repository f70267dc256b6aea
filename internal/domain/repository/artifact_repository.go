package repository

import (
	"context"

	"github.com/geoapi-pt/internal/domain"
)

// ArtifactRepository определяет доступ к артефактам почтовых кодов.
// Ключ шарда - всегда 4-значный префикс, чтобы все артефакты одного
// префикса лежали рядом.
type ArtifactRepository interface {
	// PutRecord атомарно сохраняет артефакт полного кода CP4-CP3
	PutRecord(ctx context.Context, record *domain.PostalCodeRecord) error

	// PutPrefixRecord атомарно сохраняет сводный артефакт префикса CP4
	PutPrefixRecord(ctx context.Context, record *domain.PostalCodePrefixRecord) error

	// GetRecord возвращает артефакт полного кода, ErrCodeNotFound при промахе
	GetRecord(ctx context.Context, cp4, cp3 string) (*domain.PostalCodeRecord, error)

	// GetPrefixRecord возвращает сводный артефакт префикса
	GetPrefixRecord(ctx context.Context, cp4 string) (*domain.PostalCodePrefixRecord, error)
}
