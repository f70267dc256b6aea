// Package artifact хранит артефакты почтовых кодов в шардированном
// JSON-дереве на диске: каталог на префикс CP4, файл на полный код
// плюс сводный файл префикса.
package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/domain/repository"
	"github.com/geoapi-pt/internal/pkg/errors"
)

type store struct {
	root   string
	logger *zap.Logger
}

// NewStore создает новый ArtifactRepository поверх каталога root
func NewStore(root string, logger *zap.Logger) repository.ArtifactRepository {
	return &store{
		root:   root,
		logger: logger,
	}
}

func (s *store) PutRecord(ctx context.Context, record *domain.PostalCodeRecord) error {
	cp4 := record.Code[:4]
	return s.write(cp4, record.Code+".json", record)
}

func (s *store) PutPrefixRecord(ctx context.Context, record *domain.PostalCodePrefixRecord) error {
	return s.write(record.CP4, record.CP4+".json", record)
}

func (s *store) GetRecord(ctx context.Context, cp4, cp3 string) (*domain.PostalCodeRecord, error) {
	var record domain.PostalCodeRecord
	if err := s.read(cp4, cp4+"-"+cp3+".json", &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *store) GetPrefixRecord(ctx context.Context, cp4 string) (*domain.PostalCodePrefixRecord, error) {
	var record domain.PostalCodePrefixRecord
	if err := s.read(cp4, cp4+".json", &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// write сохраняет артефакт атомарно: временный файл в том же каталоге
// плюс rename, чтобы читатель никогда не увидел частичный файл.
// Создание каталога префикса идемпотентно.
func (s *store) write(cp4, filename string, v interface{}) error {
	dir := filepath.Join(s.root, cp4)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create shard dir %s: %w", cp4, err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact %s: %w", filename, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, filename+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write artifact %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close artifact %s: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, filename)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("publish artifact %s: %w", filename, err)
	}

	s.logger.Debug("Artifact written", zap.String("file", filepath.Join(cp4, filename)))
	return nil
}

func (s *store) read(cp4, filename string, v interface{}) error {
	data, err := os.ReadFile(filepath.Join(s.root, cp4, filename))
	if os.IsNotExist(err) {
		return errors.ErrCodeNotFound
	}
	if err != nil {
		s.logger.Error("Failed to read artifact",
			zap.String("file", filepath.Join(cp4, filename)), zap.Error(err))
		return errors.ErrStoreError
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Error("Corrupt artifact",
			zap.String("file", filepath.Join(cp4, filename)), zap.Error(err))
		return errors.ErrStoreError
	}
	return nil
}
