package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/geoapi-pt/internal/domain"
	"github.com/geoapi-pt/internal/domain/repository"
	"github.com/geoapi-pt/internal/pkg/errors"
	"github.com/geoapi-pt/internal/usecase/dto"
)

// PostalUseCase - use case для /cp: нормализация кода и чтение артефакта
// из хранилища с кешированием.
type PostalUseCase struct {
	store     repository.ArtifactRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewPostalUseCase(
	store repository.ArtifactRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *PostalUseCase {
	return &PostalUseCase{
		store:     store,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// Lookup принимает код в форме "1950-449", "1950449" или "1950".
// Полный код возвращает артефакт CP4-CP3, префикс - сводный артефакт.
func (uc *PostalUseCase) Lookup(ctx context.Context, rawCode string) (*dto.PostalResponse, error) {
	cp4, cp3, ok := domain.ParsePostalCode(rawCode)
	if !ok {
		return nil, errors.ErrInvalidPostalCode
	}

	code := cp4
	if cp3 != "" {
		code = cp4 + "-" + cp3
	}

	cacheKey := "cp:" + code
	if uc.cacheRepo != nil {
		if data, err := uc.cacheRepo.Get(ctx, cacheKey); err == nil && data != nil {
			var cached dto.PostalResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	resp := &dto.PostalResponse{Code: code}
	if cp3 == "" {
		prefix, err := uc.store.GetPrefixRecord(ctx, cp4)
		if err != nil {
			return nil, err
		}
		resp.Prefix = prefix
	} else {
		record, err := uc.store.GetRecord(ctx, cp4, cp3)
		if err != nil {
			return nil, err
		}
		resp.Record = record
	}

	if uc.cacheRepo != nil {
		if data, err := json.Marshal(resp); err == nil {
			if err := uc.cacheRepo.Set(ctx, cacheKey, data, uc.cacheTTL); err != nil {
				uc.logger.Warn("Failed to cache postal response", zap.Error(err))
			}
		}
	}

	return resp, nil
}
