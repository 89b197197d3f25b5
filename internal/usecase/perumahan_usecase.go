package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/domain/repository"
	"github.com/perumahan-service/internal/usecase/dto"
)

// PerumahanUseCase - чтение объявлений для публичных страниц и карты
type PerumahanUseCase struct {
	repo   repository.PerumahanRepository
	photos repository.PhotoURLResolver
	logger *zap.Logger
}

// NewPerumahanUseCase - создание нового PerumahanUseCase
func NewPerumahanUseCase(
	repo repository.PerumahanRepository,
	photos repository.PhotoURLResolver,
	logger *zap.Logger,
) *PerumahanUseCase {
	return &PerumahanUseCase{
		repo:   repo,
		photos: photos,
		logger: logger,
	}
}

// GetBySlug - объявление по slug, ErrPerumahanNotFound если такого нет
func (uc *PerumahanUseCase) GetBySlug(ctx context.Context, slug string) (*domain.Perumahan, error) {
	p, err := uc.repo.GetBySlug(ctx, slug)
	if err != nil {
		uc.logger.Debug("Perumahan lookup failed", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// ListAll - все объявления без пагинации и фильтров
func (uc *PerumahanUseCase) ListAll(ctx context.Context) ([]*domain.Perumahan, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list perumahan", zap.Error(err))
		return nil, err
	}
	return items, nil
}

// GeoJSON - FeatureCollection по текущему состоянию хранилища
func (uc *PerumahanUseCase) GeoJSON(ctx context.Context) (*dto.FeatureCollection, error) {
	items, err := uc.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	fc := BuildFeatureCollection(items, uc.photos)
	return &fc, nil
}

// PhotoURL - публичный адрес фотографии объявления
func (uc *PerumahanUseCase) PhotoURL(p *domain.Perumahan) string {
	if uc.photos == nil {
		return ""
	}
	return uc.photos.URL(p.PhotoPath)
}
