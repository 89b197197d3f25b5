package usecase

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/domain/repository"
	"github.com/perumahan-service/internal/pkg/errors"
	"github.com/perumahan-service/internal/pkg/metrics"
	"github.com/perumahan-service/internal/usecase/dto"
)

// maxSlugSuffix - сколько суффиксов -2, -3, ... перебираем для авто-slug
const maxSlugSuffix = 100

// AdminUseCase - запись объявлений через админку
type AdminUseCase struct {
	repo      repository.PerumahanRepository
	photos    repository.PhotoStorage
	publisher repository.EventPublisher
	stream    string
	logger    *zap.Logger
}

// NewAdminUseCase - создание нового AdminUseCase
func NewAdminUseCase(
	repo repository.PerumahanRepository,
	photos repository.PhotoStorage,
	publisher repository.EventPublisher,
	stream string,
	logger *zap.Logger,
) *AdminUseCase {
	if stream == "" {
		stream = domain.StreamPerumahanEvents
	}
	return &AdminUseCase{
		repo:      repo,
		photos:    photos,
		publisher: publisher,
		stream:    stream,
		logger:    logger,
	}
}

// Get - объявление по ID
func (uc *AdminUseCase) Get(ctx context.Context, id int64) (*domain.Perumahan, error) {
	return uc.repo.GetByID(ctx, id)
}

// Search - список для админки с фильтром по статусу и текстовым поиском
func (uc *AdminUseCase) Search(ctx context.Context, req dto.PerumahanListRequest) ([]*domain.Perumahan, error) {
	filter := repository.PerumahanFilter{
		Status: domain.Status(req.Status),
		Query:  req.Query,
	}

	from, err := parseDay(req.CreatedFrom)
	if err != nil {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{"created_from": "datetime=" + dayLayout})
	}
	filter.CreatedFrom = from

	// created_to включает весь день
	to, err := parseDay(req.CreatedTo)
	if err != nil {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{"created_to": "datetime=" + dayLayout})
	}
	if !to.IsZero() {
		filter.CreatedBefore = to.AddDate(0, 0, 1)
	}

	items, err := uc.repo.Search(ctx, filter)
	if err != nil {
		uc.logger.Error("Failed to search perumahan", zap.Error(err))
		return nil, err
	}
	return items, nil
}

const dayLayout = "2006-01-02"

// parseDay - начало дня в UTC; пустая строка - нулевое время
func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(dayLayout, s, time.UTC)
}

// Create - создание объявления. Пустой slug выводится из названия,
// при коллизии добавляется суффикс -2, -3, ...; явно заданный занятый slug отклоняется.
func (uc *AdminUseCase) Create(ctx context.Context, in *dto.PerumahanInput) (*domain.Perumahan, error) {
	if in.Photo == nil {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{"photo": "required"})
	}

	slug, err := uc.resolveSlug(ctx, in)
	if err != nil {
		return nil, err
	}

	photoPath, err := uc.savePhoto(ctx, in.Photo)
	if err != nil {
		return nil, err
	}

	p := &domain.Perumahan{
		Name:        in.Name,
		Slug:        slug,
		PhotoPath:   photoPath,
		Description: in.Description,
		Price:       in.Price,
		Address:     in.Address,
		Location:    in.Location,
		Polygon:     in.Polygon,
		Facilities:  in.Facilities,
		Status:      in.Status,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		uc.removePhoto(ctx, photoPath)
		uc.logger.Warn("Failed to create perumahan", zap.String("slug", slug), zap.Error(err))
		return nil, err
	}

	metrics.ListingWrites.WithLabelValues("create").Inc()
	uc.logger.Info("Perumahan created", zap.Int64("id", p.ID), zap.String("slug", p.Slug))
	uc.publish(ctx, domain.EventCreated, p)

	return p, nil
}

// Update - изменение объявления. Slug и дата создания не меняются,
// фото заменяется только если загружено новое.
func (uc *AdminUseCase) Update(ctx context.Context, id int64, in *dto.PerumahanInput) (*domain.Perumahan, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldPhoto := p.PhotoPath
	if in.Photo != nil {
		if p.PhotoPath, err = uc.savePhoto(ctx, in.Photo); err != nil {
			return nil, err
		}
	}

	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Address = in.Address
	p.Location = in.Location
	p.Polygon = in.Polygon
	p.Facilities = in.Facilities
	p.Status = in.Status

	if err := uc.repo.Update(ctx, p); err != nil {
		if p.PhotoPath != oldPhoto {
			uc.removePhoto(ctx, p.PhotoPath)
		}
		return nil, err
	}

	if p.PhotoPath != oldPhoto {
		uc.removePhoto(ctx, oldPhoto)
	}

	metrics.ListingWrites.WithLabelValues("update").Inc()
	uc.logger.Info("Perumahan updated", zap.Int64("id", p.ID), zap.String("slug", p.Slug))
	uc.publish(ctx, domain.EventUpdated, p)

	return p, nil
}

// Delete - удаление объявления и его фотографии
func (uc *AdminUseCase) Delete(ctx context.Context, id int64) error {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	uc.removePhoto(ctx, p.PhotoPath)

	metrics.ListingWrites.WithLabelValues("delete").Inc()
	uc.logger.Info("Perumahan deleted", zap.Int64("id", p.ID), zap.String("slug", p.Slug))
	uc.publish(ctx, domain.EventDeleted, p)

	return nil
}

// PhotoURL - публичный адрес фотографии объявления
func (uc *AdminUseCase) PhotoURL(p *domain.Perumahan) string {
	return uc.photos.URL(p.PhotoPath)
}

func (uc *AdminUseCase) resolveSlug(ctx context.Context, in *dto.PerumahanInput) (string, error) {
	if in.Slug != "" {
		slug := domain.Slugify(in.Slug)
		if slug == "" {
			return "", errors.ErrValidation.WithDetails(map[string]interface{}{"slug": "slug"})
		}
		taken, err := uc.repo.SlugExists(ctx, slug, 0)
		if err != nil {
			return "", err
		}
		if taken {
			return "", errors.ErrSlugConflict.WithDetails(map[string]interface{}{"slug": slug})
		}
		return slug, nil
	}

	base := domain.Slugify(in.Name)
	if base == "" {
		return "", errors.ErrValidation.WithDetails(map[string]interface{}{"name": "cannot derive slug"})
	}

	candidate := base
	for n := 2; n <= maxSlugSuffix+1; n++ {
		taken, err := uc.repo.SlugExists(ctx, candidate, 0)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, n)
	}

	return "", errors.ErrSlugConflict.WithDetails(map[string]interface{}{"slug": base})
}

func (uc *AdminUseCase) savePhoto(ctx context.Context, photo *dto.PhotoUpload) (string, error) {
	path, err := uc.photos.Save(ctx, photo.Filename, photo.Content)
	if err != nil {
		uc.logger.Error("Failed to save photo", zap.String("filename", photo.Filename), zap.Error(err))
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) || stderrors.Is(err, context.Canceled) {
			return "", err
		}
		return "", errors.ErrStorageError
	}
	return path, nil
}

func (uc *AdminUseCase) removePhoto(ctx context.Context, path string) {
	if err := uc.photos.Delete(ctx, path); err != nil {
		uc.logger.Warn("Failed to remove photo", zap.String("path", path), zap.Error(err))
	}
}

// Ошибка публикации не откатывает запись
func (uc *AdminUseCase) publish(ctx context.Context, t domain.EventType, p *domain.Perumahan) {
	event := domain.NewPerumahanEvent(t, p)
	if err := uc.publisher.PublishToStream(ctx, uc.stream, event); err != nil {
		metrics.EventPublishErrors.Inc()
		uc.logger.Warn("Failed to publish perumahan event",
			zap.String("type", string(t)),
			zap.Int64("id", p.ID),
			zap.Error(err),
		)
	}
}
