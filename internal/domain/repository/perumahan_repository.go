package repository

import (
	"context"
	"time"

	"github.com/perumahan-service/internal/domain"
)

// PerumahanFilter - фильтр для списка в админке
type PerumahanFilter struct {
	Status domain.Status
	Query  string

	// created_at в [CreatedFrom, CreatedBefore); нулевое время - без границы
	CreatedFrom   time.Time
	CreatedBefore time.Time
}

// PerumahanRepository - хранилище объявлений (Listing Store)
type PerumahanRepository interface {
	// GetBySlug возвращает объявление по slug или ErrPerumahanNotFound
	GetBySlug(ctx context.Context, slug string) (*domain.Perumahan, error)

	// List возвращает все объявления в порядке хранения, без пагинации
	List(ctx context.Context) ([]*domain.Perumahan, error)

	// GetByID возвращает объявление по ID или ErrPerumahanNotFound
	GetByID(ctx context.Context, id int64) (*domain.Perumahan, error)

	// Search - список для админки: фильтр по статусу и поиск по названию/адресу
	Search(ctx context.Context, filter PerumahanFilter) ([]*domain.Perumahan, error)

	// SlugExists проверяет занятость slug; excludeID исключает само объявление
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)

	// Create сохраняет объявление и заполняет ID и CreatedAt
	Create(ctx context.Context, p *domain.Perumahan) error

	// Update обновляет объявление; slug и created_at не изменяются
	Update(ctx context.Context, p *domain.Perumahan) error

	// Delete удаляет объявление
	Delete(ctx context.Context, id int64) error
}
