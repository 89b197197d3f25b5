package usecase_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/domain/repository"
)

// MockPerumahanRepository is a mock of PerumahanRepository
type MockPerumahanRepository struct {
	mock.Mock
}

func (m *MockPerumahanRepository) GetBySlug(ctx context.Context, slug string) (*domain.Perumahan, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Perumahan), args.Error(1)
}

func (m *MockPerumahanRepository) List(ctx context.Context) ([]*domain.Perumahan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Perumahan), args.Error(1)
}

func (m *MockPerumahanRepository) GetByID(ctx context.Context, id int64) (*domain.Perumahan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Perumahan), args.Error(1)
}

func (m *MockPerumahanRepository) Search(ctx context.Context, filter repository.PerumahanFilter) ([]*domain.Perumahan, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Perumahan), args.Error(1)
}

func (m *MockPerumahanRepository) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	args := m.Called(ctx, slug, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPerumahanRepository) Create(ctx context.Context, p *domain.Perumahan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPerumahanRepository) Update(ctx context.Context, p *domain.Perumahan) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPerumahanRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPhotoStorage is a mock of PhotoStorage
type MockPhotoStorage struct {
	mock.Mock
}

func (m *MockPhotoStorage) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	args := m.Called(ctx, filename, r)
	return args.String(0), args.Error(1)
}

func (m *MockPhotoStorage) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *MockPhotoStorage) URL(path string) string {
	if path == "" {
		return ""
	}
	return "/media/" + path
}

// MockEventPublisher is a mock of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// staticResolver резолвит фото с фиксированным префиксом
type staticResolver string

func (r staticResolver) URL(path string) string {
	if path == "" {
		return ""
	}
	return string(r) + path
}
