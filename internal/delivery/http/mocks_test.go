package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/domain/repository"
)

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
	return m.Called(ctx, p).Error(0)
}

func (m *MockPerumahanRepository) Update(ctx context.Context, p *domain.Perumahan) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPerumahanRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	return m.Called(ctx, stream, data).Error(0)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Health(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockEventLogRepository struct {
	mock.Mock
}

func (m *MockEventLogRepository) Append(ctx context.Context, ev *domain.PerumahanEvent, streamID string) error {
	return m.Called(ctx, ev, streamID).Error(0)
}

func (m *MockEventLogRepository) ListByPerumahan(ctx context.Context, perumahanID int64, limit int) ([]*domain.EventRecord, error) {
	args := m.Called(ctx, perumahanID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.EventRecord), args.Error(1)
}
