package usecase_test

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/domain/repository"
	"github.com/perumahan-service/internal/pkg/errors"
	"github.com/perumahan-service/internal/usecase"
	"github.com/perumahan-service/internal/usecase/dto"
)

const testStream = "test:stream:perumahan"

type adminFixture struct {
	repo      *MockPerumahanRepository
	photos    *MockPhotoStorage
	publisher *MockEventPublisher
	uc        *usecase.AdminUseCase
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		repo:      &MockPerumahanRepository{},
		photos:    &MockPhotoStorage{},
		publisher: &MockEventPublisher{},
	}
	f.uc = usecase.NewAdminUseCase(f.repo, f.photos, f.publisher, testStream, zap.NewNop())
	return f
}

func (f *adminFixture) assertExpectations(t *testing.T) {
	f.repo.AssertExpectations(t)
	f.photos.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func sampleInput(name string) *dto.PerumahanInput {
	return &dto.PerumahanInput{
		Name:        name,
		Description: "Cluster dekat pusat kota",
		Price:       1500000,
		Address:     "Jl. Timor Raya, Kupang",
		Location:    domain.Location{Lat: -10.1772, Lng: 123.607},
		Facilities:  []string{"School"},
		Status:      domain.StatusAvailable,
		Photo:       &dto.PhotoUpload{Filename: "rumah.jpg", Content: strings.NewReader("jpeg")},
	}
}

func eventOf(t domain.EventType, slug string) interface{} {
	return mock.MatchedBy(func(ev domain.PerumahanEvent) bool {
		return ev.Type == t && ev.Slug == slug
	})
}

// createSucceeds настраивает сохранение фото и вставку с ID 10
func (f *adminFixture) createSucceeds(ctx context.Context) {
	f.photos.On("Save", ctx, "rumah.jpg", mock.Anything).Return("perumahan_photos/x.jpg", nil).Once()
	f.repo.On("Create", ctx, mock.AnythingOfType("*domain.Perumahan")).
		Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Perumahan)
			p.ID = 10
			p.CreatedAt = time.Now()
		}).
		Return(nil).Once()
}

func TestAdminUseCase_Create_DerivesSlugFromName(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	f.repo.On("SlugExists", ctx, "green-valley", int64(0)).Return(false, nil).Once()
	f.createSucceeds(ctx)
	f.publisher.On("PublishToStream", ctx, testStream, eventOf(domain.EventCreated, "green-valley")).Return(nil).Once()

	p, err := f.uc.Create(ctx, sampleInput("Green Valley"))

	require.NoError(t, err)
	assert.Equal(t, int64(10), p.ID)
	assert.Equal(t, "green-valley", p.Slug)
	assert.Equal(t, "perumahan_photos/x.jpg", p.PhotoPath)
	assert.Equal(t, domain.StatusAvailable, p.Status)
	f.assertExpectations(t)
}

func TestAdminUseCase_Create_DuplicateDerivedSlugGetsSuffix(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	f.repo.On("SlugExists", ctx, "green-valley", int64(0)).Return(true, nil).Once()
	f.repo.On("SlugExists", ctx, "green-valley-2", int64(0)).Return(true, nil).Once()
	f.repo.On("SlugExists", ctx, "green-valley-3", int64(0)).Return(false, nil).Once()
	f.createSucceeds(ctx)
	f.publisher.On("PublishToStream", ctx, testStream, eventOf(domain.EventCreated, "green-valley-3")).Return(nil).Once()

	p, err := f.uc.Create(ctx, sampleInput("Green Valley"))

	require.NoError(t, err)
	assert.Equal(t, "green-valley-3", p.Slug)
	f.assertExpectations(t)
}

func TestAdminUseCase_Create_ExplicitSlug(t *testing.T) {
	ctx := context.Background()

	t.Run("normalized and free", func(t *testing.T) {
		f := newAdminFixture()
		in := sampleInput("Green Valley")
		in.Slug = "GV Kupang"

		f.repo.On("SlugExists", ctx, "gv-kupang", int64(0)).Return(false, nil).Once()
		f.createSucceeds(ctx)
		f.publisher.On("PublishToStream", ctx, testStream, eventOf(domain.EventCreated, "gv-kupang")).Return(nil).Once()

		p, err := f.uc.Create(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, "gv-kupang", p.Slug)
		f.assertExpectations(t)
	})

	t.Run("taken is rejected", func(t *testing.T) {
		f := newAdminFixture()
		in := sampleInput("Green Valley")
		in.Slug = "green-valley"

		f.repo.On("SlugExists", ctx, "green-valley", int64(0)).Return(true, nil).Once()

		p, err := f.uc.Create(ctx, in)

		assert.Nil(t, p)
		assert.ErrorIs(t, err, errors.ErrSlugConflict)
		f.photos.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
		f.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAdminUseCase_Create_PhotoRequired(t *testing.T) {
	f := newAdminFixture()
	in := sampleInput("Green Valley")
	in.Photo = nil

	_, err := f.uc.Create(context.Background(), in)

	require.ErrorIs(t, err, errors.ErrValidation)
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "required", appErr.Details["photo"])
}

func TestAdminUseCase_Create_RemovesPhotoWhenInsertFails(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	f.repo.On("SlugExists", ctx, "green-valley", int64(0)).Return(false, nil).Once()
	f.photos.On("Save", ctx, "rumah.jpg", mock.Anything).Return("perumahan_photos/x.jpg", nil).Once()
	f.repo.On("Create", ctx, mock.Anything).Return(errors.ErrSlugConflict).Once()
	f.photos.On("Delete", ctx, "perumahan_photos/x.jpg").Return(nil).Once()

	_, err := f.uc.Create(ctx, sampleInput("Green Valley"))

	assert.ErrorIs(t, err, errors.ErrSlugConflict)
	f.assertExpectations(t)
}

func TestAdminUseCase_Create_PublishFailureDoesNotFailWrite(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	f.repo.On("SlugExists", ctx, "green-valley", int64(0)).Return(false, nil).Once()
	f.createSucceeds(ctx)
	f.publisher.On("PublishToStream", ctx, testStream, mock.Anything).Return(stderrors.New("redis down")).Once()

	p, err := f.uc.Create(ctx, sampleInput("Green Valley"))

	require.NoError(t, err)
	assert.Equal(t, int64(10), p.ID)
	f.assertExpectations(t)
}

func TestAdminUseCase_Update_KeepsSlug(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	stored := samplePerumahan(5, "green-valley")
	f.repo.On("GetByID", ctx, int64(5)).Return(stored, nil).Once()
	f.repo.On("Update", ctx, mock.AnythingOfType("*domain.Perumahan")).Return(nil).Once()
	f.publisher.On("PublishToStream", ctx, testStream, eventOf(domain.EventUpdated, "green-valley")).Return(nil).Once()

	in := sampleInput("Green Valley Renamed")
	in.Slug = "ignored-on-update"
	in.Photo = nil
	in.Status = domain.StatusSold

	p, err := f.uc.Update(ctx, 5, in)

	require.NoError(t, err)
	assert.Equal(t, "green-valley", p.Slug)
	assert.Equal(t, "Green Valley Renamed", p.Name)
	assert.Equal(t, domain.StatusSold, p.Status)
	assert.Equal(t, "perumahan_photos/green-valley.jpg", p.PhotoPath)
	f.repo.AssertNotCalled(t, "SlugExists", mock.Anything, mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestAdminUseCase_Update_ReplacesPhoto(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	f.repo.On("GetByID", ctx, int64(5)).Return(samplePerumahan(5, "green-valley"), nil).Once()
	f.photos.On("Save", ctx, "rumah.jpg", mock.Anything).Return("perumahan_photos/new.jpg", nil).Once()
	f.repo.On("Update", ctx, mock.Anything).Return(nil).Once()
	f.photos.On("Delete", ctx, "perumahan_photos/green-valley.jpg").Return(nil).Once()
	f.publisher.On("PublishToStream", ctx, testStream, mock.Anything).Return(nil).Once()

	p, err := f.uc.Update(ctx, 5, sampleInput("Green Valley"))

	require.NoError(t, err)
	assert.Equal(t, "perumahan_photos/new.jpg", p.PhotoPath)
	f.assertExpectations(t)
}

func TestAdminUseCase_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()
	f.repo.On("GetByID", ctx, int64(99)).Return(nil, errors.ErrPerumahanNotFound).Once()

	_, err := f.uc.Update(ctx, 99, sampleInput("Green Valley"))

	assert.ErrorIs(t, err, errors.ErrPerumahanNotFound)
	f.assertExpectations(t)
}

func TestAdminUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	f.repo.On("GetByID", ctx, int64(5)).Return(samplePerumahan(5, "green-valley"), nil).Once()
	f.repo.On("Delete", ctx, int64(5)).Return(nil).Once()
	f.photos.On("Delete", ctx, "perumahan_photos/green-valley.jpg").Return(nil).Once()
	f.publisher.On("PublishToStream", ctx, testStream, eventOf(domain.EventDeleted, "green-valley")).Return(nil).Once()

	require.NoError(t, f.uc.Delete(ctx, 5))
	f.assertExpectations(t)
}

func TestAdminUseCase_Search(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	items := []*domain.Perumahan{samplePerumahan(1, "green-valley")}
	f.repo.On("Search", ctx, repository.PerumahanFilter{Status: domain.StatusSold, Query: "kupang"}).
		Return(items, nil).Once()

	got, err := f.uc.Search(ctx, dto.PerumahanListRequest{Status: "sold", Query: "kupang"})

	require.NoError(t, err)
	assert.Equal(t, items, got)
	f.assertExpectations(t)
}

func TestAdminUseCase_SearchCreatedRange(t *testing.T) {
	ctx := context.Background()
	f := newAdminFixture()

	want := repository.PerumahanFilter{
		Status:        domain.StatusAvailable,
		CreatedFrom:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CreatedBefore: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	f.repo.On("Search", ctx, want).Return([]*domain.Perumahan{}, nil).Once()

	got, err := f.uc.Search(ctx, dto.PerumahanListRequest{
		Status:      "available",
		CreatedFrom: "2024-02-01",
		CreatedTo:   "2024-02-29",
	})

	require.NoError(t, err)
	assert.Empty(t, got)
	f.assertExpectations(t)
}

func TestAdminUseCase_SearchInvalidDate(t *testing.T) {
	f := newAdminFixture()

	_, err := f.uc.Search(context.Background(), dto.PerumahanListRequest{CreatedTo: "29-02-2024"})

	assert.ErrorIs(t, err, errors.ErrValidation)
	f.repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
}
