package audit_test

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/perumahan-service/internal/domain"
	"github.com/perumahan-service/internal/worker/audit"
)

const (
	testStream = "test:stream:perumahan:events"
	testGroup  = "test-audit"

	testMinIdle = 5 * time.Second
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) ClaimPending(ctx context.Context, stream, group, consumer string, minIdle time.Duration, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, minIdle, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	return m.Called(ctx, stream, group, messageIDs).Error(0)
}

// MockRecorder is a mock of EventRecorder
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(ctx context.Context, ev *domain.PerumahanEvent, streamID string) error {
	return m.Called(ctx, ev, streamID).Error(0)
}

func message(t *testing.T, id string, evType domain.EventType) domain.StreamMessage {
	t.Helper()
	ev := domain.PerumahanEvent{
		ID:          uuid.New(),
		Type:        evType,
		PerumahanID: 1,
		Slug:        "green-valley",
		Status:      domain.StatusAvailable,
		OccurredAt:  time.Now().UTC(),
	}
	data, err := json.Marshal(ev)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func newWorker(streamRepo *MockStreamRepository, recorder *MockRecorder) *audit.Worker {
	return audit.NewWorker(streamRepo, recorder, testStream, testGroup, 10, zap.NewNop()).
		WithPendingMinIdle(testMinIdle)
}

func expectNothingPending(ctx context.Context, streamRepo *MockStreamRepository, w *audit.Worker) {
	streamRepo.On("ClaimPending", ctx, testStream, testGroup, w.ConsumerName(), testMinIdle, 10).Return(nil, nil)
}

func TestWorker_Name(t *testing.T) {
	w := newWorker(&MockStreamRepository{}, &MockRecorder{})

	assert.Equal(t, "perumahan-audit", w.Name())
	assert.Equal(t, testStream, w.Stream())
	assert.NotEmpty(t, w.ConsumerName())
}

func TestWorker_DefaultStream(t *testing.T) {
	w := audit.NewWorker(&MockStreamRepository{}, &MockRecorder{}, "", testGroup, 0, zap.NewNop())

	assert.Equal(t, domain.StreamPerumahanEvents, w.Stream())
}

func TestWorker_StopIsIdempotent(t *testing.T) {
	w := newWorker(&MockStreamRepository{}, &MockRecorder{})

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWorker_ProcessBatch_RecordsAndAcks(t *testing.T) {
	ctx := context.Background()
	streamRepo := &MockStreamRepository{}
	recorder := &MockRecorder{}
	w := newWorker(streamRepo, recorder)

	messages := []domain.StreamMessage{
		message(t, "1-0", domain.EventCreated),
		message(t, "2-0", domain.EventUpdated),
	}
	expectNothingPending(ctx, streamRepo, w)
	streamRepo.On("ConsumeBatch", ctx, testStream, testGroup, w.ConsumerName(), 10).Return(messages, nil).Once()
	recorder.On("Record", ctx, mock.AnythingOfType("*domain.PerumahanEvent"), "1-0").Return(nil).Once()
	recorder.On("Record", ctx, mock.AnythingOfType("*domain.PerumahanEvent"), "2-0").Return(nil).Once()
	streamRepo.On("AckMessages", ctx, testStream, testGroup, []string{"1-0", "2-0"}).Return(nil).Once()

	n, err := w.ProcessBatch(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	streamRepo.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestWorker_ProcessBatch_SkipsMalformed(t *testing.T) {
	ctx := context.Background()
	streamRepo := &MockStreamRepository{}
	recorder := &MockRecorder{}
	w := newWorker(streamRepo, recorder)

	messages := []domain.StreamMessage{
		{ID: "1-0", Data: "not json"},
		{ID: "2-0", Data: `{"slug":"no-id"}`},
	}
	expectNothingPending(ctx, streamRepo, w)
	streamRepo.On("ConsumeBatch", ctx, testStream, testGroup, w.ConsumerName(), 10).Return(messages, nil).Once()
	streamRepo.On("AckMessages", ctx, testStream, testGroup, []string{"1-0", "2-0"}).Return(nil).Once()

	n, err := w.ProcessBatch(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	recorder.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorker_ProcessBatch_LeavesFailedPending(t *testing.T) {
	ctx := context.Background()
	streamRepo := &MockStreamRepository{}
	recorder := &MockRecorder{}
	w := newWorker(streamRepo, recorder)

	messages := []domain.StreamMessage{
		message(t, "1-0", domain.EventCreated),
		message(t, "2-0", domain.EventDeleted),
	}
	expectNothingPending(ctx, streamRepo, w)
	streamRepo.On("ConsumeBatch", ctx, testStream, testGroup, w.ConsumerName(), 10).Return(messages, nil).Once()
	recorder.On("Record", ctx, mock.Anything, "1-0").Return(nil).Once()
	recorder.On("Record", ctx, mock.Anything, "2-0").Return(stderrors.New("db down")).Once()
	streamRepo.On("AckMessages", ctx, testStream, testGroup, []string{"1-0"}).Return(nil).Once()

	n, err := w.ProcessBatch(ctx)

	assert.Error(t, err)
	assert.Equal(t, 1, n)
	streamRepo.AssertExpectations(t)
}

func TestWorker_ProcessBatch_RetriesPendingFirst(t *testing.T) {
	ctx := context.Background()
	streamRepo := &MockStreamRepository{}
	recorder := &MockRecorder{}
	w := newWorker(streamRepo, recorder)

	failed := message(t, "2-0", domain.EventDeleted)

	// первая попытка: запись падает, сообщение не подтверждается
	expectNothingPending(ctx, streamRepo, w)
	streamRepo.On("ConsumeBatch", ctx, testStream, testGroup, w.ConsumerName(), 10).
		Return([]domain.StreamMessage{failed}, nil).Once()
	recorder.On("Record", ctx, mock.Anything, "2-0").Return(stderrors.New("db down")).Once()

	n, err := w.ProcessBatch(ctx)
	require.Error(t, err)
	assert.Zero(t, n)
	streamRepo.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	// вторая попытка: сообщение возвращается через ClaimPending, новые не читаются
	streamRepo.ExpectedCalls = nil
	streamRepo.On("ClaimPending", ctx, testStream, testGroup, w.ConsumerName(), testMinIdle, 10).
		Return([]domain.StreamMessage{failed}, nil).Once()
	recorder.On("Record", ctx, mock.Anything, "2-0").Return(nil).Once()
	streamRepo.On("AckMessages", ctx, testStream, testGroup, []string{"2-0"}).Return(nil).Once()

	n, err = w.ProcessBatch(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	streamRepo.AssertExpectations(t)
	recorder.AssertExpectations(t)
	streamRepo.AssertNumberOfCalls(t, "ConsumeBatch", 1)
}

func TestWorker_ProcessBatch_ClaimFailure(t *testing.T) {
	ctx := context.Background()
	streamRepo := &MockStreamRepository{}
	w := newWorker(streamRepo, &MockRecorder{})

	streamRepo.On("ClaimPending", ctx, testStream, testGroup, w.ConsumerName(), testMinIdle, 10).
		Return(nil, stderrors.New("NOSCRIPT")).Once()

	_, err := w.ProcessBatch(ctx)

	assert.Error(t, err)
	streamRepo.AssertNotCalled(t, "ConsumeBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWorker_ProcessBatch_Empty(t *testing.T) {
	ctx := context.Background()
	streamRepo := &MockStreamRepository{}
	w := newWorker(streamRepo, &MockRecorder{})

	expectNothingPending(ctx, streamRepo, w)
	streamRepo.On("ConsumeBatch", ctx, testStream, testGroup, w.ConsumerName(), 10).Return(nil, nil).Once()

	n, err := w.ProcessBatch(ctx)

	require.NoError(t, err)
	assert.Zero(t, n)
	streamRepo.AssertNotCalled(t, "AckMessages", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWorker_StartStopsOnContextCancel(t *testing.T) {
	streamRepo := &MockStreamRepository{}
	w := newWorker(streamRepo, &MockRecorder{})

	ctx, cancel := context.WithCancel(context.Background())
	streamRepo.On("CreateConsumerGroup", ctx, testStream, testGroup).Return(nil).Once()
	expectNothingPending(ctx, streamRepo, w)
	streamRepo.On("ConsumeBatch", ctx, testStream, testGroup, w.ConsumerName(), 10).
		Run(func(mock.Arguments) { time.Sleep(5 * time.Millisecond) }).
		Return([]domain.StreamMessage{}, nil)

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop after context cancellation")
	}
}

func TestWorker_StartFailsWithoutGroup(t *testing.T) {
	ctx := context.Background()
	streamRepo := &MockStreamRepository{}
	w := newWorker(streamRepo, &MockRecorder{})

	streamRepo.On("CreateConsumerGroup", ctx, testStream, testGroup).Return(stderrors.New("NOPERM")).Once()

	assert.Error(t, w.Start(ctx))
}
