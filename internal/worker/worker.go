package worker

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
)

// Worker - фоновый обработчик стрима
type Worker interface {
	// Start блокируется до Stop или отмены контекста
	Start(ctx context.Context) error

	Stop() error

	Name() string
}

// StreamWorker - общая часть воркеров, читающих Redis Stream через consumer group
type StreamWorker struct {
	name          string
	stream        string
	consumerGroup string
	consumerName  string
	logger        *zap.Logger

	stopOnce sync.Once
	stopChan chan struct{}
}

// NewStreamWorker создает StreamWorker. Имя consumer'а - hostname-pid,
// чтобы несколько экземпляров делили одну группу.
func NewStreamWorker(name, stream, consumerGroup string, logger *zap.Logger) *StreamWorker {
	hostname, _ := os.Hostname()

	return &StreamWorker{
		name:          name,
		stream:        stream,
		consumerGroup: consumerGroup,
		consumerName:  fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		logger:        logger.With(zap.String("worker", name)),
		stopChan:      make(chan struct{}),
	}
}

func (w *StreamWorker) Name() string {
	return w.name
}

func (w *StreamWorker) Stream() string {
	return w.stream
}

func (w *StreamWorker) ConsumerGroup() string {
	return w.consumerGroup
}

func (w *StreamWorker) ConsumerName() string {
	return w.consumerName
}

func (w *StreamWorker) Logger() *zap.Logger {
	return w.logger
}

// Stop сигнализирует циклу воркера завершиться; повторный вызов безопасен
func (w *StreamWorker) Stop() error {
	w.stopOnce.Do(func() {
		w.logger.Info("Stopping worker")
		close(w.stopChan)
	})
	return nil
}

// StopChan закрывается при Stop
func (w *StreamWorker) StopChan() <-chan struct{} {
	return w.stopChan
}
