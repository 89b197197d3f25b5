package repository

import (
	"context"
	"io"
)

// PhotoURLResolver превращает photoRef в публичный URL ("" если ссылки нет)
type PhotoURLResolver interface {
	URL(path string) string
}

// PhotoStorage - хранилище фотографий объявлений
type PhotoStorage interface {
	PhotoURLResolver

	// Save сохраняет файл и возвращает photoRef (путь относительно корня хранилища)
	Save(ctx context.Context, filename string, r io.Reader) (string, error)

	// Delete удаляет файл по photoRef
	Delete(ctx context.Context, path string) error
}
