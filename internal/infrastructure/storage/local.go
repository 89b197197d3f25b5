package storage

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/perumahan-service/internal/config"
	"github.com/perumahan-service/internal/domain/repository"
	"github.com/perumahan-service/internal/pkg/errors"
	"go.uber.org/zap"
)

// PhotoDir - поддиректория для фотографий объявлений
const PhotoDir = "perumahan_photos"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type localStorage struct {
	root    string
	baseURL string
	logger  *zap.Logger
}

// NewLocalStorage - хранилище фотографий на локальном диске под MEDIA_ROOT
func NewLocalStorage(cfg *config.MediaConfig, logger *zap.Logger) (repository.PhotoStorage, error) {
	if err := os.MkdirAll(filepath.Join(cfg.Root, PhotoDir), 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}

	return &localStorage{
		root:    cfg.Root,
		baseURL: cfg.URL,
		logger:  logger,
	}, nil
}

// Save пишет файл под случайным именем, сохраняя расширение
func (s *localStorage) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", errors.ErrUnsupportedPhoto.WithDetails(map[string]interface{}{"extension": ext})
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	rel := path.Join(PhotoDir, uuid.NewString()+ext)
	dst := filepath.Join(s.root, filepath.FromSlash(rel))

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create photo file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write photo file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close photo file: %w", err)
	}

	s.logger.Debug("Photo saved", zap.String("path", rel))
	return rel, nil
}

// Delete удаляет файл; отсутствие файла ошибкой не считается
func (s *localStorage) Delete(_ context.Context, ref string) error {
	if ref == "" {
		return nil
	}

	clean := path.Clean("/" + ref)
	dst := filepath.Join(s.root, filepath.FromSlash(clean))
	if err := os.Remove(dst); err != nil && !stderrors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete photo file: %w", err)
	}

	s.logger.Debug("Photo deleted", zap.String("path", ref))
	return nil
}

// URL - публичный адрес фотографии, "" если ссылки нет
func (s *localStorage) URL(ref string) string {
	if ref == "" {
		return ""
	}

	segments := strings.Split(strings.TrimPrefix(ref, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.baseURL + strings.Join(segments, "/")
}
