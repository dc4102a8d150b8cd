package usecase

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lcm-booking/internal/dto/response"
	"lcm-booking/pkg/utils"

	"go.uber.org/zap"
)

type MediaService interface {
	Save(ctx context.Context, filename string, file io.Reader) (*response.UploadResponse, error)
	// Resolve returns the on-disk path for a stored upload.
	Resolve(name string) (string, error)
}

type mediaService struct {
	dir string
	log *zap.Logger
}

func NewMediaService(config utils.UploadConfig, log *zap.Logger) MediaService {
	return &mediaService{
		dir: config.Dir,
		log: log.With(zap.String("service", "media")),
	}
}

func (s *mediaService) Save(ctx context.Context, filename string, file io.Reader) (*response.UploadResponse, error) {
	name, err := sanitizeFilename(filename)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	path := filepath.Join(s.dir, name)
	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer out.Close()

	written, err := io.Copy(out, file)
	if err != nil {
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	s.log.Info("Media uploaded",
		zap.String("filename", name),
		zap.Int64("bytes", written),
	)

	return &response.UploadResponse{
		Filename: name,
		URL:      "/uploads/" + name,
	}, nil
}

func (s *mediaService) Resolve(name string) (string, error) {
	clean, err := sanitizeFilename(name)
	if err != nil {
		return "", ErrNotFound
	}

	path := filepath.Join(s.dir, clean)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}

	return path, nil
}

func sanitizeFilename(filename string) (string, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: invalid filename", ErrInvalidInput)
	}
	return name, nil
}
