package usecase

import (
	"context"
	"os"
	"strings"
	"testing"

	"lcm-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMediaService(t *testing.T) MediaService {
	t.Helper()
	return NewMediaService(utils.UploadConfig{Dir: t.TempDir()}, zap.NewNop())
}

func TestMediaSaveAndResolve(t *testing.T) {
	service := newTestMediaService(t)

	result, err := service.Save(context.Background(), "before-after.jpg", strings.NewReader("jpeg bytes"))

	assert.NoError(t, err)
	assert.Equal(t, "before-after.jpg", result.Filename)
	assert.Equal(t, "/uploads/before-after.jpg", result.URL)

	path, err := service.Resolve("before-after.jpg")
	assert.NoError(t, err)

	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(content))
}

func TestMediaSave_TraversalStripped(t *testing.T) {
	service := newTestMediaService(t)

	// path components are stripped, only the base name is stored
	result, err := service.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))

	assert.NoError(t, err)
	assert.Equal(t, "passwd", result.Filename)
}

func TestMediaSave_InvalidName(t *testing.T) {
	service := newTestMediaService(t)

	_, err := service.Save(context.Background(), "  ", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.Save(context.Background(), "..", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMediaResolve_Missing(t *testing.T) {
	service := newTestMediaService(t)

	_, err := service.Resolve("nope.png")
	assert.ErrorIs(t, err, ErrNotFound)
}
