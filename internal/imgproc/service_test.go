package imgproc

import (
	"context"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fotolab/foto/internal/logging"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		src     string
		dst     string
		wantErr bool
	}{
		{"valid", "DOWN-RESOLUTE a.jpeg b.jpeg", "a.jpeg", "b.jpeg", false},
		{"trailing newline", "DOWN-RESOLUTE a.jpeg b.jpeg\n", "a.jpeg", "b.jpeg", false},
		{"wrong verb", "SCALE a b", "", "", true},
		{"missing args", "DOWN-RESOLUTE a", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src, dst, err := ParseCommand(tc.msg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.src, src)
			assert.Equal(t, tc.dst, dst)
		})
	}
}

func TestTargetSize_KeepsAspectRatio(t *testing.T) {
	w, h := TargetSize(1000, 500)
	assert.Equal(t, uint(500), w)
	assert.Equal(t, uint(250), h)

	w, h = TargetSize(2000, 3000)
	assert.Equal(t, uint(500), w)
	assert.Equal(t, uint(750), h)
}

func TestNeedsDownResolution(t *testing.T) {
	assert.False(t, NeedsDownResolution(500))
	assert.True(t, NeedsDownResolution(501))
}

func writeTestJPEG(t *testing.T, path string, width, height int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	require.NoError(t, jpeg.Encode(f, img, nil))
}

func TestDownResolute_ScalesWideImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jpeg")
	dst := filepath.Join(dir, "dst.jpeg")
	writeTestJPEG(t, src, 1200, 600)

	require.NoError(t, DownResolute(src, dst))

	f, err := os.Open(dst)
	require.NoError(t, err)
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Width)
	assert.Equal(t, 250, cfg.Height)
}

func TestDownResolute_SkipsSmallImage(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.jpeg")
	dst := filepath.Join(dir, "dst.jpeg")
	writeTestJPEG(t, src, 300, 200)

	require.NoError(t, DownResolute(src, dst))

	_, err := os.Stat(dst)
	assert.True(t, os.IsNotExist(err), "no thumbnail expected for small images")
}

func TestDownResolute_PNGOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.png")

	f, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewRGBA(image.Rect(0, 0, 800, 800))))
	f.Close()

	require.NoError(t, DownResolute(src, dst))

	out, err := os.Open(dst)
	require.NoError(t, err)
	defer out.Close()

	cfg, format, err := image.DecodeConfig(out)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 500, cfg.Width)
}

func TestProcess_Replies(t *testing.T) {
	logger := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	svc := NewService("localhost:0", logger)
	ctx := context.Background()

	dir := t.TempDir()
	src := filepath.Join(dir, "src.jpeg")
	writeTestJPEG(t, src, 1000, 1000)

	assert.Equal(t, ReplyInvalidCommand, svc.process(ctx, "NONSENSE"))
	assert.Equal(t, ReplyFileNotFound, svc.process(ctx, "DOWN-RESOLUTE missing.jpeg out.jpeg"))
	assert.Equal(t, ReplyOK, svc.process(ctx, "DOWN-RESOLUTE "+src+" "+filepath.Join(dir, "out.jpeg")))
}
