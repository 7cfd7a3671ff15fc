// Package imgproc implements the image-processing side process. It listens on
// a local TCP socket and accepts one command per connection:
//
//	DOWN-RESOLUTE <source_path> <dest_path>
//
// The source image (jpeg, png or webp) is down-resoluted so that its width
// does not exceed MaxResolution pixels and written to dest_path; images that
// are already small enough produce no output file. The reply is a single
// status string and the connection is closed after one exchange.
package imgproc

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"net"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"

	"github.com/nfnt/resize"

	"github.com/fotolab/foto/internal/filex"
	"github.com/fotolab/foto/internal/logging"
)

// MaxResolution is the target maximum width of a down-resoluted photo.
const MaxResolution = 500

// Protocol replies.
const (
	ReplyOK             = "OK"
	ReplyInvalidCommand = "INVALID COMMAND GIVEN"
	ReplyFileNotFound   = "FILE DOES NOT EXIST"
	ReplyFailed         = "DOWN-RESOLUTION FAILED"
)

var errInvalidCommand = errors.New("invalid command")

// ParseCommand splits a DOWN-RESOLUTE request line into source and
// destination paths.
func ParseCommand(msg string) (src, dst string, err error) {
	parts := strings.Fields(strings.TrimSpace(msg))
	if len(parts) != 3 || parts[0] != "DOWN-RESOLUTE" {
		return "", "", errInvalidCommand
	}
	return parts[1], parts[2], nil
}

// NeedsDownResolution reports whether an image of the given bounds is wider
// than the maximum resolution.
func NeedsDownResolution(width int) bool {
	return width > MaxResolution
}

// TargetSize returns the down-resoluted dimensions for a width x height
// image, scaling it so the width becomes MaxResolution while keeping the
// aspect ratio.
func TargetSize(width, height int) (uint, uint) {
	ratio := float64(height) / float64(width)
	return MaxResolution, uint(float64(MaxResolution)*ratio + 0.5)
}

// DownResolute reads the image at src and, when it is wider than
// MaxResolution, writes a scaled copy to dst. The output format is chosen by
// the dst extension (png stays png, everything else becomes jpeg). Images
// that need no scaling are skipped without error.
func DownResolute(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}

	bounds := img.Bounds()
	if !NeedsDownResolution(bounds.Dx()) {
		return nil
	}

	w, h := TargetSize(bounds.Dx(), bounds.Dy())
	scaled := resize.Resize(w, h, img, resize.Lanczos3)

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if strings.EqualFold(filepath.Ext(dst), ".png") {
		return png.Encode(out, scaled)
	}
	return jpeg.Encode(out, scaled, &jpeg.Options{Quality: 85})
}

// Service accepts down-resolution requests over TCP.
type Service struct {
	addr   string
	logger logging.Logger
}

func NewService(addr string, logger logging.Logger) *Service {
	return &Service{addr: addr, logger: logger}
}

// Run listens on the configured address until ctx is cancelled. Each
// connection is handled on its own goroutine.
func (s *Service) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	s.logger.Info(ctx, "image processing service is running", "addr", s.addr)

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.logger.Warn(ctx, "accept failed", "error", err)
			continue
		}
		go s.handleConn(ctx, conn)
	}
}

func (s *Service) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		s.logger.Warn(ctx, "read failed", "error", err)
		return
	}

	reply := s.process(ctx, string(buf[:n]))
	if _, err := conn.Write([]byte(reply)); err != nil {
		s.logger.Warn(ctx, "write failed", "error", err)
	}
}

func (s *Service) process(ctx context.Context, msg string) string {
	src, dst, err := ParseCommand(msg)
	if err != nil {
		return ReplyInvalidCommand
	}

	if !filex.Exists(src) {
		return ReplyFileNotFound
	}

	if err := DownResolute(src, dst); err != nil {
		s.logger.Error(ctx, "down-resolution failed", "src", src, "error", err)
		return ReplyFailed
	}

	return ReplyOK
}
