// Package assetstest provides in-memory and on-disk asset fixtures for tests.
package assetstest

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/papapumpkin/almanac/internal/assets"
)

// JPEG returns a small encoded image of the given solid color.
func JPEG(t testing.TB, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

// WriteJPEG writes a valid image at root/path, creating directories.
func WriteJPEG(t testing.TB, root, path string) {
	t.Helper()
	WriteFile(t, root, path, JPEG(t, color.RGBA{R: 200, G: 80, B: 40, A: 255}))
}

// WriteFile writes raw bytes at root/path, creating directories.
func WriteFile(t testing.TB, root, path string, data []byte) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

// MemSource serves fixed paths from memory and records every Open.
// A path mapped to a channel in Gates blocks until the channel is closed
// or the context ends.
type MemSource struct {
	Files map[string][]byte
	Gates map[string]chan struct{}

	mu     sync.Mutex
	opened []string
}

// NewMemSource returns a source holding a valid image at each path.
func NewMemSource(t testing.TB, paths ...string) *MemSource {
	t.Helper()
	s := &MemSource{Files: make(map[string][]byte), Gates: make(map[string]chan struct{})}
	for _, p := range paths {
		s.Files[p] = JPEG(t, color.White)
	}
	return s
}

// Open implements assets.Source.
func (s *MemSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	s.opened = append(s.opened, path)
	gate := s.Gates[path]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	data, ok := s.Files[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", assets.ErrNotFound, path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Opened returns a copy of the paths opened so far.
func (s *MemSource) Opened() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.opened...)
}
