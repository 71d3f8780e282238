package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/semaphore"
)

// Sentinel errors for asset loading.
var (
	// ErrNotFound indicates the candidate does not exist at the source.
	ErrNotFound = errors.New("asset not found")
	// ErrNotImage indicates the candidate exists but does not decode as an image.
	ErrNotImage = errors.New("asset is not a decodable image")
)

// Source opens asset paths of the form assets/{year}/{month}/day{N}[x].jpg.
type Source interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

// Probe loads path from src and reports whether it is an existing image.
// A nil error means the candidate exists.
func Probe(ctx context.Context, src Source, path string) error {
	rc, err := src.Open(ctx, path)
	if err != nil {
		return err
	}
	defer rc.Close()
	if _, _, err := image.DecodeConfig(rc); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotImage, path, err)
	}
	return nil
}

// Load opens and fully decodes path.
func Load(ctx context.Context, src Source, path string) (image.Image, error) {
	rc, err := src.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotImage, path, err)
	}
	return img, nil
}

// IsURL reports whether root names a remote http(s) asset base.
func IsURL(root string) bool {
	return strings.HasPrefix(root, "http://") || strings.HasPrefix(root, "https://")
}

// New returns a Source for root: an HTTPSource when root is an http(s) URL,
// otherwise a DirSource.
func New(root string, timeout time.Duration) (Source, error) {
	if IsURL(root) {
		return NewHTTPSource(root, timeout)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("asset root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset root %s is not a directory", root)
	}
	return DirSource{Root: root}, nil
}

// DirSource loads assets from a directory on disk.
type DirSource struct {
	Root string
}

// Open opens path relative to Root.
func (s DirSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.Root, filepath.FromSlash(path)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	return f, nil
}

// HTTPSource loads assets relative to a base URL.
type HTTPSource struct {
	Base   *url.URL
	Client *http.Client
}

// NewHTTPSource parses base and builds a client with the given timeout.
func NewHTTPSource(base string, timeout time.Duration) (*HTTPSource, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("asset base url: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return &HTTPSource{Base: u, Client: &http.Client{Timeout: timeout}}, nil
}

// Open issues a GET for path. Any status other than 200 is a miss.
func (s *HTTPSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("asset path %s: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Base.ResolveReference(ref).String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("fetch %s: %s", path, resp.Status)
	}
	return resp.Body, nil
}

// Limited bounds the number of assets open at once across all callers.
type Limited struct {
	Next Source
	sem  *semaphore.Weighted
}

// NewLimited wraps next so at most n loads are in flight.
func NewLimited(next Source, n int) *Limited {
	if n < 1 {
		n = 1
	}
	return &Limited{Next: next, sem: semaphore.NewWeighted(int64(n))}
}

// Open waits for a slot, then delegates. The slot is held until the
// returned reader is closed.
func (l *Limited) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	rc, err := l.Next.Open(ctx, path)
	if err != nil {
		l.sem.Release(1)
		return nil, err
	}
	return &releaseCloser{ReadCloser: rc, release: func() { l.sem.Release(1) }}, nil
}

type releaseCloser struct {
	io.ReadCloser
	release func()
	closed  bool
}

func (r *releaseCloser) Close() error {
	err := r.ReadCloser.Close()
	if !r.closed {
		r.closed = true
		r.release()
	}
	return err
}
