package content

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/3-lines-studio/vitrine/internal/core"
)

// Site keeps the loaded content of one tree. Readers get the current map,
// which is replaced wholesale on reload and never mutated in place.
type Site struct {
	fsys       fs.FS
	autoReload bool
	logger     *slog.Logger

	mu       sync.RWMutex
	content  core.Content
	loadedAt time.Time
}

type SiteOption func(*Site)

// WithAutoReload reloads the tree before every Content call.
func WithAutoReload() SiteOption {
	return func(s *Site) {
		s.autoReload = true
	}
}

func WithLogger(logger *slog.Logger) SiteOption {
	return func(s *Site) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSite(fsys fs.FS, opts ...SiteOption) *Site {
	s := &Site{
		fsys:   fsys,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Site) Reload() error {
	start := time.Now()
	c, err := Load(s.fsys)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.content = c
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Debug("content loaded", "pages", len(c), "duration", time.Since(start))
	return nil
}

func (s *Site) Content(ctx context.Context) (core.Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	c := s.content
	s.mu.RUnlock()

	if c == nil || s.autoReload {
		if err := s.Reload(); err != nil {
			return nil, err
		}
		s.mu.RLock()
		c = s.content
		s.mu.RUnlock()
	}
	return c, nil
}

func (s *Site) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// ReadFile returns a page file addressed by its escaped public URL path, as
// produced by core.FileURL. Only files registered on a page are reachable.
func (s *Site) ReadFile(ctx context.Context, urlPath string) (core.File, []byte, error) {
	c, err := s.Content(ctx)
	if err != nil {
		return core.File{}, nil, err
	}

	rel, err := url.PathUnescape(strings.TrimPrefix(urlPath, core.FilesPrefix))
	if err != nil {
		return core.File{}, nil, fmt.Errorf("%s: %w", urlPath, core.ErrFileNotFound)
	}
	rel = strings.TrimPrefix(path.Clean("/"+rel), "/")
	if rel == "" {
		return core.File{}, nil, core.ErrFileNotFound
	}

	dir, name := path.Split(rel)
	dir = strings.TrimSuffix(dir, "/")
	if dir == "" {
		dir = "."
	}

	page, ok := c.Lookup(core.PageURLForDir(dir))
	if !ok {
		return core.File{}, nil, fmt.Errorf("%s: %w", urlPath, core.ErrFileNotFound)
	}
	file, ok := page.File(name)
	if !ok {
		return core.File{}, nil, fmt.Errorf("%s: %w", urlPath, core.ErrFileNotFound)
	}

	data, err := fs.ReadFile(s.fsys, path.Join(dir, name))
	if err != nil {
		return core.File{}, nil, fmt.Errorf("read %s: %w", urlPath, err)
	}
	return file, data, nil
}
