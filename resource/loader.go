package resource

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	parse "github.com/tdewolff/parse/v2"
	"go.uber.org/zap"
)

// Retriever resolves image references. Failures are reported by returning
// false, they never abort processing.
type Retriever interface {
	RetrieveImage(src string) (*ImageHandle, bool)
}

// ErrUnsupportedScheme is returned for locations which cannot be read locally.
var ErrUnsupportedScheme = errors.New("unsupported url scheme")

// Loader retrieves images from local files and data URIs caching results.
type Loader struct {
	log     *zap.Logger
	baseDir string
	dataURI bool

	mu    sync.Mutex
	cache map[string]*ImageHandle // nil marks failed retrieval
}

type Option func(*Loader)

// WithBaseDir sets directory relative locations are resolved against.
func WithBaseDir(dir string) Option {
	return func(l *Loader) {
		l.baseDir = dir
	}
}

// WithDataURI enables or disables embedded data URIs.
func WithDataURI(enabled bool) Option {
	return func(l *Loader) {
		l.dataURI = enabled
	}
}

// NewLoader creates image loader.
func NewLoader(log *zap.Logger, opts ...Option) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loader{
		log:     log.Named("resources"),
		dataURI: true,
		cache:   make(map[string]*ImageHandle),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RetrieveImage implements Retriever.
func (l *Loader) RetrieveImage(src string) (*ImageHandle, bool) {
	src = strings.TrimSpace(src)

	l.mu.Lock()
	h, cached := l.cache[src]
	l.mu.Unlock()
	if cached {
		return h, h != nil
	}

	data, name, err := l.read(src)
	if err == nil {
		h, err = Decode(name, data)
	}
	if err != nil {
		l.log.Debug("Unable to retrieve image", zap.String("source", name), zap.Error(err))
		h = nil
	} else {
		l.log.Debug("Image retrieved", zap.String("source", name), zap.Stringer("kind", h.Kind),
			zap.Float64("width", h.Width), zap.Float64("height", h.Height))
	}

	l.mu.Lock()
	l.cache[src] = h
	l.mu.Unlock()
	return h, h != nil
}

// read returns image data and name suitable for logging.
func (l *Loader) read(src string) ([]byte, string, error) {
	if len(src) > 5 && strings.EqualFold(src[:5], "data:") {
		name := src[:min(len(src), 32)] + "..."
		if !l.dataURI {
			return nil, name, fmt.Errorf("data URIs are disabled")
		}
		_, data, err := parse.DataURI([]byte(src))
		if err != nil {
			return nil, name, fmt.Errorf("bad data URI: %w", err)
		}
		return data, name, nil
	}

	u, err := url.Parse(src)
	if err != nil {
		return nil, src, fmt.Errorf("bad image location: %w", err)
	}
	switch strings.ToLower(u.Scheme) {
	case "", "file":
	default:
		return nil, src, fmt.Errorf("%w: %s", ErrUnsupportedScheme, u.Scheme)
	}

	path := filepath.FromSlash(u.Path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(l.baseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, src, fmt.Errorf("unable to read image: %w", err)
	}
	return data, path, nil
}
