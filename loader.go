package chromakey

import (
	"github.com/gogpu/chromakey/internal/cache"
	kimage "github.com/gogpu/chromakey/internal/image"
)

// Loader turns a background path into a frame. Hosts with their own asset
// system (bundles, content URIs) supply an implementation through
// WithLoader.
type Loader interface {
	Load(path string) (*Frame, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) (*Frame, error)

// Load implements Loader.
func (f LoaderFunc) Load(path string) (*Frame, error) {
	return f(path)
}

// FileLoader decodes backgrounds from the local file system.
// PNG, JPEG, WebP, BMP and TIFF files are recognised by content.
type FileLoader struct{}

// Load implements Loader.
func (FileLoader) Load(path string) (*Frame, error) {
	img, format, err := kimage.Load(path)
	if err != nil {
		return nil, err
	}
	Logger().Debug("chromakey: decoded background",
		"path", path, "format", format, "size", img.Bounds().Size())
	return FromImage(img), nil
}

// CachingLoader remembers the most recently loaded frames of another
// Loader by path. Failed loads are not remembered.
//
// Cached frames are shared between loads and must not be modified; the
// pipeline only reads its background.
type CachingLoader struct {
	next   Loader
	frames *cache.LRU[string, *Frame]
}

// NewCachingLoader wraps next with a cache of up to capacity frames.
func NewCachingLoader(next Loader, capacity int) *CachingLoader {
	return &CachingLoader{next: next, frames: cache.New[string, *Frame](capacity)}
}

// Load implements Loader.
func (l *CachingLoader) Load(path string) (*Frame, error) {
	if f, ok := l.frames.Get(path); ok {
		return f, nil
	}
	f, err := l.next.Load(path)
	if err != nil {
		return nil, err
	}
	l.frames.Add(path, f)
	return f, nil
}

// Forget drops path from the cache, for example after the file changed.
func (l *CachingLoader) Forget(path string) {
	l.frames.Remove(path)
}

// Cached returns the number of frames held.
func (l *CachingLoader) Cached() int {
	return l.frames.Len()
}
