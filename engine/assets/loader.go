// Package assets resolves opaque asset identifiers against an asset root.
//
// Textures live under textures/, shaders under shaders/ and fonts under fonts/.
package assets

import (
	"fmt"
	"io/fs"
	"os"
	"path"
)

type Loader struct {
	fsys fs.FS
}

// NewLoader serves assets from a directory on disk.
func NewLoader(root string) *Loader { return &Loader{fsys: os.DirFS(root)} }

// NewLoaderFS serves assets from fsys (embedded or in-memory trees).
func NewLoaderFS(fsys fs.FS) *Loader { return &Loader{fsys: fsys} }

func (l *Loader) open(dir, name string) (fs.File, string, error) {
	p := path.Join(dir, name)
	if !fs.ValidPath(p) {
		return nil, p, fmt.Errorf("invalid asset path %q", p)
	}
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, p, fmt.Errorf("open %q: %w", p, err)
	}
	return f, p, nil
}

func (l *Loader) read(dir, name string) ([]byte, error) {
	p := path.Join(dir, name)
	if !fs.ValidPath(p) {
		return nil, fmt.Errorf("invalid asset path %q", p)
	}
	b, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", p, err)
	}
	return b, nil
}

// LoadShader reads a GLSL file into a null-terminated string for OpenGL.
func (l *Loader) LoadShader(name string) (string, error) {
	b, err := l.read("shaders", name)
	if err != nil {
		return "", fmt.Errorf("load shader: %w", err)
	}
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}

// Open opens a file relative to the asset root, such as a module manifest.
func (l *Loader) Open(name string) (fs.File, error) {
	f, _, err := l.open(".", name)
	return f, err
}

// ReadFont returns raw font file bytes.
func (l *Loader) ReadFont(name string) ([]byte, error) {
	b, err := l.read("fonts", name)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return b, nil
}
