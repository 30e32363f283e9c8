// Package loader reads remap documents from disk.
//
// A remap document maps mode names to tables of source chord to target
// chord. TOML is the default format; files ending in .yaml or .yml are read
// as YAML, and files ending in .lua are run as sandboxed Lua scripts that
// return the document as a table. Decoding problems are reported as *ParseError with the position
// the decoder reported, and invalid modes or chords as *keymap.RemapError
// wrapped with the file path.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshills/keychord/internal/input/keymap"
)

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// Format is a remap document encoding.
type Format uint8

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota
	// FormatYAML is selected by a .yaml or .yml extension.
	FormatYAML
	// FormatLua is selected by a .lua extension.
	FormatLua
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatLua:
		return "lua"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// FormatForPath picks the document format from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".lua":
		return FormatLua
	default:
		return FormatTOML
	}
}

// Loader loads remap documents.
type Loader struct {
	fs FileSystem
}

// New creates a loader that reads from the OS file system.
func New() *Loader {
	return &Loader{fs: DefaultFS()}
}

// NewWithFS creates a loader with a custom file system.
func NewWithFS(fsys FileSystem) *Loader {
	return &Loader{fs: fsys}
}

// Load reads the remap document at path.
// A missing file is not an error: it yields empty Remaps.
func (l *Loader) Load(path string) (keymap.Remaps, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return keymap.Remaps{}, nil
		}
		return nil, fmt.Errorf("reading remap file %s: %w", path, err)
	}

	return Parse(path, FormatForPath(path), data)
}

// LoadAll loads each path in order and layers the results.
// Later files override earlier ones chord by chord.
func (l *Loader) LoadAll(paths ...string) (keymap.Remaps, error) {
	remaps := keymap.Remaps{}
	for _, path := range paths {
		r, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		remaps = remaps.Merge(r)
	}
	return remaps, nil
}

// LoadFromReader reads a remap document in the given format.
func (l *Loader) LoadFromReader(r io.Reader, format Format) (keymap.Remaps, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading remaps: %w", err)
	}

	return Parse("<reader>", format, data)
}

// Exists reports whether path names an existing file.
func (l *Loader) Exists(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// Parse decodes a remap document. The source names the document in errors.
func Parse(source string, format Format, data []byte) (keymap.Remaps, error) {
	var (
		doc keymap.Document
		err error
	)
	switch format {
	case FormatYAML:
		doc, err = decodeYAML(source, data)
	case FormatLua:
		doc, err = decodeLua(source, data)
	default:
		doc, err = decodeTOML(source, data)
	}
	if err != nil {
		return nil, err
	}

	remaps, err := keymap.DecodeRemaps(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return remaps, nil
}

// Encode renders remaps as a document in the given format.
func Encode(remaps keymap.Remaps, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return encodeYAML(remaps.Document())
	case FormatLua:
		return encodeLua(remaps.Document())
	default:
		return encodeTOML(remaps.Document())
	}
}

// ParseError represents an error while parsing a remap document.
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
