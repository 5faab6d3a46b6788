// Package resource provides handles to readable config data sources.
//
// Every handle exposes a canonical Location. Handles backed by a local file
// share the same location format, the file URL of the absolute, cleaned and
// symlink free path, so that two handles of a different kind that point at
// the same file are Equal and have the same Hash.
package resource

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Resource is a handle to a readable byte source
type Resource interface {
	// Description returns a human readable description of the resource
	Description() string

	// Exists returns true when the resource can be opened
	Exists() bool

	// Open returns a reader for the contents of the resource, the caller
	// must close the reader
	Open() (io.ReadCloser, error)

	// Location returns the canonical identity of the resource
	Location() string

	// Equal returns true when other denotes the same physical resource
	Equal(other Resource) bool

	// Hash returns a hash of the canonical identity, equal resources have the
	// same hash
	Hash() uint64
}

// FileResource is a Resource that can be resolved to a path on the local
// file system
type FileResource interface {
	Resource

	// File returns the absolute path of the resource
	File() (string, error)
}

// IsNil returns true when r is nil or a typed nil pointer
func IsNil(r Resource) bool {
	if r == nil {
		return true
	}

	v := reflect.ValueOf(r)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func equal(r Resource, other Resource) bool {
	if IsNil(other) {
		return false
	}

	return r.Location() == other.Location()
}

func hash(location string) uint64 {
	return xxhash.Sum64String(location)
}

// canonicalPath returns the absolute, cleaned form of p, symlinks are
// evaluated when the path exists
func canonicalPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		abs = filepath.Clean(p)
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}

	return abs
}

// fileLocation returns the file URL for the canonical form of p
func fileLocation(p string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(canonicalPath(p))}
	return u.String()
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
