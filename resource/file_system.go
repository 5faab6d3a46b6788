package resource

import (
	"fmt"
	"io"
	"os"

	"github.com/jumppad-labs/configdata/errors"
)

// FileSystemResource is a Resource backed by a path on the local file system
type FileSystemResource struct {
	path string
}

// NewFileSystemResource creates a FileSystemResource for the given path,
// relative paths are resolved against the working directory
func NewFileSystemResource(path string) *FileSystemResource {
	return &FileSystemResource{path: path}
}

// Path returns the path as it was given
func (f *FileSystemResource) Path() string {
	return f.path
}

func (f *FileSystemResource) File() (string, error) {
	return canonicalPath(f.path), nil
}

func (f *FileSystemResource) Description() string {
	return fmt.Sprintf("file [%s]", canonicalPath(f.path))
}

func (f *FileSystemResource) Exists() bool {
	return exists(f.path)
}

func (f *FileSystemResource) Open() (io.ReadCloser, error) {
	r, err := os.Open(f.path)
	if err != nil {
		return nil, errors.NewResourceNotFoundError(f.Description(), "", err)
	}

	return r, nil
}

func (f *FileSystemResource) Location() string {
	return fileLocation(f.path)
}

func (f *FileSystemResource) Equal(other Resource) bool {
	return equal(f, other)
}

func (f *FileSystemResource) Hash() uint64 {
	return hash(f.Location())
}

func (f *FileSystemResource) String() string {
	return f.Description()
}
