package resource

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/jumppad-labs/configdata/errors"
)

// FileURLResource is a Resource addressed by a file:// URL
type FileURLResource struct {
	url  *url.URL
	path string
}

// NewFileURLResource parses rawURL and creates a FileURLResource, only URLs
// with the file scheme on the local host are accepted
func NewFileURLResource(rawURL string) (*FileURLResource, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, errors.NewInvalidArgumentError("url", fmt.Sprintf("'url' is not a valid URL: %s", err))
	}

	return NewFileURLResourceFromURL(u)
}

// NewFileURLResourceFromURL creates a FileURLResource from a parsed URL
func NewFileURLResourceFromURL(u *url.URL) (*FileURLResource, error) {
	if u == nil {
		return nil, errors.NewNotNullError("url")
	}

	if u.Scheme != "file" {
		return nil, errors.NewInvalidArgumentError("url", fmt.Sprintf("'url' must use the file scheme, got '%s'", u.Scheme))
	}

	if u.Host != "" && u.Host != "localhost" {
		return nil, errors.NewInvalidArgumentError("url", fmt.Sprintf("'url' must reference the local host, got '%s'", u.Host))
	}

	// file:./config/app.hcl is parsed as an opaque URL
	p := u.Path
	if p == "" {
		p = u.Opaque
	}

	return &FileURLResource{url: u, path: filepath.FromSlash(p)}, nil
}

// URL returns the URL the resource was created from
func (f *FileURLResource) URL() *url.URL {
	u := *f.url
	return &u
}

func (f *FileURLResource) File() (string, error) {
	return canonicalPath(f.path), nil
}

func (f *FileURLResource) Description() string {
	return fmt.Sprintf("URL [%s]", f.url.String())
}

func (f *FileURLResource) Exists() bool {
	return exists(f.path)
}

func (f *FileURLResource) Open() (io.ReadCloser, error) {
	r, err := os.Open(f.path)
	if err != nil {
		return nil, errors.NewResourceNotFoundError(f.Description(), "", err)
	}

	return r, nil
}

func (f *FileURLResource) Location() string {
	return fileLocation(f.path)
}

func (f *FileURLResource) Equal(other Resource) bool {
	return equal(f, other)
}

func (f *FileURLResource) Hash() uint64 {
	return hash(f.Location())
}

func (f *FileURLResource) String() string {
	return f.Description()
}
