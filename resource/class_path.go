package resource

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jumppad-labs/configdata/errors"
)

// ClassPathEnvVar is the environment variable read by DefaultClassPath, it
// holds a list of root directories separated by os.PathListSeparator
const ClassPathEnvVar = "CONFIGDATA_CLASSPATH"

// ClassPath is an ordered list of root directories that class path
// resources are looked up in
type ClassPath struct {
	roots []string
}

// NewClassPath creates a ClassPath from the given root directories, relative
// roots are resolved against the working directory
func NewClassPath(roots ...string) *ClassPath {
	cp := &ClassPath{roots: []string{}}
	for _, r := range roots {
		if r == "" {
			continue
		}

		abs, err := filepath.Abs(r)
		if err != nil {
			abs = filepath.Clean(r)
		}

		cp.roots = append(cp.roots, abs)
	}

	return cp
}

// DefaultClassPath returns the class path defined by CONFIGDATA_CLASSPATH,
// or the working directory when the variable is not set
func DefaultClassPath() *ClassPath {
	if v := os.Getenv(ClassPathEnvVar); v != "" {
		return NewClassPath(filepath.SplitList(v)...)
	}

	return NewClassPath(".")
}

// Roots returns the root directories in lookup order
func (c *ClassPath) Roots() []string {
	return append([]string{}, c.roots...)
}

// Resource creates a handle for the given class path location
func (c *ClassPath) Resource(p string) *ClassPathResource {
	return &ClassPathResource{path: cleanPath(p), classPath: c}
}

// find returns the file for p in the first root that contains it
func (c *ClassPath) find(p string) (string, bool) {
	for _, r := range c.roots {
		f := filepath.Join(r, filepath.FromSlash(p))
		if exists(f) {
			return f, true
		}
	}

	return "", false
}

// ClassPathResource is a Resource identified by a path relative to the roots
// of a ClassPath
type ClassPathResource struct {
	path      string
	classPath *ClassPath
}

// NewClassPathResource creates a handle for p using the DefaultClassPath
func NewClassPathResource(p string) *ClassPathResource {
	return DefaultClassPath().Resource(p)
}

// Path returns the cleaned class path location, without a leading slash
func (c *ClassPathResource) Path() string {
	return c.path
}

// ClassPath returns the class path used to resolve the resource
func (c *ClassPathResource) ClassPath() *ClassPath {
	return c.classPath
}

// File returns the path of the resource in the first class path root that
// contains it
func (c *ClassPathResource) File() (string, error) {
	f, ok := c.classPath.find(c.path)
	if !ok {
		return "", errors.NewResourceNotFoundError(c.Description(), "", os.ErrNotExist)
	}

	return canonicalPath(f), nil
}

// URL returns the file URL of the resource
func (c *ClassPathResource) URL() (string, error) {
	f, err := c.File()
	if err != nil {
		return "", err
	}

	return fileLocation(f), nil
}

func (c *ClassPathResource) Description() string {
	return fmt.Sprintf("class path resource [%s]", c.path)
}

func (c *ClassPathResource) Exists() bool {
	_, ok := c.classPath.find(c.path)
	return ok
}

func (c *ClassPathResource) Open() (io.ReadCloser, error) {
	f, ok := c.classPath.find(c.path)
	if !ok {
		return nil, errors.NewResourceNotFoundError(c.Description(), "", os.ErrNotExist)
	}

	r, err := os.Open(f)
	if err != nil {
		return nil, errors.NewResourceNotFoundError(c.Description(), "", err)
	}

	return r, nil
}

// Location returns the file URL when the resource can be found on the class
// path, otherwise classpath:<path>
func (c *ClassPathResource) Location() string {
	if f, ok := c.classPath.find(c.path); ok {
		return fileLocation(f)
	}

	return "classpath:" + c.path
}

func (c *ClassPathResource) Equal(other Resource) bool {
	return equal(c, other)
}

func (c *ClassPathResource) Hash() uint64 {
	return hash(c.Location())
}

func (c *ClassPathResource) String() string {
	return c.Description()
}

// cleanPath normalises a class path location, the leading slash is removed
// and a trailing slash is kept so directories stay distinguishable
func cleanPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	dir := strings.HasSuffix(p, "/")

	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if dir && p != "" {
		p += "/"
	}

	return p
}
