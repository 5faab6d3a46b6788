package configdata

import (
	"fmt"

	"github.com/jumppad-labs/configdata/errors"
	"github.com/jumppad-labs/configdata/resource"
)

// ConfigDataResource is a single resolved source of config data
type ConfigDataResource interface {
	// Optional returns true when the resource may be missing at load time
	Optional() bool

	// Equal returns true when other is the same config data resource
	Equal(other ConfigDataResource) bool

	// Hash returns a hash code that is the same for equal resources
	Hash() uint64

	String() string
}

// StandardResource is a ConfigDataResource backed by a resource.Resource.
// It pairs the Reference that was requested with the resource that was
// found. Equality and hashing only consider the underlying resource, two
// wrappers created from different references, or from different handle kinds
// that point at the same file, are equal.
//
// StandardResource is immutable and safe for concurrent use.
type StandardResource struct {
	reference      *Reference
	resource       resource.Resource
	emptyDirectory bool
}

var _ ConfigDataResource = (*StandardResource)(nil)

// NewStandardResource creates a StandardResource, reference and res must not
// be nil
func NewStandardResource(reference *Reference, res resource.Resource) (*StandardResource, error) {
	return newStandardResource(reference, res, false)
}

// NewEmptyDirectoryResource creates a StandardResource for a mandatory
// directory that exists but contains no config data files
func NewEmptyDirectoryResource(reference *Reference, res resource.Resource) (*StandardResource, error) {
	return newStandardResource(reference, res, true)
}

func newStandardResource(reference *Reference, res resource.Resource, emptyDirectory bool) (*StandardResource, error) {
	if reference == nil {
		return nil, errors.NewNotNullError("reference")
	}

	if resource.IsNil(res) {
		return nil, errors.NewNotNullError("resource")
	}

	return &StandardResource{
		reference:      reference,
		resource:       res,
		emptyDirectory: emptyDirectory,
	}, nil
}

// Reference returns the reference that was resolved to this resource
func (s *StandardResource) Reference() *Reference {
	return s.reference
}

// Resource returns the underlying resource
func (s *StandardResource) Resource() resource.Resource {
	return s.resource
}

// Profile returns the profile of the reference, empty for resources that are
// not profile specific
func (s *StandardResource) Profile() string {
	return s.reference.Profile()
}

// EmptyDirectory returns true when the resource stands for an existing
// directory that contains no config data
func (s *StandardResource) EmptyDirectory() bool {
	return s.emptyDirectory
}

func (s *StandardResource) Optional() bool {
	return s.reference.Location().Optional
}

func (s *StandardResource) Equal(other ConfigDataResource) bool {
	o, ok := other.(*StandardResource)
	if !ok || o == nil {
		return false
	}

	if s == o {
		return true
	}

	return s.resource.Equal(o.resource)
}

func (s *StandardResource) Hash() uint64 {
	return s.resource.Hash()
}

func (s *StandardResource) String() string {
	if s.emptyDirectory {
		return fmt.Sprintf("%s (empty directory)", s.resource.Description())
	}

	return s.resource.Description()
}

// Dedupe returns the resources with every resource that is equal to an
// earlier one removed, the order of the remaining resources is kept
func Dedupe(resources []*StandardResource) []*StandardResource {
	seen := map[uint64][]*StandardResource{}
	out := make([]*StandardResource, 0, len(resources))

	for _, r := range resources {
		if r == nil {
			continue
		}

		h := r.Hash()

		duplicate := false
		for _, s := range seen[h] {
			if s.Equal(r) {
				duplicate = true
				break
			}
		}

		if duplicate {
			continue
		}

		seen[h] = append(seen[h], r)
		out = append(out, r)
	}

	return out
}
