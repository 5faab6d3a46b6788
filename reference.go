package configdata

import "fmt"

// Reference is a candidate config data file produced while resolving a
// Location, it records the request that led to a resource: the location,
// the directory and file root that were searched, the profile and the file
// extension
type Reference struct {
	location  Location
	directory string
	root      string
	profile   string
	extension string
}

// NewReference creates a Reference. directory is empty when the location
// references a single file, profile is empty for non profile specific files.
func NewReference(location Location, directory, root, profile, extension string) *Reference {
	return &Reference{
		location:  location,
		directory: directory,
		root:      root,
		profile:   profile,
		extension: extension,
	}
}

func (r *Reference) Location() Location {
	return r.location
}

func (r *Reference) Directory() string {
	return r.directory
}

func (r *Reference) Root() string {
	return r.root
}

func (r *Reference) Profile() string {
	return r.profile
}

func (r *Reference) Extension() string {
	return r.extension
}

// ResourceLocation returns the location of the file the reference points at,
// root + "-" + profile + "." + extension
func (r *Reference) ResourceLocation() string {
	suffix := ""
	if r.profile != "" {
		suffix = "-" + r.profile
	}

	return r.root + suffix + "." + r.extension
}

// IsMandatoryDirectory returns true when the reference was created from a
// directory location that must exist
func (r *Reference) IsMandatoryDirectory() bool {
	return !r.location.Optional && r.directory != ""
}

// IsSkippable returns true when a missing resource for this reference is
// not an error
func (r *Reference) IsSkippable() bool {
	return r.location.Optional || r.directory != "" || r.profile != ""
}

func (r *Reference) String() string {
	if r.location.Value == r.ResourceLocation() {
		return r.location.String()
	}

	return fmt.Sprintf("'%s' (%s)", r.location.String(), r.ResourceLocation())
}
