package configdata

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/errwrap"
	"github.com/jumppad-labs/configdata/errors"
	"github.com/jumppad-labs/configdata/logger"
	"github.com/jumppad-labs/configdata/resource"
)

const (
	ClassPathPrefix = "classpath:"
	FilePrefix      = "file:"
	// RemotePrefix marks a go-getter source, e.g.
	// "remote:github.com/org/repo//config?ref=v1.0.0"
	RemotePrefix = "remote:"
)

// ResolverOptions configure a Resolver
type ResolverOptions struct {
	// ConfigNames are the file names, without extension, that are searched
	// for in directory locations
	ConfigNames []string
	// Extensions are the known config data file extensions, without the dot
	Extensions []string
	// ClassPath is used for "classpath:" locations
	ClassPath *resource.ClassPath
	// CacheDir is the folder remote locations are downloaded to
	CacheDir string
	// IgnoreCache forces remote locations to be downloaded again
	IgnoreCache bool
	// Getter downloads remote locations
	Getter Getter
	// Logger receives debug output about skipped references
	Logger logger.Logger
}

// DefaultResolverOptions returns ResolverOptions that search for
// "application" files with the hcl, json, yaml or yml extensions, use the
// default class path and cache remote locations in $HOME/.configdata/cache
func DefaultResolverOptions() *ResolverOptions {
	cacheDir, err := os.UserHomeDir()
	if err != nil {
		cacheDir = "."
	}

	return &ResolverOptions{
		ConfigNames: []string{"application"},
		Extensions:  []string{"hcl", "json", "yaml", "yml"},
		ClassPath:   resource.DefaultClassPath(),
		CacheDir:    filepath.Join(cacheDir, ".configdata", "cache"),
		Getter:      NewGoGetter(),
		Logger:      logger.NewStdOutLogger(),
	}
}

// Resolver resolves Locations into StandardResources
type Resolver struct {
	options ResolverOptions
	log     logger.Logger
}

// NewResolver creates a Resolver, when options is nil DefaultResolverOptions
// are used. Unset fields of options are filled from the defaults.
func NewResolver(options *ResolverOptions) (*Resolver, error) {
	defaults := DefaultResolverOptions()

	o := *defaults
	if options != nil {
		o = *options
	}

	if len(o.ConfigNames) == 0 {
		o.ConfigNames = defaults.ConfigNames
	}

	if len(o.Extensions) == 0 {
		o.Extensions = defaults.Extensions
	}

	if o.ClassPath == nil {
		o.ClassPath = defaults.ClassPath
	}

	if o.CacheDir == "" {
		o.CacheDir = defaults.CacheDir
	}

	if o.Getter == nil {
		o.Getter = defaults.Getter
	}

	if o.Logger == nil {
		o.Logger = defaults.Logger
	}

	for _, n := range o.ConfigNames {
		if n == "" || strings.Contains(n, "*") || strings.HasSuffix(n, "/") {
			return nil, errors.NewInvalidArgumentError(
				"config_names",
				fmt.Sprintf("config name '%s' is not valid, names must not be empty, contain '*' or end with '/'", n),
			)
		}
	}

	exts := make([]string, 0, len(o.Extensions))
	for _, e := range o.Extensions {
		exts = append(exts, strings.TrimPrefix(e, "."))
	}
	o.Extensions = exts

	return &Resolver{options: o, log: o.Logger}, nil
}

// Resolve resolves the location into the config data resources that exist
func (r *Resolver) Resolve(ctx context.Context, location Location) ([]*StandardResource, error) {
	res, err := r.resolve(ctx, location, "", true)
	if err != nil {
		return nil, err
	}

	return Dedupe(res), nil
}

// ResolveProfileSpecific resolves the profile specific variants of location,
// e.g. application-dev.hcl for the profile dev
func (r *Resolver) ResolveProfileSpecific(ctx context.Context, location Location, profiles []string) ([]*StandardResource, error) {
	all := []*StandardResource{}

	for _, p := range profiles {
		if p == "" {
			continue
		}

		res, err := r.resolve(ctx, location, p, false)
		if err != nil {
			return nil, err
		}

		all = append(all, res...)
	}

	return Dedupe(all), nil
}

func (r *Resolver) resolve(ctx context.Context, location Location, profile string, emptyDirectories bool) ([]*StandardResource, error) {
	if location.IsEmpty() {
		return nil, errors.NewInvalidArgumentError("location", "'location' must not be empty")
	}

	if strings.Contains(location.Value, "*") {
		return nil, errors.NewInvalidArgumentError("location", fmt.Sprintf("location '%s' contains a pattern, pattern locations are not supported", location))
	}

	log := r.log.With("location", location.String())

	value := location.Value
	if location.HasPrefix(RemotePrefix) {
		local, err := r.download(ctx, location.NonPrefixedValue(RemotePrefix))
		if err != nil {
			if location.Optional {
				log.Warn("Unable to download optional location", "error", err)
				return nil, nil
			}

			return nil, err
		}

		value = local
	}

	refs, err := r.references(location, value, profile)
	if err != nil {
		return nil, err
	}

	resolved := []*StandardResource{}
	found := map[string]bool{}

	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := r.createResource(ref.ResourceLocation())
		if !res.Exists() {
			if ref.IsSkippable() {
				log.Debug("Skipping missing resource", "resource", res.Description())
				continue
			}

			return nil, errors.NewResourceNotFoundError(res.Description(), ref.String(), nil)
		}

		sr, err := NewStandardResource(ref, res)
		if err != nil {
			return nil, err
		}

		found[ref.Directory()] = true
		resolved = append(resolved, sr)
	}

	if strings.HasSuffix(value, "/") {
		empty, err := r.checkDirectory(location, value, profile, found[value], emptyDirectories)
		if err != nil {
			return nil, err
		}

		if empty != nil {
			resolved = append(resolved, empty)
		}
	}

	log.Debug("Resolved location", "resources", len(resolved), "profile", profile)

	return resolved, nil
}

// checkDirectory ensures a mandatory directory exists, when the directory
// exists but no resources were found an empty directory resource is returned
func (r *Resolver) checkDirectory(location Location, dir, profile string, hasResources, emptyDirectories bool) (*StandardResource, error) {
	if location.Optional {
		return nil, nil
	}

	res := r.createResource(dir)
	if !res.Exists() {
		return nil, errors.NewLocationNotFoundError(location.String())
	}

	if hasResources || !emptyDirectories {
		return nil, nil
	}

	ref := NewReference(location, dir, dir, profile, "")

	return NewEmptyDirectoryResource(ref, res)
}

// references creates the candidate references for a location, value is the
// location value after any remote download
func (r *Resolver) references(location Location, value, profile string) ([]*Reference, error) {
	if strings.HasSuffix(value, "/") {
		refs := []*Reference{}
		for _, name := range r.options.ConfigNames {
			for _, ext := range r.options.Extensions {
				refs = append(refs, NewReference(location, value, value+name, profile, ext))
			}
		}

		return refs, nil
	}

	ext := strings.TrimPrefix(path.Ext(value), ".")
	if !slices.Contains(r.options.Extensions, ext) {
		return nil, errors.NewUnsupportedExtensionError(location.String(), ext, r.options.Extensions)
	}

	root := strings.TrimSuffix(value, "."+ext)

	return []*Reference{NewReference(location, "", root, profile, ext)}, nil
}

// download fetches a remote location and returns a file location for the
// downloaded content, directories end with a "/"
func (r *Resolver) download(ctx context.Context, src string) (string, error) {
	local, err := r.options.Getter.Get(ctx, src, r.options.CacheDir, r.options.IgnoreCache)
	if err != nil {
		return "", errwrap.Wrapf(fmt.Sprintf("unable to download remote location '%s': {{err}}", src), err)
	}

	value := FilePrefix + filepath.ToSlash(local)

	fi, err := os.Stat(local)
	if err != nil {
		return "", errwrap.Wrapf(fmt.Sprintf("remote location '%s' was not downloaded: {{err}}", src), err)
	}

	if fi.IsDir() {
		value += "/"
	}

	return value, nil
}

// createResource creates the resource handle for a location value
func (r *Resolver) createResource(value string) resource.Resource {
	if strings.HasPrefix(value, ClassPathPrefix) {
		return r.options.ClassPath.Resource(strings.TrimPrefix(value, ClassPathPrefix))
	}

	return resource.NewFileSystemResource(filepath.FromSlash(strings.TrimPrefix(value, FilePrefix)))
}
