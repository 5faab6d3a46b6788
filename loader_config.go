package configdata

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/jumppad-labs/configdata/errors"
	"github.com/jumppad-labs/configdata/logger"
	"github.com/jumppad-labs/configdata/resource"
)

const (
	// ProfilesEnvVar overrides the profiles of a loader configuration, the
	// value is a comma separated list
	ProfilesEnvVar = "CONFIGDATA_PROFILES"
	// LocationsEnvVar overrides the locations of a loader configuration, the
	// value is a ";" separated list
	LocationsEnvVar = "CONFIGDATA_LOCATIONS"
)

// LoaderConfig defines where config data is loaded from, it is normally read
// from a HCL file using ParseLoaderConfig
type LoaderConfig struct {
	ConfigNames []string         `hcl:"config_names,optional"`
	Extensions  []string         `hcl:"extensions,optional"`
	ClassPath   []string         `hcl:"class_path,optional"`
	CacheDir    string           `hcl:"cache_dir,optional"`
	IgnoreCache bool             `hcl:"ignore_cache,optional"`
	Profiles    []string         `hcl:"profiles,optional"`
	Locations   []LocationConfig `hcl:"location,block"`
}

// LocationConfig is a location block
//
//	location "classpath:/config/" {
//	  optional = true
//	}
type LocationConfig struct {
	Value    string `hcl:"value,label"`
	Optional bool   `hcl:"optional,optional"`
}

// Location converts the block into a Location, an "optional:" prefix in the
// label is honoured as well as the optional attribute
func (l LocationConfig) Location() Location {
	loc := ParseLocation(l.Value)
	loc.Optional = loc.Optional || l.Optional

	return loc
}

// DefaultLoaderConfig returns an empty LoaderConfig with the environment
// overrides applied
func DefaultLoaderConfig() *LoaderConfig {
	lc := &LoaderConfig{}
	lc.applyEnvironment()

	return lc
}

// ParseLoaderConfig reads a loader configuration file. Relative class path
// roots are resolved against the folder containing the file. Environment
// overrides are applied after the file has been decoded.
func ParseLoaderConfig(file string) (*LoaderConfig, error) {
	parser := hclparse.NewParser()

	f, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return nil, diagnosticsError(diags, file)
	}

	lc := &LoaderConfig{}

	diags = gohcl.DecodeBody(f.Body, buildContext(file), lc)
	if diags.HasErrors() {
		return nil, diagnosticsError(diags, file)
	}

	for i, cp := range lc.ClassPath {
		lc.ClassPath[i] = ensureAbsolute(cp, file)
	}

	lc.applyEnvironment()

	return lc, nil
}

// applyEnvironment overrides profiles and locations from the environment
func (lc *LoaderConfig) applyEnvironment() {
	if v := os.Getenv(ProfilesEnvVar); v != "" {
		lc.Profiles = []string{}
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				lc.Profiles = append(lc.Profiles, p)
			}
		}
	}

	if v := os.Getenv(LocationsEnvVar); v != "" {
		lc.Locations = []LocationConfig{}
		for _, l := range (Location{Value: v}).Split() {
			lc.Locations = append(lc.Locations, LocationConfig{Value: l.Value, Optional: l.Optional})
		}
	}
}

// ResolverOptions converts the configuration into ResolverOptions, unset
// values are left empty so NewResolver applies its defaults
func (lc *LoaderConfig) ResolverOptions(log logger.Logger) *ResolverOptions {
	o := &ResolverOptions{
		ConfigNames: lc.ConfigNames,
		Extensions:  lc.Extensions,
		CacheDir:    lc.CacheDir,
		IgnoreCache: lc.IgnoreCache,
		Logger:      log,
	}

	if len(lc.ClassPath) > 0 {
		o.ClassPath = resource.NewClassPath(lc.ClassPath...)
	}

	return o
}

func diagnosticsError(diags hcl.Diagnostics, file string) error {
	ce := errors.NewConfigError()

	for _, d := range diags.Errs() {
		if hd, ok := d.(*hcl.Diagnostic); ok {
			ce.AppendParseError(errors.NewParserErrorFromHCLDiag(hd, file))
			continue
		}

		ce.AppendParseError(d)
	}

	return ce
}
