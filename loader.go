package configdata

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/hashicorp/errwrap"
	"github.com/jumppad-labs/configdata/errors"
	"github.com/jumppad-labs/configdata/logger"
)

// Loader resolves every location of a LoaderConfig
type Loader struct {
	config   *LoaderConfig
	resolver *Resolver
	log      logger.Logger
}

// NewLoader creates a Loader for the given configuration
func NewLoader(config *LoaderConfig, log logger.Logger) (*Loader, error) {
	if config == nil {
		return nil, errors.NewNotNullError("config")
	}

	if log == nil {
		log = logger.NopLogger{}
	}

	r, err := NewResolver(config.ResolverOptions(log))
	if err != nil {
		return nil, err
	}

	return &Loader{config: config, resolver: r, log: log}, nil
}

// NewLoaderWithResolver creates a Loader that uses an existing Resolver
func NewLoaderWithResolver(config *LoaderConfig, resolver *Resolver, log logger.Logger) *Loader {
	if log == nil {
		log = logger.NopLogger{}
	}

	return &Loader{config: config, resolver: resolver, log: log}
}

// Load resolves the locations in order, each location is followed by its
// profile specific resources. Duplicate resources are removed. Errors for
// individual locations are collected and returned together as a
// *errors.ConfigError.
func (l *Loader) Load(ctx context.Context) ([]*StandardResource, error) {
	ce := errors.NewConfigError()
	all := []*StandardResource{}

	for _, lc := range l.config.Locations {
		for _, loc := range lc.Location().Split() {
			res, err := l.resolver.Resolve(ctx, loc)
			if err == nil && len(l.config.Profiles) > 0 {
				var profiled []*StandardResource
				profiled, err = l.resolver.ResolveProfileSpecific(ctx, loc, l.config.Profiles)
				res = append(res, profiled...)
			}

			if err != nil {
				if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
					return nil, err
				}

				ce.AppendResolveError(errwrap.Wrapf(fmt.Sprintf("unable to resolve location '%s': {{err}}", loc), err))
				continue
			}

			all = append(all, res...)
		}
	}

	if ce.ContainsErrors() {
		return nil, ce
	}

	resolved := Dedupe(all)
	l.log.Info("Loaded config data", "locations", len(l.config.Locations), "resources", len(resolved))

	return resolved, nil
}
