package errors

import "strings"

// ConfigError collects the errors that were encountered while loading config
// data so that every problem can be reported at once
type ConfigError struct {
	// ParseErrors is a list of errors that were encountered while reading the
	// loader configuration file
	ParseErrors []error

	// ResolveErrors is a list of errors that were encountered while resolving
	// locations into config data resources
	ResolveErrors []error
}

func NewConfigError() *ConfigError {
	return &ConfigError{
		ParseErrors:   []error{},
		ResolveErrors: []error{},
	}
}

// AppendParseError adds a new parse error to the list of errors
func (p *ConfigError) AppendParseError(err error) {
	p.ParseErrors = append(p.ParseErrors, err)
}

// AppendResolveError adds a new resolve error to the list of errors
func (p *ConfigError) AppendResolveError(err error) {
	p.ResolveErrors = append(p.ResolveErrors, err)
}

// ContainsErrors returns true when at least one error has been appended
func (p *ConfigError) ContainsErrors() bool {
	return len(p.ParseErrors) > 0 || len(p.ResolveErrors) > 0
}

// Error pretty prints the error message as a string
func (p *ConfigError) Error() string {
	err := strings.Builder{}

	for _, e := range p.ParseErrors {
		err.WriteString(e.Error() + "\n")
	}

	for _, e := range p.ResolveErrors {
		err.WriteString(e.Error() + "\n")
	}

	return strings.TrimSuffix(err.String(), "\n")
}
