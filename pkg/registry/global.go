package registry

import (
	"fmt"

	"github.com/arthur-debert/linkfarm/pkg/types"
)

// SourceFactory creates a metadata getter from a set of options. Well-known
// option keys are "fs" (types.FS), "suffix", "xml_suffix" and "index"
// (strings); factories ignore keys they do not understand.
type SourceFactory func(options map[string]interface{}) (types.MetadataGetter, error)

// sourceFactoryRegistry holds the factories for the named metadata sources.
var sourceFactoryRegistry Registry[SourceFactory]

func init() {
	sourceFactoryRegistry = New[SourceFactory]()
}

// RegisterSourceFactory registers a factory function for creating metadata
// getters under the given source name.
func RegisterSourceFactory(name string, factory SourceFactory) error {
	return sourceFactoryRegistry.Register(name, factory)
}

// GetSourceFactory retrieves a metadata source factory by name.
func GetSourceFactory(name string) (SourceFactory, error) {
	factory, err := sourceFactoryRegistry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("metadata source not found: %s", name)
	}
	return factory, nil
}

// NewSource creates a metadata getter by source name with the given options.
func NewSource(name string, options map[string]interface{}) (types.MetadataGetter, error) {
	factory, err := GetSourceFactory(name)
	if err != nil {
		return nil, err
	}

	getter, err := factory(options)
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata source %s: %w", name, err)
	}

	return getter, nil
}

// ListSources returns the names of all registered metadata sources.
func ListSources() []string {
	return sourceFactoryRegistry.List()
}
