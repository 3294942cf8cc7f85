package metadata

import (
	"fmt"

	lferrors "github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/filesystem"
	"github.com/arthur-debert/linkfarm/pkg/registry"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// Names of the bundled metadata sources in the global registry.
const (
	SourceYAML  = "yaml"
	SourceXML   = "xml"
	SourceIndex = "index"
	SourceAuto  = "auto"
)

func init() {
	register(SourceYAML, func(options map[string]interface{}) (types.MetadataGetter, error) {
		fsys, err := fsOption(options)
		if err != nil {
			return nil, err
		}
		suffix, err := stringOption(options, "suffix")
		if err != nil {
			return nil, err
		}
		return NewSidecar(fsys, suffix), nil
	})

	register(SourceXML, func(options map[string]interface{}) (types.MetadataGetter, error) {
		fsys, err := fsOption(options)
		if err != nil {
			return nil, err
		}
		suffix, err := stringOption(options, "xml_suffix")
		if err != nil {
			return nil, err
		}
		return NewXMLSidecar(fsys, suffix), nil
	})

	register(SourceIndex, func(options map[string]interface{}) (types.MetadataGetter, error) {
		fsys, err := fsOption(options)
		if err != nil {
			return nil, err
		}
		indexName, err := stringOption(options, "index")
		if err != nil {
			return nil, err
		}
		return NewDirIndex(fsys, indexName), nil
	})

	register(SourceAuto, func(options map[string]interface{}) (types.MetadataGetter, error) {
		fsys, err := fsOption(options)
		if err != nil {
			return nil, err
		}
		suffix, err := stringOption(options, "suffix")
		if err != nil {
			return nil, err
		}
		xmlSuffix, err := stringOption(options, "xml_suffix")
		if err != nil {
			return nil, err
		}
		indexName, err := stringOption(options, "index")
		if err != nil {
			return nil, err
		}
		return NewChain(
			NewSidecar(fsys, suffix),
			NewXMLSidecar(fsys, xmlSuffix),
			NewDirIndex(fsys, indexName),
		), nil
	})
}

func register(name string, factory registry.SourceFactory) {
	if err := registry.RegisterSourceFactory(name, factory); err != nil {
		panic(fmt.Sprintf("failed to register %s metadata source: %v", name, err))
	}
}

// fsOption extracts the "fs" option, defaulting to the OS filesystem.
func fsOption(options map[string]interface{}) (types.FS, error) {
	raw, ok := options["fs"]
	if !ok || raw == nil {
		return filesystem.NewOS(), nil
	}
	fsys, ok := raw.(types.FS)
	if !ok {
		return nil, lferrors.Newf(lferrors.ErrInvalidInput,
			"option fs must be a filesystem, got %T", raw)
	}
	return fsys, nil
}

// stringOption extracts an optional string option, defaulting to "".
func stringOption(options map[string]interface{}, key string) (string, error) {
	raw, ok := options[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", lferrors.Newf(lferrors.ErrInvalidInput,
			"option %s must be a string, got %T", key, raw)
	}
	return s, nil
}
