package config

import (
	"github.com/arthur-debert/linkfarm/pkg/builder"
	lferrors "github.com/arthur-debert/linkfarm/pkg/errors"
	"github.com/arthur-debert/linkfarm/pkg/filters"
	"github.com/arthur-debert/linkfarm/pkg/metadata"
	"github.com/arthur-debert/linkfarm/pkg/registry"
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// BuilderOptions assembles builder options from the configuration: parsed
// templates, the link mode and collision policy, the metadata getter
// resolved through the source registry, and the file filter. The filter is
// the configured include/exclude globs plus an implicit exclusion of the
// active source's own metadata files, so sidecars and indexes never get
// linked as storage files.
func (c *Config) BuilderOptions(fsys types.FS) (builder.Options, error) {
	templates, err := ParseTemplates(c.LinkPaths)
	if err != nil {
		return builder.Options{}, err
	}

	policy, err := builder.ParseExistingPolicy(c.OnExisting)
	if err != nil {
		return builder.Options{}, err
	}

	mode := builder.LinkSymbolic
	if c.Hardlink {
		mode = builder.LinkHard
	}

	filter, err := c.buildFilter()
	if err != nil {
		return builder.Options{}, err
	}

	getter, err := c.metadataGetter(fsys)
	if err != nil {
		return builder.Options{}, err
	}

	return builder.Options{
		StorageRoot:  c.StorageRoot,
		StorageRoots: c.StorageRoots,
		LinkRoot:     c.LinkRoot,
		LinkPaths:    templates,
		FileFilter:   filter,
		Metadata:     getter,
		LinkMode:     mode,
		OnExisting:   policy,
		FS:           fsys,
	}, nil
}

func (c *Config) metadataGetter(fsys types.FS) (types.MetadataGetter, error) {
	source := c.Metadata.Source
	if source == "" {
		source = metadata.SourceYAML
	}

	getter, err := registry.NewSource(source, map[string]interface{}{
		"fs":         fsys,
		"suffix":     c.Metadata.Suffix,
		"xml_suffix": c.Metadata.XMLSuffix,
		"index":      c.Metadata.Index,
	})
	if err != nil {
		return nil, lferrors.Wrapf(err, lferrors.ErrConfigInvalid,
			"metadata source %s", source)
	}
	return getter, nil
}

func (c *Config) buildFilter() (types.FileFilter, error) {
	var parts []types.FileFilter

	include := filters.Everything()
	if len(c.Filter.Include) > 0 {
		globs, err := globFilters(c.Filter.Include)
		if err != nil {
			return nil, err
		}
		include = filters.Any(globs...)
	}
	parts = append(parts, include)

	if len(c.Filter.Exclude) > 0 {
		globs, err := globFilters(c.Filter.Exclude)
		if err != nil {
			return nil, err
		}
		parts = append(parts, filters.Not(filters.Any(globs...)))
	}

	artifacts, err := c.artifactFilters()
	if err != nil {
		return nil, err
	}
	if len(artifacts) > 0 {
		parts = append(parts, filters.Not(filters.Any(artifacts...)))
	}

	if len(parts) == 1 {
		return include, nil
	}
	return filters.All(parts...), nil
}

// artifactFilters matches the metadata files of the active source. Sources
// this configuration does not use keep their names linkable; only "auto"
// claims all three.
func (c *Config) artifactFilters() ([]types.FileFilter, error) {
	source := c.Metadata.Source
	if source == "" {
		source = metadata.SourceYAML
	}

	suffix := c.Metadata.Suffix
	if suffix == "" {
		suffix = metadata.DefaultSidecarSuffix
	}
	xmlSuffix := c.Metadata.XMLSuffix
	if xmlSuffix == "" {
		xmlSuffix = metadata.DefaultXMLSidecarSuffix
	}
	index := c.Metadata.Index
	if index == "" {
		index = metadata.DefaultIndexName
	}

	var patterns []string
	switch source {
	case metadata.SourceYAML:
		patterns = []string{"*" + suffix}
	case metadata.SourceXML:
		patterns = []string{"*" + xmlSuffix}
	case metadata.SourceIndex:
		patterns = []string{index}
	case metadata.SourceAuto:
		patterns = []string{"*" + suffix, "*" + xmlSuffix, index}
	}
	return globFilters(patterns)
}

func globFilters(patterns []string) ([]types.FileFilter, error) {
	result := make([]types.FileFilter, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := filters.NewGlob(pattern)
		if err != nil {
			return nil, lferrors.Wrapf(err, lferrors.ErrConfigInvalid,
				"filter pattern %q", pattern)
		}
		result = append(result, g)
	}
	return result, nil
}
