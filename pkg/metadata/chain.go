package metadata

import (
	"github.com/arthur-debert/linkfarm/pkg/types"
)

// Chain consults a list of getters in order and returns the first
// non-empty result. An error from any getter aborts the chain.
type Chain struct {
	getters []types.MetadataGetter
}

// NewChain creates a Chain over the given getters, consulted in order.
func NewChain(getters ...types.MetadataGetter) *Chain {
	return &Chain{getters: getters}
}

// Metadata returns the first non-empty result from the chain. If every
// getter comes back empty, the result is empty metadata.
func (c *Chain) Metadata(path string) (types.Metadata, error) {
	for _, g := range c.getters {
		meta, err := g.Metadata(path)
		if err != nil {
			return nil, err
		}
		if len(meta) > 0 {
			return meta, nil
		}
	}
	return types.Metadata{}, nil
}
