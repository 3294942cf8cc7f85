package types

// Metadata maps field names to values for a single source file. A missing
// key means the file has no value for that field; consumers treat missing
// and empty identically.
type Metadata map[string]string

// Clone returns an independent copy of the metadata. Cloning nil yields nil.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
