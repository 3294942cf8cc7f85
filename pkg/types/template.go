package types

import "strings"

// Template is an ordered list of metadata field names describing one link
// hierarchy: each field contributes one directory level, outermost first.
type Template []string

// String renders the template in the compact "field/field" form used by
// configuration files.
func (t Template) String() string {
	return strings.Join(t, "/")
}
