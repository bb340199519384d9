// Package form tracks the state of a single data-entry form: the value,
// status and message of every field, the dependencies between fields and the
// payload assembled from them.
//
// A Form is not safe for concurrent use. It is owned by the host's event loop.
package form

// OptionsLookup supplies the dynamic options of region and commune selects.
type OptionsLookup interface {
	Regions() []string
	Communes(region string) []string
}
