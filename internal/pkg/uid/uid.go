// Package uid provides identifier generators.
//
// NumberID is used for database entity identifiers; StringID is used for
// opaque string identifiers such as JWT IDs and correlation IDs.
package uid

// NumberID generates int64 identifiers.
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers.
type StringID interface {
	Generate() string
}
