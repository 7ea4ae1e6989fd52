// Package domain defines the core entities for triad.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Triple: a combination of three readings in encountered order
//   - SelectionKey: the ordering tuple that ranks combinations
//   - Report: the computed summary of the winning triple
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
