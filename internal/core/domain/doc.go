// Package domain defines the core entities for Stargazer.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Repository and Catalog: starred repository metadata, in fetch order
//   - StarList and Memberships: user-curated lists and their scraped members
//   - ListedSet: repositories already emitted under a list
//   - Config: the single explicit run configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
