// Package domain defines the core business entities for hhvac.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawListing: A vacancy as decoded from the HeadHunter API
//   - Vacancy: The canonical, persisted representation of a listing
//   - StoreResult / SaveResult: Explicit outcomes of store operations
//   - Settings: Resolved runtime configuration
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
