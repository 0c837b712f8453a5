// Package domain defines the core types for esq.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchRequest: The named-option bundle describing one search
//   - Record: One row of search output, as ordered named fields
//   - Columns: The output columns a search asks for
//   - ExportFormat: A file format the engine exports to directly
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
