// Package domain defines the core entities for hotwatch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - WatchConfiguration: Listen port plus ordered watched folders
//   - FolderWatch: One watched folder and its options
//   - DocumentationType: Closed tag set for documentation requests
//   - ErrorSeverity: Ordered severity scale used for escalation
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
