// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services resolve these interfaces through the port registry, and
// infrastructure adapters implement them.
//
// # Required Interfaces
//
//   - ConfigurationPort: Loads the WatchConfiguration
//
// # Optional Interfaces
//
//   - SourceDescriber: Reports where a ConfigurationPort reads from
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
