// Package services implements the driving port interfaces.
// Services contain the core logic and resolve driven ports
// (adapters) through the port registry.
//
// Services are pure Go with no external dependencies.
package services
