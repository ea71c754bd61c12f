// Package registry resolves capability ports to their implementations.
//
// A capability port is an interface declared in ports/driven. Bootstrap code
// binds one implementation per port type; services resolve it on demand.
// The registry is an explicit value handed to whoever needs resolution,
// never a package-level singleton.
//
// Binding is last-write-wins, so test harnesses can substitute fakes
// without an unregister step. Resolving an unbound port fails with
// domain.ErrPortNotConfigured; there is no silent default.
package registry
