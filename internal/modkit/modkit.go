// Package modkit provides module wiring and core deps
package modkit

import (
	phttp "hebdate/internal/platform/net/http"
)

// Module is the common surface for API modules that can mount routes and expose ports
// keep this tiny so modules stay decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided versioned router
	MountRoutes(r phttp.Router)
	// Ports returns a module specific port set for cross wiring (the CLI pulls services from here)
	Ports() any
	// Name returns the module name
	Name() string
}

// LegacyMounter is implemented by modules that also answer on the flat unversioned /api paths
// the router passed in is already scoped to /api
type LegacyMounter interface {
	MountLegacy(r phttp.Router)
}

// Builder constructs a Module from shared deps and options
// modules expose New(deps Deps, opts ...Option) Module
type Builder func(Deps, ...Option) Module
