// Package module holds the cross-module port registry and typed port lookups
package module

import "hebdate/internal/modkit"

// Module is the modkit contract; aliased so callers of PortsOf need only this package
type Module = modkit.Module
