// Package module holds the module contract and cross module port lookup
package module

import phttp "hidegrade/internal/platform/net/http"

// Module mounts its routes and exposes a ports bundle for other modules
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
