// Package modkit wires API modules from shared deps and build options
package modkit

import "hidegrade/internal/modkit/module"

// Module is the surface api.Mount drives: routes, ports and a name
type Module = module.Module
