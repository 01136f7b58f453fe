package modkit

import "net/http"

// Option configures a module build
type Option func(*Built)

// WithName sets the module name used in logs and panics
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the mount path, normalized on Mount
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module scoped middleware, applied in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the ports it consumes from other modules
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }
