// Package options implements the option bridge: a façade over the host
// platform's named-options store exposing a uniform get/add/update/delete
// surface, with each underlying operation held as a replaceable function.
//
// The bridge itself performs no I/O. It validates the option name, delegates
// to the bound function for the requested operation, and passes the result
// through unchanged. Tests (and callers with special storage needs) swap
// individual bindings without touching the rest of the plugin.
package options

import "fmt"

// Binding signatures for the four operations. Values are `any` because the
// platform imposes no schema on option values; anything the bound function
// can serialize is acceptable.
type (
	// ReadFunc retrieves the value stored under name, resolving to fallback
	// when no value exists.
	ReadFunc func(name string, fallback any) any

	// CreateFunc stores a value under name only if the option does not
	// already exist. Reports whether the option was created.
	CreateFunc func(name string, value any) bool

	// UpdateFunc stores a value under name, creating or overwriting it.
	// Reports whether the write succeeded.
	UpdateFunc func(name string, value any) bool

	// DeleteFunc removes the option stored under name. Reports whether the
	// delete succeeded.
	DeleteFunc func(name string) bool
)

// Logger is the sink for bridge diagnostics. pluginapi.Client.Log satisfies
// it, so the deployed plugin reports through the platform log service.
type Logger interface {
	Warn(message string, keyValuePairs ...any)
}

// Bindings carries the default operation functions supplied at construction.
// PlatformBindings builds the set backed by the plugin KV store.
type Bindings struct {
	Read   ReadFunc
	Create CreateFunc
	Update UpdateFunc
	Delete DeleteFunc
}

// Bridge is the option façade. The four bindings are mutable for the life of
// the instance; reassigning one takes effect for all subsequent calls and
// never retroactively. Reassignment is not synchronized — if a bridge is
// shared across goroutines that also rewrite bindings, the last writer wins.
type Bridge struct {
	read   ReadFunc
	create CreateFunc
	update UpdateFunc
	delete DeleteFunc

	log Logger
}

// Option overrides a single binding at construction time.
type Option func(*Bridge)

// WithReadFunc sets the initial read binding, replacing the platform default.
func WithReadFunc(fn ReadFunc) Option {
	return func(b *Bridge) { b.read = fn }
}

// WithCreateFunc sets the initial create binding, replacing the platform default.
func WithCreateFunc(fn CreateFunc) Option {
	return func(b *Bridge) { b.create = fn }
}

// WithUpdateFunc sets the initial update binding, replacing the platform default.
func WithUpdateFunc(fn UpdateFunc) Option {
	return func(b *Bridge) { b.update = fn }
}

// WithDeleteFunc sets the initial delete binding, replacing the platform default.
func WithDeleteFunc(fn DeleteFunc) Option {
	return func(b *Bridge) { b.delete = fn }
}

// New creates a Bridge with the given default bindings, then applies any
// construction options on top. The logger must be non-nil; it receives the
// invalid-name diagnostics.
func New(defaults Bindings, log Logger, opts ...Option) *Bridge {
	b := &Bridge{
		read:   defaults.Read,
		create: defaults.Create,
		update: defaults.Update,
		delete: defaults.Delete,
		log:    log,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Get returns the value stored under name, or fallback if the name is not a
// string or the read binding resolves to its not-found result. The binding's
// return value is passed through unchanged.
func (b *Bridge) Get(name any, fallback any) any {
	key, ok := b.validName("get", name)
	if !ok {
		return fallback
	}
	return b.read(key, fallback)
}

// Add creates the option under name with the given value. Returns false if
// the name is not a string; otherwise returns the create binding's result
// unchanged (false when the option already exists or the write failed).
func (b *Bridge) Add(name any, value any) bool {
	key, ok := b.validName("add", name)
	if !ok {
		return false
	}
	return b.create(key, value)
}

// Update stores value under name, creating or overwriting the option.
// Returns false if the name is not a string; otherwise returns the update
// binding's result unchanged.
func (b *Bridge) Update(name any, value any) bool {
	key, ok := b.validName("update", name)
	if !ok {
		return false
	}
	return b.update(key, value)
}

// Delete removes the option stored under name. Returns false if the name is
// not a string; otherwise returns the delete binding's result unchanged.
func (b *Bridge) Delete(name any) bool {
	key, ok := b.validName("delete", name)
	if !ok {
		return false
	}
	return b.delete(key)
}

// SetReadFunction replaces the read binding for all subsequent calls.
func (b *Bridge) SetReadFunction(fn ReadFunc) {
	b.read = fn
}

// SetCreateFunction replaces the create binding for all subsequent calls.
func (b *Bridge) SetCreateFunction(fn CreateFunc) {
	b.create = fn
}

// SetUpdateFunction replaces the update binding for all subsequent calls.
func (b *Bridge) SetUpdateFunction(fn UpdateFunc) {
	b.update = fn
}

// SetDeleteFunction replaces the delete binding for all subsequent calls.
func (b *Bridge) SetDeleteFunction(fn DeleteFunc) {
	b.delete = fn
}

// validName is the single validation point shared by all four operations.
// An option name is valid if and only if it is a string. Invalid names are
// reported through the logger, naming the operation and the runtime type
// supplied, and the operation short-circuits without invoking its binding.
func (b *Bridge) validName(operation string, name any) (string, bool) {
	key, ok := name.(string)
	if !ok {
		b.log.Warn("option name must be a string", "operation", operation, "type", fmt.Sprintf("%T", name))
		return "", false
	}
	return key, true
}
