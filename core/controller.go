package core

import (
	"fmt"
	"sort"
)

// Args carries the keyword arguments of a chained operation call.
type Args map[string]any

// String returns the named argument as a string, with ok reporting presence
// and type match.
func (a Args) String(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok
}

// Float returns the named argument as a float64, accepting any numeric type.
func (a Args) Float(name string) (float64, bool) {
	switch v := a[name].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Int returns the named argument as an int, accepting any integer type.
func (a Args) Int(name string) (int, bool) {
	switch v := a[name].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Operation transforms a controller's pending request in place. Operations
// are registered per controller under a name and invoked through
// RequestManager.Apply with the caller's keyword arguments.
type Operation[Req any] func(pending *Req, args Args) error

// Operations is a named registry of request transformations. It is mutable
// while being assembled and frozen when handed to a controller; two
// controllers may register differently named or behaved operations.
type Operations[Req any] struct {
	ops map[string]Operation[Req]
}

// NewOperations creates an empty registry.
func NewOperations[Req any]() *Operations[Req] {
	return &Operations[Req]{ops: make(map[string]Operation[Req])}
}

// Register adds a named operation. Registering a name twice is an error:
// augmenting a registry never silently overwrites; use Override for an
// intentional replacement.
func (o *Operations[Req]) Register(name string, op Operation[Req]) error {
	if _, exists := o.ops[name]; exists {
		return fmt.Errorf("operation %q already registered (use Override to replace it)", name)
	}
	o.ops[name] = op
	return nil
}

// MustRegister is Register, panicking on a duplicate name. Registries are
// assembled at package init time, so a duplicate is a programming error.
func (o *Operations[Req]) MustRegister(name string, op Operation[Req]) *Operations[Req] {
	if err := o.Register(name, op); err != nil {
		panic(err)
	}
	return o
}

// Override replaces an operation by name, or registers it if absent. This is
// the explicit path for a derived registry to shadow an inherited operation.
func (o *Operations[Req]) Override(name string, op Operation[Req]) *Operations[Req] {
	o.ops[name] = op
	return o
}

// Extend returns a new registry holding a copy of every operation in o.
// Registrations on the copy augment the parent's set without mutating it,
// supporting multi-level derivation.
func (o *Operations[Req]) Extend() *Operations[Req] {
	child := NewOperations[Req]()
	for name, op := range o.ops {
		child.ops[name] = op
	}
	return child
}

// Get looks an operation up by name.
func (o *Operations[Req]) Get(name string) (Operation[Req], bool) {
	op, ok := o.ops[name]
	return op, ok
}

// Names returns the registered operation names, sorted.
func (o *Operations[Req]) Names() []string {
	names := make([]string, 0, len(o.ops))
	for name := range o.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResponseHook post-processes a decoded, schema-valid response. It must not
// fail for well-formed input.
type ResponseHook[Resp any] func(resp *Resp)

// ErrorHook converts a non-2xx or failed transport outcome into the value a
// caller receives in place of a response. The default returns the zero value
// of the response type (the "null response"), so callers can always read
// fields without branching on presence.
type ErrorHook[Resp any] func(resp *Response) Resp

// Controller binds one API endpoint to a request schema and a response
// schema. The binding is immutable: descriptor, operation set and transport
// are fixed at construction, and all per-request state lives in the owned
// RequestManager.
//
// Construction fails fast: a malformed endpoint descriptor is rejected here,
// before any request is attempted.
type Controller[Req, Resp any] struct {
	name       string
	endpoint   Endpoint
	transport  *Transport
	ops        *Operations[Req]
	onResponse ResponseHook[Resp]
	onError    ErrorHook[Resp]
	request    *RequestManager[Req, Resp]
}

// ControllerOption configures a Controller at construction time.
type ControllerOption[Req, Resp any] func(*Controller[Req, Resp])

// WithOperations supplies the controller's operations registry. The registry
// is frozen from the controller's point of view once construction returns.
func WithOperations[Req, Resp any](ops *Operations[Req]) ControllerOption[Req, Resp] {
	return func(c *Controller[Req, Resp]) {
		if ops != nil {
			c.ops = ops
		}
	}
}

// WithResponseHook overrides the identity response hook.
func WithResponseHook[Req, Resp any](hook ResponseHook[Resp]) ControllerOption[Req, Resp] {
	return func(c *Controller[Req, Resp]) {
		if hook != nil {
			c.onResponse = hook
		}
	}
}

// WithErrorHook overrides the null-response error hook.
func WithErrorHook[Req, Resp any](hook ErrorHook[Resp]) ControllerOption[Req, Resp] {
	return func(c *Controller[Req, Resp]) {
		if hook != nil {
			c.onError = hook
		}
	}
}

// NewController validates the endpoint descriptor and builds the immutable
// binding. name identifies the controller in error messages.
func NewController[Req, Resp any](name, descriptor string, transport *Transport, opts ...ControllerOption[Req, Resp]) (*Controller[Req, Resp], error) {
	endpoint, err := ParseEndpoint(descriptor)
	if err != nil {
		return nil, err
	}

	c := &Controller[Req, Resp]{
		name:       name,
		endpoint:   endpoint,
		transport:  transport,
		ops:        NewOperations[Req](),
		onResponse: func(*Resp) {},
		onError: func(*Response) Resp {
			var null Resp
			return null
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.request = &RequestManager[Req, Resp]{controller: c}
	return c, nil
}

// MustController is NewController, panicking on a malformed descriptor.
// Concrete controllers fix their descriptors as literals at definition time,
// so a failure here is a programming error caught before any I/O.
func MustController[Req, Resp any](name, descriptor string, transport *Transport, opts ...ControllerOption[Req, Resp]) *Controller[Req, Resp] {
	c, err := NewController[Req, Resp](name, descriptor, transport, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the controller identifier used in error messages.
func (c *Controller[Req, Resp]) Name() string { return c.name }

// Endpoint returns the validated endpoint binding.
func (c *Controller[Req, Resp]) Endpoint() Endpoint { return c.endpoint }

// Operations returns the sorted names of the registered operations.
func (c *Controller[Req, Resp]) Operations() []string { return c.ops.Names() }

// Transport returns the injected transport service.
func (c *Controller[Req, Resp]) Transport() *Transport { return c.transport }

// Request returns the controller's request manager. The manager is created
// alongside the controller and reused across calls; Prepare resets it.
func (c *Controller[Req, Resp]) Request() *RequestManager[Req, Resp] {
	return c.request
}
