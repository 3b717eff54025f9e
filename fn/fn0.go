package fn

// Fn0 is the niladic variant of Fn: it wraps a callable of signature R().
// See Fn for the full contract.
type Fn0[R any] struct {
	t target0[R]
}

type target0[R any] interface {
	invoke() R
	clone() target0[R]
}

type funcTarget0[R any] struct {
	f func() R
}

func (t *funcTarget0[R]) invoke() R {
	return t.f()
}

func (t *funcTarget0[R]) clone() target0[R] {
	return &funcTarget0[R]{f: t.f}
}

type methodTarget0[C, R any] struct {
	recv   *C
	method func(*C) R
}

func (t *methodTarget0[C, R]) invoke() R {
	return t.method(t.recv)
}

func (t *methodTarget0[C, R]) clone() target0[R] {
	return &methodTarget0[C, R]{recv: t.recv, method: t.method}
}

// New0 creates a wrapper from a function value, equivalent to Bind0.
func New0[R any](f func() R) Fn0[R] {
	return Bind0(f)
}

// Bind0 creates a wrapper dispatching to f.
func Bind0[R any](f func() R) Fn0[R] {
	return Fn0[R]{t: &funcTarget0[R]{f: f}}
}

// BindMethod0 creates a wrapper dispatching method on recv.
func BindMethod0[C, R any](recv *C, method func(*C) R) Fn0[R] {
	return Fn0[R]{t: &methodTarget0[C, R]{recv: recv, method: method}}
}

// Call invokes the wrapped callable.
func (f Fn0[R]) Call() R {
	assert(f.t != nil, "call through unbound fn.Fn0")
	return f.t.invoke()
}

// Clone returns an independent wrapper holding a fresh copy of the target.
func (f Fn0[R]) Clone() Fn0[R] {
	if f.t == nil {
		return Fn0[R]{}
	}
	return Fn0[R]{t: f.t.clone()}
}

// Assign replaces f's target with a duplicate of other's; self-assignment
// safe.
func (f *Fn0[R]) Assign(other Fn0[R]) {
	var t target0[R]
	if other.t != nil {
		t = other.t.clone()
	}
	f.t = t
}

// IsZero reports whether the wrapper is unbound.
func (f Fn0[R]) IsZero() bool {
	return f.t == nil
}
