package fn

// Fn2 is the binary variant of Fn: it wraps a callable of signature
// R(A, B). See Fn for the full contract.
type Fn2[A, B, R any] struct {
	t target2[A, B, R]
}

type target2[A, B, R any] interface {
	invoke(a A, b B) R
	clone() target2[A, B, R]
}

type funcTarget2[A, B, R any] struct {
	f func(A, B) R
}

func (t *funcTarget2[A, B, R]) invoke(a A, b B) R {
	return t.f(a, b)
}

func (t *funcTarget2[A, B, R]) clone() target2[A, B, R] {
	return &funcTarget2[A, B, R]{f: t.f}
}

type methodTarget2[C, A, B, R any] struct {
	recv   *C
	method func(*C, A, B) R
}

func (t *methodTarget2[C, A, B, R]) invoke(a A, b B) R {
	return t.method(t.recv, a, b)
}

func (t *methodTarget2[C, A, B, R]) clone() target2[A, B, R] {
	return &methodTarget2[C, A, B, R]{recv: t.recv, method: t.method}
}

// New2 creates a wrapper from a function value, equivalent to Bind2.
func New2[A, B, R any](f func(A, B) R) Fn2[A, B, R] {
	return Bind2(f)
}

// Bind2 creates a wrapper dispatching to f.
func Bind2[A, B, R any](f func(A, B) R) Fn2[A, B, R] {
	return Fn2[A, B, R]{t: &funcTarget2[A, B, R]{f: f}}
}

// BindMethod2 creates a wrapper dispatching method on recv.
func BindMethod2[C, A, B, R any](recv *C, method func(*C, A, B) R) Fn2[A, B, R] {
	return Fn2[A, B, R]{t: &methodTarget2[C, A, B, R]{recv: recv, method: method}}
}

// Call invokes the wrapped callable, forwarding both arguments.
func (f Fn2[A, B, R]) Call(a A, b B) R {
	assert(f.t != nil, "call through unbound fn.Fn2")
	return f.t.invoke(a, b)
}

// Clone returns an independent wrapper holding a fresh copy of the target.
func (f Fn2[A, B, R]) Clone() Fn2[A, B, R] {
	if f.t == nil {
		return Fn2[A, B, R]{}
	}
	return Fn2[A, B, R]{t: f.t.clone()}
}

// Assign replaces f's target with a duplicate of other's; self-assignment
// safe.
func (f *Fn2[A, B, R]) Assign(other Fn2[A, B, R]) {
	var t target2[A, B, R]
	if other.t != nil {
		t = other.t.clone()
	}
	f.t = t
}

// IsZero reports whether the wrapper is unbound.
func (f Fn2[A, B, R]) IsZero() bool {
	return f.t == nil
}
