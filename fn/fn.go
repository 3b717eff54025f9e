package fn

// target is the erased callable shape behind Fn. Concrete variants carry
// the dispatch information; clone is the "duplicate myself" capability used
// by the copy path, so that copies never share a target.
type target[A, R any] interface {
	invoke(a A) R
	clone() target[A, R]
}

// funcTarget dispatches to a plain function value.
type funcTarget[A, R any] struct {
	f func(A) R
}

func (t *funcTarget[A, R]) invoke(a A) R {
	return t.f(a)
}

func (t *funcTarget[A, R]) clone() target[A, R] {
	return &funcTarget[A, R]{f: t.f}
}

// methodTarget dispatches a method expression on a bound receiver. The
// receiver is a pure back-reference: the target does not control its
// lifetime.
type methodTarget[C, A, R any] struct {
	recv   *C
	method func(*C, A) R
}

func (t *methodTarget[C, A, R]) invoke(a A) R {
	return t.method(t.recv, a)
}

func (t *methodTarget[C, A, R]) clone() target[A, R] {
	return &methodTarget[C, A, R]{recv: t.recv, method: t.method}
}

// Fn wraps a unary callable of signature R(A), erasing whether it
// dispatches to a function value or to a method on a bound receiver.
//
// The zero value is an unbound wrapper; calling it panics. Use Bind,
// BindMethod or New to obtain a bound wrapper.
type Fn[A, R any] struct {
	t target[A, R]
}

// New creates a wrapper from a function value. Constructor sugar,
// equivalent to Bind.
func New[A, R any](f func(A) R) Fn[A, R] {
	return Bind(f)
}

// Bind creates a wrapper dispatching to f. f may be a free function, a
// static-style function, a method value or a closure. Binding a nil
// function is a contract violation; the wrapper will panic when called.
func Bind[A, R any](f func(A) R) Fn[A, R] {
	return Fn[A, R]{t: &funcTarget[A, R]{f: f}}
}

// BindMethod creates a wrapper dispatching method on recv, using the method
// expression form:
//
//	fn.BindMethod(&obj, (*Obj).Method)
//
// The wrapper keeps a back-reference to recv for dispatch but takes no
// responsibility for its lifetime. Binding a nil receiver is a contract
// violation; the wrapper will panic when called (unless the method
// tolerates a nil receiver).
func BindMethod[C, A, R any](recv *C, method func(*C, A) R) Fn[A, R] {
	return Fn[A, R]{t: &methodTarget[C, A, R]{recv: recv, method: method}}
}

// Call invokes the wrapped callable, forwarding a and returning the result
// unchanged.
func (f Fn[A, R]) Call(a A) R {
	assert(f.t != nil, "call through unbound fn.Fn")
	return f.t.invoke(a)
}

// Clone returns an independent wrapper holding a fresh copy of the target
// with identical dispatch behavior. Reassigning or discarding one wrapper
// does not affect the other.
func (f Fn[A, R]) Clone() Fn[A, R] {
	if f.t == nil {
		return Fn[A, R]{}
	}
	return Fn[A, R]{t: f.t.clone()}
}

// Assign replaces f's target with a duplicate of other's. The duplicate is
// taken before the old target is released, so self-assignment is safe.
func (f *Fn[A, R]) Assign(other Fn[A, R]) {
	var t target[A, R]
	if other.t != nil {
		t = other.t.clone()
	}
	f.t = t
}

// IsZero reports whether the wrapper is unbound.
func (f Fn[A, R]) IsZero() bool {
	return f.t == nil
}
