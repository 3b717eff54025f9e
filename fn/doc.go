/*
Package fn provides type-erased callable wrappers.

A wrapper binds one of a small closed set of callable shapes — a function
value (free function, static-style function or closure) or an instance
method together with its receiver — behind one uniform calling interface.
Client code invokes the wrapper without knowing which shape it holds.

Wrappers come in arities 0 to 2: Fn0[R] for niladic callables, Fn[A, R] for
unary ones and Fn2[A, B, R] for binary ones. The design is identical across
arities; Fn carries the full documentation.

Ownership model: every bound wrapper owns exactly one target object,
exclusively. Clone duplicates the target, never shares it, so two wrappers
are always independent. A method-bound target keeps a back-reference to its
receiver for dispatch only; it does not manage the receiver's lifetime, and
binding a nil receiver is the caller's contract violation.

Binding never fails. Invocation failure modes are whatever the wrapped
callable itself produces; the wrapper adds no behavior of its own.

# License

Governed by the module license, see the root package.
*/
package fn

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
