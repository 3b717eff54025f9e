/*
Package aex is a minimal container and function-wrapper toolkit.

It is aimed at constrained environments where the usual convenience layers
are unwelcome: storage growth has to be explicit and predictable, element
lifetimes have to be visible, and callables of different shapes have to hide
behind one small invocation surface.

The toolkit consists of three primitives, each in its own package:

  - vec: a growable sequence with contiguous storage and an amortized
    growth policy (package vec),
  - array: a fixed sequence whose size and capacity coincide for its whole
    lifetime (package array),
  - fn: a type-erased callable wrapper binding free functions, closures or
    instance methods behind one calling interface (package fn).

The root package carries the ownership-transfer helpers shared by the
containers, and the tracing accessor used throughout the module.

_________________________________________________________________________

MIT License

Copyright (c) 2022 Vanier Robotics

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package aex

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
