/*
Package match implements structural pattern matching as a combinator library.

Clients build an ordered chain of cases, where each case pairs a condition
with a transform, and then apply inputs to the chain. The first case whose
condition matches wins; its transform produces the result. Conditions may
narrow the type of the input or extract a value from it, so that the
transform receives the narrowed/extracted value instead of the raw input.

	shape := New[Shape, string]()
	descr := When(shape, Is[Shape, Circle]()).
		Then(func(c Circle) string { return "a circle" }).
		Otherwise(func(Shape) string { return "no idea" }).
		Apply(input)

Matchers come in two flavours: an open Matcher returns an optional result
(maybe.Nothing if no case matched), a ClosedMatcher carries a mandatory
fallback and always returns a value. Appending a case never mutates the
receiver; it returns a new matcher value. A fully constructed matcher is
immutable and may be shared freely between goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'match.core'.
func tracer() tracing.Trace {
	return tracing.Select("match.core")
}
