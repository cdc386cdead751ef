package match

// Pair are two values that go together. Pairs can be matched componentwise
// with PairOf, produced by Regex2, or extracted from an input via
// Extractable.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a Pair from two values.
func P[A, B any](left A, right B) Pair[A, B] {
	return Pair[A, B]{Left: left, Right: right}
}

// Decompose splits a pair into its components.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Triple are three values that go together. Triples can be extracted from
// the input of a matcher via Extractable.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// T3 creates a Triple from three values.
func T3[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

// Decompose splits a triple into its components.
func (t Triple[A, B, C]) Decompose() (A, B, C) {
	return t.First, t.Second, t.Third
}

// --- Extraction ------------------------------------------------------------

// Extractable is a capability an input type may implement: the value can
// deterministically expose an associated structural value, a scalar, a Pair
// or a Triple. The Extract… helpers below route such values into transforms
// taking one argument per component.
type Extractable[D any] interface {
	Extract() D
}

// Extract creates a transform that extracts a single value from the input
// and applies mapper to it. Use it as the argument to Then or Otherwise.
func Extract[I Extractable[E], E, O any](mapper func(E) O) func(I) O {
	return func(input I) O {
		return mapper(input.Extract())
	}
}

// Extract2 creates a transform that extracts a Pair from the input and
// applies mapper to its components.
func Extract2[I Extractable[Pair[E1, E2]], E1, E2, O any](mapper func(E1, E2) O) func(I) O {
	return func(input I) O {
		return mapper(input.Extract().Decompose())
	}
}

// Extract3 creates a transform that extracts a Triple from the input and
// applies mapper to its components.
func Extract3[I Extractable[Triple[E1, E2, E3]], E1, E2, E3, O any](mapper func(E1, E2, E3) O) func(I) O {
	return func(input I) O {
		return mapper(input.Extract().Decompose())
	}
}
