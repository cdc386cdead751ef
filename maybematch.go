package match

// MaybeMatch is the outcome of testing a single condition against an input:
// either a match carrying a mapped value, or no match at all. The two are
// told apart by an explicit tag, never by inspecting the value: a matched
// case may legitimately carry the zero value (e.g., for action transforms)
// and must not be mistaken for a failed one.
type MaybeMatch[T any] struct {
	value T
	tag   bool
}

// Matched wraps value as a successful match.
func Matched[T any](value T) MaybeMatch[T] {
	return MaybeMatch[T]{value: value, tag: true}
}

// NoMatch returns the outcome of a failed condition.
func NoMatch[T any]() MaybeMatch[T] {
	return MaybeMatch[T]{}
}

// CreateMatch creates a MaybeMatch from the boolean result of a condition
// test, together with a function producing the match's value. value is
// called exactly once if matches is true, and never otherwise. This lets
// conditions pair an expensive or partial value computation (a type
// assertion, regex captures) with the test that guards it.
func CreateMatch[T any](matches bool, value func() T) MaybeMatch[T] {
	if !matches {
		return MaybeMatch[T]{}
	}
	return MaybeMatch[T]{value: value(), tag: true}
}

// Matches returns true for a match, false for a non-match.
func (m MaybeMatch[T]) Matches() bool {
	return m.tag
}

// Value returns the value carried by a match, or the zero value for a
// non-match.
func (m MaybeMatch[T]) Value() T {
	return m.value
}

// MapMatch applies f to the value of a match and returns a match of the
// mapped value. A non-match passes through untouched; f is not called.
// Composite conditions chain through MapMatch without re-testing the input.
func MapMatch[T, S any](m MaybeMatch[T], f func(T) S) MaybeMatch[S] {
	if !m.tag {
		return MaybeMatch[S]{}
	}
	return MaybeMatch[S]{value: f(m.value), tag: true}
}
