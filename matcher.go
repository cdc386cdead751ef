package match

import (
	"github.com/npillmayer/match/maybe"
)

// matchCase pairs a condition with a transform. The two are fused at
// construction time into a single try function, so that evaluation cannot
// accidentally apply the transform to an unmatched input.
type matchCase[I, O any] struct {
	label string
	try   func(I) MaybeMatch[O]
}

// Matcher is an open pattern matcher: an immutable, ordered sequence of
// cases without a fallback. Applying it yields an optional result. The zero
// value is an empty matcher, ready for use.
//
// A matcher is a value type with copy-on-append semantics: builder
// terminals return a new Matcher and leave the receiver untouched, so
// several matchers may be branched off a shared prefix. A fully built
// matcher is safe for concurrent use.
type Matcher[I, O any] struct {
	cases []matchCase[I, O]
}

// New creates an empty open matcher for inputs of type I producing results
// of type O.
func New[I, O any]() Matcher[I, O] {
	return Matcher[I, O]{}
}

// withCase appends a case, copying the case list. The receiver's backing
// array is never aliased by the new matcher.
func (m Matcher[I, O]) withCase(c matchCase[I, O]) Matcher[I, O] {
	cases := make([]matchCase[I, O], len(m.cases), len(m.cases)+1)
	copy(cases, m.cases)
	return Matcher[I, O]{cases: append(cases, c)}
}

// Apply evaluates the cases strictly in declaration order and returns the
// result of the first case whose condition matches, or maybe.Nothing if no
// case matches. Cases after the first match are not evaluated.
func (m Matcher[I, O]) Apply(input I) maybe.Maybe[O] {
	for i, c := range m.cases {
		if r := c.try(input); r.Matches() {
			tracer().Debugf("case #%d %s matches", i, c.label)
			return maybe.Just(r.Value())
		}
	}
	tracer().Debugf("no case matches out of %d", len(m.cases))
	return maybe.Nothing[O]()
}

// When starts a new case for any input satisfying cond. It returns a
// builder; the builder's Then/ThenConst/ThenDo complete the case and return
// a new matcher. This method covers conditions that do not narrow the input
// type; for narrowing or extracting conditions use the package-level When.
func (m Matcher[I, O]) When(cond Condition[I, I]) CaseBuilder[I, I, O] {
	return When(m, cond)
}

// When starts a new case of m for any input satisfying cond, where cond
// may narrow the input type I to I1 or extract an I1 from it.
func When[I, I1, O any](m Matcher[I, O], cond Condition[I, I1]) CaseBuilder[I, I1, O] {
	return CaseBuilder[I, I1, O]{matcher: m, cond: cond}
}

// WhenPair starts a new case of m for any input satisfying cond, where
// cond produces a Pair. The builder's terminals take one argument per
// component.
func WhenPair[I, I1, I2, O any](m Matcher[I, O], cond Condition[I, Pair[I1, I2]]) PairCaseBuilder[I, I1, I2, O] {
	return PairCaseBuilder[I, I1, I2, O]{matcher: m, cond: cond}
}

// --- Case builders ---------------------------------------------------------

// CaseBuilder is an incomplete case: a condition waiting for its transform.
// It cannot be evaluated; only the matcher returned by one of its terminal
// methods can.
type CaseBuilder[I, I1, O any] struct {
	matcher Matcher[I, O]
	cond    Condition[I, I1]
}

// Then completes the case with a transform that will be called with the
// narrowed/extracted value whenever the condition matches. It returns a new
// matcher with the case appended; the originating matcher is unchanged.
func (b CaseBuilder[I, I1, O]) Then(transform func(I1) O) Matcher[I, O] {
	cond := b.cond
	return b.matcher.withCase(matchCase[I, O]{
		label: describe(cond),
		try: func(input I) MaybeMatch[O] {
			return MapMatch(cond.Evaluate(input), transform)
		},
	})
}

// ThenConst completes the case with a constant result value.
func (b CaseBuilder[I, I1, O]) ThenConst(value O) Matcher[I, O] {
	return b.Then(Const[I1](value))
}

// ThenDo completes the case with an action. The case produces the zero
// value of O and still counts as matched: match status is carried by the
// outcome's tag, never derived from the produced value.
func (b CaseBuilder[I, I1, O]) ThenDo(action func(I1)) Matcher[I, O] {
	return b.Then(func(v I1) O {
		action(v)
		var void O
		return void
	})
}

// PairCaseBuilder is an incomplete case over a pair-producing condition.
// Its terminals take the pair's components as separate arguments.
type PairCaseBuilder[I, I1, I2, O any] struct {
	matcher Matcher[I, O]
	cond    Condition[I, Pair[I1, I2]]
}

// Then completes the case with a two-argument transform over the matched
// pair's components.
func (b PairCaseBuilder[I, I1, I2, O]) Then(transform func(I1, I2) O) Matcher[I, O] {
	cond := b.cond
	return b.matcher.withCase(matchCase[I, O]{
		label: describe(cond),
		try: func(input I) MaybeMatch[O] {
			return MapMatch(cond.Evaluate(input), func(p Pair[I1, I2]) O {
				return transform(p.Decompose())
			})
		},
	})
}

// ThenDo completes the case with a two-argument action, producing the zero
// value of O. See CaseBuilder.ThenDo.
func (b PairCaseBuilder[I, I1, I2, O]) ThenDo(action func(I1, I2)) Matcher[I, O] {
	return b.Then(func(a I1, b2 I2) O {
		action(a, b2)
		var void O
		return void
	})
}

// --- Closed matchers -------------------------------------------------------

// ClosedMatcher is a matcher frozen together with a mandatory fallback.
// Applying it always produces a value. No cases can be appended to a closed
// matcher.
type ClosedMatcher[I, O any] struct {
	cases    []matchCase[I, O]
	fallback func(I) O
}

// Otherwise closes the matcher with a fallback transform that will be
// called on the raw input whenever no case matches.
func (m Matcher[I, O]) Otherwise(fallback func(I) O) ClosedMatcher[I, O] {
	cases := make([]matchCase[I, O], len(m.cases))
	copy(cases, m.cases)
	return ClosedMatcher[I, O]{cases: cases, fallback: fallback}
}

// OtherwiseConst closes the matcher with a constant fallback value.
func (m Matcher[I, O]) OtherwiseConst(value O) ClosedMatcher[I, O] {
	return m.Otherwise(Const[I](value))
}

// OtherwiseDo closes the matcher with a fallback action, producing the zero
// value of O when no case matches.
func (m Matcher[I, O]) OtherwiseDo(action func(I)) ClosedMatcher[I, O] {
	return m.Otherwise(func(input I) O {
		action(input)
		var void O
		return void
	})
}

// Apply evaluates the cases strictly in declaration order and returns the
// result of the first case whose condition matches. If no case matches, the
// fallback is applied to the input.
func (cm ClosedMatcher[I, O]) Apply(input I) O {
	for i, c := range cm.cases {
		if r := c.try(input); r.Matches() {
			tracer().Debugf("case #%d %s matches", i, c.label)
			return r.Value()
		}
	}
	tracer().Debugf("no case matches out of %d, taking fallback", len(cm.cases))
	return cm.fallback(input)
}
