package match

// Const lifts a fixed value into a transform that ignores its input.
func Const[I, O any](value O) func(I) O {
	return func(I) O {
		return value
	}
}

// Compose returns h = f . g, for chaining transforms.
func Compose[A, B, C any](g func(A) B, f func(B) C) func(A) C {
	return func(a A) C {
		return f(g(a))
	}
}
