package fb

// Sqrt computes the unique square root of a in GF(2^m): squaring is the
// Frobenius map x -> x^2, a field automorphism, so it is a bijection and
// every element has exactly one square root, namely a^(2^(m-1)) (since
// squaring that once more reaches a^(2^m) = a).
func (ctx *Context) Sqrt(z, a Elt) Elt {
	r := append(Elt(nil), a...)
	for i := 0; i < ctx.M-1; i++ {
		r = ctx.Sqr(ctx.New(), r)
	}
	copy(z, r)
	return z
}

// Trace computes the field trace Tr(a) = sum(a^(2^i), i = 0..m-1), which
// lands in GF(2) - returned as 0 or 1.
func (ctx *Context) Trace(a Elt) int {
	acc := append(Elt(nil), a...)
	r := append(Elt(nil), a...)
	for i := 1; i < ctx.M; i++ {
		r = ctx.Sqr(ctx.New(), r)
		acc = ctx.Add(ctx.New(), acc, r)
	}
	return int(acc[0] & 1)
}

// HalfTrace computes H(a) = sum(a^(2^(2i)), i = 0..(m-1)/2), which solves
// z^2 + z = a whenever Tr(a) = 0 and m is odd - the standard way to halve
// points on a binary Koblitz curve without an explicit square root.
func (ctx *Context) HalfTrace(a Elt) Elt {
	if ctx.M%2 == 0 {
		panic("fb: half-trace requires an odd field degree")
	}
	acc := append(Elt(nil), a...)
	r := append(Elt(nil), a...)
	for i := 1; i <= (ctx.M-1)/2; i++ {
		r = ctx.Sqr(ctx.New(), r)
		r = ctx.Sqr(ctx.New(), r)
		acc = ctx.Add(ctx.New(), acc, r)
	}
	return acc
}

// SolveQuadratic finds z such that z^2 + z = a, reporting false when no
// solution exists (Tr(a) != 0). For odd m this is H(a); for even m it
// panics, as no solver for even-degree fields is implemented (every
// curve field this module targets uses an odd m).
func (ctx *Context) SolveQuadratic(z, a Elt) bool {
	if ctx.Trace(a) != 0 {
		return false
	}
	if ctx.M%2 == 1 {
		copy(z, ctx.HalfTrace(a))
		return true
	}
	panic("fb: quadratic-equation solving for even-degree fields is not implemented")
}
