package fb

import "github.com/relicgo/corelic/dv"

// Every variant here computes a^-1 = a^(2^m - 2) in GF(2^m), the same
// target exponent, by five distinct routes - ported from
// original_source/src/fb/relic_fb_inv.c's fb_inv_basic, fb_inv_binar,
// fb_inv_exgcd, fb_inv_almos and fb_inv_itoht. A Context carries no
// preference among them; callers pick the one they want to benchmark or
// cross-check, which is the whole point of keeping all five.

// InvBasic computes a^-1 via the direct addition chain for 2^m-2: keep a
// running square u = a^(2^i) and accumulate v = product of u over
// i = 1..m-1, since 2^m-2 = sum_{i=1}^{m-1} 2^i.
func (ctx *Context) InvBasic(z, a Elt) Elt {
	if ctx.IsZero(a) {
		panic("fb: inversion of the zero element")
	}
	u := append(Elt(nil), a...)
	v := ctx.FromUint64(1)
	for i := 1; i <= ctx.M-1; i++ {
		u = ctx.Sqr(ctx.New(), u)
		v = ctx.Mul(ctx.New(), v, u)
	}
	copy(z, v)
	return z
}

// wideLen is the digit width used internally by the GCD-style variants,
// one digit of headroom wider than Elt so the degree-m modulus polynomial
// itself (and transient sums that briefly reach degree m) fit without
// truncation.
func (ctx *Context) wideLen() int { return ctx.Digs + 1 }

// modulusWide returns the reduction polynomial x^m + sum(x^e) + 1 as a
// wide vector.
func (ctx *Context) modulusWide() dv.Vec {
	z := make(dv.Vec, ctx.wideLen())
	z[0] |= 1
	z[ctx.M/64] |= dv.Digit(1) << uint(ctx.M%64)
	for _, e := range ctx.Extra {
		z[e/64] |= dv.Digit(1) << uint(e%64)
	}
	return z
}

func wideDeg(v dv.Vec) int {
	n := dv.BitLen(v, len(v))
	return n - 1
}

func wideIsOne(v dv.Vec) bool {
	if v[0] != 1 {
		return false
	}
	for i := 1; i < len(v); i++ {
		if v[i] != 0 {
			return false
		}
	}
	return true
}

func wideXor(z, a, b dv.Vec) {
	for i := range z {
		z[i] = a[i] ^ b[i]
	}
}

func wideRsh1(z, a dv.Vec) {
	dv.Rsh1(z, a, len(a))
}

// wideShl shifts a left by k bits into z, both of length n; callers
// guarantee the result's degree does not exceed n*64-1.
func wideShl(z, a dv.Vec, k, n int) {
	for i := range z {
		z[i] = 0
	}
	for i := 0; i < n*64; i++ {
		if dv.Bit(a, i) == 0 {
			continue
		}
		pos := i + k
		if pos/64 < n {
			z[pos/64] |= dv.Digit(1) << uint(pos%64)
		}
	}
}

// divStepByX replaces b with b/x if b's constant term is zero, or with
// (b+f)/x otherwise (valid since f's constant term is 1, so b+f always
// has a zero constant term when b's does not).
func divStepByX(ctx *Context, b, f dv.Vec) {
	if b[0]&1 != 0 {
		wideXor(b, b, f)
	}
	wideRsh1(b, b)
}

// InvBinar computes a^-1 via the bit-serial binary-GCD-style algorithm:
// repeatedly strip factors of x from whichever of u, v is currently even
// (tracking the paired cofactor through the same x-division), then fold
// the smaller-degree poly into the larger by addition (XOR), maintaining
// the invariant b*a = u and c*a = v (mod f) throughout.
func (ctx *Context) InvBinar(z, a Elt) Elt {
	if ctx.IsZero(a) {
		panic("fb: inversion of the zero element")
	}
	n := ctx.wideLen()
	f := ctx.modulusWide()
	u := make(dv.Vec, n)
	copy(u, a)
	v := append(dv.Vec(nil), f...)
	b := make(dv.Vec, n)
	b[0] = 1
	c := make(dv.Vec, n)

	for !wideIsOne(u) && !wideIsOne(v) {
		for u[0]&1 == 0 {
			wideRsh1(u, u)
			divStepByX(ctx, b, f)
		}
		for v[0]&1 == 0 {
			wideRsh1(v, v)
			divStepByX(ctx, c, f)
		}
		if wideDeg(u) >= wideDeg(v) {
			wideXor(u, u, v)
			wideXor(b, b, c)
		} else {
			wideXor(v, v, u)
			wideXor(c, c, b)
		}
	}
	if wideIsOne(u) {
		copy(z, b[:ctx.Digs])
	} else {
		copy(z, c[:ctx.Digs])
	}
	return z
}

// InvExgcd computes a^-1 via the degree-jump extended Euclidean
// algorithm: at each step, shift the lower-degree polynomial left to
// align its leading term with the higher-degree one, then cancel it in a
// single XOR - the SPLIT-macro shape of the original's fb_inv_exgcd,
// generalized from its pointer-swapping loop.
func (ctx *Context) InvExgcd(z, a Elt) Elt {
	if ctx.IsZero(a) {
		panic("fb: inversion of the zero element")
	}
	n := ctx.wideLen()
	f := ctx.modulusWide()
	u := make(dv.Vec, n)
	copy(u, a)
	v := append(dv.Vec(nil), f...)
	g1 := make(dv.Vec, n)
	g1[0] = 1
	g2 := make(dv.Vec, n)

	shifted := make(dv.Vec, n)
	for wideDeg(u) != 0 {
		j := wideDeg(u) - wideDeg(v)
		if j < 0 {
			u, v = v, u
			g1, g2 = g2, g1
			j = -j
		}
		wideShl(shifted, v, j, n)
		wideXor(u, u, shifted)
		wideShl(shifted, g2, j, n)
		wideXor(g1, g1, shifted)
	}
	copy(z, g1[:ctx.Digs])
	return z
}

// InvAlmos computes a^-1 via the almost inverse algorithm's b/d/u/v
// shape: strip factors of x out of u alone (reducing its paired cofactor
// b through the same x-division step InvBinar uses, so the b*a = u
// invariant never needs a deferred correction), then fold the
// lower-degree polynomial into the higher one by a single degree-jump
// shift-and-xor, the way InvExgcd's SPLIT step does - distinct from both
// in which half of the loop is bit-serial and which is a degree jump.
// The paired cofactor c is multiplied by x^j one bit at a time with a
// reduction mod f after each bit, so b and c stay reduced throughout.
func (ctx *Context) InvAlmos(z, a Elt) Elt {
	if ctx.IsZero(a) {
		panic("fb: inversion of the zero element")
	}
	n := ctx.wideLen()
	f := ctx.modulusWide()
	u := make(dv.Vec, n)
	copy(u, a)
	v := append(dv.Vec(nil), f...)
	b := make(dv.Vec, n)
	b[0] = 1
	c := make(dv.Vec, n)

	shifted := make(dv.Vec, n)
	for wideDeg(u) != 0 {
		for u[0]&1 == 0 {
			wideRsh1(u, u)
			divStepByX(ctx, b, f)
		}
		if wideDeg(u) == 0 {
			break
		}
		if wideDeg(u) < wideDeg(v) {
			u, v = v, u
			b, c = c, b
		}
		j := wideDeg(u) - wideDeg(v)
		wideShl(shifted, v, j, n)
		wideXor(u, u, shifted)
		copy(shifted, c)
		for s := 0; s < j; s++ {
			dv.Lsh1(shifted, shifted, n)
			ctx.Reduce(Elt(shifted))
		}
		wideXor(b, b, shifted)
	}
	copy(z, b[:ctx.Digs])
	return z
}

// InvItoht computes a^-1 via Itoh-Tsuji: a precomputed addition chain
// (BuildChain, fixed per Context at construction) builds a table of
// a^(2^u[i]-1) values up to u[last] = m-1, using each new entry's
// required squaring count and a single multiply, then one final squaring
// reaches a^(2^m-2).
func (ctx *Context) InvItoht(z, a Elt) Elt {
	if ctx.IsZero(a) {
		panic("fb: inversion of the zero element")
	}
	table := make([]Elt, len(ctx.chainU))
	table[0] = append(Elt(nil), a...)
	for i, pair := range ctx.chainPairs {
		x, y := pair[0], pair[1]
		acc := append(Elt(nil), table[x]...)
		for j := 0; j < ctx.chainU[y]; j++ {
			acc = ctx.Sqr(ctx.New(), acc)
		}
		table[i+1] = ctx.Mul(ctx.New(), acc, table[y])
	}
	last := table[len(table)-1]
	result := ctx.Sqr(ctx.New(), last)
	copy(z, result)
	return z
}

// InvLower is the entry point the rest of the module calls by default.
// The original assigns this slot to a hand-tuned assembly routine per
// target CPU (fb_inv_lower, relic_fb_inv.c); this port has no assembly
// backend, so it delegates to the fastest portable variant above.
func (ctx *Context) InvLower(z, a Elt) Elt {
	return ctx.InvItoht(z, a)
}

// InvSim inverts every element of a in one pass using Montgomery's
// simultaneous-inversion trick: accumulate running products, invert only
// the final product, then back-substitute - ported from fb_inv_sim's
// c[i] = c[i-1]*a[i] chain.
func (ctx *Context) InvSim(a []Elt) []Elt {
	n := len(a)
	if n == 0 {
		return nil
	}
	c := make([]Elt, n)
	c[0] = append(Elt(nil), a[0]...)
	for i := 1; i < n; i++ {
		c[i] = ctx.Mul(ctx.New(), c[i-1], a[i])
	}

	u := ctx.InvLower(ctx.New(), c[n-1])
	out := make([]Elt, n)
	for i := n - 1; i > 0; i-- {
		out[i] = ctx.Mul(ctx.New(), u, c[i-1])
		u = ctx.Mul(ctx.New(), u, a[i])
	}
	out[0] = u
	return out
}
