package fp

import "github.com/relicgo/corelic/dv"

// wideMul computes the full double-width product of a and b (each Digs
// digits) into wide (length 2*Digs), using the same running-accumulator
// shape as the teacher's mulU64ToU128/addMulU128 chain in field_mul.go,
// generalized from the fixed 5-limb secp256k1 layout to ctx.Digs digits
// via dv's carry-propagating primitives.
func wideMul(ctx *Context, wide, a, b dv.Vec) {
	dv.Zero(wide)
	for i := 0; i < ctx.Digs; i++ {
		if a[i] == 0 {
			continue
		}
		var carry dv.Digit
		for j := 0; j < ctx.Digs; j++ {
			acc := dv.MulAdd(dv.DoubleDigit{Lo: wide[i+j]}, a[i], b[j])
			acc = dv.AddDigit(acc, carry)
			wide[i+j] = acc.Lo
			carry = acc.Hi
		}
		k := i + ctx.Digs
		for carry != 0 {
			sum, c := addDigitCarry(wide[k], carry)
			wide[k] = sum
			carry = c
			k++
		}
	}
}

func addDigitCarry(a, b dv.Digit) (dv.Digit, dv.Digit) {
	sum := a + b
	var carry dv.Digit
	if sum < a {
		carry = 1
	}
	return sum, carry
}

// wideSqr computes the double-width square of a into wide, sharing
// wideMul's shape (the spec does not mandate a faster squaring path the
// way field_mul.go's sqr does for the fixed secp256k1 layout; the
// teacher's doubled-cross-term trick does not generalize cleanly to an
// arbitrary Digs, so this is wideMul(a, a) under a distinct name for
// Context.Sqr's callers).
func wideSqr(ctx *Context, wide, a dv.Vec) {
	wideMul(ctx, wide, a, a)
}

// Mul sets z = a * b mod p, dispatching the double-width product to
// ctx.Reducer - the only step that differs between the Montgomery and
// sparse back-ends.
func (ctx *Context) Mul(z, a, b Elt) Elt {
	wide := dv.Vec(ctx.scratch(2 * ctx.Digs))
	wideMul(ctx, wide, dv.Vec(a), dv.Vec(b))
	copy(z, ctx.Reducer.Reduce(ctx, wide))
	return z
}

// Sqr sets z = a^2 mod p.
func (ctx *Context) Sqr(z, a Elt) Elt {
	wide := dv.Vec(ctx.scratch(2 * ctx.Digs))
	wideSqr(ctx, wide, dv.Vec(a))
	copy(z, ctx.Reducer.Reduce(ctx, wide))
	return z
}
