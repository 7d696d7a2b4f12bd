package fp

import "github.com/relicgo/corelic/dv"

// montgomeryInverse computes -p0^-1 mod 2^64 via Hensel/Newton lifting of
// the 2-adic inverse, the same constant this module's REDC loop needs
// that the teacher's montgomeryReduce hard-codes per-curve
// (montgomeryPPrime) - here it is derived once at Context construction so
// NewContext works for any odd modulus, not just secp256k1's.
func montgomeryInverse(p0 dv.Digit) dv.Digit {
	x := p0
	for i := 0; i < 6; i++ {
		x *= 2 - p0*x
	}
	return ^x + 1
}

// computeR2 computes R^2 mod p, where R = 2^(64*Digs), by doubling-and-
// reducing a running value 128*Digs times. This only runs once per
// Context, so it does not need Comba-style batching the way the hot-path
// multiply does.
func computeR2(ctx *Context) Elt {
	val := make(dv.Vec, ctx.Digs+1)
	val[0] = 1
	steps := 128 * ctx.Digs
	pExt := append(dv.Vec(nil), ctx.P...)
	pExt = append(pExt, 0)
	for i := 0; i < steps; i++ {
		dv.Lsh1(val, val, ctx.Digs+1)
		if dv.Cmp(val, pExt) >= 0 {
			dv.SubN(val, val, pExt, ctx.Digs+1)
		}
	}
	return Elt(val[:ctx.Digs])
}

// montgomeryReducer implements Reduce (rdcn) via the CIOS method: fold a
// double-width product down by Digs limbs, one limb at a time, adding a
// multiple of p chosen to zero the low limb before shifting it out. This
// generalizes the teacher's montgomeryReduce REDC loop and
// original_source's fp_rdcn_low triple-register accumulator
// (r2:r1:r0) from a fixed 5-limb layout to ctx.Digs limbs.
type montgomeryReducer struct{}

func (montgomeryReducer) Name() string { return "montgomery" }

func (montgomeryReducer) Reduce(ctx *Context, wide []dv.Digit) Elt {
	t := append(dv.Vec(nil), wide...)
	guard := 2*ctx.Digs + 2
	if len(t) < guard {
		t = append(t, make(dv.Vec, guard-len(t))...)
	}
	for i := 0; i < ctx.Digs; i++ {
		m := t[i] * ctx.montU
		var carry dv.Digit
		for j := 0; j < ctx.Digs; j++ {
			acc := dv.MulAdd(dv.DoubleDigit{Lo: t[i+j]}, m, ctx.P[j])
			acc = dv.AddDigit(acc, carry)
			t[i+j] = acc.Lo
			carry = acc.Hi
		}
		k := i + ctx.Digs
		for carry != 0 {
			sum, c := addDigitCarry(t[k], carry)
			t[k] = sum
			carry = c
			k++
		}
	}
	result := append(dv.Vec(nil), t[ctx.Digs:2*ctx.Digs]...)
	if t[2*ctx.Digs] != 0 || dv.Cmp(result, ctx.P) >= 0 {
		dv.SubN(result, result, ctx.P, ctx.Digs)
	}
	return Elt(result)
}

func (montgomeryReducer) ToDomain(ctx *Context, z Elt) Elt {
	wide := make(dv.Vec, 2*ctx.Digs)
	wideMul(ctx, wide, dv.Vec(z), dv.Vec(ctx.montR2))
	return montgomeryReducer{}.Reduce(ctx, wide)
}

func (montgomeryReducer) FromDomain(ctx *Context, z Elt) Elt {
	wide := make(dv.Vec, 2*ctx.Digs)
	copy(wide, z)
	return montgomeryReducer{}.Reduce(ctx, wide)
}
