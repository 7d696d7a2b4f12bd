package fp

import "github.com/relicgo/corelic/dv"

// sparseReducer implements Reduce (rdcs) for a modulus of the form
// p = 2^(64*Digs) - c with c small enough to fit one digit: since
// 2^(64*Digs) = c (mod p), a double-width value hi*2^(64*Digs) + lo folds
// to lo + hi*c, repeated until the high half is zero, finished with one
// conditional subtraction of p. Grounded on
// original_source/.../relic_fp_rdc_low.c's fp_rdcs_low, with its stray
// debug printf calls removed per the source spec's note on that function.
type sparseReducer struct{}

func (sparseReducer) Name() string { return "sparse" }

// mulBySmall computes v * c as a (len(v)+1)-digit vector.
func mulBySmall(v dv.Vec, c dv.Digit) dv.Vec {
	out := make(dv.Vec, len(v)+1)
	var carry dv.Digit
	for i, vi := range v {
		acc := dv.MulAdd(dv.DoubleDigit{Lo: out[i]}, vi, c)
		acc = dv.AddDigit(acc, carry)
		out[i] = acc.Lo
		carry = acc.Hi
	}
	out[len(v)] = carry
	return out
}

func (sparseReducer) Reduce(ctx *Context, wide []dv.Digit) Elt {
	cur := append(dv.Vec(nil), wide[:ctx.Digs]...)
	hi := append(dv.Vec(nil), wide[ctx.Digs:2*ctx.Digs]...)

	cap := 4*ctx.Digs + 8
	for i := 0; !dv.IsZero(hi) && i < cap; i++ {
		prod := mulBySmall(hi, ctx.sparseC)
		sum := make(dv.Vec, ctx.Digs+1)
		carry := dv.AddN(sum[:ctx.Digs], cur, prod[:ctx.Digs], ctx.Digs)
		top := prod[ctx.Digs] + carry

		cur = append(dv.Vec(nil), sum[:ctx.Digs]...)
		hi = make(dv.Vec, ctx.Digs)
		hi[0] = top
	}
	// Fold whatever remains of hi (now at most one small digit) in
	// directly, then bring the result below p with ordinary subtraction.
	if !dv.IsZero(hi) {
		extra := mulBySmall(hi, ctx.sparseC)
		dv.AddN(cur, cur, extra[:ctx.Digs], ctx.Digs)
	}
	for dv.Cmp(cur, ctx.P) >= 0 {
		dv.SubN(cur, cur, ctx.P, ctx.Digs)
	}
	return Elt(cur)
}

func (sparseReducer) ToDomain(ctx *Context, z Elt) Elt {
	out := append(Elt(nil), z...)
	ctx.reduceFull(out)
	return out
}

func (sparseReducer) FromDomain(ctx *Context, z Elt) Elt {
	return append(Elt(nil), z...)
}
