package eb

import (
	"github.com/relicgo/corelic/bn"
	"github.com/relicgo/corelic/fb"
)

// Half sets r to a point such that 2*r = q, the inverse of Dbl. Solving it
// algebraically leaves one bit of ambiguity (the doubling formula's lam
// satisfies lam^2+lam = x3+a, which GF(2) always gives two roots for, z
// and z+1); the two roots give the two halves r and r+T, T being the
// point of order 2. A candidate is accepted only if re-doubling it
// reproduces q and Tr(x+a) = 0, i.e. the candidate can itself be halved
// again; for q in an odd-order subgroup this picks the half inside that
// subgroup. Half panics when neither root gives such a candidate.
func (c *Curve) Half(r, q *Point) *Point {
	if q.Infinity {
		*r = *c.Infinity()
		return r
	}
	f := c.F
	cNum := f.Add(f.New(), q.X, c.A)
	z := f.New()
	if !f.SolveQuadratic(z, cNum) {
		panic("eb: q is not a valid doubling result, halving is undefined")
	}
	one := f.FromUint64(1)

	tryLam := func(lam fb.Elt) (*Point, bool) {
		x1sq := f.Add(f.New(), q.Y, f.Mul(f.New(), f.Add(f.New(), lam, one), q.X))
		x1 := f.Sqrt(f.New(), x1sq)
		if f.IsZero(x1) {
			return nil, false
		}
		if f.Trace(f.Add(f.New(), x1, c.A)) != 0 {
			return nil, false
		}
		y1 := f.Mul(f.New(), x1, f.Add(f.New(), lam, x1))
		cand := &Point{X: x1, Y: y1}
		dbl := c.Dbl(&Point{}, cand)
		if dbl.Infinity != q.Infinity || fb.Cmp(dbl.X, q.X) != 0 || fb.Cmp(dbl.Y, q.Y) != 0 {
			return nil, false
		}
		return cand, true
	}

	if cand, ok := tryLam(z); ok {
		*r = *cand
		return r
	}
	zAlt := f.Add(f.New(), z, one)
	if cand, ok := tryLam(zAlt); ok {
		*r = *cand
		return r
	}
	panic("eb: halving failed for both candidate roots")
}

// MulHalve computes k*p using point halving in place of doubling.
// order must be the (odd) order of p's subgroup - 2 must be invertible
// mod order for halving to be defined at all. It premultiplies k by
// 2^(order.BitLen()-1) mod order, then reconstructs k*p by scanning the
// rescaled scalar's bits from the least significant end, halving the
// accumulator before each potential add: each halving divides the
// running sum by two, and bit i of the rescaled scalar is only "worth"
// its place value once i further halvings have been applied to it, the
// same ascending-Horner shape original_source's eb_mul_halve builds its
// w-NAF digits against (relic_eb_mul.c's "k' = 2^(t-1)*k mod n").
func (c *Curve) MulHalve(k *bn.Int, p *Point, order *bn.Int) *Point {
	l := order.BitLen()

	kMod := bn.New()
	bn.Mod(kMod, k, order)

	pow := bn.New()
	bn.Lsh(pow, bn.FromUint64(1), l-1)
	bn.Mod(pow, pow, order)

	scaled := bn.New()
	bn.Mul(scaled, kMod, pow)
	bn.Mod(scaled, scaled, order)

	r := c.Infinity()
	for i := 0; i < l; i++ {
		r = c.Half(&Point{}, r)
		if scaled.Bit(i) == 1 {
			r = c.Add(&Point{}, r, p)
		}
	}
	return r
}
