package ep

import (
	"github.com/relicgo/corelic/bn"
	"github.com/relicgo/corelic/dv"
	"github.com/relicgo/corelic/fp"
)

// MulBasic computes k*p via plain left-to-right double-and-add, scanning
// k's bits from the top.
func (c *Curve) MulBasic(p *bn.Int, base *Point) *Point {
	r := c.Infinity()
	for i := p.BitLen() - 1; i >= 0; i-- {
		r = c.Dbl(r, r)
		if p.Bit(i) == 1 {
			r = c.Add(r, r, base)
		}
	}
	return r
}

// MulLWNAF computes k*p via left-to-right width-w NAF recoding: scan the
// digit sequence from the most significant end, doubling once per digit
// and adding the table entry whenever the digit is nonzero.
func (c *Curve) MulLWNAF(k *bn.Int, base *Point, w int) *Point {
	digits := bn.RecodeNAF(k, w)
	table := c.BuildOddTable(base, w)
	r := c.Infinity()
	for i := len(digits) - 1; i >= 0; i-- {
		r = c.Dbl(r, r)
		if digits[i] != 0 {
			r = c.Add(r, r, c.Lookup(table, digits[i]))
		}
	}
	return r
}

// MulRWNAF computes k*p via right-to-left width-w NAF recoding: maintain
// a running doubled base A = 2^i*p and add di*A into the accumulator as
// digits are consumed from the least significant end, avoiding the
// leading-to-trailing dependency MulLWNAF has.
func (c *Curve) MulRWNAF(k *bn.Int, base *Point, w int) *Point {
	digits := bn.RecodeNAF(k, w)
	table := c.BuildOddTable(base, w)
	r := c.Infinity()
	a := base
	for i := 0; i < len(digits); i++ {
		if digits[i] != 0 {
			r = c.Add(r, r, c.Lookup(table, digits[i]))
		}
		if i != len(digits)-1 {
			a = c.Dbl(&Point{}, a)
			table = c.BuildOddTable(a, w)
		}
	}
	return r
}

// MulLadder computes k*p in constant time via a Montgomery-style ladder:
// exactly bitLen doublings regardless of k's actual bit length, with a
// conditional swap (not a conditional branch) choosing which accumulator
// receives the addition - the curve-point analogue of fp.ExpLadder.
func (c *Curve) MulLadder(k *bn.Int, base *Point, bitLen int) *Point {
	r0 := c.Infinity()
	r1 := &Point{X: append(fp.Elt(nil), base.X...), Y: append(fp.Elt(nil), base.Y...), Z: append(fp.Elt(nil), base.Z...), Infinity: base.Infinity}
	for i := bitLen - 1; i >= 0; i-- {
		b := int(k.Bit(i))
		cswapPoint(r0, r1, b)
		nr1 := c.Add(&Point{}, r0, r1)
		nr0 := c.Dbl(&Point{}, r0)
		r0, r1 = nr0, nr1
		cswapPoint(r0, r1, b)
	}
	return r0
}

func cswapPoint(a, b *Point, flag int) {
	mask := dv.Digit(-int64(flag & 1))
	cswapElt(a.X, b.X, mask)
	cswapElt(a.Y, b.Y, mask)
	cswapElt(a.Z, b.Z, mask)
	if flag == 1 {
		a.Infinity, b.Infinity = b.Infinity, a.Infinity
	}
}

// cswapElt conditionally swaps equal-length field-element slices a and b
// in place.
func cswapElt(a, b []dv.Digit, mask dv.Digit) {
	for i := range a {
		t := mask & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}
