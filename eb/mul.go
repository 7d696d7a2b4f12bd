package eb

import (
	"github.com/relicgo/corelic/bn"
	"github.com/relicgo/corelic/dv"
	"github.com/relicgo/corelic/fb"
)

// MulBasic computes k*p via plain left-to-right double-and-add.
func (c *Curve) MulBasic(k *bn.Int, p *Point) *Point {
	r := c.Infinity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		r = c.Dbl(r, r)
		if k.Bit(i) == 1 {
			r = c.Add(r, r, p)
		}
	}
	return r
}

// MulLODAH computes k*p via a fixed-length double-and-add-always ladder:
// every bit position performs the same doubling and addition regardless of
// the bit's value, with a conditional swap (not a conditional branch)
// choosing which accumulator receives which result - the same discipline
// §4.6 requires of this path, and the same shape as ep.MulLadder one field
// layer over, since branching on k's bit here is exactly the data-dependent
// control flow LODAH exists to avoid.
func (c *Curve) MulLODAH(k *bn.Int, p *Point, bitLen int) *Point {
	r0 := c.Infinity()
	r1 := &Point{X: append(fb.Elt(nil), p.X...), Y: append(fb.Elt(nil), p.Y...), Infinity: p.Infinity}
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

// MulLWNAF computes k*p via left-to-right width-w NAF recoding.
func (c *Curve) MulLWNAF(k *bn.Int, p *Point, w int) *Point {
	digits := bn.RecodeNAF(k, w)
	table := c.BuildOddTable(p, w)
	r := c.Infinity()
	for i := len(digits) - 1; i >= 0; i-- {
		r = c.Dbl(r, r)
		if digits[i] != 0 {
			r = c.Add(r, r, c.Lookup(table, digits[i]))
		}
	}
	return r
}

// MulRWNAF computes k*p via right-to-left width-w NAF recoding.
func (c *Curve) MulRWNAF(k *bn.Int, p *Point, w int) *Point {
	digits := bn.RecodeNAF(k, w)
	table := c.BuildOddTable(p, w)
	r := c.Infinity()
	a := p
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
