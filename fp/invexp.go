package fp

import (
	"github.com/relicgo/corelic/bn"
	"github.com/relicgo/corelic/dv"
)

// modulusAsBn returns ctx.P as a bn.Int, independent of any Reducer
// domain - the modulus itself is never carried in Montgomery form.
func (ctx *Context) modulusAsBn() *bn.Int {
	out := make([]byte, ctx.Digs*8)
	for i := range out {
		pos := len(out) - 1 - i
		out[i] = byte(ctx.P[pos/8] >> uint((pos%8)*8))
	}
	return bn.FromBytes(out)
}

// Exp sets z = a^e mod p via left-to-right square-and-multiply,
// generalizing the teacher's inv()/sqrt() binary-exponentiation loops
// (field_mul.go) from a fixed secp256k1 exponent to an arbitrary bn.Int.
func (ctx *Context) Exp(z, a Elt, e *bn.Int) Elt {
	result := ctx.FromUint64(1)
	base := append(Elt(nil), a...)
	for i := e.BitLen() - 1; i >= 0; i-- {
		result = ctx.Sqr(ctx.New(), result)
		if e.Bit(i) == 1 {
			result = ctx.Mul(ctx.New(), result, base)
		}
	}
	copy(z, result)
	return z
}

// cswapElt conditionally swaps a and b in place when flag == 1, without
// branching on flag beyond the mask computed from it.
func cswapElt(a, b Elt, flag int) {
	mask := dv.Digit(-int64(flag & 1))
	for i := range a {
		t := mask & (a[i] ^ b[i])
		a[i] ^= t
		b[i] ^= t
	}
}

// ExpLadder sets z = a^e mod p using a Montgomery powering ladder that
// processes exactly bitLen steps regardless of e's actual bit length -
// the declared constant-time exponentiation path named alongside the
// LODAH point ladder, following the same invariant-pair-plus-conditional-
// swap shape eb's point ladder uses, one dimension down (field elements
// instead of curve points).
func (ctx *Context) ExpLadder(z, a Elt, e *bn.Int, bitLen int) Elt {
	r0 := ctx.FromUint64(1)
	r1 := append(Elt(nil), a...)
	for i := bitLen - 1; i >= 0; i-- {
		b := int(e.Bit(i))
		cswapElt(r0, r1, b)
		nr1 := ctx.Mul(ctx.New(), r0, r1)
		nr0 := ctx.Sqr(ctx.New(), r0)
		r0, r1 = nr0, nr1
		cswapElt(r0, r1, b)
	}
	copy(z, r0)
	return z
}

// Inv sets z = a^-1 mod p via Fermat's little theorem (a^(p-2)), the
// generalization of the teacher's inv() from the hard-coded secp256k1
// p-2 byte string to any configured modulus.
func (ctx *Context) Inv(z, a Elt) Elt {
	pMinus2 := bn.Sub(bn.New(), ctx.modulusAsBn(), bn.FromUint64(2))
	return ctx.Exp(z, a, pMinus2)
}

// Sqrt computes a square root of a mod p if one exists, reporting whether
// it does. When p = 3 (mod 4) this takes the direct a^((p+1)/4) path the
// teacher's sqrt() uses (there ported via a fixed addition chain specific
// to the secp256k1 prime; here via the general Exp above, since the whole
// point of a configurable Context is that the exponent isn't known until
// construction time). Otherwise it falls back to full Tonelli-Shanks.
func (ctx *Context) Sqrt(z, a Elt) bool {
	if ctx.IsZero(a) {
		copy(z, ctx.New())
		return true
	}
	p := ctx.modulusAsBn()
	if p.Bit(0) == 1 && p.Bit(1) == 1 {
		// p = 3 (mod 4): r = a^((p+1)/4)
		e := bn.Rsh(bn.New(), bn.Add(bn.New(), p, bn.FromUint64(1)), 2)
		r := ctx.Exp(ctx.New(), a, e)
		check := ctx.Sqr(ctx.New(), r)
		if Cmp(check, a) != 0 {
			return false
		}
		copy(z, r)
		return true
	}
	return ctx.sqrtTonelliShanks(z, a, p)
}

// sqrtTonelliShanks handles the general odd-modulus case: write p-1 =
// q*2^s with q odd, find a quadratic non-residue n, and repeatedly square
// down the 2^s-order subgroup until the residual exponent collapses.
func (ctx *Context) sqrtTonelliShanks(z, a Elt, p *bn.Int) bool {
	pMinus1 := bn.Sub(bn.New(), p, bn.FromUint64(1))
	s := 0
	q := pMinus1.Clone()
	for q.IsEven() {
		bn.Rsh(q, q, 1)
		s++
	}

	legendre := func(x Elt) int {
		e := bn.Rsh(bn.New(), pMinus1, 1)
		r := ctx.Exp(ctx.New(), x, e)
		one := ctx.FromUint64(1)
		if Cmp(r, one) == 0 {
			return 1
		}
		return -1
	}

	if legendre(a) != 1 {
		return false
	}

	var n Elt
	for i := uint64(2); ; i++ {
		cand := ctx.FromUint64(i)
		if legendre(cand) == -1 {
			n = cand
			break
		}
	}

	qPlus1Half := bn.Rsh(bn.New(), bn.Add(bn.New(), q, bn.FromUint64(1)), 1)
	m := s
	c := ctx.Exp(ctx.New(), n, q)
	t := ctx.Exp(ctx.New(), a, q)
	r := ctx.Exp(ctx.New(), a, qPlus1Half)
	one := ctx.FromUint64(1)

	for Cmp(t, one) != 0 {
		i := 0
		tt := append(Elt(nil), t...)
		for Cmp(tt, one) != 0 {
			tt = ctx.Sqr(ctx.New(), tt)
			i++
			if i == m {
				return false
			}
		}
		b := append(Elt(nil), c...)
		for j := 0; j < m-i-1; j++ {
			b = ctx.Sqr(ctx.New(), b)
		}
		m = i
		c = ctx.Sqr(ctx.New(), b)
		t = ctx.Mul(ctx.New(), t, c)
		r = ctx.Mul(ctx.New(), r, b)
	}
	copy(z, r)
	return true
}
