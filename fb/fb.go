// Package fb implements the binary-field layer: GF(2^m) arithmetic over an
// irreducible reduction polynomial with at most three extra terms (a
// trinomial or pentanomial, per the Koblitz-curve fields this module
// targets), built on dv.Vec the same way fp.Elt is, but with addition
// realized as XOR and multiplication as carryless polynomial
// multiplication followed by reduction.
//
// Five interchangeable inversion algorithms live in inv.go, following the
// original C implementation's fb_inv_basic, fb_inv_binar, fb_inv_exgcd,
// fb_inv_almos and fb_inv_itoht (InvAlmos is a reshaped hybrid of the
// binary and exgcd loops rather than a line-by-line port) - the source
// spec's open question about fb_inv_itoht's addition chain is resolved in
// BuildChain by deriving the chain from the Itoh-Tsuji exponent relation
// directly rather than the C file's reused t/v temporaries.
package fb

import (
	"github.com/relicgo/corelic/arena"
	"github.com/relicgo/corelic/dv"
	"github.com/relicgo/corelic/errs"
)

// Elt is a fixed-width binary-field element: len(Elt) == Context.Digs.
type Elt []dv.Digit

// Context describes one GF(2^m) field: its degree and the exponents of
// the reduction polynomial's non-leading, non-constant terms (so a
// trinomial x^m + x^a + 1 carries Extra = []int{a}, and a pentanomial
// x^m + x^a + x^b + x^c + 1 carries Extra = []int{a, b, c}, matching the
// glossary's FbPoly shape).
type Context struct {
	M     int
	Extra []int
	Digs  int

	chainPairs [][2]int
	chainU     []int

	// Arena, when set (by engine.New), backs Mul/Sqr's double-width
	// scratch buffer instead of the heap. Nil is valid.
	Arena *arena.Arena
}

// NewContext builds a Context for the field GF(2^m) reduced by
// x^m + sum(x^e for e in extra) + 1.
func NewContext(m int, extra []int) (*Context, error) {
	if m < 2 {
		return nil, errs.Wrap(errs.InvalidInput, "fb: field degree must be at least 2")
	}
	if len(extra) != 1 && len(extra) != 3 {
		return nil, errs.Wrap(errs.InvalidInput, "fb: reduction polynomial must be a trinomial or pentanomial")
	}
	for _, e := range extra {
		if e <= 0 || e >= m {
			return nil, errs.Wrap(errs.InvalidInput, "fb: reduction exponent out of range")
		}
	}
	ctx := &Context{M: m, Extra: append([]int(nil), extra...), Digs: (m + 63) / 64}
	ctx.chainPairs, ctx.chainU = BuildChain(m - 1)
	return ctx, nil
}

// New returns the zero element of ctx.
func (ctx *Context) New() Elt {
	return make(Elt, ctx.Digs)
}

// scratch returns a zeroed length-n digit buffer, drawn from ctx.Arena
// when one is configured and from the heap otherwise.
func (ctx *Context) scratch(n int) Elt {
	if ctx.Arena != nil {
		return Elt(ctx.Arena.Get(n))
	}
	return make(Elt, n)
}

// FromUint64 builds the element whose bit i is bit i of v, reduced mod
// ctx's modulus.
func (ctx *Context) FromUint64(v uint64) Elt {
	z := ctx.New()
	z[0] = dv.Digit(v)
	ctx.Reduce(z)
	return z
}

// FromBytes interprets b as a big-endian polynomial reduced mod ctx's
// modulus.
func (ctx *Context) FromBytes(b []byte) Elt {
	z := ctx.New()
	for i, bi := range b {
		pos := len(b) - 1 - i
		if pos/8 >= ctx.Digs {
			continue
		}
		z[pos/8] |= dv.Digit(bi) << uint((pos%8)*8)
	}
	ctx.Reduce(z)
	return z
}

// Bytes returns the big-endian encoding of z.
func (ctx *Context) Bytes(z Elt) []byte {
	out := make([]byte, ctx.Digs*8)
	for i := range out {
		pos := len(out) - 1 - i
		out[i] = byte(z[pos/8] >> uint((pos%8)*8))
	}
	return out
}

// IsZero reports whether z is the zero element.
func (ctx *Context) IsZero(z Elt) bool { return dv.IsZero(dv.Vec(z)) }

// Cmp compares two elements bit-pattern-wise.
func Cmp(a, b Elt) int { return dv.Cmp(dv.Vec(a), dv.Vec(b)) }

// Bit returns bit i of z.
func Bit(z Elt, i int) dv.Digit { return dv.Bit(dv.Vec(z), i) }

// Deg returns the degree of z (the index of its highest set bit, or -1
// for the zero element).
func Deg(z Elt) int {
	n := dv.BitLen(dv.Vec(z), len(z))
	return n - 1
}

// Add sets z = a + b (bitwise XOR - addition and subtraction coincide in
// characteristic two).
func (ctx *Context) Add(z, a, b Elt) Elt {
	for i := 0; i < ctx.Digs; i++ {
		z[i] = a[i] ^ b[i]
	}
	return z
}

// SetDig sets z to the single-digit value v.
func (ctx *Context) SetDig(z Elt, v dv.Digit) Elt {
	for i := range z {
		z[i] = 0
	}
	z[0] = v
	return z
}

// Reduce folds z - which may be ctx.Digs digits wide (a field element) or
// 2*ctx.Digs wide (a Mul/Sqr product, with bits up to degree 2*(M-1)) -
// back under degree M using the reduction polynomial's extra terms,
// following the teacher's normalize's fold-down-then-mask shape one level
// removed from a prime modulus: here each bit above M-1 cancels itself and
// its mirror terms at bitPos-M+e for every extra exponent e (and bitPos-M). The scan
// bound is len(z)'s own width, not ctx.Digs, so the double-width buffers
// Mul/Sqr pass in get folded all the way down instead of only partially.
func (ctx *Context) Reduce(z Elt) {
	for deg := len(z)*64 - 1; deg >= ctx.M; deg-- {
		word := deg / 64
		if (z[word]>>uint(deg%64))&1 == 0 {
			continue
		}
		clearBit(z, deg)
		shift := deg - ctx.M
		for _, e := range ctx.Extra {
			toggleBit(z, shift+e)
		}
		toggleBit(z, shift)
	}
}

func clearBit(z Elt, i int) {
	z[i/64] &^= dv.Digit(1) << uint(i%64)
}

func toggleBit(z Elt, i int) {
	z[i/64] ^= dv.Digit(1) << uint(i%64)
}

func setBit(z Elt, i int) {
	z[i/64] |= dv.Digit(1) << uint(i%64)
}

// mulWide carries out schoolbook carryless multiplication of a and b
// (each ctx.Digs digits) into a 2*Digs-digit buffer, bit by bit. This is
// the portable reference shape - the fast word-at-a-time version with
// the classic four/eight-bit precomputed tables belongs to the lower
// layer (see InvLower's doc comment), which this module does not carry
// assembly for.
func mulWide(ctx *Context, a, b Elt) Elt {
	wide := ctx.scratch(2 * ctx.Digs)
	for i := 0; i < ctx.M; i++ {
		if Bit(a, i) == 0 {
			continue
		}
		for j := 0; j < ctx.M; j++ {
			if Bit(b, j) == 0 {
				continue
			}
			toggleBit(wide, i+j)
		}
	}
	return wide
}

// Mul sets z = a * b mod ctx's reduction polynomial.
func (ctx *Context) Mul(z, a, b Elt) Elt {
	wide := mulWide(ctx, a, b)
	ctx.Reduce(wide)
	copy(z, wide[:ctx.Digs])
	return z
}

// Sqr sets z = a^2 mod ctx's reduction polynomial, by spreading a's bits
// with a zero inserted between each one (squaring in GF(2)[x] never
// produces cross terms) and reducing.
func (ctx *Context) Sqr(z, a Elt) Elt {
	wide := ctx.scratch(2 * ctx.Digs)
	for i := 0; i < ctx.M; i++ {
		if Bit(a, i) != 0 {
			setBit(wide, 2*i)
		}
	}
	ctx.Reduce(wide)
	copy(z, wide[:ctx.Digs])
	return z
}
