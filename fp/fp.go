// Package fp implements the prime-field layer: fixed-width residues modulo
// a configured prime p, built on dv.Vec digit vectors the same way bn.Int
// is, but without a sign - every Elt is already reduced into [0, p).
//
// Two interchangeable reduction back-ends sit behind the Reducer
// interface: Montgomery reduction (rdcn) for a general odd modulus, and
// sparse reduction (rdcs) for a modulus of the form 2^n - c with small c.
// A Context picks one at construction time; every arithmetic entry point
// is agnostic to which.
package fp

import (
	"github.com/relicgo/corelic/arena"
	"github.com/relicgo/corelic/dv"
	"github.com/relicgo/corelic/errs"
)

// Elt is a fixed-width field element: len(Elt) == Context.Digs always.
// Representation (standard residue vs. Montgomery domain) is owned by the
// Context's Reducer - callers never need to know which.
type Elt []dv.Digit

// Reducer is the pluggable reduction back-end a Context is built with.
type Reducer interface {
	// Reduce folds a double-width product (length 2*Digs) down to a
	// single Digs-length element modulo p.
	Reduce(ctx *Context, wide []dv.Digit) Elt
	// ToDomain converts an ordinary residue into this reducer's working
	// domain (Montgomery form, or the identity for the sparse reducer).
	ToDomain(ctx *Context, z Elt) Elt
	// FromDomain is ToDomain's inverse.
	FromDomain(ctx *Context, z Elt) Elt
	Name() string
}

// Context bundles a modulus with the precomputed constants its Reducer
// needs, and a scratch arena for the element-granularity operations.
type Context struct {
	Digs    int    // width in 64-bit digits
	P       dv.Vec // modulus, length Digs
	Reducer Reducer

	// montU is -p^-1 mod 2^64, used by the Montgomery reducer only.
	montU dv.Digit
	// montR2 is R^2 mod p (R = 2^(64*Digs)), used by the Montgomery
	// reducer to move values into and out of its domain.
	montR2 Elt
	// sparseC is p's complement for a sparse modulus p = 2^(64*Digs) - c.
	sparseC dv.Digit

	// Arena, when set (by engine.New, which owns one per Context), backs
	// Mul/Sqr's double-width scratch buffer instead of the heap. Nil is
	// valid - a bare fp.Context built directly still works, just without
	// pooling.
	Arena *arena.Arena
}

// NewContext builds a Context for modulus p using the Montgomery reducer,
// the general-purpose default (grounded on the teacher's
// montgomeryReduce/REDC and original_source's fp_rdcn_low).
func NewContext(p dv.Vec) (*Context, error) {
	if len(p) == 0 || dv.IsZero(p) {
		return nil, errs.Wrap(errs.InvalidInput, "fp: modulus must be nonzero")
	}
	if p[0]&1 == 0 {
		return nil, errs.Wrap(errs.InvalidInput, "fp: Montgomery reduction requires an odd modulus")
	}
	ctx := &Context{Digs: len(p), P: append(dv.Vec(nil), p...)}
	ctx.montU = montgomeryInverse(p[0])
	ctx.Reducer = montgomeryReducer{}
	ctx.montR2 = computeR2(ctx)
	return ctx, nil
}

// NewSparseContext builds a Context for a sparse modulus p = 2^(64*digs) - c,
// using the sparse reducer (rdcs), grounded on original_source's
// fp_rdcs_low with its stray debug printf statements removed.
func NewSparseContext(digs int, c dv.Digit) (*Context, error) {
	if digs <= 0 {
		return nil, errs.Wrap(errs.InvalidInput, "fp: sparse modulus width must be positive")
	}
	p := make(dv.Vec, digs)
	// 0 - c over digs digits wraps around to 2^(64*digs) - c.
	cv := make(dv.Vec, digs)
	cv[0] = c
	dv.SubN(p, make(dv.Vec, digs), cv, digs)
	ctx := &Context{Digs: digs, P: p, Reducer: sparseReducer{}, sparseC: c}
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

// FromUint64 returns ctx's domain representation of the small value v.
func (ctx *Context) FromUint64(v uint64) Elt {
	z := ctx.New()
	z[0] = v
	return ctx.Reducer.ToDomain(ctx, z)
}

// FromBytes interprets b as a big-endian integer reduced mod p, converted
// into ctx's working domain.
func (ctx *Context) FromBytes(b []byte) Elt {
	z := ctx.New()
	for i, bi := range b {
		pos := len(b) - 1 - i
		if pos/8 >= ctx.Digs {
			continue
		}
		z[pos/8] |= dv.Digit(bi) << uint((pos%8)*8)
	}
	ctx.reduceFull(z)
	return ctx.Reducer.ToDomain(ctx, z)
}

// Bytes returns the big-endian encoding of the ordinary residue
// represented by z (i.e. z converted out of ctx's working domain first).
func (ctx *Context) Bytes(z Elt) []byte {
	std := ctx.Reducer.FromDomain(ctx, z)
	out := make([]byte, ctx.Digs*8)
	for i := range out {
		pos := len(out) - 1 - i
		out[i] = byte(std[pos/8] >> uint((pos%8)*8))
	}
	return out
}

// reduceFull subtracts p from z while z >= p, bringing a loosely-bounded
// value (e.g. freshly parsed bytes) into [0, p).
func (ctx *Context) reduceFull(z Elt) {
	for dv.Cmp(dv.Vec(z), ctx.P) >= 0 {
		dv.SubN(dv.Vec(z), dv.Vec(z), ctx.P, ctx.Digs)
	}
}

// IsZero reports whether z is the zero element.
func (ctx *Context) IsZero(z Elt) bool {
	return dv.IsZero(dv.Vec(z))
}

// Cmp compares two elements as unsigned integers.
func Cmp(a, b Elt) int {
	return dv.Cmp(dv.Vec(a), dv.Vec(b))
}

// Add sets z = a + b mod p.
func (ctx *Context) Add(z, a, b Elt) Elt {
	carry := dv.AddN(dv.Vec(z), dv.Vec(a), dv.Vec(b), ctx.Digs)
	if carry != 0 || dv.Cmp(dv.Vec(z), ctx.P) >= 0 {
		dv.SubN(dv.Vec(z), dv.Vec(z), ctx.P, ctx.Digs)
	}
	return z
}

// Sub sets z = a - b mod p.
func (ctx *Context) Sub(z, a, b Elt) Elt {
	borrow := dv.SubN(dv.Vec(z), dv.Vec(a), dv.Vec(b), ctx.Digs)
	if borrow != 0 {
		dv.AddN(dv.Vec(z), dv.Vec(z), ctx.P, ctx.Digs)
	}
	return z
}

// Neg sets z = -a mod p.
func (ctx *Context) Neg(z, a Elt) Elt {
	if ctx.IsZero(a) {
		copy(z, make(Elt, ctx.Digs))
		return z
	}
	dv.SubN(dv.Vec(z), ctx.P, dv.Vec(a), ctx.Digs)
	return z
}

// Dbl sets z = 2a mod p.
func (ctx *Context) Dbl(z, a Elt) Elt {
	return ctx.Add(z, a, a)
}

// Hlv sets z = a/2 mod p, following the teacher's half() shape: add p
// when a is odd (so the sum is even) before shifting right by one.
func (ctx *Context) Hlv(z, a Elt) Elt {
	mask := dv.Digit(-int64(a[0] & 1))
	masked := make(dv.Vec, ctx.Digs)
	for i, pi := range ctx.P {
		masked[i] = pi & mask
	}
	sum := make(dv.Vec, ctx.Digs)
	carry := dv.AddN(sum, dv.Vec(a), masked, ctx.Digs)
	dv.Rsh1(dv.Vec(z), sum, ctx.Digs)
	if carry != 0 {
		z[ctx.Digs-1] |= 1 << 63
	}
	return z
}

// cmovElt conditionally copies b into a (full Digs-digit select) when
// flag == 1, following the teacher's cmov's mask-xor shape generalized
// from five fixed limbs to ctx.Digs.
func cmovElt(a, b Elt, flag int) {
	mask := dv.Digit(-int64(flag & 1))
	for i := range a {
		a[i] ^= mask & (a[i] ^ b[i])
	}
}
