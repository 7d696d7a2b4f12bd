// Package ep implements the prime-curve layer: scalar and simultaneous
// multiplication for short Weierstrass curves y^2 = x^3 + a*x + b over a
// configured fp.Context, in Jacobian projective coordinates.
//
// Grounded on group.go's GroupElementJacobian: the doubling and addition
// formulas here are generalized from its secp256k1-specific (a=0)
// shortcuts to the general-a add-2007-bl/dbl-2007-bl formulas, since this
// module's curve set (NIST P-256, the secp256k1 cross-check fixture)
// needs a nonzero a.
package ep

import "github.com/relicgo/corelic/fp"

// Curve names a short Weierstrass curve over a prime field.
type Curve struct {
	F    *fp.Context
	A, B fp.Elt
}

// Point is a Jacobian-coordinate point: affine (x/z^2, y/z^3).
type Point struct {
	X, Y, Z  fp.Elt
	Infinity bool
}

// Infinity returns the point at infinity for c.
func (c *Curve) Infinity() *Point {
	return &Point{X: c.F.New(), Y: c.F.FromUint64(1), Z: c.F.New(), Infinity: true}
}

// FromAffine builds a Jacobian point from affine coordinates.
func (c *Curve) FromAffine(x, y fp.Elt) *Point {
	return &Point{X: append(fp.Elt(nil), x...), Y: append(fp.Elt(nil), y...), Z: c.F.FromUint64(1)}
}

// Norm converts p to affine coordinates, returned as (x, y); panics if p
// is the point at infinity.
func (c *Curve) Norm(p *Point) (fp.Elt, fp.Elt) {
	if p.Infinity {
		panic("ep: cannot normalize the point at infinity")
	}
	zInv := c.F.Inv(c.F.New(), p.Z)
	z2 := c.F.Sqr(c.F.New(), zInv)
	z3 := c.F.Mul(c.F.New(), z2, zInv)
	x := c.F.Mul(c.F.New(), p.X, z2)
	y := c.F.Mul(c.F.New(), p.Y, z3)
	return x, y
}

// Equal reports whether p and q represent the same affine point.
func (c *Curve) Equal(p, q *Point) bool {
	if p.Infinity && q.Infinity {
		return true
	}
	if p.Infinity || q.Infinity {
		return false
	}
	px, py := c.Norm(p)
	qx, qy := c.Norm(q)
	return fp.Cmp(px, qx) == 0 && fp.Cmp(py, qy) == 0
}

// Neg sets r to -p (mirror around the x-axis).
func (c *Curve) Neg(r, p *Point) *Point {
	r.X = append(fp.Elt(nil), p.X...)
	r.Y = c.F.Neg(c.F.New(), p.Y)
	r.Z = append(fp.Elt(nil), p.Z...)
	r.Infinity = p.Infinity
	return r
}

// Dbl sets r = 2*p using the general-a dbl-2007-bl formula.
func (c *Curve) Dbl(r, p *Point) *Point {
	if p.Infinity || c.F.IsZero(p.Y) {
		*r = *c.Infinity()
		return r
	}
	f := c.F
	xx := f.Sqr(f.New(), p.X)
	yy := f.Sqr(f.New(), p.Y)
	yyyy := f.Sqr(f.New(), yy)
	zz := f.Sqr(f.New(), p.Z)

	xPlusYY := f.Add(f.New(), p.X, yy)
	xPlusYYsq := f.Sqr(f.New(), xPlusYY)
	s := f.Sub(f.New(), xPlusYYsq, xx)
	s = f.Sub(f.New(), s, yyyy)
	s = f.Dbl(f.New(), s)

	zz2 := f.Sqr(f.New(), zz)
	aZz2 := f.Mul(f.New(), c.A, zz2)
	m := f.Dbl(f.New(), xx)
	m = f.Add(f.New(), m, xx)
	m = f.Add(f.New(), m, aZz2)

	t := f.Sqr(f.New(), m)
	twoS := f.Dbl(f.New(), s)
	t = f.Sub(f.New(), t, twoS)

	x3 := t
	sMinusT := f.Sub(f.New(), s, t)
	y3 := f.Mul(f.New(), m, sMinusT)
	eightYyyy := f.Dbl(f.New(), yyyy)
	eightYyyy = f.Dbl(f.New(), eightYyyy)
	eightYyyy = f.Dbl(f.New(), eightYyyy)
	y3 = f.Sub(f.New(), y3, eightYyyy)

	yPlusZ := f.Add(f.New(), p.Y, p.Z)
	yPlusZsq := f.Sqr(f.New(), yPlusZ)
	z3 := f.Sub(f.New(), yPlusZsq, yy)
	z3 = f.Sub(f.New(), z3, zz)

	r.X, r.Y, r.Z, r.Infinity = x3, y3, z3, false
	return r
}

// Add sets r = p + q using the general-a add-2007-bl formula, falling
// back to Dbl/infinity for the degenerate cases.
func (c *Curve) Add(r, p, q *Point) *Point {
	if p.Infinity {
		*r = *q
		return r
	}
	if q.Infinity {
		*r = *p
		return r
	}
	f := c.F
	z1z1 := f.Sqr(f.New(), p.Z)
	z2z2 := f.Sqr(f.New(), q.Z)
	u1 := f.Mul(f.New(), p.X, z2z2)
	u2 := f.Mul(f.New(), q.X, z1z1)
	s1 := f.Mul(f.New(), p.Y, q.Z)
	s1 = f.Mul(f.New(), s1, z2z2)
	s2 := f.Mul(f.New(), q.Y, p.Z)
	s2 = f.Mul(f.New(), s2, z1z1)

	h := f.Sub(f.New(), u2, u1)
	rr := f.Sub(f.New(), s2, s1)
	if f.IsZero(h) {
		if f.IsZero(rr) {
			return c.Dbl(r, p)
		}
		*r = *c.Infinity()
		return r
	}
	rr = f.Dbl(f.New(), rr)

	i := f.Dbl(f.New(), h)
	i = f.Sqr(f.New(), i)
	j := f.Mul(f.New(), h, i)
	v := f.Mul(f.New(), u1, i)

	x3 := f.Sqr(f.New(), rr)
	x3 = f.Sub(f.New(), x3, j)
	twoV := f.Dbl(f.New(), v)
	x3 = f.Sub(f.New(), x3, twoV)

	vMinusX3 := f.Sub(f.New(), v, x3)
	y3 := f.Mul(f.New(), rr, vMinusX3)
	s1j := f.Mul(f.New(), s1, j)
	s1j = f.Dbl(f.New(), s1j)
	y3 = f.Sub(f.New(), y3, s1j)

	zSum := f.Add(f.New(), p.Z, q.Z)
	zSumSq := f.Sqr(f.New(), zSum)
	z3 := f.Sub(f.New(), zSumSq, z1z1)
	z3 = f.Sub(f.New(), z3, z2z2)
	z3 = f.Mul(f.New(), z3, h)

	r.X, r.Y, r.Z, r.Infinity = x3, y3, z3, false
	return r
}

// Sub sets r = p - q.
func (c *Curve) Sub(r, p, q *Point) *Point {
	neg := c.Neg(&Point{}, q)
	return c.Add(r, p, neg)
}
