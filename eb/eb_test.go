package eb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relicgo/corelic/bn"
	"github.com/relicgo/corelic/fb"
)

// koblitzFixture builds a small Koblitz curve y^2+xy=x^3+x^2+1 over
// GF(2^11) reduced by t^11+t^2+1, with base point G=(6,1313) of order
// 1982 = 2*991 - brute-force verified (curve order, point order, and the
// negation identity below) independently of this module. 1982 is even,
// so G itself is unusable as MulHalve's test point (halving needs an
// odd point order); halveFixture below derives the odd-order point that
// test actually needs.
func koblitzFixture(t *testing.T) (*Curve, *Point, *bn.Int) {
	t.Helper()
	f, err := fb.NewContext(11, []int{2})
	require.NoError(t, err)
	c := &Curve{F: f, A: f.FromUint64(1), B: f.FromUint64(1)}
	g := &Point{X: f.FromUint64(6), Y: f.FromUint64(1313)}
	order := bn.FromUint64(1982)
	return c, g, order
}

func requireOnCurve(t *testing.T, c *Curve, p *Point) {
	t.Helper()
	f := c.F
	lhs := f.Add(f.New(), f.Sqr(f.New(), p.Y), f.Mul(f.New(), p.X, p.Y))
	rhs := f.Add(f.New(), f.Mul(f.New(), f.Sqr(f.New(), p.X), p.X), f.Mul(f.New(), c.A, f.Sqr(f.New(), p.X)))
	rhs = f.Add(f.New(), rhs, c.B)
	require.Zerof(t, fb.Cmp(lhs, rhs), "point (%v, %v) is not on the curve", p.X, p.Y)
}

func TestBasePointIsOnCurve(t *testing.T) {
	c, g, _ := koblitzFixture(t)
	requireOnCurve(t, c, g)
}

func TestOrderMinusOneTimesGIsNegG(t *testing.T) {
	c, g, order := koblitzFixture(t)
	orderMinus1 := bn.New()
	bn.Sub(orderMinus1, order, bn.FromUint64(1))

	got := c.MulBasic(orderMinus1, g)
	want := c.Neg(&Point{}, g)
	require.True(t, c.Equal(got, want), "(order-1)*G must equal -G")
}

func TestScalarMulVariantsAgree(t *testing.T) {
	c, g, order := koblitzFixture(t)
	k := bn.FromUint64(1325)

	basic := c.MulBasic(k, g)
	requireOnCurve(t, c, basic)

	variants := map[string]*Point{
		"lodah":  c.MulLODAH(k, g, order.BitLen()),
		"lwnaf":  c.MulLWNAF(k, g, 4),
		"rwnaf":  c.MulRWNAF(k, g, 4),
		"taunaf": c.MulTauNAF(k, g, 4),
	}
	for name, got := range variants {
		require.Truef(t, c.Equal(got, basic), "%s disagrees with MulBasic", name)
	}
}

// halveFixture derives, from koblitzFixture's order-1982 base point G, a
// point of order 991 - the odd half of 1982 = 2*991, and itself prime -
// by doubling G once: ord(2G) = ord(G)/gcd(2, ord(G)) = 1982/2 = 991.
// Point halving is only well-defined on an odd-order point (2 must be
// invertible mod the order), which G itself is not.
func halveFixture(t *testing.T) (*Curve, *Point, *bn.Int) {
	t.Helper()
	c, g, _ := koblitzFixture(t)
	h := c.Dbl(&Point{}, g)
	return c, h, bn.FromUint64(991)
}

func TestMulHalveMatchesMulBasic(t *testing.T) {
	c, h, order := halveFixture(t)
	k := bn.FromUint64(733)

	basic := c.MulBasic(k, h)
	halved := c.MulHalve(k, h, order)
	require.True(t, c.Equal(halved, basic), "MulHalve disagrees with MulBasic")
}

func TestSimultaneousMulVariantsAgree(t *testing.T) {
	c, g, _ := koblitzFixture(t)
	k := bn.FromUint64(7)
	l := bn.FromUint64(11)
	q := c.MulBasic(bn.FromUint64(2), g)

	twoL := bn.New()
	bn.Mul(twoL, l, bn.FromUint64(2))
	sum := bn.New()
	bn.Add(sum, k, twoL)
	want := c.MulBasic(sum, g)

	variants := map[string]*Point{
		"basic":      c.MulSimBasic(k, g, l, q),
		"trick":      c.MulSimTrick(k, g, l, q, 4),
		"interleave": c.MulSimInterleave(k, g, l, q, 4),
		"joint":      c.MulSimJoint(k, g, l, q),
	}
	for name, got := range variants {
		require.Truef(t, c.Equal(got, want), "%s: 7*G + 11*(2G) disagrees with the known sum", name)
	}
}

func TestFrobeniusIsFieldAutomorphism(t *testing.T) {
	c, g, _ := koblitzFixture(t)
	tg := c.Frobenius(&Point{}, g)
	requireOnCurve(t, c, tg)
}
