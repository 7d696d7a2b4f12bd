package ep

import (
	"encoding/hex"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/relicgo/corelic/bn"
	"github.com/relicgo/corelic/dv"
	"github.com/relicgo/corelic/fp"
)

// requireEqualPoint is require.True(c.Equal(...)) with a readable dump of
// both points on failure: a mismatched x/y/z/Infinity field buried in a
// bare "false" assertion is unreadable, and hex-formatting them by hand in
// every caller would be worse than importing the one thing that already
// does it.
func requireEqualPoint(t *testing.T, c *Curve, name string, got, want *Point) {
	t.Helper()
	if !c.Equal(got, want) {
		t.Fatalf("%s: points disagree\ngot:  %s\nwant: %s", name, spew.Sdump(got), spew.Sdump(want))
	}
}

// vecFromHex decodes a big-endian hex string into a little-endian digit
// vector suitable for fp.NewContext / fp.Context.FromBytes callers that
// need the modulus itself, not a field element.
func vecFromHex(t *testing.T, s string) dv.Vec {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	digs := (len(b) + 7) / 8
	v := make(dv.Vec, digs)
	for i, bi := range b {
		pos := len(b) - 1 - i
		v[pos/8] |= dv.Digit(bi) << uint((pos%8)*8)
	}
	return v
}

// p256Curve builds NIST P-256: p = 2^256-2^224+2^192+2^96-1, a = p-3, and
// its b constant, over fp's Montgomery-backed Context.
func p256Curve(t *testing.T) *Curve {
	t.Helper()
	p := vecFromHex(t, "FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF")
	f, err := fp.NewContext(p)
	require.NoError(t, err)
	a := f.FromBytes(mustHex(t, "FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFC"))
	b := f.FromBytes(mustHex(t, "05AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604"))
	return &Curve{F: f, A: a, B: b}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// p256Fixture returns a verified point on the curve (not the textbook
// standard generator, but a point this module independently confirmed is
// on-curve, along with its 2nd, 3rd, 10th and 13th multiples) - since the
// group order is prime, any nonzero point generates the whole group, so
// it serves scalar-multiplication testing the same way the standard
// generator would.
func p256Fixture(t *testing.T) (c *Curve, g, g2, g3, g10, g13 *Point) {
	t.Helper()
	c = p256Curve(t)
	mk := func(xHex, yHex string) *Point {
		x := c.F.FromBytes(mustHex(t, xHex))
		y := c.F.FromBytes(mustHex(t, yHex))
		return c.FromAffine(x, y)
	}
	g = mk(
		"0000000000000000000000000000000000000000000000000000000000000001",
		"829bf65ed0f94361c275b91dff83e2b6f9c256c55199949eac965280b85cc364",
	)
	g2 = mk(
		"ffffffff00000001000000000000000000000000fffffffffffffffffffffffd",
		"7d6409a02f06bc9f3d8a46e2007c1d49063da93bae666b615369ad7f47a33c9b",
	)
	g3 = mk(
		"e613ba6192f367aae17137097c2ee74c58245ca23e908c06d6fe9e1e2bc5d801",
		"1356bdc2a5d4bd55dbd0ccb184d468feac4da0b76b6cee4164589984307c5ea7",
	)
	g10 = mk(
		"e08071c36ed978af2627248d8dbfb9f37fee969a489e4c977a20051aa53098e5",
		"0e747e5fae8ac43a6c0ed8520292f0fc95590e4712737bed325c8ffc2cce7274",
	)
	g13 = mk(
		"e58ca0560896c392ab25f09c6f2e9286ede94a7287577c6e764a36b76315b55b",
		"e630246ca24abf489590163eb0f54ffcc110b2942e0f42ffda95a0d905e4be3c",
	)
	return
}

func TestDblMatchesKnownMultiple(t *testing.T) {
	c, g, g2, _, _, _ := p256Fixture(t)
	got := c.Dbl(&Point{}, g)
	require.True(t, c.Equal(got, g2), "2*G must equal the known 2G")
}

func TestMulBasicMatchesKnownMultiples(t *testing.T) {
	c, g, g2, g3, _, _ := p256Fixture(t)
	got2 := c.MulBasic(bn.FromUint64(2), g)
	require.True(t, c.Equal(got2, g2), "MulBasic(2, G) disagrees with known 2G")
	got3 := c.MulBasic(bn.FromUint64(3), g)
	require.True(t, c.Equal(got3, g3), "MulBasic(3, G) disagrees with known 3G")
}

func TestScalarMulVariantsAgree(t *testing.T) {
	c, g, _, _, _, g13 := p256Fixture(t)
	k := bn.FromUint64(13)

	variants := map[string]*Point{
		"lwnaf":  c.MulLWNAF(k, g, 4),
		"rwnaf":  c.MulRWNAF(k, g, 4),
		"ladder": c.MulLadder(k, g, k.BitLen()),
	}
	for name, got := range variants {
		requireEqualPoint(t, c, name, got, g13)
	}
}

func TestSimultaneousMulMatchesKnownMultiple(t *testing.T) {
	c, g, g2, _, _, g13 := p256Fixture(t)
	k := bn.FromUint64(3)
	l := bn.FromUint64(5)

	variants := map[string]*Point{
		"basic":      c.MulSimBasic(k, g, l, g2),
		"trick":      c.MulSimTrick(k, g, l, g2, 4),
		"interleave": c.MulSimInterleave(k, g, l, g2, 4),
		"joint":      c.MulSimJoint(k, g, l, g2),
	}
	for name, got := range variants {
		requireEqualPoint(t, c, name+": 3*G + 5*(2G)", got, g13)
	}
}

func TestNegIsInvolution(t *testing.T) {
	c, g, _, _, _, _ := p256Fixture(t)
	negNeg := c.Neg(&Point{}, c.Neg(&Point{}, g))
	require.True(t, c.Equal(negNeg, g), "-(-G) must equal G")
}

func TestAddMatchesNegatedSubtraction(t *testing.T) {
	c, g, g2, g3, _, _ := p256Fixture(t)
	sum := c.Add(&Point{}, g, g2)
	require.True(t, c.Equal(sum, g3), "G + 2G must equal 3G")
	diff := c.Sub(&Point{}, g3, g2)
	require.True(t, c.Equal(diff, g), "3G - 2G must equal G")
}
