package fb

import "testing"

func smallContext(t *testing.T) *Context {
	t.Helper()
	// GF(2^4) reduced by x^4 + x + 1, small enough to enumerate by hand.
	ctx, err := NewContext(4, []int{1})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx
}

func TestAddIsItsOwnInverse(t *testing.T) {
	ctx := smallContext(t)
	a := ctx.FromUint64(0xb)
	b := ctx.FromUint64(0x7)
	sum := ctx.Add(ctx.New(), a, b)
	back := ctx.Add(ctx.New(), sum, b)
	if Cmp(back, a) != 0 {
		t.Fatalf("a+b+b != a: got %v want %v", back, a)
	}
}

func TestMulByOneIsIdentity(t *testing.T) {
	ctx := smallContext(t)
	one := ctx.FromUint64(1)
	for v := uint64(1); v < 16; v++ {
		a := ctx.FromUint64(v)
		prod := ctx.Mul(ctx.New(), a, one)
		if Cmp(prod, a) != 0 {
			t.Fatalf("v=%d: a*1 != a, got %v", v, prod)
		}
	}
}

func TestSqrMatchesSelfMul(t *testing.T) {
	ctx := smallContext(t)
	for v := uint64(1); v < 16; v++ {
		a := ctx.FromUint64(v)
		sq := ctx.Sqr(ctx.New(), a)
		prod := ctx.Mul(ctx.New(), a, a)
		if Cmp(sq, prod) != 0 {
			t.Fatalf("v=%d: Sqr(a) != a*a, got %v vs %v", v, sq, prod)
		}
	}
}

func TestSqrtInvertsSqr(t *testing.T) {
	ctx := smallContext(t)
	for v := uint64(0); v < 16; v++ {
		a := ctx.FromUint64(v)
		sq := ctx.Sqr(ctx.New(), a)
		root := ctx.Sqrt(ctx.New(), sq)
		if Cmp(root, a) != 0 {
			t.Fatalf("v=%d: Sqrt(Sqr(a)) != a, got %v", v, root)
		}
	}
}

func TestBytesRoundTrip(t *testing.T) {
	ctx := smallContext(t)
	a := ctx.FromUint64(0xd)
	b := ctx.Bytes(a)
	back := ctx.FromBytes(b)
	if Cmp(back, a) != 0 {
		t.Fatalf("Bytes round trip failed: got %v want %v", back, a)
	}
}

func TestTraceIsAdditiveHomomorphism(t *testing.T) {
	ctx := smallContext(t)
	for v := uint64(0); v < 16; v++ {
		for w := uint64(0); w < 16; w++ {
			a := ctx.FromUint64(v)
			b := ctx.FromUint64(w)
			sum := ctx.Add(ctx.New(), a, b)
			got := ctx.Trace(sum)
			want := ctx.Trace(a) ^ ctx.Trace(b)
			if got != want {
				t.Fatalf("v=%d w=%d: Trace(a+b) != Trace(a)+Trace(b)", v, w)
			}
		}
	}
}

func TestHalfTraceSolvesQuadraticOverOddField(t *testing.T) {
	// GF(2^5) reduced by x^5 + x^2 + 1, an odd-degree field so HalfTrace
	// applies.
	ctx, err := NewContext(5, []int{2})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	for v := uint64(0); v < 32; v++ {
		a := ctx.FromUint64(v)
		if ctx.Trace(a) != 0 {
			continue
		}
		z := ctx.New()
		if !ctx.SolveQuadratic(z, a) {
			t.Fatalf("v=%d: SolveQuadratic failed despite zero trace", v)
		}
		z2 := ctx.Sqr(ctx.New(), z)
		lhs := ctx.Add(ctx.New(), z2, z)
		if Cmp(lhs, a) != 0 {
			t.Fatalf("v=%d: z^2+z != a, got %v want %v", v, lhs, a)
		}
	}
}
