package fb

import "testing"

// b283Context builds GF(2^283) reduced by the NIST B-283 polynomial
// t^283 + t^12 + t^7 + t^5 + 1.
func b283Context(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewContext(283, []int{12, 7, 5})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx
}

func TestInversionVariantsAgreeOnB283(t *testing.T) {
	ctx := b283Context(t)
	a := ctx.FromUint64(0x3) // z + 1

	one := ctx.FromUint64(1)
	variants := map[string]func(z, a Elt) Elt{
		"basic":  ctx.InvBasic,
		"binar":  ctx.InvBinar,
		"exgcd":  ctx.InvExgcd,
		"almos":  ctx.InvAlmos,
		"itoht":  ctx.InvItoht,
		"lower":  ctx.InvLower,
	}

	var reference Elt
	for name, f := range variants {
		got := f(ctx.New(), a)
		prod := ctx.Mul(ctx.New(), a, got)
		if Cmp(prod, one) != 0 {
			t.Fatalf("%s: a*a^-1 != 1, got product %v", name, prod)
		}
		if reference == nil {
			reference = got
			continue
		}
		if Cmp(got, reference) != 0 {
			t.Fatalf("%s disagrees with first variant: got %v want %v", name, got, reference)
		}
	}
}

func TestInversionVariantsAgreeOnSmallField(t *testing.T) {
	ctx := smallContext(t)
	for v := uint64(1); v < 16; v++ {
		a := ctx.FromUint64(v)
		basic := ctx.InvBasic(ctx.New(), a)
		for name, got := range map[string]Elt{
			"binar": ctx.InvBinar(ctx.New(), a),
			"exgcd": ctx.InvExgcd(ctx.New(), a),
			"almos": ctx.InvAlmos(ctx.New(), a),
			"itoht": ctx.InvItoht(ctx.New(), a),
		} {
			if Cmp(got, basic) != 0 {
				t.Fatalf("v=%d: %s disagrees with basic: got %v want %v", v, name, got, basic)
			}
		}
	}
}

func TestInvSimMatchesIndividualInversion(t *testing.T) {
	ctx := smallContext(t)
	vals := []Elt{
		ctx.FromUint64(3),
		ctx.FromUint64(5),
		ctx.FromUint64(9),
		ctx.FromUint64(11),
	}
	got := ctx.InvSim(vals)
	for i, a := range vals {
		want := ctx.InvLower(ctx.New(), a)
		if Cmp(got[i], want) != 0 {
			t.Fatalf("index %d: InvSim disagrees with InvLower: got %v want %v", i, got[i], want)
		}
	}
}
