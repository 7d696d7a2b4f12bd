package bn

// DivMod computes q = a / b and r = a % b (truncating division, r takes
// the sign of a) using binary long division. It is not meant to be fast -
// the source spec's sparse-modulus and Montgomery reductions exist
// precisely so that fp never calls this on the hot path; DivMod backs
// Gcd and the occasional cold-path reduction of a scalar mod the group
// order when the caller hands in an unreduced value.
func DivMod(q, r, a, b *Int) {
	if b.IsZero() {
		panic("bn: division by zero")
	}
	absA := Abs(New(), a)
	absB := Abs(New(), b)

	quot := New()
	rem := New()
	n := absA.BitLen()
	quot.d = make([]uint64, (n+63)/64+1)
	for i := n - 1; i >= 0; i-- {
		Lsh(rem, rem, 1)
		if absA.Bit(i) == 1 {
			setBit(rem, 0)
		}
		if CmpAbs(rem, absB) >= 0 {
			Sub(rem, rem, absB)
			setBit(quot, i)
		}
	}
	quot.normalize()
	quot.neg = (a.neg != b.neg) && !quot.IsZero()
	rem.neg = a.neg && !rem.IsZero()

	if q != nil {
		q.Set(quot)
	}
	if r != nil {
		r.Set(rem)
	}
}

func setBit(z *Int, i int) {
	word := i / 64
	for len(z.d) <= word {
		z.d = append(z.d, 0)
	}
	z.d[word] |= 1 << uint(i%64)
	z.normalize()
}

// Mod sets z = a mod m, where the result is always in [0, m) regardless
// of a's sign - the convention every modular-reduction caller in fp and
// ep/eb scalar handling expects.
func Mod(z, a, m *Int) *Int {
	var r Int
	DivMod(nil, &r, a, m)
	if r.IsNeg() {
		Add(&r, &r, Abs(New(), m))
	}
	z.Set(&r)
	return z
}

// Gcd sets z to the greatest common divisor of |a| and |b| using the
// classic Euclidean algorithm (binary GCD is not needed at the sizes this
// core operates on - scalars and field moduli up to a few hundred bits).
func Gcd(z, a, b *Int) *Int {
	x := Abs(New(), a)
	y := Abs(New(), b)
	for !y.IsZero() {
		var r Int
		DivMod(nil, &r, x, y)
		x, y = y, &r
	}
	z.Set(x)
	return z
}

// ModInverse sets z to a^-1 mod m via the extended Euclidean algorithm and
// reports whether a is invertible (gcd(a, m) == 1). This is bn's own
// general-purpose inverse, distinct from - and slower than - the five
// specialized fb inversion variants and fp's Fermat-based inverse; it
// exists for callers operating on bn.Int directly. fp does not use it: its
// Montgomery constant comes from fp's own word-level montgomeryInverse.
func ModInverse(z, a, m *Int) bool {
	// Extended Euclid: maintain (old_r, r) and (old_s, s) such that
	// old_s*a0 + ... = old_r, starting from (a mod m, m).
	oldR := Mod(New(), a, m)
	r := m.Clone()
	oldS := FromUint64(1)
	s := New()

	for !r.IsZero() {
		q := New()
		rem := New()
		DivMod(q, rem, oldR, r)

		oldR, r = r, rem

		qs := Mul(New(), q, s)
		newS := Sub(New(), oldS, qs)
		oldS, s = s, newS
	}
	if CmpAbs(oldR, FromUint64(1)) != 0 {
		return false
	}
	Mod(z, oldS, m)
	return true
}
