package bn

import (
	"testing"

	sha256simd "github.com/minio/sha256-simd"
)

// deterministicFixtures derives n pseudo-random 256-bit magnitudes from a
// fixed seed by hashing a counter, so the "for random non-zero a" quantified
// invariants get a reproducible fixture set instead of depending on a real
// PRNG (out of this core's scope, per the entropy-source exclusion).
func deterministicFixtures(seed string, n int) []*Int {
	out := make([]*Int, n)
	for i := 0; i < n; i++ {
		h := sha256simd.Sum256(append([]byte(seed), byte(i), byte(i>>8)))
		out[i] = FromBytes(h[:])
	}
	return out
}

func reconstructSigned(digits []int8) *Int {
	acc := New()
	pow := FromUint64(1)
	for _, d := range digits {
		if d != 0 {
			term := Mul(New(), pow, FromUint64(uint64(absInt64(int64(d)))))
			if d < 0 {
				Sub(acc, acc, term)
			} else {
				Add(acc, acc, term)
			}
		}
		pow = Lsh(New(), pow, 1)
	}
	return acc
}

func TestRecodeNAFRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 3, 13, 255, 0xD5, 0x123456789ABCDEF} {
		for _, w := range []int{2, 3, 4, 5} {
			k := FromUint64(v)
			naf := RecodeNAF(k, w)
			got := reconstructSigned(naf)
			if Cmp(got, k) != 0 {
				t.Fatalf("w=%d v=%#x: reconstructed %v, want %v", w, v, got, k)
			}
			for i, d := range naf {
				if d == 0 {
					continue
				}
				for j := i + 1; j < i+w && j < len(naf); j++ {
					if naf[j] != 0 {
						t.Fatalf("w=%d v=%#x: nonzero digits within window at %d and %d", w, v, i, j)
					}
				}
			}
		}
	}
}

func TestRecodeNAFRoundTripDeterministicFixtures(t *testing.T) {
	for _, k := range deterministicFixtures("relic-bn-naf", 32) {
		for _, w := range []int{2, 3, 4, 6} {
			naf := RecodeNAF(k, w)
			got := reconstructSigned(naf)
			if Cmp(got, k) != 0 {
				t.Fatalf("w=%d k=%v: reconstructed %v", w, k, got)
			}
		}
	}
}

func TestRecodeWindowRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 255, 65535, 0xD5} {
		for _, w := range []int{1, 4, 8} {
			k := FromUint64(v)
			digits := RecodeWindow(k, w)
			acc := New()
			pow := FromUint64(1)
			for _, d := range digits {
				Add(acc, acc, Mul(New(), pow, FromUint64(uint64(d))))
				pow = Lsh(New(), pow, w)
			}
			if Cmp(acc, k) != 0 {
				t.Fatalf("w=%d v=%#x: reconstructed %v, want %v", w, v, acc, k)
			}
			for _, d := range digits {
				if uint64(d) >= uint64(1)<<uint(w) {
					t.Fatalf("w=%d v=%#x: digit %d out of range", w, v, d)
				}
			}
		}
	}
}

// TestRecodeJSFScenario exercises the source spec's concrete test vector
// (k, l) = (0xD5, 0x87): the defining reconstruction identity must hold,
// each digit must be in {-1, 0, 1}, and the two sequences must be the same
// length (the property MulSimJoint's column-indexed table relies on).
func TestRecodeJSFScenario(t *testing.T) {
	k := FromUint64(0xD5)
	l := FromUint64(0x87)
	u, v := RecodeJSF(k, l)
	if len(u) != len(v) {
		t.Fatalf("sequence lengths differ: %d vs %d", len(u), len(v))
	}
	for i := range u {
		if u[i] < -1 || u[i] > 1 || v[i] < -1 || v[i] > 1 {
			t.Fatalf("digit out of {-1,0,1} at %d: u=%d v=%d", i, u[i], v[i])
		}
	}
	if got := reconstructSigned(u); Cmp(got, k) != 0 {
		t.Fatalf("u reconstructs %v, want %v", got, k)
	}
	if got := reconstructSigned(v); Cmp(got, l) != 0 {
		t.Fatalf("v reconstructs %v, want %v", got, l)
	}
}

func TestRecodeJSFRoundTrip(t *testing.T) {
	pairs := [][2]uint64{{0, 0}, {1, 0}, {0, 1}, {17, 257}, {0xABCD, 0x1234}}
	for _, p := range pairs {
		k := FromUint64(p[0])
		l := FromUint64(p[1])
		u, v := RecodeJSF(k, l)
		if Cmp(reconstructSigned(u), k) != 0 {
			t.Fatalf("k=%#x: u mismatch", p[0])
		}
		if Cmp(reconstructSigned(v), l) != 0 {
			t.Fatalf("l=%#x: v mismatch", p[1])
		}
	}
}

// reconstructTau evaluates sum d_i * tau^i in Z[tau] using the same
// tau^-1 relation RecodeTauNAF divides by, tracked as an (a, b) pair
// meaning a + b*tau, and returns the integer component a. The tau
// component b is not returned, so callers compare only a against k.
func reconstructTau(digits []int8, mu int) *Int {
	a := New()
	b := New()
	// Build from the most significant digit down: acc = acc*tau + d_i,
	// where multiply-by-tau sends (a,b) -> (-2*b, a + mu*b).
	for i := len(digits) - 1; i >= 0; i-- {
		negTwoB := Lsh(New(), b, 1)
		negTwoB.neg = !negTwoB.neg && !negTwoB.IsZero()
		var muB *Int
		if mu == 1 {
			muB = b.Clone()
		} else {
			muB = Neg(New(), b)
		}
		newA := negTwoB
		newB := Add(New(), a, muB)
		a, b = newA, newB
		d := digits[i]
		if d >= 0 {
			Add(a, a, FromUint64(uint64(d)))
		} else {
			Sub(a, a, FromUint64(uint64(-d)))
		}
	}
	return a
}

func TestRecodeTauNAFReconstructsForMuPlusOne(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 7, 100, 0xD5} {
		k := FromUint64(v)
		digits := RecodeTauNAF(k, 1, 4)
		got := reconstructTau(digits, 1)
		if Cmp(got, k) != 0 {
			t.Fatalf("mu=1 v=%#x: reconstructed %v, want %v", v, got, k)
		}
	}
}

func TestRecodeTauNAFReconstructsForMuMinusOne(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 7, 100, 0xD5} {
		k := FromUint64(v)
		digits := RecodeTauNAF(k, -1, 4)
		got := reconstructTau(digits, -1)
		if Cmp(got, k) != 0 {
			t.Fatalf("mu=-1 v=%#x: reconstructed %v, want %v", v, got, k)
		}
	}
}

func TestRecodeTauNAFRejectsBadMu(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for mu outside {+1,-1}")
		}
	}()
	RecodeTauNAF(FromUint64(1), 2, 4)
}

func TestRecodeRegularFixedLength(t *testing.T) {
	k := FromUint64(0xD5)
	digits := RecodeRegular(k, 4, 16)
	if len(digits) != 16 {
		t.Fatalf("got %d digits, want 16", len(digits))
	}
	got := reconstructSigned(digits)
	if Cmp(got, k) != 0 {
		t.Fatalf("reconstructed %v, want %v", got, k)
	}
}

func TestRecodeRegularSameLengthRegardlessOfValue(t *testing.T) {
	small := RecodeRegular(FromUint64(1), 4, 20)
	large := RecodeRegular(FromUint64(0xFFFFFFFF), 4, 20)
	if len(small) != len(large) {
		t.Fatalf("regular recoding length depends on value: %d vs %d", len(small), len(large))
	}
}
