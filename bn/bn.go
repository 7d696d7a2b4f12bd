// Package bn implements the multi-precision integer layer: variable-length
// sign-magnitude integers built on dv.Vec, with add/sub/mul/sqr/div/mod/gcd
// and shift, plus the scalar recodings (NAF, windowed NAF, JSF, tau-NAF,
// regular recoding) consumed by ep/eb's scalar multiplication.
//
// Int deliberately keeps sign and magnitude separate rather than folding
// into two's-complement words: several recodings (NAF in particular) walk
// the magnitude and halve it, which only has the textbook shape described
// in the source spec when the representation is sign-magnitude.
package bn

import (
	"math/bits"

	"github.com/relicgo/corelic/dv"
)

// Int is a sign-magnitude big integer. The zero value is the integer 0.
type Int struct {
	d    []dv.Digit // little-endian magnitude digits
	neg  bool       // true if the value is strictly negative
	used int        // index of the most significant nonzero digit, plus one
}

// New returns the integer 0.
func New() *Int {
	return &Int{}
}

// FromUint64 returns a new Int holding v.
func FromUint64(v uint64) *Int {
	z := &Int{d: []dv.Digit{v}}
	z.normalize()
	return z
}

// FromBytes interprets b as a big-endian unsigned magnitude.
func FromBytes(b []byte) *Int {
	n := (len(b) + 7) / 8
	d := make([]dv.Digit, n)
	for i, bi := range b {
		// bi is the (len(b)-1-i)'th byte from the end.
		pos := len(b) - 1 - i
		d[pos/8] |= dv.Digit(bi) << uint((pos%8)*8)
	}
	z := &Int{d: d}
	z.normalize()
	return z
}

// Bytes returns the big-endian unsigned magnitude of z, left-padded with
// zeros to size bytes. If size is 0 the minimal length is used.
func (z *Int) Bytes(size int) []byte {
	bitLen := z.BitLen()
	minSize := (bitLen + 7) / 8
	if size == 0 {
		size = minSize
	}
	out := make([]byte, size)
	for i := 0; i < size; i++ {
		pos := size - 1 - i
		word := pos / 8
		if word < len(z.d) {
			out[i] = byte(z.d[word] >> uint((pos%8)*8))
		}
	}
	return out
}

func (z *Int) normalize() {
	used := len(z.d)
	for used > 0 && z.d[used-1] == 0 {
		used--
	}
	z.used = used
	if used == 0 {
		z.neg = false
	}
}

// digits returns the used magnitude digits of z.
func (z *Int) digits() dv.Vec {
	return dv.Vec(z.d[:z.used])
}

// IsZero reports whether z is the integer 0.
func (z *Int) IsZero() bool { return z.used == 0 }

// IsNeg reports whether z is strictly negative.
func (z *Int) IsNeg() bool { return z.neg && z.used != 0 }

// IsEven reports whether z is an even integer.
func (z *Int) IsEven() bool {
	return z.used == 0 || z.d[0]&1 == 0
}

// BitLen returns the number of bits in the magnitude of z.
func (z *Int) BitLen() int {
	if z.used == 0 {
		return 0
	}
	return (z.used-1)*64 + bits.Len64(z.d[z.used-1])
}

// Bit returns bit i of the magnitude of z (0 or 1).
func (z *Int) Bit(i int) uint {
	word := i / 64
	if word >= z.used {
		return 0
	}
	return uint((z.d[word] >> uint(i%64)) & 1)
}

// Set copies the value of a into z.
func (z *Int) Set(a *Int) *Int {
	z.d = append(z.d[:0], a.d[:a.used]...)
	z.neg = a.neg
	z.used = a.used
	return z
}

// CmpAbs compares the magnitudes of a and b, returning -1, 0 or 1.
func CmpAbs(a, b *Int) int {
	if a.used != b.used {
		if a.used > b.used {
			return 1
		}
		return -1
	}
	if a.used == 0 {
		return 0
	}
	return dv.Cmp(a.digits(), b.digits())
}

// Cmp compares a and b as signed integers, returning -1, 0 or 1.
func Cmp(a, b *Int) int {
	if a.IsZero() && b.IsZero() {
		return 0
	}
	if a.neg != b.neg {
		if a.neg {
			return -1
		}
		return 1
	}
	c := CmpAbs(a, b)
	if a.neg {
		return -c
	}
	return c
}

func ensureLen(d []dv.Digit, n int) []dv.Digit {
	if cap(d) < n {
		nd := make([]dv.Digit, n)
		copy(nd, d)
		return nd
	}
	d = d[:n]
	return d
}

// addAbs sets z to |a| + |b|.
func addAbs(z, a, b *Int) {
	n := a.used
	if b.used > n {
		n = b.used
	}
	ad := dv.Vec(append(append([]dv.Digit(nil), a.d[:a.used]...), make([]dv.Digit, n-a.used)...))
	bd := dv.Vec(append(append([]dv.Digit(nil), b.d[:b.used]...), make([]dv.Digit, n-b.used)...))
	z.d = ensureLen(z.d[:0], n+1)
	carry := dv.AddN(z.d[:n], ad, bd, n)
	z.d[n] = carry
	z.used = n + 1
	z.normalize()
}

// subAbs sets z to |a| - |b|, assuming |a| >= |b|.
func subAbs(z, a, b *Int) {
	n := a.used
	bd := dv.Vec(append(append([]dv.Digit(nil), b.d[:b.used]...), make([]dv.Digit, n-b.used)...))
	z.d = ensureLen(z.d[:0], n)
	dv.SubN(z.d[:n], dv.Vec(a.d[:n]), bd, n)
	z.used = n
	z.normalize()
}

// Add sets z = a + b and returns z.
func Add(z, a, b *Int) *Int {
	switch {
	case a.neg == b.neg:
		addAbs(z, a, b)
		z.neg = a.neg && !z.IsZero()
	case CmpAbs(a, b) >= 0:
		subAbs(z, a, b)
		z.neg = a.neg && !z.IsZero()
	default:
		subAbs(z, b, a)
		z.neg = b.neg && !z.IsZero()
	}
	return z
}

// Sub sets z = a - b and returns z.
func Sub(z, a, b *Int) *Int {
	nb := &Int{d: b.d, used: b.used, neg: !b.neg}
	return Add(z, a, nb)
}

// Neg sets z = -a and returns z.
func Neg(z, a *Int) *Int {
	z.Set(a)
	z.neg = !z.neg && !z.IsZero()
	return z
}

// Abs sets z = |a| and returns z.
func Abs(z, a *Int) *Int {
	z.Set(a)
	z.neg = false
	return z
}

// Lsh sets z = a << bits and returns z.
func Lsh(z, a *Int, n int) *Int {
	if a.IsZero() || n == 0 {
		return z.Set(a)
	}
	wordShift := n / 64
	bitShift := uint(n % 64)
	total := a.used + wordShift + 1
	out := make([]dv.Digit, total)
	for i := a.used - 1; i >= 0; i-- {
		lo := a.d[i] << bitShift
		out[i+wordShift] |= lo
		if bitShift > 0 {
			hi := a.d[i] >> (64 - bitShift)
			out[i+wordShift+1] |= hi
		}
	}
	z.d = out
	z.used = total
	z.neg = a.neg
	z.normalize()
	return z
}

// Rsh sets z = a >> bits and returns z. The magnitude is shifted and the
// sign kept, so a negative value is divided by 2^bits rounding toward zero.
func Rsh(z, a *Int, n int) *Int {
	if a.IsZero() || n == 0 {
		return z.Set(a)
	}
	wordShift := n / 64
	bitShift := uint(n % 64)
	if wordShift >= a.used {
		z.d = z.d[:0]
		z.used = 0
		z.neg = false
		return z
	}
	outLen := a.used - wordShift
	out := make([]dv.Digit, outLen)
	for i := 0; i < outLen; i++ {
		out[i] = a.d[i+wordShift] >> bitShift
		if bitShift > 0 && i+wordShift+1 < a.used {
			out[i] |= a.d[i+wordShift+1] << (64 - bitShift)
		}
	}
	z.d = out
	z.used = outLen
	z.neg = a.neg
	z.normalize()
	return z
}

// mulAbs computes the schoolbook product of the magnitudes of a and b.
func mulAbs(z, a, b *Int) {
	if a.used == 0 || b.used == 0 {
		z.d = z.d[:0]
		z.used = 0
		z.neg = false
		return
	}
	out := make([]dv.Digit, a.used+b.used)
	for i := 0; i < a.used; i++ {
		if a.d[i] == 0 {
			continue
		}
		var carry dv.Digit
		for j := 0; j < b.used; j++ {
			acc := dv.MulAdd(dv.DoubleDigit{Lo: out[i+j]}, a.d[i], b.d[j])
			acc = dv.AddDigit(acc, carry)
			out[i+j] = acc.Lo
			carry = acc.Hi
		}
		out[i+b.used] += carry
	}
	z.d = out
	z.used = len(out)
	z.normalize()
}

// Mul sets z = a * b and returns z.
func Mul(z, a, b *Int) *Int {
	mulAbs(z, a, b)
	z.neg = (a.neg != b.neg) && !z.IsZero()
	return z
}

// Sqr sets z = a * a and returns z.
func Sqr(z, a *Int) *Int {
	return Mul(z, a, a)
}

// Clone returns a deep copy of z.
func (z *Int) Clone() *Int {
	c := &Int{d: append([]dv.Digit(nil), z.d[:z.used]...), neg: z.neg, used: z.used}
	return c
}
