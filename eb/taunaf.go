package eb

import "github.com/relicgo/corelic/bn"

// tauFixup names the width-w reduction tables the original ships for
// Koblitz fields (eb_curve_get_vm/get_s0/get_s1 in
// original_source/.../relic_eb_param.c), used to pre-reduce the scalar
// modulo tau^m - 1 so the tau-NAF recoding always terminates in close to
// m digits. Those tables are specific to the standardized NIST Koblitz
// curves at each field size; absent a verified copy of them for an
// arbitrary configured field, this function is the identity (no
// reduction) and relies on bn.RecodeTauNAF's own termination cap instead,
// at the cost of a longer digit sequence than the optimal fixed-up one.
func tauFixup(w int, mu int, k *bn.Int) *bn.Int {
	if w < 3 || w > 6 {
		panic("eb: tau-NAF window width must be between 3 and 6")
	}
	if mu != 1 && mu != -1 {
		panic("eb: tau-NAF requires mu in {+1, -1}")
	}
	return k
}

// MulTauNAF computes k*p on a Koblitz curve (c.A is 0 or 1, giving
// mu = 2*A - 1 per the defining relation tau^2 + 2 = mu*tau) by recoding
// k in the tau-adic width-w NAF and evaluating the resulting digit
// sequence with repeated Frobenius maps standing in for the doublings an
// ordinary NAF evaluation would use.
func (c *Curve) MulTauNAF(k *bn.Int, p *Point, w int) *Point {
	mu := -1
	if !c.F.IsZero(c.A) {
		mu = 1
	}
	reduced := tauFixup(w, mu, k)
	digits := bn.RecodeTauNAF(reduced, mu, w)
	table := c.BuildOddTable(p, w)

	r := c.Infinity()
	for i := len(digits) - 1; i >= 0; i-- {
		r = c.Frobenius(r, r)
		if digits[i] != 0 {
			r = c.Add(r, r, c.Lookup(table, digits[i]))
		}
	}
	return r
}
