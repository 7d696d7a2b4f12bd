package eb

import "github.com/relicgo/corelic/bn"

// MulSimBasic computes k*p + l*q by two independent double-and-add scans
// merged bit by bit, doubling the shared accumulator once per bit.
func (c *Curve) MulSimBasic(k *bn.Int, p *Point, l *bn.Int, q *Point) *Point {
	bits := k.BitLen()
	if l.BitLen() > bits {
		bits = l.BitLen()
	}
	r := c.Infinity()
	for i := bits - 1; i >= 0; i-- {
		r = c.Dbl(r, r)
		if k.Bit(i) == 1 {
			r = c.Add(r, r, p)
		}
		if l.Bit(i) == 1 {
			r = c.Add(r, r, q)
		}
	}
	return r
}

// MulSimTrick computes k*p + l*q via Shamir's trick, generalized to
// window width w: precompute t0[i] = i*p and t1[j] = j*q for i, j in
// [0, 2^w), combine into the full t[i][j] = t0[i] + t1[j] table, then
// recode both scalars with bn.RecodeWindow and walk the digit sequences
// together, doing w doublings per digit position followed by one lookup
// and add - the same table-plus-windowed-recoding shape as ep's
// MulSimTrick, one field layer over.
func (c *Curve) MulSimTrick(k *bn.Int, p *Point, l *bn.Int, q *Point, w int) *Point {
	kd := bn.RecodeWindow(k, w)
	ld := bn.RecodeWindow(l, w)
	n := len(kd)
	if len(ld) > n {
		n = len(ld)
	}
	for len(kd) < n {
		kd = append(kd, 0)
	}
	for len(ld) < n {
		ld = append(ld, 0)
	}

	size := 1 << uint(w)
	t0 := make([]*Point, size)
	t0[0] = c.Infinity()
	for i := 1; i < size; i++ {
		t0[i] = c.Add(&Point{}, t0[i-1], p)
	}
	t1 := make([]*Point, size)
	t1[0] = c.Infinity()
	for j := 1; j < size; j++ {
		t1[j] = c.Add(&Point{}, t1[j-1], q)
	}
	table := make([][]*Point, size)
	for i := 0; i < size; i++ {
		table[i] = make([]*Point, size)
		for j := 0; j < size; j++ {
			table[i][j] = c.Add(&Point{}, t0[i], t1[j])
		}
	}

	r := c.Infinity()
	for i := n - 1; i >= 0; i-- {
		for b := 0; b < w; b++ {
			r = c.Dbl(r, r)
		}
		r = c.Add(r, r, table[kd[i]][ld[i]])
	}
	return r
}

// MulSimInterleave computes k*p + l*q by interleaving two independent
// width-w NAF table lookups into one doubling pass.
func (c *Curve) MulSimInterleave(k *bn.Int, p *Point, l *bn.Int, q *Point, w int) *Point {
	kd := bn.RecodeNAF(k, w)
	ld := bn.RecodeNAF(l, w)
	n := len(kd)
	if len(ld) > n {
		n = len(ld)
	}
	for len(kd) < n {
		kd = append(kd, 0)
	}
	for len(ld) < n {
		ld = append(ld, 0)
	}
	tk := c.BuildOddTable(p, w)
	tl := c.BuildOddTable(q, w)
	r := c.Infinity()
	for i := n - 1; i >= 0; i-- {
		r = c.Dbl(r, r)
		if kd[i] != 0 {
			r = c.Add(r, r, c.Lookup(tk, kd[i]))
		}
		if ld[i] != 0 {
			r = c.Add(r, r, c.Lookup(tl, ld[i]))
		}
	}
	return r
}

// MulSimJoint computes k*p + l*q using a joint digit recoding
// (bn.RecodeJSF) and a five-entry table {O, q, p, p+q, p-q} indexed by
// the synchronized digit pair at each position.
func (c *Curve) MulSimJoint(k *bn.Int, p *Point, l *bn.Int, q *Point) *Point {
	ku, lv := bn.RecodeJSF(k, l)
	pq := c.Add(&Point{}, p, q)
	pMinusQ := c.Sub(&Point{}, p, q)

	r := c.Infinity()
	for i := len(ku) - 1; i >= 0; i-- {
		r = c.Dbl(r, r)
		a, b := ku[i], lv[i]
		switch {
		case a == 0 && b == 0:
		case a != 0 && b != 0 && a == -b:
			if a > 0 {
				r = c.Add(r, r, pMinusQ)
			} else {
				r = c.Add(r, r, c.Neg(&Point{}, pMinusQ))
			}
		case a != 0 && b != 0:
			term := pq
			if a < 0 {
				term = c.Neg(&Point{}, pq)
			}
			r = c.Add(r, r, term)
		case a != 0:
			if a > 0 {
				r = c.Add(r, r, p)
			} else {
				r = c.Add(r, r, c.Neg(&Point{}, p))
			}
		default:
			if b > 0 {
				r = c.Add(r, r, q)
			} else {
				r = c.Add(r, r, c.Neg(&Point{}, q))
			}
		}
	}
	return r
}
