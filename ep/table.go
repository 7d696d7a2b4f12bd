package ep

// Table holds the odd positive multiples P, 3P, 5P, ..., (2^(w-1)-1)P of
// a base point, the precomputation every windowed scalar-multiplication
// variant below shares.
type Table struct {
	Entries []*Point
}

// BuildOddTable computes Table{P, 3P, 5P, ..., (2^(w-1)-1)P} - the odd
// multiples a width-w NAF digit can ever name (RecodeNAF never emits a
// digit of magnitude 2^(w-1) or larger) - via one doubling (2P) and
// 2^(w-2)-1 additions.
func (c *Curve) BuildOddTable(p *Point, w int) *Table {
	count := 1 << uint(w-2)
	entries := make([]*Point, count)
	entries[0] = p
	twoP := c.Dbl(&Point{}, p)
	for i := 1; i < count; i++ {
		entries[i] = c.Add(&Point{}, entries[i-1], twoP)
	}
	return &Table{Entries: entries}
}

// Lookup returns the table entry for signed odd digit d (e.g. d=-3 maps
// to -((3P))), or the point at infinity for d == 0.
func (c *Curve) Lookup(t *Table, d int8) *Point {
	if d == 0 {
		return c.Infinity()
	}
	idx := int(d)
	neg := idx < 0
	if neg {
		idx = -idx
	}
	p := t.Entries[(idx-1)/2]
	if neg {
		return c.Neg(&Point{}, p)
	}
	return p
}

