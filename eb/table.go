package eb

// Table holds the odd positive multiples P, 3P, 5P, ..., (2^(w-1)-1)P of
// a base point - the odd multiples a width-w NAF digit can ever name.
type Table struct {
	Entries []*Point
}

// BuildOddTable computes Table{P, 3P, 5P, ..., (2^(w-1)-1)P}.
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

// Lookup returns the table entry for signed odd digit d.
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
