package fb

import "math/bits"

// BuildChain derives an Itoh-Tsuji addition chain computing the exponent
// N = m-1 in the sense used by InvItoht: a table entry i represents
// a^(2^u[i]-1), and chainPairs[i] names the two earlier entries (by
// index, equal indices meaning "double") that combine - via
// table[x]^(2^u[y]) * table[y] - to produce it. u[len(u)-1] == N.
//
// This resolves the open question in fb_inv_itoht's C source, whose
// fb_poly_get_chain only ships precomputed chains for a handful of
// standardized curve fields: rather than hard-code those tables, the
// chain here is derived generically from N's binary expansion the way
// a square-and-multiply exponentiation ladder is, which always yields a
// valid (if not shortest-possible) addition chain for any m.
func BuildChain(n int) (pairs [][2]int, u []int) {
	if n <= 0 {
		return nil, []int{0}
	}
	u = []int{1}
	k := 1
	cur := 0
	bitLen := bits.Len(uint(n))
	for i := bitLen - 2; i >= 0; i-- {
		pairs = append(pairs, [2]int{cur, cur})
		k *= 2
		u = append(u, k)
		cur = len(u) - 1
		if (n>>uint(i))&1 == 1 {
			pairs = append(pairs, [2]int{cur, 0})
			k++
			u = append(u, k)
			cur = len(u) - 1
		}
	}
	return pairs, u
}
