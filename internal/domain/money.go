package domain

import "strconv"

// FormatFCFA renders an integer FCFA amount with thousands separators,
// e.g. 2500 -> "2 500 FCFA". FCFA has no fractional unit, so no
// rounding ever happens.
func FormatFCFA(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, d)
	}
	if neg {
		out = append([]byte{'-'}, out...)
	}
	return string(out) + " FCFA"
}
