package entry

import "math/big"

// CompareNatural compares two names treating runs of ASCII digits as
// numbers, so "file2" sorts before "file10". It returns -1, 0 or 1.
func CompareNatural(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0

	for i < len(ra) && j < len(rb) {
		if isDigit(ra[i]) && isDigit(rb[j]) {
			si := i
			for i < len(ra) && isDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && isDigit(rb[j]) {
				j++
			}
			if c := compareNumbers(string(ra[si:i]), string(rb[sj:j])); c != 0 {
				return c
			}
			continue
		}

		if ra[i] != rb[j] {
			if ra[i] < rb[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}

	switch {
	case i < len(ra):
		return 1
	case j < len(rb):
		return -1
	default:
		return 0
	}
}

// compareNumbers compares digit runs of any length.
func compareNumbers(a, b string) int {
	var x, y big.Int
	x.SetString(a, 10)
	y.SetString(b, 10)
	return x.Cmp(&y)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
