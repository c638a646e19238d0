// Package mathutil provides the combinatorics and sampling primitives used by
// the Bezier evaluators.
package mathutil

import "math/bits"

// MaxDegree is the highest n for which every C(n, k) fits in an int:
// C(66, 33) on 64-bit platforms, C(33, 16) on 32-bit ones.
const MaxDegree = 33 << (bits.UintSize / 64)

// BinomialCoefficient returns C(n, k), the number of ways to choose k items
// from n. It returns 0 when k < 0 or k > n. Results are exact for
// n <= MaxDegree.
//
// The multiplicative formula is used over min(k, n-k) terms,
//
//	C(n, i+1) = C(n, i) * (n - i) / (i + 1)
//
// with the common factor of C(n, i) and i+1 cancelled first, so no
// intermediate value exceeds C(n, i+1).
func BinomialCoefficient(n, k int) int {
	if k < 0 || k > n {
		return 0
	}

	if n-k < k {
		k = n - k
	}

	coeff := 1
	for i := range k {
		g := gcd(coeff, i+1)
		coeff = (coeff / g) * ((n - i) / ((i + 1) / g))
	}

	return coeff
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// PascalsTriangle returns rows 0..n of Pascal's triangle, so that
// table[i][j] == BinomialCoefficient(i, j). Rows past MaxDegree overflow.
//
// Row i+1 is derived from row i by summing adjacent pairs and adding a 1 at
// each boundary. A negative n yields an empty table.
func PascalsTriangle(n int) [][]int {
	if n < 0 {
		return [][]int{}
	}

	table := make([][]int, 0, n+1)
	row := []int{1}
	table = append(table, row)

	for len(table) <= n {
		next := make([]int, len(row)+1)
		next[0] = 1
		next[len(row)] = 1
		for j := 1; j < len(row); j++ {
			next[j] = row[j-1] + row[j]
		}
		table = append(table, next)
		row = next
	}

	return table
}
