// Package lcs computes the longest common subsequence length of two
// sequences and the similarity ratio derived from it.
package lcs

// Length returns the length of the longest common subsequence of a and b.
//
// Only one row of the dynamic programming table is kept, so the work
// buffer holds len(b)+1 entries. Elements are compared with ==.
func Length[T comparable](a, b []T) int {
	n := len(b)
	dp := make([]int, n+1)
	for i := range a {
		prev := 0
		for j := 0; j < n; j++ {
			tmp := dp[j+1]
			if a[i] == b[j] {
				dp[j+1] = prev + 1
			} else {
				dp[j+1] = max(dp[j+1], dp[j])
			}
			prev = tmp
		}
	}
	return dp[n]
}

// Ratio returns common/original, or 0 for an empty original.
func Ratio(common, original int) float64 {
	if original == 0 {
		return 0
	}
	return float64(common) / float64(original)
}

type Result struct {
	Original  int     `json:"original"`
	Candidate int     `json:"candidate"`
	Common    int     `json:"common"`
	Ratio     float64 `json:"ratio"`
}
