package reconcile

// Similarity scores how alike two normalized names are, in [0,1]. The score
// is a sequence ratio: twice the longest common subsequence length over the
// combined length. It is symmetric and reflexive. Two empty strings score
// 1.0; exactly one empty string scores 0.0.
//
// Callers are expected to pass NormalizeName output; scoring raw input would
// let casing and punctuation drift depress the score.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	if a == b {
		return 1.0
	}

	ra := []rune(a)
	rb := []rune(b)

	common := lcsLength(ra, rb)
	return 2.0 * float64(common) / float64(len(ra)+len(rb))
}

// lcsLength computes the longest common subsequence length with a two-row
// dynamic programming table instead of the full grid.
func lcsLength(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
