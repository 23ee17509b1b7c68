package services

// maxNonASCII is the number of non-ASCII characters a name may contain and
// still count as English.
const maxNonASCII = 4

// IsEnglishDominant reports whether text looks English: it returns false when
// more than four of its characters fall outside ASCII, true otherwise. This is
// a coarse heuristic; names with a few emoji or accented letters still pass.
func IsEnglishDominant(text string) bool {
	count := 0
	for _, r := range text {
		if r > 127 {
			count++
			if count > maxNonASCII {
				return false
			}
		}
	}
	return true
}
