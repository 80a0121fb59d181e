package sandbox

// Reverse returns s with its characters in reverse order.  The reversal is
// rune-wise so that multi-byte characters survive a round trip:
// Reverse(Reverse(s)) == s for any valid UTF-8 input.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
