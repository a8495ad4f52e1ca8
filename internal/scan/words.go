package scan

// wordState tracks whether the word scanner is inside a run of
// non-whitespace bytes.
type wordState int

const (
	betweenWords wordState = iota
	insideWord
)

// CountWords returns the number of words in text, where a word is a maximal
// run of non-whitespace bytes. Empty or all-whitespace input yields 0.
func CountWords(text string) int {
	count := 0
	state := betweenWords
	for i := 0; i < len(text); i++ {
		if IsWhitespace(text[i]) {
			state = betweenWords
			continue
		}
		if state == betweenWords {
			count++
			state = insideWord
		}
	}
	return count
}
