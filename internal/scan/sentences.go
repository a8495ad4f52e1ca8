package scan

// sentenceState tracks whether the previous byte ended a sentence, in which
// case an immediately following quote belongs to that sentence rather than
// starting a new token.
type sentenceState int

const (
	sentenceScanning sentenceState = iota
	afterTerminator
)

// isTerminator reports whether b is a sentence-ending punctuation byte.
func isTerminator(b byte) bool {
	return b == '.' || b == '?' || b == '!'
}

// CountSentences returns the number of sentences in text. A sentence ends at
// '.', '?', or '!'; a single or double quote immediately after a terminator
// is consumed as part of the same ending, so `"Stop!" he said.` counts two
// sentences. Consecutive terminators such as `?!` each count separately, and
// a terminator at the very end of the input still counts.
func CountSentences(text string) int {
	count := 0
	state := sentenceScanning
	for i := 0; i < len(text); i++ {
		b := text[i]
		if state == afterTerminator {
			state = sentenceScanning
			if b == '\'' || b == '"' {
				continue
			}
		}
		if isTerminator(b) {
			count++
			state = afterTerminator
		}
	}
	return count
}
