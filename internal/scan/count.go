package scan

import "bytes"

// Length returns the number of bytes in b before a terminating NUL, or the
// full slice length when no NUL is present. For length-known input this is a
// plain length lookup; the original tool's word-at-a-time terminator search
// is a performance detail, not part of the contract.
func Length(b []byte) int {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return i
	}
	return len(b)
}

// CountLetters returns the number of ASCII alphabetic characters in text.
func CountLetters(text string) int {
	count := 0
	for i := 0; i < len(text); i++ {
		if IsLetter(text[i]) {
			count++
		}
	}
	return count
}

// CountNumbers returns the number of ASCII decimal digits in text.
func CountNumbers(text string) int {
	count := 0
	for i := 0; i < len(text); i++ {
		if IsDigit(text[i]) {
			count++
		}
	}
	return count
}

// CountSpecials returns the number of special signs in text, per the fixed
// symbol table.
func CountSpecials(text string) int {
	count := 0
	for i := 0; i < len(text); i++ {
		if IsSpecial(text[i]) {
			count++
		}
	}
	return count
}

// CountCases returns the number of uppercase and lowercase ASCII letters in
// text. Digits, symbols, and whitespace count as neither, so
// upper+lower always equals CountLetters(text).
func CountCases(text string) (upper, lower int) {
	for i := 0; i < len(text); i++ {
		switch {
		case IsUpper(text[i]):
			upper++
		case IsLower(text[i]):
			lower++
		}
	}
	return upper, lower
}
