package scan

// specialSigns is the fixed symbol table used by the special-sign counter.
const specialSigns = "!@#$%^&*()-_=+[]{}|;:'\",.<>?/\\~`"

// specialTable maps each byte to whether it is a special sign; built once so
// the counter stays a flat O(1)-per-byte pass.
var specialTable = func() (t [256]bool) {
	for i := 0; i < len(specialSigns); i++ {
		t[specialSigns[i]] = true
	}
	return t
}()

// IsLetter reports whether b is an ASCII alphabetic character.
func IsLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsSpecial reports whether b is a member of the special-sign table.
func IsSpecial(b byte) bool {
	return specialTable[b]
}

// IsWhitespace reports whether b is an ASCII whitespace byte
// (space, tab, newline, carriage return, vertical tab, or form feed).
func IsWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// IsUpper reports whether b is an ASCII uppercase letter.
func IsUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

// IsLower reports whether b is an ASCII lowercase letter.
func IsLower(b byte) bool {
	return b >= 'a' && b <= 'z'
}
