package scan

// CountQuotes returns the number of quoted segments in text. A segment opens
// at a '\'' or '"' byte and closes at the next occurrence of the same byte;
// the scan resumes after the closer, so a closing quote never opens a new
// segment. An opener with no matching closer is discarded and the scan
// resumes at the byte after it, so unmatched openers never pair with closers
// of the other kind.
func CountQuotes(text string) int {
	count := 0
	for i := 0; i < len(text); i++ {
		b := text[i]
		if b != '\'' && b != '"' {
			continue
		}
		j := i + 1
		for j < len(text) && text[j] != b {
			j++
		}
		if j < len(text) {
			count++
			i = j
		}
	}
	return count
}
