package report

import (
	"fmt"
	"io"
)

// Formatter renders Reports as indented terminal text:
//
//	1 -> He said ... (File)
//	    - 42 (Length)
//	    - 12 Letters
//	        - 2 Uppercase
//	        - 10 Lowercase
//
// Per-argument timing is shown only when the Formatter is built for
// interactive output, so piped output stays byte-stable across runs.
type Formatter struct {
	showTiming bool
}

// NewFormatter creates a Formatter. showTiming should be true only when the
// destination is a terminal.
func NewFormatter(showTiming bool) *Formatter {
	return &Formatter{showTiming: showTiming}
}

// WriteReport renders one report to w, ending with a blank separator line.
func (f *Formatter) WriteReport(w io.Writer, rep Report) error {
	header := fmt.Sprintf("%d -> %s", rep.Index, rep.Preview)
	if f.showTiming {
		header += fmt.Sprintf(" (%.8fs)", rep.Elapsed.Seconds())
	}
	if rep.IsFile {
		header += " (File)"
	}

	if _, err := fmt.Fprintf(w, "%s\n    - %d (Length)\n", header, rep.EffectiveLength); err != nil {
		return err
	}

	m := rep.Metrics
	if m.Letters {
		fmt.Fprintf(w, "    - %d Letters\n", rep.Letters)
		if m.Cases {
			fmt.Fprintf(w, "        - %d Uppercase\n", rep.Upper)
			fmt.Fprintf(w, "        - %d Lowercase\n", rep.Lower)
		}
	}
	if m.Numbers {
		fmt.Fprintf(w, "    - %d Numbers\n", rep.Numbers)
	}
	if m.Sentences {
		fmt.Fprintf(w, "    - %d Sentences\n", rep.Sentences)
	}
	if m.Specials {
		fmt.Fprintf(w, "    - %d Special Signs\n", rep.Specials)
	}
	if m.Words {
		fmt.Fprintf(w, "    - %d Words\n", rep.Words)
	}
	if m.Bytes {
		fmt.Fprintf(w, "    - %d Bytes\n", rep.Bytes)
	}
	if m.Quotes {
		fmt.Fprintf(w, "    - %d Quotes\n", rep.Quotes)
	}
	if m.Tokens {
		fmt.Fprintf(w, "    - %d Tokens\n", rep.Tokens)
	}

	_, err := fmt.Fprintln(w)
	return err
}
