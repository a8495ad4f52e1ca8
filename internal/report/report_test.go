package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProbe is a canned Prober so reporter tests never touch the filesystem.
type fakeProbe struct {
	size int64
	ok   bool
}

func (f fakeProbe) ContentLength(string) (int64, bool) {
	return f.size, f.ok
}

func newReporter(t *testing.T, metrics Metrics, p fakeProbe) *Reporter {
	t.Helper()
	r, err := NewReporter(metrics, p)
	require.NoError(t, err)
	return r
}

// TestBuild_EffectiveLength covers the length-substitution rule: file content
// length is used only when the argument is a file AND the file-content metric
// is enabled.
func TestBuild_EffectiveLength(t *testing.T) {
	const arg = "notes.txt" // 9 bytes

	tests := []struct {
		name     string
		metrics  Metrics
		probe    fakeProbe
		expected int64
		isFile   bool
	}{
		{"file with metric", Metrics{FileContent: true}, fakeProbe{size: 4096, ok: true}, 4096, true},
		{"file without metric", Metrics{}, fakeProbe{size: 4096, ok: true}, int64(len(arg)), true},
		{"non-file with metric", Metrics{FileContent: true}, fakeProbe{}, int64(len(arg)), false},
		{"non-file without metric", Metrics{}, fakeProbe{}, int64(len(arg)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := newReporter(t, tt.metrics, tt.probe).Build(1, arg)
			assert.Equal(t, tt.expected, rep.EffectiveLength)
			assert.Equal(t, tt.isFile, rep.IsFile)
		})
	}
}

// TestBuild_BytesMetricTracksEffectiveLength verifies the bytes metric
// reports the effective length, including a substituted file content length.
func TestBuild_BytesMetricTracksEffectiveLength(t *testing.T) {
	metrics := Metrics{FileContent: true, Bytes: true}
	rep := newReporter(t, metrics, fakeProbe{size: 777, ok: true}).Build(1, "report.pdf")

	assert.Equal(t, int64(777), rep.Bytes)
}

// TestBuild_Preview verifies the 8-byte preview truncation rule.
func TestBuild_Preview(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		expected string
	}{
		{"eleven bytes", "abcdefghijk", "abcdefgh..."},
		{"nine bytes", "abcdefghi", "abcdefgh..."},
		{"exactly eight bytes", "abcdefgh", "abcdefgh"},
		{"short", "abc", "abc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep := newReporter(t, Metrics{}, fakeProbe{}).Build(1, tt.arg)
			assert.Equal(t, tt.expected, rep.Preview)
		})
	}
}

// TestBuild_ScannersRunOverArgumentText verifies metrics are computed from
// the literal argument bytes even when a file length was substituted.
func TestBuild_ScannersRunOverArgumentText(t *testing.T) {
	metrics := Metrics{
		Letters:     true,
		Cases:       true,
		Numbers:     true,
		Sentences:   true,
		Specials:    true,
		Words:       true,
		Quotes:      true,
		FileContent: true,
	}
	rep := newReporter(t, metrics, fakeProbe{size: 9999, ok: true}).Build(3, `Say "Hi 2u". Ok?`)

	assert.Equal(t, 3, rep.Index)
	assert.Equal(t, int64(9999), rep.EffectiveLength)
	assert.Equal(t, 8, rep.Letters)
	assert.Equal(t, 3, rep.Upper)
	assert.Equal(t, 5, rep.Lower)
	assert.Equal(t, 1, rep.Numbers)
	assert.Equal(t, 2, rep.Sentences)
	assert.Equal(t, 4, rep.Specials)
	assert.Equal(t, 4, rep.Words)
	assert.Equal(t, 1, rep.Quotes)
}

// TestWriteReport_Layout pins the rendered layout with timing disabled, so
// the output is deterministic.
func TestWriteReport_Layout(t *testing.T) {
	metrics := Metrics{Letters: true, Cases: true, Words: true}
	rep := newReporter(t, metrics, fakeProbe{}).Build(1, "Hello there world")

	var sb strings.Builder
	require.NoError(t, NewFormatter(false).WriteReport(&sb, rep))

	expected := "1 -> Hello th...\n" +
		"    - 17 (Length)\n" +
		"    - 15 Letters\n" +
		"        - 1 Uppercase\n" +
		"        - 14 Lowercase\n" +
		"    - 3 Words\n" +
		"\n"
	assert.Equal(t, expected, sb.String())
}

// TestWriteReport_FileMarker verifies the (File) suffix on the header line.
func TestWriteReport_FileMarker(t *testing.T) {
	rep := newReporter(t, Metrics{}, fakeProbe{size: 10, ok: true}).Build(2, "data.txt")

	var sb strings.Builder
	require.NoError(t, NewFormatter(false).WriteReport(&sb, rep))

	assert.True(t, strings.HasPrefix(sb.String(), "2 -> data.txt (File)\n"))
}

// TestWriteReport_CasesRequireLetters verifies case lines never render
// without the letters metric, even if cases was requested.
func TestWriteReport_CasesRequireLetters(t *testing.T) {
	rep := newReporter(t, Metrics{Cases: true}, fakeProbe{}).Build(1, "Hello")

	var sb strings.Builder
	require.NoError(t, NewFormatter(false).WriteReport(&sb, rep))

	assert.NotContains(t, sb.String(), "Uppercase")
	assert.NotContains(t, sb.String(), "Lowercase")
}

// TestWriteReport_TimingShownWhenInteractive verifies the timing suffix is
// present only when the formatter is built for interactive output.
func TestWriteReport_TimingShownWhenInteractive(t *testing.T) {
	rep := newReporter(t, Metrics{}, fakeProbe{}).Build(1, "x")

	var quiet, timed strings.Builder
	require.NoError(t, NewFormatter(false).WriteReport(&quiet, rep))
	require.NoError(t, NewFormatter(true).WriteReport(&timed, rep))

	assert.NotContains(t, quiet.String(), "s)")
	assert.Regexp(t, `^1 -> x \(\d+\.\d{8}s\)\n`, timed.String())
}
