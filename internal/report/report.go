// Package report assembles and renders per-argument statistics reports.
// It decides which scanners run for an argument and packages their results;
// the scanners themselves live in internal/scan.
package report

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/clen-cli/clen/internal/probe"
	"github.com/clen-cli/clen/internal/scan"
)

// previewLimit is the number of leading bytes shown for a long argument.
const previewLimit = 8

// Metrics is the immutable selection of statistics to compute, constructed
// once from the parsed command-line flags and threaded through the run.
// Cases only renders when Letters is also enabled.
type Metrics struct {
	Letters     bool
	Cases       bool
	Numbers     bool
	Sentences   bool
	Specials    bool
	FileContent bool
	Words       bool
	Bytes       bool
	Quotes      bool
	Tokens      bool
}

// Report holds the computed statistics for a single argument. Count fields
// are only meaningful for metrics enabled in the Metrics the report was
// built with.
type Report struct {
	Index           int    // 1-based position in the argument list
	Preview         string // shortened display form of the argument
	EffectiveLength int64
	IsFile          bool
	Elapsed         time.Duration

	Metrics   Metrics
	Letters   int
	Upper     int
	Lower     int
	Numbers   int
	Sentences int
	Specials  int
	Words     int
	Bytes     int64
	Quotes    int
	Tokens    int
}

// Reporter builds Reports for arguments according to a fixed metric
// selection. Arguments share no state, so one Reporter serves a whole run.
type Reporter struct {
	metrics Metrics
	probe   probe.Prober
	tokens  *scan.TokenCounter // nil unless the tokens metric is enabled
}

// NewReporter creates a Reporter for the given metric selection. The token
// counter is initialized only when the tokens metric is requested; its
// initialization error is the only way construction can fail.
func NewReporter(metrics Metrics, p probe.Prober) (*Reporter, error) {
	r := &Reporter{
		metrics: metrics,
		probe:   p,
	}

	if metrics.Tokens {
		tc, err := scan.NewTokenCounter()
		if err != nil {
			return nil, fmt.Errorf("token metric unavailable: %w", err)
		}
		r.tokens = tc
	}

	return r, nil
}

// Build computes the report for one argument. index is 1-based. Every
// enabled scanner runs over the argument's literal bytes; the backing file's
// content only ever contributes its length, never its text.
func (r *Reporter) Build(index int, arg string) Report {
	start := time.Now()

	contentLength, isFile := r.probe.ContentLength(arg)

	length := int64(scan.Length([]byte(arg)))
	if isFile && r.metrics.FileContent {
		length = contentLength
	}

	rep := Report{
		Index:           index,
		Preview:         preview(arg),
		EffectiveLength: length,
		IsFile:          isFile,
		Metrics:         r.metrics,
	}

	if r.metrics.Letters {
		rep.Letters = scan.CountLetters(arg)
		if r.metrics.Cases {
			rep.Upper, rep.Lower = scan.CountCases(arg)
		}
	}
	if r.metrics.Numbers {
		rep.Numbers = scan.CountNumbers(arg)
	}
	if r.metrics.Sentences {
		rep.Sentences = scan.CountSentences(arg)
	}
	if r.metrics.Specials {
		rep.Specials = scan.CountSpecials(arg)
	}
	if r.metrics.Words {
		rep.Words = scan.CountWords(arg)
	}
	if r.metrics.Bytes {
		rep.Bytes = length
	}
	if r.metrics.Quotes {
		rep.Quotes = scan.CountQuotes(arg)
	}
	if r.metrics.Tokens && r.tokens != nil {
		rep.Tokens = r.tokens.Count(arg)
	}

	rep.Elapsed = time.Since(start)

	slog.Debug("Report built", "index", index, "isFile", isFile, "effectiveLength", length, "elapsed", rep.Elapsed)
	return rep
}

// preview returns the first previewLimit bytes of arg plus a truncation
// marker, or arg unchanged when it already fits.
func preview(arg string) string {
	if len(arg) > previewLimit {
		return arg[:previewLimit] + "..."
	}
	return arg
}
