package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/clen-cli/clen/internal/app"
	"github.com/clen-cli/clen/internal/report"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// buildConfig constructs an app.Config from command flags and arguments
func buildConfig(cmd *cobra.Command, args []string) app.Config {
	flag := func(name string) bool {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}

	metrics := report.Metrics{
		Letters:     flag("count-letters"),
		Cases:       flag("count-cases"),
		Numbers:     flag("count-numbers"),
		Sentences:   flag("count-sentences"),
		Specials:    flag("count-special-signs"),
		FileContent: flag("count-filecontent"),
		Words:       flag("count-words"),
		Bytes:       flag("count-bytes"),
		Quotes:      flag("count-quotes"),
		Tokens:      flag("count-tokens"),
	}

	return app.Config{
		Args:       args,
		Metrics:    metrics,
		ShowTiming: term.IsTerminal(int(os.Stdout.Fd())),
		Debug:      flag("debug"),
	}
}

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	var level slog.Level
	if debug {
		level = slog.LevelDebug
	} else {
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}

var rootCmd = &cobra.Command{
	Use:   "clen [options] arguments...",
	Short: "A CLI tool for per-argument text statistics",
	Long: `Clen analyzes and reports details about each argument you pass to it. It can
count the total length, letters, numbers, sentences, special signs, words,
bytes, quoted segments, and model tokens in each input, and can also report
file content lengths when a valid file path is provided.

Examples:
  clen --count-letters --count-cases "Hello, World"
  clen --count-words --count-sentences essay.txt notes.txt
  clen --count-filecontent --count-bytes ./report.pdf`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// no arguments is an implicit help request, not an error
		if len(args) == 0 {
			return cmd.Help()
		}

		config := buildConfig(cmd, args)

		// configure logging pending debug flag
		setupLogger(config.Debug)

		// create context with signal handling for graceful shutdown
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return app.Run(ctx, config, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().Bool("count-filecontent", false, "Count the length of file content if the argument is a file")
	rootCmd.Flags().Bool("count-sentences", false, "Count sentence endings (., ?, or !, optionally followed by a quote)")
	rootCmd.Flags().Bool("count-numbers", false, "Count numerical digits (0-9) in the argument")
	rootCmd.Flags().Bool("count-letters", false, "Count alphabetic letters (A-Z and a-z) in the argument")
	rootCmd.Flags().Bool("count-cases", false, "Count uppercase and lowercase letters (requires --count-letters)")
	rootCmd.Flags().Bool("count-special-signs", false, "Count special characters like !@#$%^&*")
	rootCmd.Flags().Bool("count-words", false, "Count the number of words in the argument")
	rootCmd.Flags().Bool("count-bytes", false, "Count the number of bytes in the argument or file content")
	rootCmd.Flags().Bool("count-quotes", false, "Count quoted segments delimited by ' or \"")
	rootCmd.Flags().Bool("count-tokens", false, "Count model tokens (cl100k_base encoding)")

	rootCmd.Flags().BoolP("debug", "D", false, "Enable debug logging")
	_ = rootCmd.Flags().MarkHidden("debug")

	// options must precede the first non-option argument; anything after it
	// is data even when it starts with --
	rootCmd.Flags().SetInterspersed(false)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
