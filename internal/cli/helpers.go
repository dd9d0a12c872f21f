package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/testhooks/internal/logging"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// createLogger configures the application logger.
// Logs go to Stderr so they never mix with the trace on Stdout.
func createLogger(level string) (*slog.Logger, error) {
	if level == "" {
		return logging.NewNop(), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorProfile picks the richest profile the output supports.
// Non-terminal writers always get plain text.
func colorProfile(w io.Writer, noColor bool) termenv.Profile {
	if noColor || !isTerminal(w) {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).Profile
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}
