package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"piyathon/internal/version"
)

// exitError carries a process exit code. The message has already been
// printed by the command that returned it.
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func fail() error { return &exitError{code: 1} }

// newRootCmd builds the command tree. `piyathon <file.pi>` is shorthand for
// `piyathon run <file.pi>`.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "piyathon [flags] <file.pi>",
		Short:         "Run and translate Piyathon programs",
		Long:          `Piyathon is Python with Thai keywords. Run .pi programs, translate sources in bulk and inspect keyword tables.`,
		Version:       version.Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runProgram(cmd, args[0], nil)
		},
	}

	// Добавляем команды
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newConvertCmd())
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newMappingsCmd())
	rootCmd.AddCommand(newVersionCmd())

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().String("table", "", "keyword table (TOML) instead of the built-in Thai table")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to FILE (- for stderr, .ndjson for JSON lines)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|phase|file|debug)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to FILE")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to FILE")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to FILE")

	return rootCmd
}

// main builds the CLI and executes it. Commands print their own messages;
// only unexpected errors are printed here.
func main() {
	os.Exit(execute(newRootCmd(), os.Args[1:], os.Stdout, os.Stderr))
}

func execute(rootCmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func colorEnabled(cmd *cobra.Command, w io.Writer) bool {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false
	}
	switch colorFlag {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(w)
	}
}
