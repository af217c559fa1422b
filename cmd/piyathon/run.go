package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"piyathon/internal/diagfmt"
	"piyathon/internal/driver"
	"piyathon/internal/runner"
	"piyathon/internal/translate"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [flags] <file.pi> [-- args...]",
		Short: "Translate a Piyathon program and execute it",
		Long:  `Run translates a .pi source to Python in memory and executes it as __main__ with the embedded interpreter`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(cmd, args[0], args[1:])
		},
	}
	cmd.Flags().StringArray("lib", nil, "prepend directory to sys.path (repeatable)")
	return cmd
}

func runProgram(cmd *cobra.Command, path string, progArgs []string) error {
	out := cmd.OutOrStdout()

	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	libDirs := sess.manifest.libDirs()
	if cmd.Flags().Lookup("lib") != nil {
		extra, err := cmd.Flags().GetStringArray("lib")
		if err != nil {
			return fmt.Errorf("failed to get lib flag: %w", err)
		}
		libDirs = append(extra, libDirs...)
	}
	if bundled, ok := runner.BundledLibDir(); ok {
		libDirs = append(libDirs, bundled)
	}

	r := runner.New(sess.translator(), runner.WithLibDirs(libDirs...), runner.WithArgs(progArgs...))
	return withTracing(cmd, func() error {
		res, err := r.RunFile(cmd.Context(), path)
		if err == nil {
			return nil
		}
		reportRunError(out, cmd, res, path, err)
		return fail()
	})
}

func reportRunError(out io.Writer, cmd *cobra.Command, res *runner.Result, path string, err error) {
	var execErr *runner.ExecError
	switch {
	case errors.Is(err, driver.ErrNotLocalSource):
		fmt.Fprintln(out, "Error: The source file must have a .pi extension")
	case errors.Is(err, driver.ErrNotFound):
		fmt.Fprintf(out, "Error: Input file '%s' not found.\n", path)
	case errors.Is(err, driver.ErrUnreadable):
		fmt.Fprintf(out, "Error: Unable to read input file '%s'.\n", path)
	case errors.As(err, &execErr):
		fmt.Fprintf(out, "Error during execution: %v\n", execErr.Err)
	default:
		var lexErr *translate.LexicalError
		if errors.As(err, &lexErr) && len(lexErr.All) > 0 && res != nil {
			diagfmt.PrettyDiagnostics(cmd.ErrOrStderr(), lexErr.All, res.FileSet, diagfmt.PrettyOpts{
				Color:   colorEnabled(cmd, cmd.ErrOrStderr()),
				Context: 1,
			})
		}
		fmt.Fprintln(out, "Execution aborted due to errors in the Piyathon input file.")
	}
}
