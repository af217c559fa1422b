// Command p2p translates one file between Python (.py) and Piyathon (.pi).
//
//	p2p [--check] [--table FILE] <source-file> <destination-file>
//
// The direction follows from the extensions. Status messages go to stdout;
// every failure exits with status 1, a malformed command line with 2.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"piyathon/internal/diagfmt"
	"piyathon/internal/driver"
	"piyathon/internal/keywords"
	"piyathon/internal/translate"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := pflag.NewFlagSet("p2p", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	check := flags.Bool("check", false, "validate Python input with the parser before translating")
	tablePath := flags.String("table", "", "keyword table (TOML) to use instead of the built-in Thai table")
	colorMode := flags.String("color", "auto", "colorize diagnostics (auto|on|off)")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: p2p [--check] [--table FILE] <source-file> <destination-file>")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Translate between Python and Piyathon files")
		fmt.Fprintln(stderr)
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if flags.NArg() != 2 {
		flags.Usage()
		fmt.Fprintf(stderr, "p2p: error: expected 2 arguments, got %d\n", flags.NArg())
		return exitUsage
	}
	src, dst := flags.Arg(0), flags.Arg(1)

	table := keywords.Thai()
	if *tablePath != "" {
		t, err := keywords.LoadFile(*tablePath)
		if err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", err)
			return exitFail
		}
		table = t
	}

	tr := translate.New(table, translate.WithSyntaxCheck(*check))
	res, err := driver.ConvertFile(context.Background(), tr, src, dst, driver.FileOptions{})
	if err != nil {
		reportError(stdout, res, src, dst, err, useColor(*colorMode, stdout))
		return exitFail
	}

	fmt.Fprintf(stdout, "%s translation completed.\n", driver.DescribeDirection(res.Direction))
	fmt.Fprintf(stdout, "Translated code has been written to '%s'.\n", dst)
	return exitOK
}

func reportError(out io.Writer, res *driver.FileResult, src, dst string, err error, color bool) {
	switch {
	case errors.Is(err, driver.ErrSameExtension):
		fmt.Fprintln(out, "Error: Source and destination files must have different extensions (.py or .pi)")
	case errors.Is(err, driver.ErrUnknownExtension):
		fmt.Fprintln(out, "Error: Both files must have either .py or .pi extensions")
	case errors.Is(err, driver.ErrNotFound):
		fmt.Fprintf(out, "Error: Input file '%s' not found.\n", src)
	case errors.Is(err, driver.ErrUnreadable):
		fmt.Fprintf(out, "Error: Unable to read input file '%s'.\n", src)
	case errors.Is(err, driver.ErrUnwritable):
		fmt.Fprintf(out, "Error: Unable to write to output file '%s'.\n", dst)
	default:
		printTranslationError(out, res, err, color)
		if res != nil && res.Direction == keywords.ToLocal {
			fmt.Fprintln(out, "Translation aborted due to syntax errors in the Python input file.")
		} else {
			fmt.Fprintln(out, "Translation aborted due to errors in the Piyathon input file.")
		}
	}
}

func printTranslationError(out io.Writer, res *driver.FileResult, err error, color bool) {
	var lexErr *translate.LexicalError
	if errors.As(err, &lexErr) && len(lexErr.All) > 0 && res != nil && res.FileSet != nil {
		diagfmt.PrettyDiagnostics(out, lexErr.All, res.FileSet, diagfmt.PrettyOpts{Color: color, Context: 1})
		return
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}

func useColor(mode string, out io.Writer) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
