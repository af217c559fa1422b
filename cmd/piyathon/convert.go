package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"piyathon/internal/diag"
	"piyathon/internal/diagfmt"
	"piyathon/internal/driver"
	"piyathon/internal/keywords"
	"piyathon/internal/observ"
	"piyathon/internal/source"
	"piyathon/internal/translate"
	"piyathon/internal/version"
)

const cacheApp = "piyathon"

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [flags] <dir>",
		Short: "Translate every source file under a directory",
		Long: `Convert walks dir and translates every .py file to .pi (--to local) or every
.pi file to .py (--to canonical). Outputs are written next to the sources or
under --out, mirroring the directory layout.`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}
	cmd.Flags().String("to", "local", "target spelling (local|canonical)")
	cmd.Flags().String("out", "", "write outputs under this directory instead of next to the sources")
	cmd.Flags().Int("jobs", 0, "parallel workers (0 = piyathon.toml or GOMAXPROCS)")
	cmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	cmd.Flags().Bool("check", false, "validate Python sources with the parser before translating")
	cmd.Flags().Bool("cache", false, "reuse translations from the on-disk cache")
	cmd.Flags().Bool("clear-cache", false, "drop the on-disk cache before converting")
	cmd.Flags().String("diagnostics", "pretty", "failure report style (pretty|short|json|sarif)")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	root := args[0]
	out := cmd.OutOrStdout()

	toFlag, err := cmd.Flags().GetString("to")
	if err != nil {
		return fmt.Errorf("failed to get to flag: %w", err)
	}
	dir, ok := keywords.ParseDirection(toFlag)
	if !ok {
		return fmt.Errorf("invalid --to value %q (expected local|canonical)", toFlag)
	}
	outDir, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	diagStyle, err := cmd.Flags().GetString("diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get diagnostics flag: %w", err)
	}
	switch diagStyle {
	case "pretty", "short", "json", "sarif":
	default:
		return fmt.Errorf("invalid --diagnostics value %q (expected pretty|short|json|sarif)", diagStyle)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(out, "Error: Input directory '%s' not found.\n", root)
		return fail()
	}

	sess, err := newSession(cmd)
	if err != nil {
		return err
	}
	if jobs <= 0 {
		jobs = sess.manifest.jobs()
	}

	opts := driver.DirOptions{Direction: dir, OutDir: outDir, Jobs: jobs}
	if useCache || clearCache {
		cache, err := driver.OpenDiskCache(cacheApp)
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
		}
		if useCache {
			opts.Cache = cache
		}
	}

	tr := sess.translator(translate.WithSyntaxCheck(check))
	title := fmt.Sprintf("%s: %s", driver.DescribeDirection(dir), root)

	return withTracing(cmd, func() error {
		timer := observ.NewTimer()
		if timings {
			opts.Timer = timer
		}
		done := timer.Begin("convert")

		var (
			fileSet *source.FileSet
			results []driver.DirFileResult
			err     error
		)
		if shouldUseTUI(mode, out) {
			fileSet, results, err = convertDirWithUI(cmd.Context(), out, title, tr, root, opts)
		} else {
			fileSet, results, err = driver.ConvertDir(cmd.Context(), tr, root, opts)
			printResults(out, results)
		}
		done(fmt.Sprintf("%d files", len(results)))
		if err != nil {
			return err
		}

		failed, err := printFailures(cmd, fileSet, results, diagStyle)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s translation completed: %d file(s), %d failed.\n",
			driver.DescribeDirection(dir), len(results), failed)
		if timings {
			fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
		}
		if failed > 0 {
			return fail()
		}
		return nil
	})
}

func printResults(out io.Writer, results []driver.DirFileResult) {
	for _, res := range results {
		switch {
		case res.Err != nil:
			fmt.Fprintf(out, "failed    %s\n", res.Source)
		case res.Cached:
			fmt.Fprintf(out, "cached    %s -> %s\n", res.Source, res.Dest)
		default:
			fmt.Fprintf(out, "converted %s -> %s\n", res.Source, res.Dest)
		}
	}
}

// printFailures reports every failed file on stderr in the requested style
// and returns their count.
func printFailures(cmd *cobra.Command, fileSet *source.FileSet, results []driver.DirFileResult, style string) (int, error) {
	errOut := cmd.ErrOrStderr()

	var diags []diag.Diagnostic
	failed := 0
	for _, res := range results {
		if res.Err == nil {
			continue
		}
		failed++
		diags = append(diags, driver.FailureDiagnostics(res.Source, res.File, res.Err)...)
	}

	switch style {
	case "json":
		return failed, diagfmt.JSONDiagnostics(errOut, diags, fileSet, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	case "sarif":
		return failed, diagfmt.SarifDiagnostics(errOut, diags, fileSet, diagfmt.SarifRunMeta{
			ToolName:    "piyathon",
			ToolVersion: version.Version,
		})
	}
	if len(diags) == 0 {
		return failed, nil
	}
	if style == "short" {
		fmt.Fprintln(errOut, diag.FormatShortDiagnostics(diags, fileSet))
		return failed, nil
	}
	diagfmt.PrettyDiagnostics(errOut, diags, fileSet, diagfmt.PrettyOpts{Color: colorEnabled(cmd, errOut), Context: 1})
	return failed, nil
}
