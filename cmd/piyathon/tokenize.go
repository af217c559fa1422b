package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"piyathon/internal/diagfmt"
	"piyathon/internal/driver"
	"piyathon/internal/observ"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file>",
		Short: "Dump the token stream of a .py or .pi file",
		Long:  `Tokenize breaks a source file into tokens, including comments and whitespace trivia`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	cmd.Flags().Int("tab-size", 8, "tab stop used for indentation columns")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	tabSize, err := cmd.Flags().GetInt("tab-size")
	if err != nil {
		return fmt.Errorf("failed to get tab-size flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	timer := observ.NewTimer()
	done := timer.Begin("tokenize")
	result, err := driver.Tokenize(filePath, maxDiagnostics, tabSize)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	done(fmt.Sprintf("%d tokens", len(result.Tokens)))

	if timings {
		result.Bag.Add(driver.TimingDiagnostic("tokenize", filePath, timer.Report()))
	}

	// Диагностика в stderr
	if result.Bag.Len() > 0 {
		errOut := cmd.ErrOrStderr()
		diagfmt.Pretty(errOut, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     colorEnabled(cmd, errOut),
			Context:   2,
			ShowNotes: true,
		})
	}

	// Токены в выбранном формате
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(out, result.Tokens)
	case "msgpack":
		err = diagfmt.FormatTokensMsgpack(out, result.Tokens)
	default:
		err = diagfmt.FormatTokensPretty(out, result.Tokens)
	}
	if err != nil {
		return err
	}
	if result.Bag.HasErrors() {
		return fail()
	}
	return nil
}
