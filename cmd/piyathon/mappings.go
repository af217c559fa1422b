package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"piyathon/internal/keywords"
)

func newMappingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mappings [flags]",
		Short: "Export the keyword table in both directions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmd.Flags().GetString("format")
			if err != nil {
				return fmt.Errorf("failed to get format flag: %w", err)
			}
			sess, err := newSession(cmd)
			if err != nil {
				return err
			}
			return keywords.Export(cmd.OutOrStdout(), sess.table, strings.ToLower(format))
		},
	}
	cmd.Flags().String("format", "json", "output format (json|yaml|toml)")
	return cmd
}
