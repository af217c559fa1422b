package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"piyathon/internal/keywords"
	"piyathon/internal/translate"
)

// session bundles what every command derives from global flags and the
// project manifest.
type session struct {
	manifest *projectManifest
	table    *keywords.Table
}

func newSession(cmd *cobra.Command) (*session, error) {
	manifest, err := loadProjectManifest(".")
	if err != nil {
		return nil, err
	}

	tablePath, err := cmd.Root().PersistentFlags().GetString("table")
	if err != nil {
		return nil, fmt.Errorf("failed to get table flag: %w", err)
	}
	if tablePath == "" {
		tablePath = manifest.tablePath()
	}

	table := keywords.Thai()
	if tablePath != "" {
		table, err = keywords.LoadFile(tablePath)
		if err != nil {
			return nil, err
		}
	}
	return &session{manifest: manifest, table: table}, nil
}

func (s *session) translator(opts ...translate.Option) *translate.Translator {
	return translate.New(s.table, opts...)
}
