package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	highlight "github.com/wizenheimer/highlight"
)

func newIndexCmd(configPath *string) *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:   "index [files...]",
		Short: "Index one or more text files and optionally persist the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			idx := highlight.NewInvertedIndexWithConfig(cfg)

			for docID, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				idx.Index(docID, string(data))
				highlight.Log.Info().Str("file", filepath.Base(path)).Int("docID", docID).Msg("indexed")
			}

			if savePath == "" {
				fmt.Printf("indexed %d document(s)\n", idx.TotalDocs)
				return nil
			}

			encoded, err := idx.Encode()
			if err != nil {
				return fmt.Errorf("encoding index: %w", err)
			}
			if err := os.WriteFile(savePath, encoded, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", savePath, err)
			}
			fmt.Printf("indexed %d document(s), saved to %s\n", idx.TotalDocs, savePath)
			return nil
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "path to persist the encoded index")
	return cmd
}
