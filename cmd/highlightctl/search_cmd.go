package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	highlight "github.com/wizenheimer/highlight"
)

func newSearchCmd(configPath *string) *cobra.Command {
	var files []string
	var query string
	var maxResults int
	var proximity bool
	var cropWords int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search indexed files and print ranked, highlighted snippets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if query == "" {
				return fmt.Errorf("--query is required")
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			idx := highlight.NewInvertedIndexWithConfig(cfg)

			for docID, path := range files {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				idx.Index(docID, string(data))
			}

			opts := cfg.FormatOptions()
			if cropWords > 0 {
				words := cropWords
				opts.Crop = &words
			}

			var results []highlight.Match
			if proximity {
				results = idx.RankProximity(query, maxResults, opts)
			} else {
				results = idx.RankBM25(query, maxResults, opts)
			}

			renderResults(files, results)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&files, "file", nil, "text file to index (repeatable)")
	cmd.Flags().StringVar(&query, "query", "", "search query")
	cmd.Flags().IntVar(&maxResults, "max", 10, "maximum number of results")
	cmd.Flags().BoolVar(&proximity, "proximity", false, "rank by proximity instead of BM25")
	cmd.Flags().IntVar(&cropWords, "crop", 0, "crop snippets to this many words (0 disables)")
	cmd.MarkFlagRequired("file")

	return cmd
}

func renderResults(files []string, results []highlight.Match) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Rank", "Document", "Score", "Snippet")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt)

	for rank, m := range results {
		doc := "?"
		if m.DocID >= 0 && m.DocID < len(files) {
			doc = files[m.DocID]
		}

		snippet := m.Snippet
		if snippet == "" {
			snippet = "(no snippet)"
		}

		tbl.AddRow(rank+1, doc, fmt.Sprintf("%.4f", m.Score), snippet)
	}

	tbl.Print()
}
