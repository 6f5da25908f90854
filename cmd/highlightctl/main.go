// Command highlightctl is a small operator CLI around the highlight engine:
// build an in-memory index from text files, run a search, and render
// highlighted/cropped snippets for the results.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "highlightctl",
		Short: "Index text files and render highlighted search snippets",
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	root.AddCommand(newIndexCmd(&configPath))
	root.AddCommand(newSearchCmd(&configPath))
	root.AddCommand(newConfigCmd())

	return root
}
