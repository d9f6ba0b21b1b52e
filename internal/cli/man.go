package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages",
		Long:   `Generate man pages for ayarla and its commands into a directory`,
		Args:   cobra.NoArgs,
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create %s: %w", dir, err)
			}

			header := &doc.GenManHeader{
				Title:   "AYARLA",
				Section: "1",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf("failed to generate man pages: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Man pages written to %s\n", dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Directory to write man pages to")

	return cmd
}
