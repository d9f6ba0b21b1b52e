package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kdrblkbs/ayarla/internal/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			r := a.renderer(cmd)
			fmt.Fprintf(out, "%s version %s\n", r.Bold("ayarla"), version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}
