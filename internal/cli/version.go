package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/holocron/pkg/version"
)

// newVersionCmd prints build metadata.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("holocron %s\n", version.String())
		},
	}
}
