package cli

import (
	"github.com/compozy/n8n-go/pkg/version"
	"github.com/spf13/cobra"
)

func VersionCmd() *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			if jsonOut {
				return printJSON(info)
			}
			cmd.Println(info.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print build information as JSON")
	return cmd
}
