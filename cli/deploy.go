package cli

import (
	"github.com/compozy/n8n-go/blueprint"
	"github.com/spf13/cobra"
)

func DeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy <blueprint>",
		Short: "Create a workflow from a local blueprint file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			workflow, err := blueprint.Deploy(ctx, client, args[0], name)
			if err != nil {
				return err
			}
			return printJSON(workflow)
		},
	}
	cmd.Flags().String("name", "", "override the blueprint's workflow name")
	return cmd
}
