package cli

import (
	"github.com/compozy/n8n-go/model"
	"github.com/spf13/cobra"
)

func AuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Generate a security audit report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()

			options := auditOptions(cmd)
			report, err := client.Audit().Generate(ctx, options)
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}
	cmd.Flags().Int("days-abandoned", 0, "days without execution before a workflow counts as abandoned")
	cmd.Flags().StringSlice("categories", nil, "risk categories to audit (credentials, database, filesystem, nodes, instance)")
	return cmd
}

func auditOptions(cmd *cobra.Command) *model.AuditOptions {
	days, _ := cmd.Flags().GetInt("days-abandoned")
	categories, _ := cmd.Flags().GetStringSlice("categories")

	additional := map[string]any{}
	if days > 0 {
		additional["daysAbandonedWorkflow"] = days
	}
	if len(categories) > 0 {
		additional["categories"] = categories
	}
	if len(additional) == 0 {
		return nil
	}
	return &model.AuditOptions{AdditionalOptions: additional}
}
