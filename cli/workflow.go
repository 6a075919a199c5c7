package cli

import (
	"github.com/compozy/n8n-go/api"
	"github.com/compozy/n8n-go/model"
	"github.com/spf13/cobra"
)

func WorkflowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workflow",
		Aliases: []string{"workflows", "wf"},
		Short:   "Manage workflow definitions",
	}
	cmd.AddCommand(
		workflowListCmd(),
		workflowGetCmd(),
		workflowCreateCmd(),
		workflowUpdateCmd(),
		workflowDeleteCmd(),
	)
	return cmd
}

func workflowListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflows",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			limit, _ := cmd.Flags().GetInt("limit")
			cursor, _ := cmd.Flags().GetString("cursor")
			list, err := client.Workflows().List(ctx, api.ListOptions{Limit: limit, Cursor: cursor})
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}
	cmd.Flags().Int("limit", 100, "maximum number of workflows to return")
	cmd.Flags().String("cursor", "", "pagination cursor from a previous page")
	return cmd
}

func workflowGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a workflow by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			workflow, err := client.Workflows().Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(workflow)
		},
	}
}

func workflowCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a workflow from a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			var workflow model.Workflow
			if err := readJSONFile(file, &workflow); err != nil {
				return err
			}
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			created, err := client.Workflows().Create(ctx, &workflow)
			if err != nil {
				return err
			}
			return printJSON(created)
		},
	}
	cmd.Flags().StringP("file", "f", "", "path to the workflow JSON document")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func workflowUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a workflow with the contents of a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			var workflow model.Workflow
			if err := readJSONFile(file, &workflow); err != nil {
				return err
			}
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			updated, err := client.Workflows().Update(ctx, args[0], &workflow)
			if err != nil {
				return err
			}
			return printJSON(updated)
		},
	}
	cmd.Flags().StringP("file", "f", "", "path to the workflow JSON document")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func workflowDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a workflow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			return client.Workflows().Delete(ctx, args[0])
		},
	}
}
