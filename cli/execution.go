package cli

import (
	"strconv"

	"github.com/compozy/n8n-go/api"
	"github.com/spf13/cobra"
)

func ExecutionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "execution",
		Aliases: []string{"executions", "exec"},
		Short:   "Inspect workflow run records",
	}
	cmd.AddCommand(
		executionListCmd(),
		executionGetCmd(),
		executionDeleteCmd(),
	)
	return cmd
}

func executionListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List executions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			limit, _ := cmd.Flags().GetInt("limit")
			cursor, _ := cmd.Flags().GetString("cursor")
			status, _ := cmd.Flags().GetString("status")
			workflowID, _ := cmd.Flags().GetString("workflow")
			includeData, _ := cmd.Flags().GetBool("include-data")
			list, err := client.Executions().List(ctx, api.ExecutionListOptions{
				Limit:       limit,
				Cursor:      cursor,
				Status:      status,
				WorkflowID:  workflowID,
				IncludeData: includeData,
			})
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}
	cmd.Flags().Int("limit", 100, "maximum number of executions to return")
	cmd.Flags().String("cursor", "", "pagination cursor from a previous page")
	cmd.Flags().String("status", "", "filter by execution status")
	cmd.Flags().String("workflow", "", "filter by workflow ID")
	cmd.Flags().Bool("include-data", false, "include execution payload data")
	return cmd
}

func executionGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Get an execution by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			includeData, _ := cmd.Flags().GetBool("include-data")
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			execution, err := client.Executions().Get(ctx, id, includeData)
			if err != nil {
				return err
			}
			return printJSON(execution)
		},
	}
	cmd.Flags().Bool("include-data", false, "include execution payload data")
	return cmd
}

func executionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an execution record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			return client.Executions().Delete(ctx, id)
		},
	}
}
