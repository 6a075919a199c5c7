package cli

import (
	"github.com/compozy/n8n-go/api"
	"github.com/compozy/n8n-go/model"
	"github.com/spf13/cobra"
)

func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tag",
		Aliases: []string{"tags"},
		Short:   "Manage workflow tags",
	}
	cmd.AddCommand(
		tagListCmd(),
		tagGetCmd(),
		tagCreateCmd(),
		tagDeleteCmd(),
	)
	return cmd
}

func tagListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			limit, _ := cmd.Flags().GetInt("limit")
			cursor, _ := cmd.Flags().GetString("cursor")
			list, err := client.Tags().List(ctx, api.ListOptions{Limit: limit, Cursor: cursor})
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}
	cmd.Flags().Int("limit", 100, "maximum number of tags to return")
	cmd.Flags().String("cursor", "", "pagination cursor from a previous page")
	return cmd
}

func tagGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get a tag by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			tag, err := client.Tags().Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(tag)
		},
	}
}

func tagCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tag",
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, _ := cmd.Flags().GetString("name")
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			created, err := client.Tags().Create(ctx, &model.Tag{Name: name})
			if err != nil {
				return err
			}
			return printJSON(created)
		},
	}
	cmd.Flags().String("name", "", "tag name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func tagDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			return client.Tags().Delete(ctx, args[0])
		},
	}
}
