package cli

import (
	"github.com/compozy/n8n-go/api"
	"github.com/compozy/n8n-go/model"
	"github.com/spf13/cobra"
)

func CredentialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credential",
		Aliases: []string{"credentials", "cred"},
		Short:   "Manage credentials",
	}
	cmd.AddCommand(
		credentialListCmd(),
		credentialCreateCmd(),
		credentialDeleteCmd(),
		credentialSchemaCmd(),
	)
	return cmd
}

func credentialListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			limit, _ := cmd.Flags().GetInt("limit")
			cursor, _ := cmd.Flags().GetString("cursor")
			list, err := client.Credentials().List(ctx, api.ListOptions{Limit: limit, Cursor: cursor})
			if err != nil {
				return err
			}
			return printJSON(list)
		},
	}
	cmd.Flags().Int("limit", 100, "maximum number of credentials to return")
	cmd.Flags().String("cursor", "", "pagination cursor from a previous page")
	return cmd
}

func credentialCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a credential from a JSON file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			var credential model.Credential
			if err := readJSONFile(file, &credential); err != nil {
				return err
			}
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			created, err := client.Credentials().Create(ctx, &credential)
			if err != nil {
				return err
			}
			return printJSON(created)
		},
	}
	cmd.Flags().StringP("file", "f", "", "path to the credential JSON document")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func credentialDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			return client.Credentials().Delete(ctx, args[0])
		},
	}
}

func credentialSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema <type>",
		Short: "Show the data schema for a credential type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, client, err := newClient(cmd)
			if err != nil {
				return err
			}
			defer client.Close()
			schema, err := client.Credentials().GetSchema(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(schema)
		},
	}
}
