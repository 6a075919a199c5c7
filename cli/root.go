package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "n8nctl",
		Short:         "Manage workflows, executions, credentials and tags on an n8n instance",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().String("base-url", "", "n8n base URL (defaults to N8N_BASE_URL)")
	root.PersistentFlags().String("api-key", "", "API key (defaults to N8N_API_KEY)")
	root.PersistentFlags().Duration("timeout", 30*time.Second, "request timeout")
	root.PersistentFlags().String("log-level", "disabled", "log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	root.AddCommand(
		WorkflowCmd(),
		ExecutionCmd(),
		CredentialCmd(),
		TagCmd(),
		AuditCmd(),
		DeployCmd(),
		VersionCmd(),
	)

	return root
}
