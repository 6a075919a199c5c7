package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/compozy/n8n-go/api"
	"github.com/compozy/n8n-go/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// newClient resolves connection settings from flags, environment and an
// optional .env file, attaches a logger to the command context and opens a
// verified client. Callers must Close the returned client.
func newClient(cmd *cobra.Command) (context.Context, *api.Client, error) {
	// Missing .env is fine; flags and environment still apply.
	_ = godotenv.Load()

	baseURL, _ := cmd.Flags().GetString("base-url")
	if baseURL == "" {
		baseURL = os.Getenv("N8N_BASE_URL")
	}
	if baseURL == "" {
		return nil, nil, fmt.Errorf("base URL is required (set --base-url or N8N_BASE_URL)")
	}
	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv("N8N_API_KEY")
	}
	timeout, _ := cmd.Flags().GetDuration("timeout")

	ctx := logger.ContextWithLogger(cmd.Context(), buildLogger(cmd))

	client, err := api.New(ctx, api.Config{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Timeout: timeout,
	})
	if err != nil {
		return nil, nil, err
	}
	return ctx, client, nil
}

func buildLogger(cmd *cobra.Command) logger.Logger {
	level, _ := cmd.Flags().GetString("log-level")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	return logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(level),
		Output:     os.Stderr,
		JSON:       logJSON,
		TimeFormat: "15:04:05",
	})
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readJSONFile decodes a local JSON document into out, used by create and
// update commands that take entity files.
func readJSONFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid JSON in %s: %w", path, err)
	}
	return nil
}
