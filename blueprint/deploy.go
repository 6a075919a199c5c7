package blueprint

import (
	"context"

	"github.com/compozy/n8n-go/api"
	"github.com/compozy/n8n-go/model"
)

// Deploy loads the blueprint at path, maps it to a workflow and creates it on
// the remote instance. A non-empty name overrides the blueprint's own name.
// The returned workflow carries the server-assigned ID.
func Deploy(ctx context.Context, client *api.Client, path, name string) (*model.Workflow, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	workflow, err := ToWorkflow(doc)
	if err != nil {
		return nil, err
	}
	if name != "" {
		workflow.Name = name
	}
	return client.Workflows().Create(ctx, workflow)
}
