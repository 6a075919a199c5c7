package api

import (
	"context"
	"fmt"

	"github.com/compozy/n8n-go/model"
)

// WorkflowsClient manages workflow definitions on the remote instance.
type WorkflowsClient struct {
	client *Client
}

// List returns one page of workflows.
func (s *WorkflowsClient) List(ctx context.Context, opts ListOptions) (*model.WorkflowList, error) {
	var out model.WorkflowList
	if err := s.client.do(ctx, "GET", "/workflows", opts.queryParams(), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a single workflow by ID.
func (s *WorkflowsClient) Get(ctx context.Context, id string) (*model.Workflow, error) {
	var out model.Workflow
	if err := s.client.do(ctx, "GET", "/workflows/"+id, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get workflow %s: %w", id, err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create submits a new workflow and returns the server-created copy with its
// assigned ID. The submit view strips the local ID and unset optionals.
func (s *WorkflowsClient) Create(ctx context.Context, workflow *model.Workflow) (*model.Workflow, error) {
	if err := workflow.Validate(); err != nil {
		return nil, err
	}
	var out model.Workflow
	if err := s.client.do(ctx, "POST", "/workflows", nil, workflow.SubmitPayload(), &out); err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces the workflow with the given ID.
func (s *WorkflowsClient) Update(ctx context.Context, id string, workflow *model.Workflow) (*model.Workflow, error) {
	if err := workflow.Validate(); err != nil {
		return nil, err
	}
	var out model.Workflow
	if err := s.client.do(ctx, "PUT", "/workflows/"+id, nil, workflow.SubmitPayload(), &out); err != nil {
		return nil, fmt.Errorf("failed to update workflow %s: %w", id, err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the workflow with the given ID.
func (s *WorkflowsClient) Delete(ctx context.Context, id string) error {
	if err := s.client.do(ctx, "DELETE", "/workflows/"+id, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete workflow %s: %w", id, err)
	}
	return nil
}
