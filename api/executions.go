package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/compozy/n8n-go/model"
)

// ExecutionsClient observes run records. Executions are produced by the
// remote instance; they can only be listed, fetched and deleted from here.
type ExecutionsClient struct {
	client *Client
}

// ExecutionListOptions filters an execution listing. Status and WorkflowID
// are server-side filters; IncludeData controls whether the (potentially
// large) run payload is returned, excluded by default.
type ExecutionListOptions struct {
	Limit       int
	Cursor      string
	Status      string
	WorkflowID  string
	IncludeData bool
}

func (o ExecutionListOptions) queryParams() map[string]string {
	query := ListOptions{Limit: o.Limit, Cursor: o.Cursor}.queryParams()
	query["includeData"] = strconv.FormatBool(o.IncludeData)
	if o.Status != "" {
		query["status"] = o.Status
	}
	if o.WorkflowID != "" {
		query["workflowId"] = o.WorkflowID
	}
	return query
}

// List returns one page of executions.
func (s *ExecutionsClient) List(ctx context.Context, opts ExecutionListOptions) (*model.ExecutionList, error) {
	var out model.ExecutionList
	if err := s.client.do(ctx, "GET", "/executions", opts.queryParams(), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list executions: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a single execution by its numeric ID.
func (s *ExecutionsClient) Get(ctx context.Context, id int, includeData bool) (*model.Execution, error) {
	query := map[string]string{"includeData": strconv.FormatBool(includeData)}
	var out model.Execution
	if err := s.client.do(ctx, "GET", "/executions/"+strconv.Itoa(id), query, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get execution %d: %w", id, err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the execution record with the given ID.
func (s *ExecutionsClient) Delete(ctx context.Context, id int) error {
	if err := s.client.do(ctx, "DELETE", "/executions/"+strconv.Itoa(id), nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete execution %d: %w", id, err)
	}
	return nil
}
