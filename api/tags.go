package api

import (
	"context"
	"fmt"

	"github.com/compozy/n8n-go/model"
)

// TagsClient manages workflow tags.
type TagsClient struct {
	client *Client
}

// List returns one page of tags.
func (s *TagsClient) List(ctx context.Context, opts ListOptions) (*model.TagList, error) {
	var out model.TagList
	if err := s.client.do(ctx, "GET", "/tags", opts.queryParams(), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches a single tag by ID.
func (s *TagsClient) Get(ctx context.Context, id string) (*model.Tag, error) {
	var out model.Tag
	if err := s.client.do(ctx, "GET", "/tags/"+id, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get tag %s: %w", id, err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create submits a new tag and returns the server-created copy.
func (s *TagsClient) Create(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	if err := tag.Validate(); err != nil {
		return nil, err
	}
	var out model.Tag
	if err := s.client.do(ctx, "POST", "/tags", nil, tag.SubmitPayload(), &out); err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes the tag with the given ID.
func (s *TagsClient) Delete(ctx context.Context, id string) error {
	if err := s.client.do(ctx, "DELETE", "/tags/"+id, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete tag %s: %w", id, err)
	}
	return nil
}
