package api

import (
	"context"
	"fmt"

	"github.com/compozy/n8n-go/model"
)

// AuditClient generates security audit reports.
type AuditClient struct {
	client *Client
}

// Generate runs a security audit on the instance. A nil options posts an
// empty request so the server applies its defaults.
func (s *AuditClient) Generate(ctx context.Context, options *model.AuditOptions) (*model.Audit, error) {
	var body any
	if options != nil {
		body = options
	}
	var out model.Audit
	if err := s.client.do(ctx, "POST", "/audit", nil, body, &out); err != nil {
		return nil, fmt.Errorf("failed to generate audit: %w", err)
	}
	return &out, nil
}
