package api

import (
	"context"
	"fmt"

	"github.com/compozy/n8n-go/model"
)

// CredentialsClient manages credentials and exposes per-type data schemas.
type CredentialsClient struct {
	client *Client
}

// List returns one page of credentials. The server never includes secret
// data in listings.
func (s *CredentialsClient) List(ctx context.Context, opts ListOptions) (*model.CredentialList, error) {
	var out model.CredentialList
	if err := s.client.do(ctx, "GET", "/credentials", opts.queryParams(), nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	return &out, nil
}

// Create submits a new credential and returns the server-created copy.
func (s *CredentialsClient) Create(ctx context.Context, credential *model.Credential) (*model.Credential, error) {
	if err := credential.Validate(); err != nil {
		return nil, err
	}
	var out model.Credential
	if err := s.client.do(ctx, "POST", "/credentials", nil, credential.SubmitPayload(), &out); err != nil {
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}
	return &out, nil
}

// Delete removes the credential with the given ID.
func (s *CredentialsClient) Delete(ctx context.Context, id string) error {
	if err := s.client.do(ctx, "DELETE", "/credentials/"+id, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete credential %s: %w", id, err)
	}
	return nil
}

// GetSchema fetches the JSON-schema shape expected in the data field of the
// given credential type, useful for building payloads before Create.
func (s *CredentialsClient) GetSchema(ctx context.Context, credentialType string) (*model.CredentialSchema, error) {
	var out model.CredentialSchema
	if err := s.client.do(ctx, "GET", "/credentials/schema/"+credentialType, nil, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to get schema for credential type %s: %w", credentialType, err)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
