package model

// -----------------------------------------------------------------------------
// Credential
// -----------------------------------------------------------------------------

// Credential is a named, typed secret payload referenced by nodes. Data holds
// the provider-specific fields described by the credential type's schema.
type Credential struct {
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name" validate:"required"`
	Type      string         `json:"type" validate:"required"`
	Data      map[string]any `json:"data" validate:"required"`
	CreatedAt string         `json:"createdAt,omitempty"`
	UpdatedAt string         `json:"updatedAt,omitempty"`
}

func (c *Credential) Validate() error {
	return validateStruct("credential", c)
}

// credentialPayload is the submit view: identity and timestamps stripped.
type credentialPayload struct {
	Name string         `json:"name"`
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// SubmitPayload returns the body shape accepted by the create endpoint.
func (c *Credential) SubmitPayload() any {
	return &credentialPayload{
		Name: c.Name,
		Type: c.Type,
		Data: c.Data,
	}
}

// -----------------------------------------------------------------------------
// CredentialSchema
// -----------------------------------------------------------------------------

// CredentialSchema is the JSON-schema shape a credential type expects for its
// data field, as served by /credentials/schema/{type}.
type CredentialSchema struct {
	AdditionalProperties bool           `json:"additionalProperties"`
	Type                 string         `json:"type"`
	Properties           map[string]any `json:"properties" validate:"required"`
	Required             []string       `json:"required" validate:"required"`
}

func (s *CredentialSchema) Validate() error {
	return validateStruct("credential schema", s)
}

// -----------------------------------------------------------------------------
// CredentialList
// -----------------------------------------------------------------------------

type CredentialList struct {
	Data       []Credential `json:"data" validate:"required,dive"`
	NextCursor string       `json:"nextCursor,omitempty"`
}

func (l *CredentialList) Validate() error {
	return validateStruct("credential list", l)
}
