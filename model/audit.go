package model

// -----------------------------------------------------------------------------
// AuditOptions
// -----------------------------------------------------------------------------

// AuditOptions tunes audit generation. AdditionalOptions is passed through to
// the server unmodified (e.g. daysAbandonedWorkflow, categories).
type AuditOptions struct {
	AdditionalOptions map[string]any `json:"additionalOptions,omitempty"`
}

// -----------------------------------------------------------------------------
// Audit
// -----------------------------------------------------------------------------

// Audit is a security audit report. Every section is free-form and optional;
// the server omits sections that were not requested or produced no findings.
type Audit struct {
	Credentials map[string]any `json:"credentials,omitempty"`
	Database    map[string]any `json:"database,omitempty"`
	Filesystem  map[string]any `json:"filesystem,omitempty"`
	Nodes       map[string]any `json:"nodes,omitempty"`
	Instance    map[string]any `json:"instance,omitempty"`
}
