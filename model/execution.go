package model

// -----------------------------------------------------------------------------
// Execution
// -----------------------------------------------------------------------------

// Execution is one run record of a workflow. Executions are created by the
// remote instance only; this client merely observes them. Unlike every other
// resource, execution IDs are numeric on the wire.
type Execution struct {
	ID             int            `json:"id"         validate:"required"`
	Data           map[string]any `json:"data,omitempty"`
	Finished       bool           `json:"finished"`
	Mode           string         `json:"mode"       validate:"required"`
	RetryOf        *int           `json:"retryOf,omitempty"`
	RetrySuccessID *int           `json:"retrySuccessId,omitempty"`
	StartedAt      string         `json:"startedAt,omitempty"`
	StoppedAt      string         `json:"stoppedAt,omitempty"`
	WaitTill       string         `json:"waitTill,omitempty"`
	WorkflowID     int            `json:"workflowId" validate:"required"`
	CustomData     map[string]any `json:"customData,omitempty"`
}

func (e *Execution) Validate() error {
	return validateStruct("execution", e)
}

// -----------------------------------------------------------------------------
// ExecutionList
// -----------------------------------------------------------------------------

type ExecutionList struct {
	Data       []Execution `json:"data" validate:"required,dive"`
	NextCursor string      `json:"nextCursor,omitempty"`
}

func (l *ExecutionList) Validate() error {
	return validateStruct("execution list", l)
}
