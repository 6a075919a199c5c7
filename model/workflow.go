package model

import (
	"github.com/google/uuid"
)

// -----------------------------------------------------------------------------
// Node
// -----------------------------------------------------------------------------

// Node is one configured step inside a workflow graph. IDs are caller-assigned
// (n8n does not mint node IDs), everything else follows the n8n wire format.
type Node struct {
	ID               string         `json:"id"                         validate:"required"`
	Name             string         `json:"name"                       validate:"required"`
	Type             string         `json:"type"                       validate:"required"`
	TypeVersion      float64        `json:"typeVersion"                validate:"required"`
	Position         []float64      `json:"position"                   validate:"required"`
	Parameters       map[string]any `json:"parameters"`
	WebhookID        string         `json:"webhookId,omitempty"`
	Disabled         bool           `json:"disabled"`
	NotesInFlow      bool           `json:"notesInFlow"`
	Notes            string         `json:"notes,omitempty"`
	ExecuteOnce      bool           `json:"executeOnce"`
	AlwaysOutputData bool           `json:"alwaysOutputData"`
	RetryOnFail      bool           `json:"retryOnFail"`
	MaxTries         *int           `json:"maxTries,omitempty"`
	WaitBetweenTries *int           `json:"waitBetweenTries,omitempty"`
	ContinueOnFail   bool           `json:"continueOnFail"`
	OnError          string         `json:"onError,omitempty"`
	Credentials      map[string]any `json:"credentials,omitempty"`
	CreatedAt        string         `json:"createdAt,omitempty"`
	UpdatedAt        string         `json:"updatedAt,omitempty"`
}

// NewNode builds a node with a fresh ID and an empty parameter map, ready to
// be placed into a locally constructed workflow.
func NewNode(name, nodeType string, typeVersion float64, position []float64) *Node {
	return &Node{
		ID:          uuid.New().String(),
		Name:        name,
		Type:        nodeType,
		TypeVersion: typeVersion,
		Position:    position,
		Parameters:  map[string]any{},
	}
}

func (n *Node) Validate() error {
	return validateStruct("node", n)
}

// -----------------------------------------------------------------------------
// Connection
// -----------------------------------------------------------------------------

// Connection is one edge endpoint inside a workflow's connection graph: the
// target node name, the port type and the input index on that port.
type Connection struct {
	Node  string `json:"node"  validate:"required"`
	Type  string `json:"type"  validate:"required"`
	Index int    `json:"index"`
}

// Connections maps source node name -> output type -> output slot -> targets.
type Connections map[string]map[string][][]Connection

// -----------------------------------------------------------------------------
// WorkflowSettings
// -----------------------------------------------------------------------------

type WorkflowSettings struct {
	SaveExecutionProgress    bool   `json:"saveExecutionProgress"`
	SaveManualExecutions     bool   `json:"saveManualExecutions"`
	SaveDataErrorExecution   string `json:"saveDataErrorExecution"`
	SaveDataSuccessExecution string `json:"saveDataSuccessExecution"`
	ExecutionTimeout         *int   `json:"executionTimeout,omitempty"`
	ErrorWorkflow            string `json:"errorWorkflow,omitempty"`
	Timezone                 string `json:"timezone,omitempty"`
	ExecutionOrder           string `json:"executionOrder"`
}

// DefaultSettings returns the settings n8n applies to a new workflow.
func DefaultSettings() *WorkflowSettings {
	return &WorkflowSettings{
		SaveExecutionProgress:    true,
		SaveManualExecutions:     true,
		SaveDataErrorExecution:   "all",
		SaveDataSuccessExecution: "all",
		ExecutionOrder:           "v1",
	}
}

// -----------------------------------------------------------------------------
// Workflow
// -----------------------------------------------------------------------------

// Workflow is a directed graph of nodes and connections owned by the remote
// instance. The ID is server-assigned and must be empty on create requests;
// whether every connection target references an existing node is validated
// server-side, not here.
type Workflow struct {
	ID          string            `json:"id,omitempty"`
	Name        string            `json:"name"  validate:"required"`
	Nodes       []Node            `json:"nodes" validate:"required,dive"`
	Connections Connections       `json:"connections" validate:"required"`
	Settings    *WorkflowSettings `json:"settings,omitempty"`
	StaticData  map[string]any    `json:"staticData,omitempty"`
	CreatedAt   string            `json:"createdAt,omitempty"`
	UpdatedAt   string            `json:"updatedAt,omitempty"`
}

func (w *Workflow) Validate() error {
	return validateStruct("workflow", w)
}

// workflowPayload is the submit view of a workflow: identity and server-managed
// fields stripped, unset optionals omitted so server defaults apply.
type workflowPayload struct {
	Name        string            `json:"name"`
	Nodes       []Node            `json:"nodes"`
	Connections Connections       `json:"connections"`
	Settings    *WorkflowSettings `json:"settings"`
	StaticData  map[string]any    `json:"staticData,omitempty"`
}

// SubmitPayload returns the body shape accepted by create and update
// endpoints. Nodes, connections and settings are always present because the
// API rejects requests without them.
func (w *Workflow) SubmitPayload() any {
	nodes := w.Nodes
	if nodes == nil {
		nodes = []Node{}
	}
	connections := w.Connections
	if connections == nil {
		connections = Connections{}
	}
	settings := w.Settings
	if settings == nil {
		settings = DefaultSettings()
	}
	return &workflowPayload{
		Name:        w.Name,
		Nodes:       nodes,
		Connections: connections,
		Settings:    settings,
		StaticData:  w.StaticData,
	}
}

// -----------------------------------------------------------------------------
// WorkflowList
// -----------------------------------------------------------------------------

// WorkflowList is one page of workflows. An empty NextCursor means the listing
// is exhausted; otherwise feed it back into the next list call.
type WorkflowList struct {
	Data       []Workflow `json:"data" validate:"required,dive"`
	NextCursor string     `json:"nextCursor,omitempty"`
}

func (l *WorkflowList) Validate() error {
	return validateStruct("workflow list", l)
}
