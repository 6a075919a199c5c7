package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkflowValidate(t *testing.T) {
	t.Run("Should accept a minimal workflow", func(t *testing.T) {
		workflow := &Workflow{
			Name:        "Test Workflow",
			Nodes:       []Node{},
			Connections: Connections{},
		}
		require.NoError(t, workflow.Validate())
	})

	t.Run("Should reject a workflow without a name", func(t *testing.T) {
		workflow := &Workflow{Nodes: []Node{}, Connections: Connections{}}
		err := workflow.Validate()
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "workflow", verr.Entity)
		require.Len(t, verr.Fields, 1)
		assert.Contains(t, verr.Fields[0], "name")
	})

	t.Run("Should reject a workflow missing its graph", func(t *testing.T) {
		var workflow Workflow
		require.NoError(t, json.Unmarshal([]byte(`{"id":"w1","name":"No graph"}`), &workflow))
		err := workflow.Validate()
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 2)
		assert.Contains(t, verr.Fields[0], "nodes")
		assert.Contains(t, verr.Fields[1], "connections")
	})

	t.Run("Should report nested node field paths with wire names", func(t *testing.T) {
		workflow := &Workflow{
			Name: "Broken",
			Nodes: []Node{
				{ID: "1", Name: "Webhook", Position: []float64{0, 0}, TypeVersion: 1},
			},
			Connections: Connections{},
		}
		err := workflow.Validate()
		require.Error(t, err)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Contains(t, verr.Fields[0], "nodes[0].type")
	})

	t.Run("Should accept fractional type versions", func(t *testing.T) {
		node := &Node{
			ID:          "1",
			Name:        "Switch",
			Type:        "n8n-nodes-base.switch",
			TypeVersion: 3.2,
			Position:    []float64{100, 200},
		}
		require.NoError(t, node.Validate())
	})
}

func TestWorkflowSubmitPayload(t *testing.T) {
	t.Run("Should strip identity and timestamps", func(t *testing.T) {
		workflow := &Workflow{
			ID:          "abc123",
			Name:        "Test Workflow",
			Nodes:       []Node{},
			Connections: Connections{},
			CreatedAt:   "2024-01-01T00:00:00.000Z",
			UpdatedAt:   "2024-01-02T00:00:00.000Z",
		}
		raw, err := json.Marshal(workflow.SubmitPayload())
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.NotContains(t, body, "id")
		assert.NotContains(t, body, "createdAt")
		assert.NotContains(t, body, "updatedAt")
		assert.Equal(t, "Test Workflow", body["name"])
	})

	t.Run("Should fill default settings when unset", func(t *testing.T) {
		workflow := &Workflow{Name: "Defaults", Nodes: []Node{}, Connections: Connections{}}
		raw, err := json.Marshal(workflow.SubmitPayload())
		require.NoError(t, err)

		var body map[string]any
		require.NoError(t, json.Unmarshal(raw, &body))
		settings, ok := body["settings"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "v1", settings["executionOrder"])
		assert.Equal(t, true, settings["saveExecutionProgress"])
		assert.Equal(t, "all", settings["saveDataErrorExecution"])
	})

	t.Run("Should round-trip through a server echo", func(t *testing.T) {
		workflow := &Workflow{
			Name: "Echo",
			Nodes: []Node{{
				ID:          "1",
				Name:        "Manual Trigger",
				Type:        "n8n-nodes-base.manualTrigger",
				TypeVersion: 1,
				Position:    []float64{0, 0},
				Parameters:  map[string]any{},
			}},
			Connections: Connections{
				"Manual Trigger": {"main": {{{Node: "Next", Type: "main", Index: 0}}}},
			},
			Settings: DefaultSettings(),
		}

		raw, err := json.Marshal(workflow.SubmitPayload())
		require.NoError(t, err)

		var echoed Workflow
		require.NoError(t, json.Unmarshal(raw, &echoed))
		assert.Equal(t, workflow.Name, echoed.Name)
		assert.Equal(t, workflow.Nodes, echoed.Nodes)
		assert.Equal(t, workflow.Connections, echoed.Connections)
		assert.Equal(t, workflow.Settings, echoed.Settings)
	})

	t.Run("Should ignore unknown fields from server responses", func(t *testing.T) {
		raw := []byte(`{"name":"Future","nodes":[],"connections":{},"shared":[{"role":"owner"}],"versionId":"deadbeef"}`)
		var workflow Workflow
		require.NoError(t, json.Unmarshal(raw, &workflow))
		assert.Equal(t, "Future", workflow.Name)
		require.NoError(t, workflow.Validate())
	})
}

func TestNewNode(t *testing.T) {
	t.Run("Should assign an ID and an empty parameter map", func(t *testing.T) {
		node := NewNode("Webhook", "n8n-nodes-base.webhook", 1, []float64{250, 300})
		assert.NotEmpty(t, node.ID)
		assert.NotNil(t, node.Parameters)
		require.NoError(t, node.Validate())
	})
}
