package blueprint

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/compozy/n8n-go/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestLoad(t *testing.T) {
	t.Run("Should load a JSON blueprint", func(t *testing.T) {
		doc, err := Load("testdata/simple.json")
		require.NoError(t, err)
		assert.Equal(t, "My workflow", doc["name"])
		nodes, ok := doc["nodes"].([]any)
		require.True(t, ok)
		assert.Len(t, nodes, 2)
	})

	t.Run("Should load a YAML blueprint", func(t *testing.T) {
		doc, err := Load("testdata/simple.yaml")
		require.NoError(t, err)
		assert.Equal(t, "My workflow", doc["name"])
	})

	t.Run("Should fail with a typed error for a missing file", func(t *testing.T) {
		_, err := Load("testdata/nope.json")
		require.Error(t, err)
		var bperr *Error
		require.ErrorAs(t, err, &bperr)
		assert.Equal(t, "testdata/nope.json", bperr.Path)
	})

	t.Run("Should fail with a typed error for malformed JSON", func(t *testing.T) {
		path := t.TempDir() + "/broken.json"
		require.NoError(t, writeFile(path, `{"name": "oops"`))
		_, err := Load(path)
		require.Error(t, err)
		var bperr *Error
		require.ErrorAs(t, err, &bperr)
	})
}

func TestToWorkflow(t *testing.T) {
	t.Run("Should map the example blueprint", func(t *testing.T) {
		doc, err := Load("testdata/simple.json")
		require.NoError(t, err)

		workflow, err := ToWorkflow(doc)
		require.NoError(t, err)
		assert.Equal(t, "My workflow", workflow.Name)
		require.Len(t, workflow.Nodes, 2)
		assert.Equal(t, "n8n-nodes-base.manualTrigger", workflow.Nodes[0].Type)
		assert.Equal(t, "n8n-nodes-base.executeCommand", workflow.Nodes[1].Type)

		// Connections must match the document structurally.
		var want, got any
		require.NoError(t, remarshal(doc["connections"], &want))
		require.NoError(t, remarshal(workflow.Connections, &got))
		assert.Equal(t, want, got)
	})

	t.Run("Should default parameters and executionOrder", func(t *testing.T) {
		doc, err := Load("testdata/simple.json")
		require.NoError(t, err)

		workflow, err := ToWorkflow(doc)
		require.NoError(t, err)
		assert.NotNil(t, workflow.Nodes[0].Parameters)
		assert.Empty(t, workflow.Nodes[0].Parameters)
		assert.Equal(t, "echo hello", workflow.Nodes[1].Parameters["command"])
		require.NotNil(t, workflow.Settings)
		assert.Equal(t, "v1", workflow.Settings.ExecutionOrder)
		assert.NotNil(t, workflow.StaticData)
	})

	t.Run("Should carry an explicit executionOrder", func(t *testing.T) {
		workflow, err := ToWorkflow(map[string]any{
			"name":        "Ordered",
			"nodes":       []any{},
			"connections": map[string]any{},
			"settings":    map[string]any{"executionOrder": "v0"},
		})
		require.NoError(t, err)
		assert.Equal(t, "v0", workflow.Settings.ExecutionOrder)
	})

	t.Run("Should map YAML and JSON blueprints identically", func(t *testing.T) {
		fromJSON, err := Load("testdata/simple.json")
		require.NoError(t, err)
		fromYAML, err := Load("testdata/simple.yaml")
		require.NoError(t, err)

		wfJSON, err := ToWorkflow(fromJSON)
		require.NoError(t, err)
		wfYAML, err := ToWorkflow(fromYAML)
		require.NoError(t, err)
		assert.Equal(t, wfJSON.Nodes, wfYAML.Nodes)
		assert.Equal(t, wfJSON.Connections, wfYAML.Connections)
	})

	t.Run("Should fail when required fields are missing", func(t *testing.T) {
		for _, missing := range []string{"name", "nodes", "connections"} {
			doc := map[string]any{
				"name":        "Incomplete",
				"nodes":       []any{},
				"connections": map[string]any{},
			}
			delete(doc, missing)
			_, err := ToWorkflow(doc)
			require.Error(t, err, "expected failure without %q", missing)
			var bperr *Error
			require.ErrorAs(t, err, &bperr)
			assert.Contains(t, bperr.Msg, missing)
		}
	})
}

func TestDeploy(t *testing.T) {
	t.Run("Should create the mapped workflow remotely", func(t *testing.T) {
		var body map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.Method == http.MethodGet {
				fmt.Fprint(w, `{"data":[]}`)
				return
			}
			require.Equal(t, "/api/v1/workflows", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			fmt.Fprintf(w, `{"id":"deployed","name":%q,"nodes":[],"connections":{}}`, body["name"])
		}))
		defer server.Close()

		client, err := api.New(context.Background(), api.Config{BaseURL: server.URL})
		require.NoError(t, err)
		defer client.Close()

		workflow, err := Deploy(context.Background(), client, "testdata/simple.json", "Renamed Deploy")
		require.NoError(t, err)
		assert.Equal(t, "deployed", workflow.ID)
		assert.Equal(t, "Renamed Deploy", workflow.Name)
		assert.Equal(t, "Renamed Deploy", body["name"])
		nodes, ok := body["nodes"].([]any)
		require.True(t, ok)
		assert.Len(t, nodes, 2)
	})

	t.Run("Should keep the blueprint name when no override is given", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if r.Method == http.MethodGet {
				fmt.Fprint(w, `{"data":[]}`)
				return
			}
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			fmt.Fprintf(w, `{"id":"d2","name":%q,"nodes":[],"connections":{}}`, body["name"])
		}))
		defer server.Close()

		client, err := api.New(context.Background(), api.Config{BaseURL: server.URL})
		require.NoError(t, err)
		defer client.Close()

		workflow, err := Deploy(context.Background(), client, "testdata/simple.json", "")
		require.NoError(t, err)
		assert.Equal(t, "My workflow", workflow.Name)
	})
}
