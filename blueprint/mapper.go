package blueprint

import (
	"encoding/json"

	"github.com/compozy/n8n-go/model"
)

// ToWorkflow maps a parsed blueprint document into a typed workflow ready
// for submission. The document must carry name, nodes and connections;
// settings contribute only executionOrder (default "v1"), staticData is
// copied verbatim and defaults to empty.
func ToWorkflow(bp map[string]any) (*model.Workflow, error) {
	name, ok := bp["name"].(string)
	if !ok || name == "" {
		return nil, &Error{Msg: `missing required field "name"`}
	}
	rawNodes, ok := bp["nodes"]
	if !ok {
		return nil, &Error{Msg: `missing required field "nodes"`}
	}
	rawConnections, ok := bp["connections"]
	if !ok {
		return nil, &Error{Msg: `missing required field "connections"`}
	}

	nodes, err := mapNodes(rawNodes)
	if err != nil {
		return nil, err
	}
	connections, err := mapConnections(rawConnections)
	if err != nil {
		return nil, err
	}

	settings := model.DefaultSettings()
	if s, ok := bp["settings"].(map[string]any); ok {
		if order, ok := s["executionOrder"].(string); ok && order != "" {
			settings.ExecutionOrder = order
		}
	}

	staticData := map[string]any{}
	if sd, ok := bp["staticData"].(map[string]any); ok {
		staticData = sd
	}

	workflow := &model.Workflow{
		Name:        name,
		Nodes:       nodes,
		Connections: connections,
		Settings:    settings,
		StaticData:  staticData,
	}
	if err := workflow.Validate(); err != nil {
		return nil, &Error{Msg: "document does not form a valid workflow", Err: err}
	}
	return workflow, nil
}

func mapNodes(raw any) ([]model.Node, error) {
	var nodes []model.Node
	if err := remarshal(raw, &nodes); err != nil {
		return nil, &Error{Msg: `field "nodes" has the wrong shape`, Err: err}
	}
	for i := range nodes {
		if nodes[i].Parameters == nil {
			nodes[i].Parameters = map[string]any{}
		}
	}
	return nodes, nil
}

func mapConnections(raw any) (model.Connections, error) {
	var connections model.Connections
	if err := remarshal(raw, &connections); err != nil {
		return nil, &Error{Msg: `field "connections" has the wrong shape`, Err: err}
	}
	if connections == nil {
		connections = model.Connections{}
	}
	return connections, nil
}

// remarshal converts a loosely parsed value into its typed counterpart by
// round-tripping through JSON.
func remarshal(raw, out any) error {
	buf, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, out)
}
