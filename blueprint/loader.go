package blueprint

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Load reads a blueprint document from disk and parses it into a generic
// structure. JSON is the canonical format; .yaml/.yml files are accepted too.
func Load(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Msg: "failed to read file", Err: err}
	}

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, &Error{Path: path, Msg: "invalid YAML", Err: err}
		}
	default:
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, &Error{Path: path, Msg: "invalid JSON", Err: err}
		}
	}
	return doc, nil
}
