package forge

import (
	"encoding/json"
	"os"
)

// LoadContext reads and decodes a context file. The spec fixes the format
// to a single top-level JSON object (§6); anything else is a
// ContextFormatError.
func LoadContext(path string) (Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &InputIOError{Path: path, Err: err}
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ContextFormatError{Path: path, Err: err}
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &ContextFormatError{Path: path}
	}
	return Context(obj), nil
}
