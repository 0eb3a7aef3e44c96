package workflows

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	wferrors "github.com/chazuruo/warpflow/internal/errors"
)

// UnmarshalWorkflow decodes a single workflow document from YAML bytes.
// Any decoding failure, including an empty document, a missing name or
// command, or an unknown shell, is reported as a parse error.
func UnmarshalWorkflow(data []byte) (*Workflow, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, wferrors.Parse(err)
	}
	if len(doc.Content) == 0 {
		return nil, wferrors.Parse(errors.New("empty document"))
	}

	var wf Workflow
	if err := doc.Content[0].Decode(&wf); err != nil {
		return nil, wferrors.Parse(err)
	}
	return &wf, nil
}

// MarshalWorkflow encodes a workflow as YAML.
func MarshalWorkflow(wf *Workflow) ([]byte, error) {
	data, err := yaml.Marshal(wf)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workflow: %w", err)
	}
	return data, nil
}

// LoadYAML reads and decodes a workflow from a YAML file.
//
// Read failures are returned as-is; decoding failures are parse errors.
func LoadYAML(path string) (*Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalWorkflow(data)
}
