package jsonstore

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// PaneEntry is one pane in a workspace document.
type PaneEntry struct {
	URL string `json:"url" jsonschema:"description=Address loaded into the pane,example=https://github.com/"`
}

// WorkspaceDocument is the documented shape of a workspace. Unknown keys
// are allowed and preserved.
type WorkspaceDocument struct {
	Main1 *PaneEntry `json:"main1,omitempty" jsonschema:"description=Top-left pane"`
	Main2 *PaneEntry `json:"main2,omitempty" jsonschema:"description=Top-right pane"`
	Main3 *PaneEntry `json:"main3,omitempty" jsonschema:"description=Bottom-left pane"`
	Main4 *PaneEntry `json:"main4,omitempty" jsonschema:"description=Bottom-right pane"`
}

// Schema returns the JSON schema of the workspace file.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference:            true,
		AllowAdditionalProperties: true,
	}
	doc := r.Reflect(&WorkspaceDocument{})
	doc.Version = ""
	doc.ID = ""

	return &jsonschema.Schema{
		Version:              jsonschema.Version,
		ID:                   "https://github.com/bnema/quadspace/workspaces.schema.json",
		Title:                "quadspace workspaces",
		Description:          "Named workspaces mapping pane labels to URLs",
		Type:                 "object",
		AdditionalProperties: doc,
	}
}

// SchemaJSON renders Schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
