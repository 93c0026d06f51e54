package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema describing the wire format, for tooling and
// for content authors targeting the bridge.
func Schema() (*jsonschema.Schema, error) {
	reflector := &jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := reflector.Reflect(&Message{})
	if schema == nil {
		return nil, fmt.Errorf("failed to reflect bridge message schema")
	}
	schema.Title = "Kiosk bridge message"
	schema.Description = fmt.Sprintf("Content-to-host bridge wire format, revision %d.", SchemaVersion)
	return schema, nil
}

// SchemaJSON renders the wire-format schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	schema, err := Schema()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal bridge schema: %w", err)
	}
	return data, nil
}
