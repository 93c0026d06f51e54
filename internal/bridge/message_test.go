package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kiosk/internal/bridge"
	"github.com/bnema/kiosk/internal/domain/entity"
)

func TestDecode_AcceptsWellFormedMessage(t *testing.T) {
	msg, ok := bridge.Decode([]byte(`{"type":"PERMISSION_REQUEST","permission":"camera"}`))
	require.True(t, ok)
	assert.Equal(t, bridge.TypePermissionRequest, msg.Type)
	assert.Equal(t, bridge.PermissionCamera, msg.Permission)
}

func TestDecode_RejectsNonConformingPayloads(t *testing.T) {
	cases := map[string]string{
		"not json":        `camera please`,
		"empty":           ``,
		"missing type":    `{"permission":"camera"}`,
		"type not string": `{"type":42,"permission":"camera"}`,
		"json array":      `[1,2,3]`,
	}
	for name, raw := range cases {
		_, ok := bridge.Decode([]byte(raw))
		assert.False(t, ok, "case %q must be discarded", name)
	}
}

func TestMessage_CapabilitiesFanOut(t *testing.T) {
	msg := bridge.Message{Type: bridge.TypePermissionRequest, Permission: bridge.PermissionAll}
	caps, ok := msg.Capabilities()
	require.True(t, ok)
	assert.ElementsMatch(t, []entity.Capability{entity.CapabilityCamera, entity.CapabilityMicrophone}, caps)
}

func TestMessage_CapabilitiesSingle(t *testing.T) {
	msg := bridge.Message{Type: bridge.TypePermissionRequest, Permission: bridge.PermissionMicrophone}
	caps, ok := msg.Capabilities()
	require.True(t, ok)
	assert.Equal(t, []entity.Capability{entity.CapabilityMicrophone}, caps)
}

func TestMessage_CapabilitiesUnrecognized(t *testing.T) {
	for _, permission := range []string{"", "geolocation", "CAMERA"} {
		msg := bridge.Message{Type: bridge.TypePermissionRequest, Permission: permission}
		_, ok := msg.Capabilities()
		assert.False(t, ok, "permission %q must be discarded", permission)
	}
}

func TestSchemaJSON_DescribesClosedSchema(t *testing.T) {
	data, err := bridge.SchemaJSON()
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, "PERMISSION_REQUEST")
	assert.Contains(t, schema, "camera")
	assert.Contains(t, schema, "microphone")
	assert.Contains(t, schema, "all")
}
