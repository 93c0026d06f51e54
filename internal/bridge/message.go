// Package bridge implements the message-passing boundary between the sandboxed
// content context and the host process. The wire format is a closed, versioned
// schema: anything outside it is ignored rather than leniently parsed.
package bridge

import (
	"encoding/json"

	"github.com/bnema/kiosk/internal/domain/entity"
)

// SchemaVersion identifies the wire-format revision. Bump on any change to the
// Message shape or its recognized values.
const SchemaVersion = 1

// TypePermissionRequest is the only message type the permission handler
// recognizes.
const TypePermissionRequest = "PERMISSION_REQUEST"

// Recognized values for the Message.Permission field.
const (
	PermissionCamera     = "camera"
	PermissionMicrophone = "microphone"
	PermissionAll        = "all"
)

// Message is the inbound wire envelope (content context -> host).
type Message struct {
	// Type discriminates the message. Only TypePermissionRequest is recognized.
	Type string `json:"type" jsonschema:"enum=PERMISSION_REQUEST"`

	// Permission names the requested capability, or "all" for both.
	Permission string `json:"permission,omitempty" jsonschema:"enum=camera,enum=microphone,enum=all"`
}

// Decode parses raw bytes into a Message. A false return means the payload is
// not valid structured data or carries no type; the caller discards it.
func Decode(raw []byte) (Message, bool) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return Message{}, false
	}
	if msg.Type == "" {
		return Message{}, false
	}
	return msg, true
}

// Capabilities maps the permission field onto capabilities, fanning "all" out
// to both. A false return means the field is missing or unrecognized and the
// message must be discarded.
func (m Message) Capabilities() ([]entity.Capability, bool) {
	switch m.Permission {
	case PermissionCamera:
		return []entity.Capability{entity.CapabilityCamera}, true
	case PermissionMicrophone:
		return []entity.Capability{entity.CapabilityMicrophone}, true
	case PermissionAll:
		return entity.AllCapabilities(), true
	default:
		return nil, false
	}
}
