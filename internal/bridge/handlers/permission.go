// Package handlers wires bridge message types to application use cases.
package handlers

import (
	"context"

	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/bridge"
	"github.com/bnema/kiosk/internal/logging"
)

// PermissionHandler routes PERMISSION_REQUEST messages to the mediation use case.
type PermissionHandler struct {
	mediate *usecase.MediateRequestUseCase
}

// NewPermissionHandler creates a new PermissionHandler.
func NewPermissionHandler(mediate *usecase.MediateRequestUseCase) *PermissionHandler {
	return &PermissionHandler{mediate: mediate}
}

// Handle dispatches one permission request. A missing or unrecognized
// permission field discards the message without error, matching the closed
// wire schema.
func (h *PermissionHandler) Handle() bridge.MessageHandler {
	return bridge.MessageHandlerFunc(func(ctx context.Context, msg bridge.Message) error {
		log := logging.FromContext(ctx)

		caps, ok := msg.Capabilities()
		if !ok {
			log.Debug().Str("permission", msg.Permission).Msg("discarding permission request with unrecognized permission")
			return nil
		}

		h.mediate.HandleRequest(ctx, caps)
		return nil
	})
}

// RegisterPermissionHandlers registers permission handlers with the router.
func RegisterPermissionHandlers(ctx context.Context, router *bridge.Router, mediate *usecase.MediateRequestUseCase) error {
	handler := NewPermissionHandler(mediate)

	if err := router.RegisterHandler(bridge.TypePermissionRequest, handler.Handle()); err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	log.Info().Msg("registered permission handlers")

	return nil
}
