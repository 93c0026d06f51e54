package bridge

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/kiosk/internal/logging"
)

// MessageHandler handles a decoded wire message.
type MessageHandler interface {
	Handle(ctx context.Context, msg Message) error
}

// MessageHandlerFunc adapts a function to the MessageHandler interface.
type MessageHandlerFunc func(ctx context.Context, msg Message) error

// Handle calls f(ctx, msg).
func (f MessageHandlerFunc) Handle(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// Router dispatches inbound content-context messages to registered handlers.
// Non-conforming payloads are discarded without error surfacing: a hostile or
// buggy page must not be able to raise failures in the host.
type Router struct {
	baseCtx context.Context

	mu       sync.RWMutex
	handlers map[string]MessageHandler
}

// NewRouter creates a new message router.
func NewRouter(ctx context.Context) *Router {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Router{
		baseCtx:  ctx,
		handlers: make(map[string]MessageHandler),
	}
}

// SetBaseContext updates the base context used for logging and handler execution.
func (r *Router) SetBaseContext(ctx context.Context) {
	if r == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	r.baseCtx = ctx
}

// RegisterHandler registers a handler for a message type.
func (r *Router) RegisterHandler(msgType string, handler MessageHandler) error {
	if msgType == "" {
		return errors.New("message type cannot be empty")
	}
	if handler == nil {
		return errors.New("message handler cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[msgType] = handler
	return nil
}

// Receive is the single entry point for raw payloads arriving over the
// content-message channel. It decodes, validates against the closed schema,
// and routes. This call blocks until the handler's cycle has settled, so every
// accepted request terminates in a grant-store update before Receive returns.
func (r *Router) Receive(raw []byte) {
	ctx := logging.WithComponent(r.baseCtx, "bridge-router")
	log := logging.FromContext(ctx)

	msg, ok := Decode(raw)
	if !ok {
		log.Debug().Int("payload_len", len(raw)).Msg("discarding non-conforming content message")
		return
	}

	handler, ok := r.getHandler(msg.Type)
	if !ok {
		log.Debug().Str("type", msg.Type).Msg("no handler registered for message type")
		return
	}

	log.Debug().
		Str("type", msg.Type).
		Str("permission", msg.Permission).
		Msg("received content message")

	if err := handler.Handle(ctx, msg); err != nil {
		// Handler errors are diagnostics only; nothing propagates to the page.
		log.Warn().Err(err).Str("type", msg.Type).Msg("message handler returned error")
	}
}

func (r *Router) getHandler(msgType string) (MessageHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, ok := r.handlers[msgType]
	return handler, ok
}
