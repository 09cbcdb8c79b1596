package handler

import (
	"context"

	"github.com/adminhub/user-management/internal/core/ports"
)

// requestGate implements ports.ConfirmationGate for the stateless HTTP
// rendition of the confirmation dialog: the answer travels with the
// request (confirm=true), and when it is missing the gate captures the
// prompt so the handler can send it back for the client to render.
type requestGate struct {
	confirmed bool
	prompt    ports.Prompt
	answered  bool
}

func newRequestGate(confirmed bool) *requestGate {
	return &requestGate{confirmed: confirmed}
}

// Confirm resolves immediately with the request's answer. Button labels
// get their Confirm/Cancel defaults here so the echoed prompt is complete.
func (g *requestGate) Confirm(_ context.Context, prompt ports.Prompt) (bool, error) {
	g.prompt = prompt.WithDefaults()
	g.answered = true
	return g.confirmed, nil
}

// Prompt returns the prompt captured by the last Confirm call.
func (g *requestGate) Prompt() ports.Prompt {
	return g.prompt
}
