package ports

import "context"

const (
	defaultConfirmText = "Confirm"
	defaultCancelText  = "Cancel"
)

// Prompt parameterizes a yes/no confirmation shown before a destructive
// operation.
type Prompt struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ConfirmText string `json:"confirmText,omitempty"`
	CancelText  string `json:"cancelText,omitempty"`
}

// WithDefaults fills empty button labels with "Confirm" and "Cancel".
func (p Prompt) WithDefaults() Prompt {
	if p.ConfirmText == "" {
		p.ConfirmText = defaultConfirmText
	}
	if p.CancelText == "" {
		p.CancelText = defaultCancelText
	}
	return p
}

// ConfirmationGate resolves a prompt to a single boolean answer. A
// dismissal without an explicit confirm action resolves to false.
type ConfirmationGate interface {
	Confirm(ctx context.Context, prompt Prompt) (bool, error)
}
