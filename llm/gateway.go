// Model gateway interface - the abstract contract for language model backends.
//
// Each backend implementation hides:
// - API client initialization and authentication
// - Request/response format conversion
// - Provider-specific tool call encoding

package llm

import "context"

// Gateway is the consumed interface for a language model backend. Given a
// full ordered history and the current tool catalog, it returns a completion
// that carries either text or tool call requests. Implementations must honor
// context cancellation and deadlines on Send.
type Gateway interface {
	// Name returns the backend name (for logging).
	Name() string

	// Model returns the model identifier in use.
	Model() string

	// Send submits the history with the given tool catalog. A nil or empty
	// tools slice sends a plain completion request.
	Send(ctx context.Context, history []Message, tools []ToolDefinition) (Completion, error)

	// SendWithFormat submits the history with a response format constraint
	// and no tools. Used for structured (JSON) outputs.
	SendWithFormat(ctx context.Context, history []Message, format *ResponseFormat) (Completion, error)
}
