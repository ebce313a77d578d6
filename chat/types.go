// Request and response shapes for conversational turns.

package chat

import "encoding/json"

// Request is one user turn in a conversation. An empty ConversationID starts
// a new conversation; Context carries optional traveler details (budget,
// dates, party size) that are annotated into the message for the model.
type Request struct {
	ConversationID string          `json:"conversationId"`
	Message        string          `json:"message"`
	Context        json.RawMessage `json:"context,omitempty"`
}

// Result is the completed turn: the assistant's reply plus the structured
// data gathered by tools along the way, keyed by category (hotels,
// attractions, restaurants, transport, localTransport).
type Result struct {
	ConversationID string         `json:"conversationId"`
	Text           string         `json:"text"`
	ToolCallsMade  int            `json:"toolCallsMade"`
	Data           map[string]any `json:"data,omitempty"`
}
