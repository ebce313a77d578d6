// Package llm provides the model gateway abstraction and shared message types.
package llm

import "encoding/json"

// Message roles. Ordering of roles in a history is significant: backends
// require a 1:1 correspondence between a tool call and its tool-result reply.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents one turn of a conversation.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // assistant messages requesting tools
	ToolCallID string     `json:"tool_call_id,omitempty"` // tool-result messages
}

// ToolCall is a request from the model to invoke a named tool.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolDefinition describes a tool to the model: name, description, and a
// JSON-schema parameters object. Advertised verbatim on every Send.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// SystemMessage creates a system message.
func SystemMessage(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// UserMessage creates a user message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage creates an assistant message.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// ToolResultMessage creates a tool-result message answering the given call.
func ToolResultMessage(callID, content string) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: callID}
}

// Completion is a single gateway response: either text, or one or more tool
// call requests. When both are present, tool calls take priority.
type Completion struct {
	Text      string
	ToolCalls []ToolCall
	Usage     *TokenUsage
}

// HasToolCalls reports whether the model requested any tool invocations.
func (c Completion) HasToolCalls() bool {
	return len(c.ToolCalls) > 0
}

// TokenUsage contains token usage statistics for one completion.
type TokenUsage struct {
	PromptTokens     uint32
	CompletionTokens uint32
	TotalTokens      uint32
}

// ResponseFormatType defines how the model should format its reply.
type ResponseFormatType string

const (
	ResponseFormatText       ResponseFormatType = "text"
	ResponseFormatJSONObject ResponseFormatType = "json_object"
)

// ResponseFormat constrains the shape of a completion (used for itinerary
// export, where the reply must be a single JSON object).
type ResponseFormat struct {
	Type ResponseFormatType `json:"type"`
}

// JSONObjectFormat returns a JSON-object response format.
func JSONObjectFormat() *ResponseFormat {
	return &ResponseFormat{Type: ResponseFormatJSONObject}
}
