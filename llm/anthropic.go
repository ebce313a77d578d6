// Anthropic gateway built on the official anthropic-sdk-go.
//
// Hides the Messages API request shape: the system message travels outside
// the message list, tool results are user-role content blocks.

package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicGateway implements Gateway for Anthropic Claude models.
type AnthropicGateway struct {
	client      anthropic.Client
	model       string
	maxTokens   int64
	temperature float64
}

// NewAnthropicGateway creates a new Anthropic gateway.
func NewAnthropicGateway(apiKey, model string, maxTokens uint32, temperature float32) *AnthropicGateway {
	return &AnthropicGateway{
		client:      anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:       model,
		maxTokens:   int64(maxTokens),
		temperature: float64(temperature),
	}
}

// Name returns the backend name.
func (g *AnthropicGateway) Name() string {
	return "anthropic"
}

// Model returns the model identifier in use.
func (g *AnthropicGateway) Model() string {
	return g.model
}

// Send submits the history with the given tool catalog.
func (g *AnthropicGateway) Send(ctx context.Context, history []Message, tools []ToolDefinition) (Completion, error) {
	messages, systemPrompt := toAnthropicMessages(history)

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(g.model),
		MaxTokens:   g.maxTokens,
		Messages:    messages,
		Temperature: anthropic.Float(g.temperature),
	}
	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}
	if len(tools) > 0 {
		params.Tools = toAnthropicTools(tools)
	}

	message, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return Completion{}, fmt.Errorf("anthropic completion failed: %w", err)
	}

	var completion Completion
	for _, block := range message.Content {
		switch variant := block.AsAny().(type) {
		case anthropic.TextBlock:
			completion.Text += variant.Text
		case anthropic.ToolUseBlock:
			inputJSON, _ := json.Marshal(variant.Input)
			completion.ToolCalls = append(completion.ToolCalls, ToolCall{
				ID:        variant.ID,
				Name:      variant.Name,
				Arguments: inputJSON,
			})
		}
	}

	if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
		completion.Usage = &TokenUsage{
			PromptTokens:     uint32(message.Usage.InputTokens),
			CompletionTokens: uint32(message.Usage.OutputTokens),
			TotalTokens:      uint32(message.Usage.InputTokens + message.Usage.OutputTokens),
		}
	}

	return completion, nil
}

// SendWithFormat submits the history expecting a structured reply. The
// Messages API has no response_format parameter, so the constraint is left to
// the prompt and the reply is returned as-is.
func (g *AnthropicGateway) SendWithFormat(ctx context.Context, history []Message, _ *ResponseFormat) (Completion, error) {
	return g.Send(ctx, history, nil)
}

// toAnthropicMessages converts our history to Anthropic's format, extracting
// the system message for separate delivery.
func toAnthropicMessages(history []Message) ([]anthropic.MessageParam, string) {
	var messages []anthropic.MessageParam
	var systemPrompt string

	for _, msg := range history {
		switch msg.Role {
		case RoleSystem:
			systemPrompt = msg.Content
		case RoleUser:
			messages = append(messages, anthropic.NewUserMessage(
				anthropic.NewTextBlock(msg.Content),
			))
		case RoleAssistant:
			if len(msg.ToolCalls) == 0 {
				messages = append(messages, anthropic.NewAssistantMessage(
					anthropic.NewTextBlock(msg.Content),
				))
				continue
			}
			param := anthropic.MessageParam{Role: anthropic.MessageParamRoleAssistant}
			if msg.Content != "" {
				param.Content = append(param.Content, anthropic.NewTextBlock(msg.Content))
			}
			for _, tc := range msg.ToolCalls {
				var input map[string]any
				_ = json.Unmarshal(tc.Arguments, &input)
				param.Content = append(param.Content, anthropic.ContentBlockParamUnion{
					OfToolUse: &anthropic.ToolUseBlockParam{
						ID:    tc.ID,
						Name:  tc.Name,
						Input: input,
					},
				})
			}
			messages = append(messages, param)
		case RoleTool:
			messages = append(messages, anthropic.NewUserMessage(
				anthropic.NewToolResultBlock(msg.ToolCallID, msg.Content, false),
			))
		}
	}

	return messages, systemPrompt
}

// toAnthropicTools converts tool definitions to Anthropic's input schema form.
func toAnthropicTools(tools []ToolDefinition) []anthropic.ToolUnionParam {
	result := make([]anthropic.ToolUnionParam, len(tools))
	for i, t := range tools {
		properties, _ := t.Parameters["properties"].(map[string]any)

		// Declarations built in-process carry []string; ones decoded from
		// JSON carry []any.
		var required []string
		switch req := t.Parameters["required"].(type) {
		case []string:
			required = req
		case []any:
			for _, r := range req {
				if s, ok := r.(string); ok {
					required = append(required, s)
				}
			}
		}

		toolParam := anthropic.ToolParam{
			Name:        t.Name,
			Description: anthropic.String(t.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: properties,
				Required:   required,
			},
		}
		result[i] = anthropic.ToolUnionParam{OfTool: &toolParam}
	}
	return result
}

// Verify AnthropicGateway implements Gateway
var _ Gateway = (*AnthropicGateway)(nil)
