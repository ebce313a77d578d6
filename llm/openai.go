// OpenAI-compatible gateway built on the go-openai library.
//
// Serves two backends: the hosted OpenAI API and any OpenAI-compatible
// server reached through a custom base URL (see ollama.go).

package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIGateway implements Gateway against the OpenAI chat completions API.
type OpenAIGateway struct {
	name        string
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewOpenAIGateway creates a gateway for the hosted OpenAI API.
func NewOpenAIGateway(apiKey, model string, maxTokens uint32, temperature float32) *OpenAIGateway {
	return &OpenAIGateway{
		name:        "openai",
		client:      openai.NewClient(apiKey),
		model:       model,
		maxTokens:   int(maxTokens),
		temperature: temperature,
	}
}

// Name returns the backend name.
func (g *OpenAIGateway) Name() string {
	return g.name
}

// Model returns the model identifier in use.
func (g *OpenAIGateway) Model() string {
	return g.model
}

// Send submits the history with the given tool catalog.
func (g *OpenAIGateway) Send(ctx context.Context, history []Message, tools []ToolDefinition) (Completion, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    toOpenAIMessages(history),
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}
	if len(tools) > 0 {
		req.Tools = toOpenAITools(tools)
	}
	return g.complete(ctx, req)
}

// SendWithFormat submits the history with a response format constraint.
func (g *OpenAIGateway) SendWithFormat(ctx context.Context, history []Message, format *ResponseFormat) (Completion, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    toOpenAIMessages(history),
		MaxTokens:   g.maxTokens,
		Temperature: g.temperature,
	}
	if format != nil {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatType(format.Type),
		}
	}
	return g.complete(ctx, req)
}

func (g *OpenAIGateway) complete(ctx context.Context, req openai.ChatCompletionRequest) (Completion, error) {
	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return Completion{}, fmt.Errorf("%s completion failed: %w", g.name, err)
	}

	completion := Completion{
		Usage: &TokenUsage{
			PromptTokens:     uint32(resp.Usage.PromptTokens),
			CompletionTokens: uint32(resp.Usage.CompletionTokens),
			TotalTokens:      uint32(resp.Usage.TotalTokens),
		},
	}
	if len(resp.Choices) > 0 {
		choice := resp.Choices[0].Message
		completion.Text = choice.Content
		for _, tc := range choice.ToolCalls {
			completion.ToolCalls = append(completion.ToolCalls, ToolCall{
				ID:        tc.ID,
				Name:      tc.Function.Name,
				Arguments: []byte(tc.Function.Arguments),
			})
		}
	}
	return completion, nil
}

// toOpenAIMessages converts our history, including assistant tool calls and
// tool-result replies, to the go-openai message format.
func toOpenAIMessages(history []Message) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, len(history))
	for i, msg := range history {
		oaiMsg := openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
		for _, tc := range msg.ToolCalls {
			oaiMsg.ToolCalls = append(oaiMsg.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: string(tc.Arguments),
				},
			})
		}
		if msg.ToolCallID != "" {
			oaiMsg.ToolCallID = msg.ToolCallID
		}
		result[i] = oaiMsg
	}
	return result
}

// toOpenAITools converts tool definitions to OpenAI function declarations.
func toOpenAITools(tools []ToolDefinition) []openai.Tool {
	result := make([]openai.Tool, len(tools))
	for i, t := range tools {
		result[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		}
	}
	return result
}

// Verify OpenAIGateway implements Gateway
var _ Gateway = (*OpenAIGateway)(nil)
