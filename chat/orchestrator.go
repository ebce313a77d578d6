// Package chat implements the conversation orchestrator: the send/execute/
// resubmit loop that turns a user message, a model gateway, and a tool
// registry into a completed assistant turn.
//
// Information Hiding:
// - Tool round loop internals hidden
// - Per-conversation locking hidden
// - History commit strategy hidden
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc/iter"

	"github.com/safar-ai/safar/llm"
	"github.com/safar-ai/safar/storage"
	"github.com/safar-ai/safar/tools"
)

// DefaultMaxToolRounds bounds how many times a single turn may go back to
// the model with tool results before the loop is cut off.
const DefaultMaxToolRounds = 5

// ErrEmptyMessage is returned for a request with no message text.
var ErrEmptyMessage = errors.New("message is empty")

// ErrGateway wraps model gateway failures. The turn is aborted but the
// conversation history stays valid for a retry.
var ErrGateway = errors.New("model gateway error")

// ErrGatewayTimeout marks gateway failures caused by the configured
// per-call deadline.
var ErrGatewayTimeout = fmt.Errorf("%w: timeout", ErrGateway)

// Orchestrator drives conversations: it loads history, sends it to the
// model gateway with the registry's tool declarations, executes requested
// tools concurrently, feeds results back, and persists the final history.
//
// Turns on the same conversation are mutually exclusive; turns on different
// conversations proceed in parallel.
type Orchestrator struct {
	gateway  llm.Gateway
	registry *tools.Registry
	cache    *tools.Cache
	store    storage.ConversationStore
	logger   zerolog.Logger

	maxToolRounds  int
	gatewayTimeout time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Options tunes orchestrator behavior. Zero values pick defaults.
type Options struct {
	// MaxToolRounds caps tool execution rounds per turn. Zero means
	// DefaultMaxToolRounds.
	MaxToolRounds int

	// GatewayTimeout bounds each individual gateway call. Zero means no
	// per-call deadline beyond the caller's context.
	GatewayTimeout time.Duration

	// Cache, when set, memoizes successful tool results across turns and
	// conversations.
	Cache *tools.Cache

	// Logger receives turn-level events. The zero value is a nop logger.
	Logger zerolog.Logger
}

// NewOrchestrator creates an orchestrator over the given gateway, tool
// registry, and conversation store.
func NewOrchestrator(gateway llm.Gateway, registry *tools.Registry, store storage.ConversationStore, opts Options) *Orchestrator {
	rounds := opts.MaxToolRounds
	if rounds <= 0 {
		rounds = DefaultMaxToolRounds
	}
	return &Orchestrator{
		gateway:        gateway,
		registry:       registry,
		cache:          opts.Cache,
		store:          store,
		logger:         opts.Logger,
		maxToolRounds:  rounds,
		gatewayTimeout: opts.GatewayTimeout,
		locks:          make(map[string]*sync.Mutex),
	}
}

// conversationLock returns the mutex guarding a conversation, creating it on
// first use. Locks are never reclaimed; conversation cardinality is bounded
// by the store's retention policy.
func (o *Orchestrator) conversationLock(conversationID string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()

	lock, ok := o.locks[conversationID]
	if !ok {
		lock = &sync.Mutex{}
		o.locks[conversationID] = lock
	}
	return lock
}

// SendMessage runs one full conversational turn and returns the assistant's
// reply with any structured tool data gathered along the way.
//
// The user message is persisted before the first gateway call: a gateway
// failure aborts the turn with ErrGateway but leaves the conversation
// resumable. Tool failures never abort a turn; they are reported back to the
// model as error results.
func (o *Orchestrator) SendMessage(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Message) == "" {
		return Result{}, ErrEmptyMessage
	}

	conversationID := req.ConversationID
	if conversationID == "" {
		conversationID = uuid.New().String()
	}

	lock := o.conversationLock(conversationID)
	lock.Lock()
	defer lock.Unlock()

	history, err := o.store.Load(ctx, conversationID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load conversation: %w", err)
	}
	if len(history) == 0 {
		history = append(history, llm.SystemMessage(systemPrompt))
	}
	history = append(history, llm.UserMessage(annotateMessage(req.Message, req.Context)))

	// Commit the user message up front so a gateway failure still leaves a
	// retryable history.
	if err := o.store.Save(ctx, conversationID, history); err != nil {
		return Result{}, fmt.Errorf("failed to persist conversation: %w", err)
	}

	logger := o.logger.With().Str("conversation_id", conversationID).Logger()
	declarations := o.registry.Declarations()
	data := make(map[string]any)

	completion, err := o.send(ctx, history, declarations)
	if err != nil {
		return Result{}, err
	}

	rounds := 0
	for completion.HasToolCalls() && rounds < o.maxToolRounds {
		rounds++
		logger.Debug().Int("round", rounds).Int("tool_calls", len(completion.ToolCalls)).
			Msg("executing tool round")

		history = append(history, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   completion.Text,
			ToolCalls: completion.ToolCalls,
		})

		outcomes := o.executeAll(ctx, completion.ToolCalls, logger)
		for i, call := range completion.ToolCalls {
			history = append(history, llm.ToolResultMessage(call.ID, outcomes[i].payload))
			if outcomes[i].category != "" {
				data[outcomes[i].category] = outcomes[i].value
			}
		}

		completion, err = o.send(ctx, history, declarations)
		if err != nil {
			return Result{}, err
		}
	}

	if completion.HasToolCalls() {
		logger.Warn().Int("rounds", rounds).Msg("tool round cap reached with calls pending")
	}

	history = append(history, llm.AssistantMessage(completion.Text))
	if err := o.store.Save(ctx, conversationID, history); err != nil {
		return Result{}, fmt.Errorf("failed to persist conversation: %w", err)
	}

	result := Result{
		ConversationID: conversationID,
		Text:           completion.Text,
		ToolCallsMade:  rounds,
	}
	if len(data) > 0 {
		result.Data = data
	}
	return result, nil
}

// ClearConversation removes all stored history for a conversation.
// Clearing an unknown or already cleared conversation succeeds.
func (o *Orchestrator) ClearConversation(ctx context.Context, conversationID string) error {
	lock := o.conversationLock(conversationID)
	lock.Lock()
	defer lock.Unlock()

	if err := o.store.Delete(ctx, conversationID); err != nil {
		return fmt.Errorf("failed to clear conversation: %w", err)
	}
	return nil
}

// History returns the stored message history for a conversation.
func (o *Orchestrator) History(ctx context.Context, conversationID string) ([]llm.Message, error) {
	return o.store.Load(ctx, conversationID)
}

// send performs one gateway call under the configured per-call deadline,
// translating failures into ErrGateway / ErrGatewayTimeout.
func (o *Orchestrator) send(ctx context.Context, history []llm.Message, declarations []llm.ToolDefinition) (llm.Completion, error) {
	callCtx := ctx
	if o.gatewayTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.gatewayTimeout)
		defer cancel()
	}

	completion, err := o.gateway.Send(callCtx, history, declarations)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return llm.Completion{}, fmt.Errorf("%w: %v", ErrGatewayTimeout, err)
		}
		return llm.Completion{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}
	return completion, nil
}

// toolOutcome is one executed tool call: the serialized payload fed back to
// the model, and the structured value under its aggregation category when
// the call succeeded.
type toolOutcome struct {
	payload  string
	category string
	value    any
}

// executeAll runs a round of tool calls concurrently, preserving request
// order in the returned slice.
func (o *Orchestrator) executeAll(ctx context.Context, calls []llm.ToolCall, logger zerolog.Logger) []toolOutcome {
	outcomes := make([]toolOutcome, len(calls))
	iter.ForEachIdx(calls, func(i int, call *llm.ToolCall) {
		outcomes[i] = o.executeOne(ctx, *call, logger)
	})
	return outcomes
}

// executeOne runs a single tool call through the cache and registry. Any
// failure becomes an error payload for the model; it never propagates.
func (o *Orchestrator) executeOne(ctx context.Context, call llm.ToolCall, logger zerolog.Logger) toolOutcome {
	started := time.Now()

	key := ""
	if o.cache != nil {
		k, err := tools.Key(call.Name, call.Arguments)
		if err == nil {
			key = k
			if value, ok := o.cache.Get(key); ok {
				logger.Debug().Str("tool", call.Name).Msg("tool cache hit")
				return o.successOutcome(call.Name, value)
			}
		}
	}

	value, err := o.registry.Execute(ctx, call.Name, call.Arguments)
	if err != nil {
		logger.Warn().Err(err).Str("tool", call.Name).
			Dur("duration", time.Since(started)).
			Msg("tool execution failed")
		return toolOutcome{payload: errorPayload(err)}
	}

	logger.Debug().Str("tool", call.Name).
		Dur("duration", time.Since(started)).
		Msg("tool executed")

	if o.cache != nil && key != "" {
		o.cache.Set(key, value)
	}
	return o.successOutcome(call.Name, value)
}

func (o *Orchestrator) successOutcome(toolName string, value any) toolOutcome {
	encoded, err := json.Marshal(value)
	if err != nil {
		return toolOutcome{payload: errorPayload(err)}
	}
	return toolOutcome{
		payload:  string(encoded),
		category: o.registry.Category(toolName),
		value:    value,
	}
}

// errorPayload serializes a tool failure for the model.
func errorPayload(err error) string {
	encoded, marshalErr := json.Marshal(map[string]string{"error": err.Error()})
	if marshalErr != nil {
		return `{"error":"tool execution failed"}`
	}
	return string(encoded)
}

// annotateMessage prefixes the user message with its context block so the
// model sees traveler details inline.
func annotateMessage(message string, context json.RawMessage) string {
	if len(context) == 0 {
		return message
	}
	return fmt.Sprintf("[User Context: %s]\n\n%s", string(context), message)
}
