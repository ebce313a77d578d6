// Structured itinerary export over an existing conversation.

package chat

import (
	"context"
	"errors"
	"fmt"

	jsonutil "github.com/safar-ai/safar/internal/json"
	"github.com/safar-ai/safar/llm"
	"github.com/safar-ai/safar/model"
)

// ErrNoConversation is returned when exporting an itinerary for a
// conversation with no stored history.
var ErrNoConversation = errors.New("conversation has no history")

const exportPrompt = `Summarize the trip planned in this conversation as a single JSON itinerary object with this shape:
{
  "destination": "...",
  "startDate": "YYYY-MM-DD",
  "endDate": "YYYY-MM-DD",
  "travelers": 1,
  "hotel": { ... } or null,
  "days": [{"day": 1, "date": "YYYY-MM-DD", "theme": "...", "activities": [{"time": "09:00", "kind": "attraction|meal|transfer", "name": "...", "cost": 0, "description": "..."}], "dayCost": 0}],
  "totalCost": 0,
  "notes": "..."
}
All costs in INR as plain numbers. Use only what was discussed; leave unknown dates empty. Respond with JSON only.`

// ExportItinerary asks the model to condense an existing conversation into a
// structured itinerary. The conversation history is not modified.
func (o *Orchestrator) ExportItinerary(ctx context.Context, conversationID string) (model.Itinerary, error) {
	lock := o.conversationLock(conversationID)
	lock.Lock()
	defer lock.Unlock()

	history, err := o.store.Load(ctx, conversationID)
	if err != nil {
		return model.Itinerary{}, fmt.Errorf("failed to load conversation: %w", err)
	}
	if len(history) == 0 {
		return model.Itinerary{}, fmt.Errorf("%w: %s", ErrNoConversation, conversationID)
	}

	request := append(history, llm.UserMessage(exportPrompt))

	callCtx := ctx
	if o.gatewayTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, o.gatewayTimeout)
		defer cancel()
	}

	completion, err := o.gateway.SendWithFormat(callCtx, request, llm.JSONObjectFormat())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return model.Itinerary{}, fmt.Errorf("%w: %v", ErrGatewayTimeout, err)
		}
		return model.Itinerary{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	itinerary, err := jsonutil.ExtractJSONFromResponse[model.Itinerary](completion.Text)
	if err != nil {
		return model.Itinerary{}, fmt.Errorf("failed to parse itinerary: %w", err)
	}
	return itinerary, nil
}
