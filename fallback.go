package phonehub

import (
	"context"
	"log/slog"

	"github.com/ourstudio-se/phonehub/llm"
	"github.com/ourstudio-se/phonehub/session"
)

// DefaultPersona is the system prompt for general chat.
const DefaultPersona = `You are a helpful customer support agent for PhoneHub, a phone sales and repair store.
You can help with:
- Phone information and specifications
- Repair services and pricing
- Checking repair status
- Booking appointments
- Basic troubleshooting
- Warranty information
- Store locations and hours

Be friendly, professional, and helpful. If you don't know something, offer to connect the customer with a human agent.`

const capabilities = "I can still help with phone prices and specs, repair estimates, " +
	"ticket and order status, booking an appointment, troubleshooting, warranty questions " +
	"and store hours. Just ask, or say \"speak to a human\" to reach our team."

// generalChat sends the persona and recent history to the provider. A
// failed call is logged and answered with a degraded reply.
func (b *Bot) generalChat(ctx context.Context, st *session.State) string {
	history := st.Recent(b.config.HistoryWindow)

	messages := make([]llm.Message, 0, len(history))
	for _, m := range history {
		role := llm.RoleUser
		if m.Role == session.RoleAssistant {
			role = llm.RoleAssistant
		}
		messages = append(messages, llm.Message{Role: role, Content: m.Content})
	}

	resp, err := b.provider.Chat(ctx, llm.Request{
		Model:       b.config.Model,
		System:      b.config.Persona,
		Messages:    messages,
		MaxTokens:   b.config.MaxTokens,
		Temperature: *b.config.Temperature,
	})
	if err != nil {
		kind := llm.KindOf(err)
		b.logger.Warn("general chat failed",
			slog.String("session_id", st.ID),
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()),
		)
		return degradedReply(kind)
	}

	return resp.Content
}

func degradedReply(kind llm.Kind) string {
	lead := "Sorry, I'm having trouble reaching our assistant right now."
	if kind == llm.KindInvalidResponse {
		lead = "Sorry, I couldn't put together an answer to that just now."
	}
	return lead + "\n\n" + capabilities
}
