// Package phonehub is a customer support chatbot for the PhoneHub phone
// store. Each message is routed by keyword to a handler that answers from
// the store's knowledge base; anything unrecognised goes to a language model.
package phonehub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ourstudio-se/phonehub/intent"
	"github.com/ourstudio-se/phonehub/llm"
	"github.com/ourstudio-se/phonehub/session"
	"github.com/ourstudio-se/phonehub/support"
	"github.com/ourstudio-se/phonehub/tools"
)

// Bot answers customer messages and keeps per-session state.
type Bot struct {
	desk     *support.Desk
	router   *intent.Router
	provider llm.Provider
	store    session.Store
	tools    *tools.Registry
	locks    session.Locks
	config   Config
	logger   *slog.Logger
}

// ChatRequest is one customer turn.
type ChatRequest struct {
	// SessionID continues an existing session. Empty starts a new one.
	SessionID string `json:"sessionId,omitempty"`

	// Message is the customer's text.
	Message string `json:"message"`
}

// ChatResponse is the bot's reply to one turn.
type ChatResponse struct {
	SessionID  string `json:"sessionId"`
	MessageID  string `json:"messageId"`
	Intent     string `json:"intent"`
	Step       string `json:"step"`
	Response   string `json:"response"`
	NeedsHuman bool   `json:"needsHuman"`
}

// New creates a Bot.
func New(cfg Config) (*Bot, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	b := &Bot{
		desk:     support.New(cfg.Knowledge, cfg.Appointments),
		router:   cfg.Router,
		provider: cfg.Provider,
		store:    cfg.Store,
		tools:    tools.NewRegistry(),
		config:   cfg,
		logger:   cfg.Logger,
	}
	registerTools(b.tools, b.desk)

	return b, nil
}

// Chat handles one customer message.
func (b *Bot) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	text := strings.TrimSpace(req.Message)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	if req.SessionID != "" {
		unlock := b.locks.Lock(req.SessionID)
		defer unlock()
	}

	st, err := b.loadSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	st.AddUserMessage(text)

	var (
		reply string
		label intent.Intent
	)
	switch {
	case st.Booking == nil:
		label = b.router.Classify(text)
		reply = b.dispatch(ctx, label, st, text)
	case b.router.Matches(intent.HumanEscalation, text):
		// Asking for a person abandons the booking.
		st.Booking = nil
		label = intent.HumanEscalation
		reply = b.dispatch(ctx, label, st, text)
	default:
		label = intent.Appointment
		reply = b.continueBooking(st, text)
	}

	msg := st.AddAssistantMessage(reply, string(label))

	if err := b.store.Save(ctx, st); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	b.logger.Debug("handled message",
		slog.String("session_id", st.ID),
		slog.String("intent", string(label)),
		slog.String("step", st.CurrentStep),
	)

	return &ChatResponse{
		SessionID:  st.ID,
		MessageID:  msg.ID,
		Intent:     string(label),
		Step:       st.CurrentStep,
		Response:   reply,
		NeedsHuman: st.NeedsHuman,
	}, nil
}

// loadSession returns the stored session, or a new one when id is empty
// or has expired.
func (b *Bot) loadSession(ctx context.Context, id string) (*session.State, error) {
	if id == "" {
		return session.New(), nil
	}

	st, err := b.store.Get(ctx, id)
	if errors.Is(err, session.ErrNotFound) {
		b.logger.Info("session not found, starting a new one", slog.String("session_id", id))
		return session.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	return st, nil
}

// Session returns a stored session.
func (b *Bot) Session(ctx context.Context, id string) (*session.State, error) {
	return b.store.Get(ctx, id)
}

// DeleteSession ends a session.
func (b *Bot) DeleteSession(ctx context.Context, id string) error {
	return b.store.Delete(ctx, id)
}

// Tools lists the support operations that can be invoked directly.
func (b *Bot) Tools() []tools.Definition {
	return b.tools.Definitions()
}

// ExecuteTool invokes a support operation by name.
func (b *Bot) ExecuteTool(ctx context.Context, name string, input tools.Input) (any, error) {
	return b.tools.Execute(ctx, name, input)
}
