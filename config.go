package phonehub

import (
	"fmt"
	"log/slog"

	"github.com/ourstudio-se/phonehub/intent"
	"github.com/ourstudio-se/phonehub/knowledge"
	"github.com/ourstudio-se/phonehub/llm"
	"github.com/ourstudio-se/phonehub/session"
)

// DefaultTemperature is the general chat temperature when none is set.
const DefaultTemperature = 0.3

// Config configures a Bot.
type Config struct {
	// Knowledge is the reference data the handlers answer from.
	// Required.
	Knowledge *knowledge.Base

	// Provider answers general chat. Required.
	Provider llm.Provider

	// Appointments records bookings.
	// Optional - defaults to a fresh in-memory book.
	Appointments *knowledge.AppointmentBook

	// Store keeps sessions between turns.
	// Optional - defaults to session.NewMemoryStore().
	Store session.Store

	// Router classifies messages.
	// Optional - defaults to intent.Default().
	Router *intent.Router

	// Logger for diagnostics.
	// Optional - defaults to slog.Default().
	Logger *slog.Logger

	// Model is passed to the provider. Empty lets the provider choose.
	Model string

	// Temperature for general chat.
	// Optional - defaults to DefaultTemperature. An explicit zero is kept.
	Temperature *float64

	// MaxTokens caps general chat replies. Zero leaves it to the provider.
	MaxTokens int

	// HistoryWindow is how many recent messages general chat sees.
	// Defaults to 5.
	HistoryWindow int

	// Persona is the system prompt for general chat.
	// Optional - defaults to DefaultPersona.
	Persona string
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Appointments == nil {
		c.Appointments = knowledge.NewAppointmentBook()
	}
	if c.Store == nil {
		c.Store = session.NewMemoryStore()
	}
	if c.Router == nil {
		c.Router = intent.Default()
	}
	if c.Temperature == nil {
		t := DefaultTemperature
		c.Temperature = &t
	}
	if c.HistoryWindow <= 0 {
		c.HistoryWindow = 5
	}
	if c.Persona == "" {
		c.Persona = DefaultPersona
	}
	return c
}

func (c Config) validate() error {
	if c.Knowledge == nil {
		return fmt.Errorf("%w: Knowledge is required", ErrInvalidConfig)
	}
	if c.Provider == nil {
		return fmt.Errorf("%w: Provider is required", ErrInvalidConfig)
	}
	if t := *c.Temperature; t < 0 || t > 2 {
		return fmt.Errorf("%w: Temperature must be between 0 and 2", ErrInvalidConfig)
	}
	return nil
}
