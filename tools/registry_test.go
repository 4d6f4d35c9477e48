package tools

import (
	"context"
	"errors"
	"testing"
)

func TestRegistry(t *testing.T) {
	t.Run("registers and retrieves tools", func(t *testing.T) {
		registry := NewRegistry()

		registry.Register(NewTool("check_status").
			Description("Check a repair ticket").
			StringParam("ticketId", "Ticket number", true).
			Handler(func(ctx context.Context, in Input) (any, error) {
				return in.String("ticketId"), nil
			}).
			Build())

		tool, ok := registry.Get("check_status")
		if !ok {
			t.Fatal("expected to find tool")
		}
		if tool.Description != "Check a repair ticket" {
			t.Errorf("expected description 'Check a repair ticket', got: %s", tool.Description)
		}
		if req := tool.Required(); len(req) != 1 || req[0] != "ticketId" {
			t.Errorf("unexpected required params: %v", req)
		}
	})

	t.Run("executes with input", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register(NewTool("echo").
			IntParam("n", "A number", false).
			Handler(func(ctx context.Context, in Input) (any, error) {
				return in.Int("n") * 2, nil
			}).
			Build())

		out, err := registry.Execute(context.Background(), "echo", Input{"n": float64(21)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != 42 {
			t.Errorf("expected 42, got: %v", out)
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		registry := NewRegistry()
		_, err := registry.Execute(context.Background(), "nope", nil)
		if !errors.Is(err, ErrUnknownTool) {
			t.Errorf("expected ErrUnknownTool, got: %v", err)
		}
	})

	t.Run("missing required parameter", func(t *testing.T) {
		registry := NewRegistry()
		called := false
		registry.Register(NewTool("book").
			StringParam("date", "Date", true).
			EnumParam("urgency", "Urgency", []string{"standard", "urgent"}, false).
			Handler(func(ctx context.Context, in Input) (any, error) {
				called = true
				return nil, nil
			}).
			Build())

		_, err := registry.Execute(context.Background(), "book", Input{"date": ""})
		if !errors.Is(err, ErrMissingParam) {
			t.Errorf("expected ErrMissingParam, got: %v", err)
		}
		if called {
			t.Error("expected handler not to run")
		}
	})

	t.Run("names and definitions are sorted", func(t *testing.T) {
		registry := NewRegistry()
		for _, n := range []string{"b", "c", "a"} {
			registry.Register(NewTool(n).Build())
		}

		names := registry.Names()
		if names[0] != "a" || names[2] != "c" {
			t.Errorf("expected sorted names, got: %v", names)
		}
		defs := registry.Definitions()
		if len(defs) != 3 || defs[0].Name != "a" {
			t.Errorf("expected sorted definitions, got: %v", defs)
		}
	})
}
