package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ourstudio-se/phonehub"
)

// fakeBot echoes messages and records the session ids it was given.
type fakeBot struct {
	sessions []string
	err      error
}

func (f *fakeBot) Chat(ctx context.Context, req phonehub.ChatRequest) (*phonehub.ChatResponse, error) {
	f.sessions = append(f.sessions, req.SessionID)
	if f.err != nil {
		return nil, f.err
	}
	return &phonehub.ChatResponse{
		SessionID:  "s1",
		Response:   "echo: " + req.Message,
		NeedsHuman: strings.Contains(req.Message, "human"),
	}, nil
}

func TestRepl(t *testing.T) {
	t.Run("conversation and reset", func(t *testing.T) {
		bot := &fakeBot{}
		in := strings.NewReader("hello\n\nagain\n/reset\nspeak to a human\n/quit\nignored\n")
		var out bytes.Buffer

		if err := repl(context.Background(), bot, in, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"", "s1", ""}
		if len(bot.sessions) != len(want) {
			t.Fatalf("expected %d turns, got: %v", len(want), bot.sessions)
		}
		for i, id := range want {
			if bot.sessions[i] != id {
				t.Errorf("turn %d: expected session %q, got: %q", i, id, bot.sessions[i])
			}
		}

		text := out.String()
		for _, s := range []string{"echo: hello", "echo: again", "Started a new conversation.", "[flagged for a human agent]", "Goodbye!"} {
			if !strings.Contains(text, s) {
				t.Errorf("expected %q in output:\n%s", s, text)
			}
		}
		if strings.Contains(text, "ignored") {
			t.Error("expected input after /quit to be ignored")
		}
	})

	t.Run("errors keep the loop alive", func(t *testing.T) {
		bot := &fakeBot{err: errors.New("boom")}
		var out bytes.Buffer

		if err := repl(context.Background(), bot, strings.NewReader("one\ntwo\n"), &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(bot.sessions) != 2 {
			t.Errorf("expected 2 attempts, got: %d", len(bot.sessions))
		}
		if !strings.Contains(out.String(), "something went wrong") {
			t.Errorf("unexpected output: %s", out.String())
		}
	})
}
