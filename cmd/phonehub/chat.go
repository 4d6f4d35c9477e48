package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ourstudio-se/phonehub"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot in the terminal",
	Long:  "Chat with the bot in the terminal. Type /reset to start a new session and /quit to exit.",
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg, os.Stderr)

	bot, release, err := buildBot(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer release()

	return repl(cmd.Context(), bot, cmd.InOrStdin(), cmd.OutOrStdout())
}

type chatter interface {
	Chat(ctx context.Context, req phonehub.ChatRequest) (*phonehub.ChatResponse, error)
}

func repl(ctx context.Context, bot chatter, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to PhoneHub support! How can I help you today?")

	var sessionID string
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "/quit", "/exit":
			fmt.Fprintln(out, "Goodbye!")
			return nil
		case "/reset":
			sessionID = ""
			fmt.Fprintln(out, "Started a new conversation.")
			continue
		}

		resp, err := bot.Chat(ctx, phonehub.ChatRequest{SessionID: sessionID, Message: line})
		if errors.Is(err, phonehub.ErrEmptyMessage) {
			continue
		}
		if err != nil {
			slog.Error("chat failed", slog.String("error", err.Error()))
			fmt.Fprintln(out, "Sorry, something went wrong. Please try again.")
			continue
		}

		sessionID = resp.SessionID
		fmt.Fprintln(out, resp.Response)
		if resp.NeedsHuman {
			fmt.Fprintln(out, "[flagged for a human agent]")
		}
	}
}
