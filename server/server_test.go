package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ourstudio-se/phonehub"
	"github.com/ourstudio-se/phonehub/knowledge"
	"github.com/ourstudio-se/phonehub/llm"
	"github.com/ourstudio-se/phonehub/session"
	"github.com/ourstudio-se/phonehub/tools"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	kb, err := knowledge.Default()
	if err != nil {
		t.Fatalf("loading knowledge: %v", err)
	}
	provider := llm.ProviderFunc(func(ctx context.Context, req llm.Request) (*llm.Response, error) {
		return &llm.Response{Content: "Hello from the model"}, nil
	})
	bot, err := phonehub.New(phonehub.Config{Knowledge: kb, Provider: provider})
	if err != nil {
		t.Fatalf("creating bot: %v", err)
	}

	srv := httptest.NewServer(New(bot, Config{}).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
	}
	return resp, out
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, body := do(t, http.MethodGet, srv.URL+"/health", "")
	if resp.StatusCode != http.StatusOK || body["status"] != "healthy" {
		t.Errorf("unexpected health response: %d %v", resp.StatusCode, body)
	}
}

func TestServer_Chat(t *testing.T) {
	srv := newTestServer(t)

	t.Run("routes and keeps the session", func(t *testing.T) {
		resp, body := do(t, http.MethodPost, srv.URL+"/api/v1/chat", `{"message":"Check TICKET-001"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got: %d %v", resp.StatusCode, body)
		}
		if body["intent"] != "status_check" {
			t.Errorf("unexpected intent: %v", body["intent"])
		}
		id, _ := body["sessionId"].(string)
		if id == "" {
			t.Fatal("expected a session id")
		}

		resp, body = do(t, http.MethodGet, srv.URL+"/api/v1/sessions/"+id, "")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got: %d", resp.StatusCode)
		}
		if msgs, _ := body["messages"].([]any); len(msgs) != 2 {
			t.Errorf("expected 2 messages, got: %v", body["messages"])
		}

		resp, _ = do(t, http.MethodDelete, srv.URL+"/api/v1/sessions/"+id, "")
		if resp.StatusCode != http.StatusNoContent {
			t.Errorf("expected 204, got: %d", resp.StatusCode)
		}
		resp, _ = do(t, http.MethodGet, srv.URL+"/api/v1/sessions/"+id, "")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 after delete, got: %d", resp.StatusCode)
		}
	})

	t.Run("general chat", func(t *testing.T) {
		_, body := do(t, http.MethodPost, srv.URL+"/api/v1/chat", `{"message":"hi there"}`)
		if body["response"] != "Hello from the model" {
			t.Errorf("unexpected response: %v", body["response"])
		}
	})

	t.Run("bad requests", func(t *testing.T) {
		for _, payload := range []string{`{"message":"   "}`, `not json`} {
			resp, body := do(t, http.MethodPost, srv.URL+"/api/v1/chat", payload)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got: %d %v", payload, resp.StatusCode, body)
			}
		}
	})

	t.Run("unknown session delete", func(t *testing.T) {
		resp, _ := do(t, http.MethodDelete, srv.URL+"/api/v1/sessions/missing", "")
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got: %d", resp.StatusCode)
		}
	})
}

func TestServer_Tools(t *testing.T) {
	srv := newTestServer(t)

	t.Run("list", func(t *testing.T) {
		_, body := do(t, http.MethodGet, srv.URL+"/api/v1/tools", "")
		list, _ := body["tools"].([]any)
		if len(list) == 0 {
			t.Fatal("expected tools")
		}
	})

	t.Run("execute", func(t *testing.T) {
		resp, body := do(t, http.MethodPost, srv.URL+"/api/v1/tools/track_order", `{"orderId":"ORD001"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got: %d %v", resp.StatusCode, body)
		}
		result, _ := body["result"].(map[string]any)
		if msg, _ := result["message"].(string); !strings.Contains(msg, "ORD001") {
			t.Errorf("unexpected result: %v", body["result"])
		}
	})

	t.Run("no body", func(t *testing.T) {
		resp, _ := do(t, http.MethodPost, srv.URL+"/api/v1/tools/contact_info", "")
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got: %d", resp.StatusCode)
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		resp, _ := do(t, http.MethodPost, srv.URL+"/api/v1/tools/launch_rocket", `{}`)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got: %d", resp.StatusCode)
		}
	})

	t.Run("missing parameter", func(t *testing.T) {
		resp, _ := do(t, http.MethodPost, srv.URL+"/api/v1/tools/check_repair_status", `{}`)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got: %d", resp.StatusCode)
		}
	})
}

// failingBot returns the same error from every call.
type failingBot struct {
	err error
}

func (f failingBot) Chat(ctx context.Context, req phonehub.ChatRequest) (*phonehub.ChatResponse, error) {
	return nil, f.err
}

func (f failingBot) Session(ctx context.Context, id string) (*session.State, error) {
	return nil, f.err
}

func (f failingBot) DeleteSession(ctx context.Context, id string) error {
	return f.err
}

func (f failingBot) Tools() []tools.Definition {
	return nil
}

func (f failingBot) ExecuteTool(ctx context.Context, name string, input tools.Input) (any, error) {
	return nil, f.err
}

func TestServer_InternalErrors(t *testing.T) {
	srv := httptest.NewServer(New(failingBot{err: errors.New("disk on fire")}, Config{}).Handler())
	defer srv.Close()

	resp, body := do(t, http.MethodPost, srv.URL+"/api/v1/chat", `{"message":"hello"}`)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got: %d", resp.StatusCode)
	}
	if body["error"] != "internal error" {
		t.Errorf("expected internal details to be hidden, got: %v", body["error"])
	}

	resp, _ = do(t, http.MethodGet, srv.URL+"/api/v1/sessions/x", "")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got: %d", resp.StatusCode)
	}
}
