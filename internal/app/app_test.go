package app

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clil-ai/backend/internal/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Port:            0,
		OpenAIAPIKey:    "sk-test",
		OpenAIBaseURL:   baseURL,
		OpenAIModel:     "gpt-4o-mini",
		LogLevel:        "DEBUG",
		ShutdownTimeout: time.Second,
	}
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(testConfig("http://127.0.0.1:1"))
	require.NoError(t, err)
	require.NotNil(t, app)

	assert.NotNil(t, app.Server)
	assert.Equal(t, ":0", app.Server.Addr)
	assert.Zero(t, app.Server.WriteTimeout)
}

func TestNewApp_MissingKey(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.OpenAIAPIKey = ""

	_, err := NewApp(cfg)
	assert.Error(t, err)
}

// TestApp_EndToEnd drives the wired router against an httptest server that plays
// the OpenAI chat completions API.
func TestApp_EndToEnd(t *testing.T) {
	var lastBody map[string]any
	var released atomic.Bool

	openAI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		lastBody = body

		if stream, _ := body["stream"].(bool); stream {
			w.Header().Set("Content-Type", "text/event-stream")
			_, _ = fmt.Fprintf(w, "data: %s\n\n", `{"id":"c","object":"chat.completion.chunk","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"delta":{"content":"Lava flows"}}]}`)
			w.(http.Flusher).Flush()

			// Hold the stream open until the relay lets go of it.
			select {
			case <-r.Context().Done():
				released.Store(true)
			case <-time.After(5 * time.Second):
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"id":"c","object":"chat.completion","created":1,"model":"gpt-4o-mini","choices":[{"index":0,"message":{"role":"assistant","content":%q},"finish_reason":"stop"}]}`,
			`{"related_tags":["magma","crater","eruption"]}`)
	}))
	defer openAI.Close()

	app, err := NewApp(testConfig(openAI.URL))
	require.NoError(t, err)
	server := httptest.NewServer(app.Server.Handler)
	defer server.Close()

	t.Run("Related tags in JSON mode", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/generate_related_tags", "application/json",
			strings.NewReader(`{"tag":"volcano","context":{}}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var out struct {
			Success bool   `json:"success"`
			Tags    string `json:"tags"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.True(t, out.Success)
		assert.JSONEq(t, `{"related_tags":["magma","crater","eruption"]}`, out.Tags)

		format, ok := lastBody["response_format"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "json_object", format["type"])
	})

	t.Run("Unknown section", func(t *testing.T) {
		resp, err := http.Post(server.URL+"/generate", "application/json", strings.NewReader(`{"section":"8"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"success":false,"error":"unknown section: 8"}`, string(body))
	})

	t.Run("Client disconnect releases the provider stream", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL+"/generate_inline",
			strings.NewReader(`{"content":"Volcanoes","command":"continue"}`))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
		buf := make([]byte, len("Lava flows"))
		_, err = io.ReadFull(bufio.NewReader(resp.Body), buf)
		require.NoError(t, err)
		assert.Equal(t, "Lava flows", string(buf))

		cancel()

		assert.Eventually(t, released.Load, 2*time.Second, 10*time.Millisecond)
	})
}

func TestApp_Serve(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	app, err := NewApp(cfg)
	require.NoError(t, err)
	app.Server.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, cfg.ShutdownTimeout) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	assert.Equal(t, 1, Run())
}
