package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clil-ai/backend/internal/api"
	app_errors "clil-ai/backend/internal/errors"
	"clil-ai/backend/internal/interfaces/mocks"
	"clil-ai/backend/internal/llm"
	"clil-ai/backend/internal/service"
)

// setupRouter wires a handler with a mocked service into the real router, so the
// tests exercise routing, decoding and response shaping together.
func setupRouter(t *testing.T) (http.Handler, *mocks.MockLessonService) {
	mockSvc := mocks.NewMockLessonService(t)
	handler := api.NewLessonHandler(mockSvc)
	return api.NewRouter(handler, ""), mockSvc
}

func doPost(router http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestLessonHandler_GenerateActivity(t *testing.T) {
	t.Run("Success - all sections", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("GenerateActivity", mock.Anything, mock.MatchedBy(func(req *service.GenerateActivityRequest) bool {
			return req.Prompt == "volcanoes" && req.Section == "all" && len(req.Modifiers) == 1 && req.Modifiers[0] == "space"
		})).Return(&service.ActivityResult{Section: "all", Data: `{"content_objectives":["a"]}`}, nil).Once()

		rr := doPost(router, "/generate", `{"prompt":"volcanoes","section":"all","modifiers":["space"]}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"success":true,"data":"{\"content_objectives\":[\"a\"]}"}`, rr.Body.String())
	})

	t.Run("Success - single section", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("GenerateActivity", mock.Anything, mock.MatchedBy(func(req *service.GenerateActivityRequest) bool {
			return req.Section == "3" && req.Customization == "add a quiz" && string(req.CurrentActivity) == `{"title":"x"}`
		})).Return(&service.ActivityResult{Section: "3", Data: "Quiz time"}, nil).Once()

		rr := doPost(router, "/generate", `{"section":"3","customization":"add a quiz","current_activity":{"title":"x"}}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"section":"3","data":"Quiz time"}`, rr.Body.String())
	})

	t.Run("Empty body is defaulted", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("GenerateActivity", mock.Anything, &service.GenerateActivityRequest{}).
			Return(&service.ActivityResult{Section: "all", Data: "{}"}, nil).Once()

		rr := doPost(router, "/generate", "")

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - unknown section", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("GenerateActivity", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: %s", app_errors.ErrUnknownSection, "9")).Once()

		rr := doPost(router, "/generate", `{"section":"9"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"unknown section: 9"}`, rr.Body.String())
	})

	t.Run("Failure - provider error is passed through", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("GenerateActivity", mock.Anything, mock.Anything).
			Return(nil, &llm.ProviderError{CallID: "c1", Err: errors.New("Rate limit reached for gpt-4o-mini")}).Once()

		rr := doPost(router, "/generate", `{"prompt":"volcanoes"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"Rate limit reached for gpt-4o-mini"}`, rr.Body.String())
	})

	t.Run("Failure - malformed JSON", func(t *testing.T) {
		router, mockSvc := setupRouter(t)

		rr := doPost(router, "/generate", `{"prompt":`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], "invalid request body")
		mockSvc.AssertNotCalled(t, "GenerateActivity", mock.Anything, mock.Anything)
	})
}

func TestLessonHandler_JSONRoutes(t *testing.T) {
	t.Run("Helper", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("GenerateHelper", mock.Anything, &service.HelperRequest{Prompt: "photosynthesis"}).
			Return(`{"topic_overview":"plants"}`, nil).Once()

		rr := doPost(router, "/generate_helper", `{"prompt":"photosynthesis"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"helper_data":"{\"topic_overview\":\"plants\"}"}`, rr.Body.String())
	})

	t.Run("Insight", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("GenerateInsight", mock.Anything, &service.InsightRequest{Concept: "Scaffolding", HelperContext: "ctx"}).
			Return(`{"title":"Scaffolding"}`, nil).Once()

		rr := doPost(router, "/generate_insight", `{"concept":"Scaffolding","helper_context":"ctx"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"insight_data":"{\"title\":\"Scaffolding\"}"}`, rr.Body.String())
	})

	t.Run("Related tags", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("GenerateRelatedTags", mock.Anything, mock.MatchedBy(func(req *service.RelatedTagsRequest) bool {
			return req.Tag == "photosynthesis" && req.Context.TopicOverview == "plants" && len(req.Context.KeyConcepts) == 2
		})).Return(`{"related_tags":["a","b","c"]}`, nil).Once()

		rr := doPost(router, "/generate_related_tags",
			`{"tag":"photosynthesis","context":{"topicOverview":"plants","keyConcepts":["light","water"]}}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		body := decodeBody(t, rr)
		assert.Equal(t, true, body["success"])
		var tags struct {
			RelatedTags []string `json:"related_tags"`
		}
		require.NoError(t, json.Unmarshal([]byte(body["tags"].(string)), &tags))
		assert.Len(t, tags.RelatedTags, 3)
	})

	t.Run("Chat", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("Chat", mock.Anything, mock.MatchedBy(func(req *service.ChatRequest) bool {
			return req.Message == "Hi" &&
				len(req.History) == 2 && req.History[1].Role == "assistant" &&
				req.Context.ClassContext["grade_level"] == "Grade 7" &&
				len(req.Context.ActivityTypes) == 1
		})).Return("Tell me about your class!", nil).Once()

		rr := doPost(router, "/chat", `{
			"message": "Hi",
			"context": {"class_context": {"grade_level": "Grade 7"}, "activity_types": ["role_play"]},
			"history": [{"role":"user","content":"Hello"},{"role":"assistant","content":"Welcome"}]
		}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"message":"Tell me about your class!"}`, rr.Body.String())
	})

	t.Run("Chat failure", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("Chat", mock.Anything, mock.Anything).
			Return("", &llm.ProviderError{Err: errors.New("context deadline exceeded")}).Once()

		rr := doPost(router, "/chat", `{"message":"Hi"}`)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"success":false,"error":"context deadline exceeded"}`, rr.Body.String())
	})
}

func TestLessonHandler_GenerateInline(t *testing.T) {
	streamFragments := func(fragments ...string) func(mock.Arguments) {
		return func(args mock.Arguments) {
			out := args.Get(2).(chan<- string)
			defer close(out)
			for _, f := range fragments {
				out <- f
			}
		}
	}

	t.Run("Fragments are written verbatim", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("StreamInline", mock.Anything, &service.InlineRequest{
			Content:          "Volcanoes",
			Command:          "continue",
			TextBeforeCursor: "Volcanoes",
		}, mock.Anything).Run(streamFragments("Lava ", "is ", "hot.")).Once()

		rr := doPost(router, "/generate_inline", `{"content":"Volcanoes","command":"continue","text_before_cursor":"Volcanoes"}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
		assert.Equal(t, "no-cache", rr.Header().Get("Cache-Control"))
		assert.Equal(t, "Lava is hot.", rr.Body.String())
		assert.True(t, rr.Flushed)
	})

	t.Run("Error marker ends the body", func(t *testing.T) {
		router, mockSvc := setupRouter(t)
		mockSvc.On("StreamInline", mock.Anything, mock.Anything, mock.Anything).
			Run(streamFragments("Lava ", llm.StreamErrorMarker+"connection reset")).Once()

		rr := doPost(router, "/generate_inline", `{"command":"continue","position":3}`)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Lava Error: connection reset", rr.Body.String())
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		router, _ := setupRouter(t)

		rr := doPost(router, "/generate_inline", `not json`)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})
}

func TestRouter_PublicRoutes(t *testing.T) {
	t.Run("Health check", func(t *testing.T) {
		router, _ := setupRouter(t)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("Swagger document", func(t *testing.T) {
		router, _ := setupRouter(t)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "/generate_inline")
	})

	t.Run("Static index", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>CLIL</h1>"), 0o644))
		router := api.NewRouter(api.NewLessonHandler(mocks.NewMockLessonService(t)), dir)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "<h1>CLIL</h1>")
	})

	t.Run("Lesson routes are POST only", func(t *testing.T) {
		router, _ := setupRouter(t)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/generate", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})
}
