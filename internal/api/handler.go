package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "clil-ai/backend/internal/errors"
	"clil-ai/backend/internal/interfaces"
	"clil-ai/backend/internal/prompt"
	"clil-ai/backend/internal/service"
)

// LessonHandler serves the lesson-generation routes.
type LessonHandler struct {
	service interfaces.LessonService
}

func NewLessonHandler(svc interfaces.LessonService) *LessonHandler {
	return &LessonHandler{service: svc}
}

// GenerateActivity godoc
// @Summary      Generate a lesson plan or customize one section
// @Description  With section "all" (the default) returns the full lesson plan as a JSON object encoded in a string. With section 1-5 returns free text for that section.
// @Tags         Lessons
// @Accept       json
// @Produce      json
// @Param        request  body      service.GenerateActivityRequest  true  "Lesson parameters"
// @Success      200      {object}  ActivityResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /generate [post]
func (h *LessonHandler) GenerateActivity(w http.ResponseWriter, r *http.Request) {
	var req service.GenerateActivityRequest
	if err := decodeRequest(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.service.GenerateActivity(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	resp := ActivityResponse{Success: true, Data: result.Data}
	if result.Section != prompt.SectionAll {
		resp.Section = result.Section
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// GenerateHelper godoc
// @Summary      Generate a teaching helper guide
// @Tags         Lessons
// @Accept       json
// @Produce      json
// @Param        request  body      service.HelperRequest  true  "Topic"
// @Success      200      {object}  HelperResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /generate_helper [post]
func (h *LessonHandler) GenerateHelper(w http.ResponseWriter, r *http.Request) {
	var req service.HelperRequest
	if err := decodeRequest(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	data, err := h.service.GenerateHelper(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, HelperResponse{Success: true, HelperData: data})
}

// GenerateInsight godoc
// @Summary      Explain a teaching concept
// @Description  Explains a concept tag in the context of a previously generated helper guide.
// @Tags         Lessons
// @Accept       json
// @Produce      json
// @Param        request  body      service.InsightRequest  true  "Concept and helper context"
// @Success      200      {object}  InsightResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /generate_insight [post]
func (h *LessonHandler) GenerateInsight(w http.ResponseWriter, r *http.Request) {
	var req service.InsightRequest
	if err := decodeRequest(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	data, err := h.service.GenerateInsight(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, InsightResponse{Success: true, InsightData: data})
}

// GenerateRelatedTags godoc
// @Summary      Suggest three related tags
// @Tags         Lessons
// @Accept       json
// @Produce      json
// @Param        request  body      service.RelatedTagsRequest  true  "Tag and lesson context"
// @Success      200      {object}  RelatedTagsResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /generate_related_tags [post]
func (h *LessonHandler) GenerateRelatedTags(w http.ResponseWriter, r *http.Request) {
	var req service.RelatedTagsRequest
	if err := decodeRequest(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	tags, err := h.service.GenerateRelatedTags(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, RelatedTagsResponse{Success: true, Tags: tags})
}

// Chat godoc
// @Summary      Chat with the activity design assistant
// @Description  Stateless: the caller sends the full prior history with every message.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request  body      service.ChatRequest  true  "Message, class context and history"
// @Success      200      {object}  ChatResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /chat [post]
func (h *LessonHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req service.ChatRequest
	if err := decodeRequest(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	reply, err := h.service.Chat(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ChatResponse{Success: true, Message: reply})
}

// GenerateInline godoc
// @Summary      Stream a text continuation
// @Description  Streams raw text fragments as they are generated. There is no envelope; a failure shows up as a last fragment starting with "Error: ".
// @Tags         Lessons
// @Accept       json
// @Produce      text/event-stream
// @Param        request  body      service.InlineRequest  true  "Draft text and command"
// @Success      200      {string}  string  "Raw text fragments"
// @Failure      400      {object}  ErrorResponse
// @Router       /generate_inline [post]
func (h *LessonHandler) GenerateInline(w http.ResponseWriter, r *http.Request) {
	var req service.InlineRequest
	if err := decodeRequest(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respondWithError(w, fmt.Errorf("%w: streaming is not supported by the response writer", app_errors.ErrInternal))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Cancelling ctx tells the relay to stop pulling from the provider.
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	out := make(chan string)
	go h.service.StreamInline(ctx, &req, out)

	for fragment := range out {
		if ctx.Err() != nil {
			slog.Info("Client disconnected during inline stream")
			break
		}
		if err := writeFragment(w, flusher, fragment); err != nil {
			slog.Warn("Stopping inline stream", "error", err)
			break
		}
	}

	cancel()
	for range out {
	}
}
