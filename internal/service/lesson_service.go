package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	app_errors "clil-ai/backend/internal/errors"
	"clil-ai/backend/internal/llm"
	"clil-ai/backend/internal/model"
	"clil-ai/backend/internal/prompt"
)

const (
	notSpecified         = "Not specified"
	defaultHelperContext = "No context provided"
)

// Section is a lesson-plan section key. The frontend sends it either as a string
// or as a bare number, so both are accepted.
type Section string

func (s *Section) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = Section(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("section must be a string or a number: %w", err)
	}
	*s = Section(num.String())
	return nil
}

// GenerateActivityRequest is the DTO for generating a lesson plan or customizing
// one of its sections.
type GenerateActivityRequest struct {
	Prompt          string          `json:"prompt" example:"volcanoes"`
	Section         Section         `json:"section" swaggertype:"string" example:"all"`
	Customization   string          `json:"customization" example:"add a quiz"`
	CurrentActivity json.RawMessage `json:"current_activity" swaggertype:"object"`
	Modifiers       []string        `json:"modifiers" example:"space"`
}

// ActivityResult carries the generated content and the section it belongs to.
type ActivityResult struct {
	Section string
	Data    string
}

type HelperRequest struct {
	Prompt string `json:"prompt" example:"photosynthesis"`
}

type InsightRequest struct {
	Concept       string `json:"concept" example:"Scaffolding"`
	HelperContext string `json:"helper_context"`
}

// InlineRequest asks for text that continues the teacher's draft. Position is
// accepted for compatibility and is not used to build the prompt.
type InlineRequest struct {
	Content          string `json:"content"`
	Command          string `json:"command" example:"add an example"`
	Position         *int   `json:"position"`
	TextBeforeCursor string `json:"text_before_cursor"`
}

type RelatedTagsRequest struct {
	Tag     string           `json:"tag" example:"photosynthesis"`
	Context model.TagContext `json:"context"`
}

type ChatRequest struct {
	Message string            `json:"message" example:"I teach 24 students in grade 7"`
	Context model.ChatContext `json:"context"`
	History []model.Message   `json:"history"`
}

// LessonService turns route payloads into prompts and hands them to the relay.
type LessonService struct {
	prompts *prompt.Library
	relay   *llm.Relay
}

func NewLessonService(prompts *prompt.Library, relay *llm.Relay) *LessonService {
	return &LessonService{prompts: prompts, relay: relay}
}

// GenerateActivity builds the full lesson plan as JSON when the section is "all"
// (or empty), and otherwise rewrites one section as free text.
func (s *LessonService) GenerateActivity(ctx context.Context, req *GenerateActivityRequest) (*ActivityResult, error) {
	section := string(req.Section)
	if section == "" {
		section = prompt.SectionAll
	}

	if section == prompt.SectionAll {
		system, err := s.prompts.Render(prompt.LessonPlan, nil)
		if err != nil {
			return nil, templateError(err)
		}
		system = s.prompts.ApplyModifiers(system, prompt.RequirementsHeader, req.Modifiers)

		user, err := s.prompts.Render(prompt.LessonPlanUser, map[string]string{"prompt": req.Prompt})
		if err != nil {
			return nil, templateError(err)
		}

		data, err := s.relay.Complete(ctx, prompt.LessonPlan, prompt.Messages(system, nil, user), llm.ModeJSON)
		if err != nil {
			return nil, err
		}
		return &ActivityResult{Section: section, Data: data}, nil
	}

	name, err := prompt.SectionTemplate(section)
	if err != nil {
		return nil, err
	}
	activity, err := formatActivity(req.CurrentActivity)
	if err != nil {
		return nil, err
	}

	system, err := s.prompts.Render(name, map[string]string{
		"current_activity": activity,
		"customization":    req.Customization,
	})
	if err != nil {
		return nil, templateError(err)
	}
	system = s.prompts.ApplyModifiers(system, prompt.ThemeRequirementsHeader, req.Modifiers)

	data, err := s.relay.Complete(ctx, name, prompt.Messages(system, nil, req.Customization), llm.ModeText)
	if err != nil {
		return nil, err
	}
	return &ActivityResult{Section: section, Data: data}, nil
}

func (s *LessonService) GenerateHelper(ctx context.Context, req *HelperRequest) (string, error) {
	system, err := s.prompts.Render(prompt.Helper, nil)
	if err != nil {
		return "", templateError(err)
	}
	user, err := s.prompts.Render(prompt.HelperUser, map[string]string{"prompt": req.Prompt})
	if err != nil {
		return "", templateError(err)
	}
	return s.relay.Complete(ctx, prompt.Helper, prompt.Messages(system, nil, user), llm.ModeJSON)
}

func (s *LessonService) GenerateInsight(ctx context.Context, req *InsightRequest) (string, error) {
	helperContext := req.HelperContext
	if helperContext == "" {
		helperContext = defaultHelperContext
	}

	system, err := s.prompts.Render(prompt.Insight, map[string]string{
		"concept":        req.Concept,
		"helper_context": helperContext,
	})
	if err != nil {
		return "", templateError(err)
	}
	user, err := s.prompts.Render(prompt.InsightUser, map[string]string{"concept": req.Concept})
	if err != nil {
		return "", templateError(err)
	}
	return s.relay.Complete(ctx, prompt.Insight, prompt.Messages(system, nil, user), llm.ModeJSON)
}

func (s *LessonService) GenerateRelatedTags(ctx context.Context, req *RelatedTagsRequest) (string, error) {
	tc := req.Context
	contextText, err := s.prompts.Render(prompt.TagContext, map[string]string{
		"topic_overview": tc.TopicOverview,
		"key_concepts":   strings.Join(tc.KeyConcepts, ", "),
		"existing_tags":  strings.Join(tc.ExistingTags, ", "),
		"content":        tc.Content,
	})
	if err != nil {
		return "", templateError(err)
	}

	system, err := s.prompts.Render(prompt.RelatedTags, nil)
	if err != nil {
		return "", templateError(err)
	}
	user, err := s.prompts.Render(prompt.RelatedTagsUser, map[string]string{
		"tag":     req.Tag,
		"context": contextText,
	})
	if err != nil {
		return "", templateError(err)
	}
	return s.relay.Complete(ctx, prompt.RelatedTags, prompt.Messages(system, nil, user), llm.ModeJSON)
}

// Chat answers one turn of the class-planning conversation. Continuity comes
// entirely from the history the caller sends back each time.
func (s *LessonService) Chat(ctx context.Context, req *ChatRequest) (string, error) {
	cc := req.Context
	classContext, err := s.prompts.Render(prompt.ClassContext, map[string]string{
		"students_count":           lookup(cc.ClassContext, "students_count"),
		"grade_level":              lookup(cc.ClassContext, "grade_level"),
		"language_skills":          lookup(cc.ClassContext, "language_skills"),
		"vocab_density":            lookup(cc.TeachingParameters, "vocab_density"),
		"grammar_complexity":       lookup(cc.TeachingParameters, "grammar_complexity"),
		"content_language_balance": lookup(cc.TeachingParameters, "content_language_balance"),
	})
	if err != nil {
		return "", templateError(err)
	}

	system, err := s.prompts.Render(prompt.Chat, map[string]string{
		"class_context":  classContext,
		"activity_types": s.prompts.DescribeActivityTypes(cc.ActivityTypes),
	})
	if err != nil {
		return "", templateError(err)
	}
	return s.relay.Complete(ctx, prompt.Chat, prompt.Messages(system, req.History, req.Message), llm.ModeText)
}

// StreamInline streams a continuation of the draft text into out and closes
// it when done.
func (s *LessonService) StreamInline(ctx context.Context, req *InlineRequest, out chan<- string) {
	msgs, err := s.inlineMessages(req)
	if err != nil {
		slog.Error("Failed to build inline prompt", "error", err)
		defer close(out)
		select {
		case out <- llm.StreamErrorMarker + err.Error():
		case <-ctx.Done():
		}
		return
	}
	s.relay.Stream(ctx, prompt.Inline, msgs, out)
}

func (s *LessonService) inlineMessages(req *InlineRequest) ([]model.Message, error) {
	textBefore := req.TextBeforeCursor
	if textBefore == "" {
		slog.Warn("No text before cursor, falling back to full content", "content_length", len(req.Content))
		textBefore = req.Content
	}

	system, err := s.prompts.Render(prompt.Inline, nil)
	if err != nil {
		return nil, templateError(err)
	}
	user, err := s.prompts.Render(prompt.InlineUser, map[string]string{
		"text_before_cursor": textBefore,
		"command":            req.Command,
	})
	if err != nil {
		return nil, templateError(err)
	}
	return prompt.Messages(system, nil, user), nil
}

// formatActivity pretty-prints the current activity the way it is shown to the
// model. Missing or null activities become an empty object.
func formatActivity(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "{}", nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return "", fmt.Errorf("%w: current_activity is not valid JSON: %v", app_errors.ErrValidation, err)
	}
	return buf.String(), nil
}

func lookup(values map[string]any, key string) string {
	v, ok := values[key]
	if !ok || v == nil {
		return notSpecified
	}
	return fmt.Sprint(v)
}

// templateError marks a template/call-site mismatch as an internal failure.
func templateError(err error) error {
	return fmt.Errorf("%w: %v", app_errors.ErrInternal, err)
}
