package interfaces

import (
	"context"

	"clil-ai/backend/internal/service"
)

// The API layer depends on this interface rather than on *service.LessonService so
// handlers can be tested against a mock.

// LessonService defines the contract for the lesson-generation routes.
type LessonService interface {
	GenerateActivity(ctx context.Context, req *service.GenerateActivityRequest) (*service.ActivityResult, error)
	GenerateHelper(ctx context.Context, req *service.HelperRequest) (string, error)
	GenerateInsight(ctx context.Context, req *service.InsightRequest) (string, error)
	GenerateRelatedTags(ctx context.Context, req *service.RelatedTagsRequest) (string, error)
	Chat(ctx context.Context, req *service.ChatRequest) (string, error)
	// StreamInline writes fragments to out and closes it when the stream ends.
	StreamInline(ctx context.Context, req *service.InlineRequest, out chan<- string)
}
