package api

import (
	"net/http"

	// This blank import is required by swaggo to find the API definitions.
	_ "clil-ai/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
// staticDir is served at the root; an empty value disables the file server.
func NewRouter(lessonHandler *LessonHandler, staticDir string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Public Routes ---
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	})

	// --- Lesson Routes ---
	// No timeout middleware: completions can take a while and /generate_inline
	// holds its connection open for the whole stream.
	r.Post("/generate", lessonHandler.GenerateActivity)
	r.Post("/generate_helper", lessonHandler.GenerateHelper)
	r.Post("/generate_insight", lessonHandler.GenerateInsight)
	r.Post("/generate_inline", lessonHandler.GenerateInline)
	r.Post("/generate_related_tags", lessonHandler.GenerateRelatedTags)
	r.Post("/chat", lessonHandler.Chat)

	// --- Frontend File Server ---
	if staticDir != "" {
		fileServer := http.FileServer(http.Dir(staticDir))
		r.Handle("/*", http.StripPrefix("/", fileServer))
	}

	return r
}
