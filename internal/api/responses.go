package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	app_errors "clil-ai/backend/internal/errors"
)

// This file contains the response envelopes shared by the lesson routes and the
// helpers that write them.

// ErrorResponse is the failure envelope for every JSON route.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Incorrect API key provided"`
}

// StatusResponse is returned by the health check.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ActivityResponse carries a full lesson plan (a JSON object encoded as a string)
// or, when Section is set, the free-text rewrite of one section.
type ActivityResponse struct {
	Success bool   `json:"success" example:"true"`
	Section string `json:"section,omitempty" example:"3"`
	Data    string `json:"data"`
}

type HelperResponse struct {
	Success    bool   `json:"success" example:"true"`
	HelperData string `json:"helper_data"`
}

type InsightResponse struct {
	Success     bool   `json:"success" example:"true"`
	InsightData string `json:"insight_data"`
}

type RelatedTagsResponse struct {
	Success bool   `json:"success" example:"true"`
	Tags    string `json:"tags" example:"{\"related_tags\":[\"light\",\"chlorophyll\",\"glucose\"]}"`
}

type ChatResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
}

// respondWithError maps service errors to a status code. The error text is sent
// to the client as-is, provider messages included.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int

	switch {
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
	default:
		statusCode = http.StatusInternalServerError
	}

	slog.Warn("Responding with error", "status_code", statusCode, "error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Success: false, Error: err.Error()})
}

// respondWithJSON is a low-level helper for marshaling a payload to JSON
// and writing it to the http.ResponseWriter with a given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// decodeRequest reads a JSON body into dst. An empty body leaves dst at its zero
// value; a body that is not JSON is a validation error.
func decodeRequest(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: invalid request body: %s", app_errors.ErrValidation, err.Error())
	}
	return nil
}

// writeFragment writes one raw stream fragment and flushes it to the client. A
// write failure means the client has gone away.
func writeFragment(w http.ResponseWriter, flusher http.Flusher, fragment string) error {
	if _, err := io.WriteString(w, fragment); err != nil {
		return fmt.Errorf("failed to write fragment to stream: %w", err)
	}
	flusher.Flush()
	return nil
}
