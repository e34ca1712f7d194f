package main

import (
	"os"

	"clil-ai/backend/internal/app"
)

// @title        CLIL AI API
// @version      1.0
// @description  Generates CLIL lesson plans, teaching helpers and chat replies by relaying prompts to an OpenAI-compatible completion API.
// @BasePath     /
func main() {
	os.Exit(app.Run())
}
