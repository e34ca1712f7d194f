package model

// Message roles understood by the completion provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single role-tagged entry of a conversation sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatContext describes the class for the chat assistant. Every field is
// optional and unknown keys are ignored.
type ChatContext struct {
	ClassContext       map[string]any `json:"class_context"`
	ActivityTypes      []string       `json:"activity_types"`
	TeachingParameters map[string]any `json:"teaching_parameters"`
}

// TagContext is the surrounding lesson information used to suggest related tags.
type TagContext struct {
	TopicOverview string   `json:"topicOverview"`
	KeyConcepts   []string `json:"keyConcepts"`
	ExistingTags  []string `json:"existingTags"`
	Content       string   `json:"content"`
}
