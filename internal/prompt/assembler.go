package prompt

import (
	"fmt"

	app_errors "clil-ai/backend/internal/errors"
	"clil-ai/backend/internal/model"
)

// SectionAll selects the full lesson plan instead of a single section.
const SectionAll = "all"

var sectionTemplates = map[string]string{
	"1": "section_1",
	"2": "section_2",
	"3": "section_3",
	"4": "section_4",
	"5": "section_5",
}

// SectionTemplate returns the template used to customize one lesson-plan section.
func SectionTemplate(section string) (string, error) {
	name, ok := sectionTemplates[section]
	if !ok {
		return "", fmt.Errorf("%w: %s", app_errors.ErrUnknownSection, section)
	}
	return name, nil
}

// Messages builds the conversation sent to the model: the system prompt first,
// then the prior history in order, then the new user turn.
func Messages(system string, history []model.Message, user string) []model.Message {
	msgs := make([]model.Message, 0, len(history)+2)
	msgs = append(msgs, model.Message{Role: model.RoleSystem, Content: system})
	msgs = append(msgs, history...)
	msgs = append(msgs, model.Message{Role: model.RoleUser, Content: user})
	return msgs
}
