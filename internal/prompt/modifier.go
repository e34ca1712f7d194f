package prompt

import "strings"

// Headers placed in front of the appended modifier texts.
const (
	RequirementsHeader      = "\n\nAdditional requirements:\n"
	ThemeRequirementsHeader = "\n\nAdditional theme requirements:\n"
)

// NoActivityTypes is the prose used when none of the requested activity types is known.
const NoActivityTypes = "No specific activity types selected"

// Modifier is a named snippet that biases generation toward a theme or a teaching
// pattern. Theme modifiers carry Body; pattern modifiers carry Name and Description.
type Modifier struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Body        string `yaml:"text,omitempty"`
}

// IsPattern reports whether m is a {name, description} pattern modifier.
func (m Modifier) IsPattern() bool {
	return m.Name != ""
}

// Text is what gets appended to a system prompt.
func (m Modifier) Text() string {
	if m.IsPattern() {
		return m.Name + ":\n" + m.Description
	}
	return m.Body
}

// Prose renders m as a bullet for the chat assistant's activity list.
func (m Modifier) Prose() string {
	if m.IsPattern() {
		return "- " + m.Name + ":\n  " + m.Description
	}
	return "- " + m.Key + ":\n  " + m.Body
}

// Modifier returns the modifier registered under key.
func (l *Library) Modifier(key string) (Modifier, bool) {
	m, ok := l.modifiers[key]
	return m, ok
}

// ApplyModifiers appends header and then each known modifier's text to system, in
// the order given. Unknown names are skipped; when none is known system is
// returned untouched.
func (l *Library) ApplyModifiers(system, header string, names []string) string {
	var b strings.Builder
	applied := false
	for _, name := range names {
		m, ok := l.modifiers[name]
		if !ok {
			continue
		}
		if !applied {
			b.WriteString(system)
			b.WriteString(header)
			applied = true
		}
		b.WriteString("\n")
		b.WriteString(m.Text())
		b.WriteString("\n")
	}
	if !applied {
		return system
	}
	return b.String()
}

// DescribeActivityTypes lists the known modifiers among names in prose, one per
// bullet.
func (l *Library) DescribeActivityTypes(names []string) string {
	var lines []string
	for _, name := range names {
		if m, ok := l.modifiers[name]; ok {
			lines = append(lines, m.Prose())
		}
	}
	if len(lines) == 0 {
		return NoActivityTypes
	}
	return strings.Join(lines, "\n")
}
