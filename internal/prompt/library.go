package prompt

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var templateFS embed.FS

// Template names used by the service layer.
const (
	LessonPlan      = "lesson_plan"
	LessonPlanUser  = "lesson_plan_user"
	Helper          = "helper"
	HelperUser      = "helper_user"
	Insight         = "insight"
	InsightUser     = "insight_user"
	Inline          = "inline"
	InlineUser      = "inline_user"
	RelatedTags     = "related_tags"
	RelatedTagsUser = "related_tags_user"
	TagContext      = "tag_context"
	Chat            = "chat"
	ClassContext    = "class_context"
)

var requiredTemplates = []string{
	LessonPlan, LessonPlanUser,
	Helper, HelperUser,
	Insight, InsightUser,
	Inline, InlineUser,
	RelatedTags, RelatedTagsUser, TagContext,
	Chat, ClassContext,
	"section_1", "section_2", "section_3", "section_4", "section_5",
}

var placeholderPattern = regexp.MustCompile(`\{([a-z][a-z0-9_]*)\}`)

// Template is a named prompt text. Only the declared variables are placeholders;
// any other brace in Text is sent to the model as-is.
type Template struct {
	Name      string   `yaml:"name"`
	Variables []string `yaml:"variables"`
	Text      string   `yaml:"text"`
}

type libraryFile struct {
	Templates []Template `yaml:"templates"`
	Modifiers []Modifier `yaml:"modifiers"`
}

// Library is the read-only set of templates and modifiers. It is built once at
// startup and shared by every request.
type Library struct {
	templates map[string]Template
	modifiers map[string]Modifier
}

// LoadLibrary parses the templates compiled into the binary.
func LoadLibrary() (*Library, error) {
	return loadLibraryFS(templateFS, "templates")
}

func loadLibraryFS(fsys fs.FS, dir string) (*Library, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read template directory: %w", err)
	}

	lib := &Library{
		templates: make(map[string]Template),
		modifiers: make(map[string]Modifier),
	}
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", entry.Name(), err)
		}
		var file libraryFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("could not parse %s: %w", entry.Name(), err)
		}

		for _, t := range file.Templates {
			if t.Name == "" {
				return nil, fmt.Errorf("%w: unnamed template in %s", ErrInvalidLibrary, entry.Name())
			}
			if _, exists := lib.templates[t.Name]; exists {
				return nil, fmt.Errorf("%w: duplicate template %q", ErrInvalidLibrary, t.Name)
			}
			lib.templates[t.Name] = t
		}
		for _, m := range file.Modifiers {
			if m.Key == "" {
				return nil, fmt.Errorf("%w: modifier without key in %s", ErrInvalidLibrary, entry.Name())
			}
			if _, exists := lib.modifiers[m.Key]; exists {
				return nil, fmt.Errorf("%w: duplicate modifier %q", ErrInvalidLibrary, m.Key)
			}
			lib.modifiers[m.Key] = m
		}
	}
	return lib, nil
}

// Validate checks that every template the service needs is present and that each
// template's declared variables and placeholders agree.
func (l *Library) Validate() error {
	var problems []string
	for _, name := range requiredTemplates {
		if _, ok := l.templates[name]; !ok {
			problems = append(problems, fmt.Sprintf("template %q is missing", name))
		}
	}
	for name, t := range l.templates {
		declared := make(map[string]bool, len(t.Variables))
		for _, v := range t.Variables {
			declared[v] = true
			if !strings.Contains(t.Text, "{"+v+"}") {
				problems = append(problems, fmt.Sprintf("template %q never uses variable %q", name, v))
			}
		}
		for _, match := range placeholderPattern.FindAllStringSubmatch(t.Text, -1) {
			if !declared[match[1]] {
				problems = append(problems, fmt.Sprintf("template %q has undeclared placeholder %q", name, match[0]))
			}
		}
	}
	if len(problems) == 0 {
		return nil
	}
	sort.Strings(problems)
	return fmt.Errorf("%w: %s", ErrInvalidLibrary, strings.Join(problems, "; "))
}

// Template returns the named template.
func (l *Library) Template(name string) (Template, bool) {
	t, ok := l.templates[name]
	return t, ok
}

// Render substitutes vars into the named template in a single pass, so values
// that contain braces are never rescanned. Extra entries in vars are ignored.
func (l *Library) Render(name string, vars map[string]string) (string, error) {
	t, ok := l.templates[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	if len(t.Variables) == 0 {
		return t.Text, nil
	}

	pairs := make([]string, 0, 2*len(t.Variables))
	for _, v := range t.Variables {
		value, ok := vars[v]
		if !ok {
			return "", fmt.Errorf("%w: %q in template %s", ErrMissingVariable, v, name)
		}
		pairs = append(pairs, "{"+v+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(t.Text), nil
}
