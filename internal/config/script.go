package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/muurk/scrollprompt/internal/prompt"
)

// Script is a file of named workflows
type Script struct {
	Profile   string     `yaml:"profile,omitempty"` // Profile the script was written for
	Workflows []Workflow `yaml:"workflows"`
}

// Workflow is an ordered list of sessions followed by one confirmation
type Workflow struct {
	Name     string        `yaml:"name"`
	Sessions []SessionSpec `yaml:"sessions"`
	Confirm  []string      `yaml:"confirm,omitempty"`
}

// SessionSpec is one titled block of text
type SessionSpec struct {
	Title string `yaml:"title"`
	Text  string `yaml:"text"`
}

// LoadScript reads and validates a workflow script
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a workflow script
func ParseScript(data []byte) (*Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return &script, nil
}

// Validate checks the script structure. Geometry-dependent checks such as
// title width happen when a workflow is run against a layout.
func (s *Script) Validate() error {
	if len(s.Workflows) == 0 {
		return criterio.NewFieldErrors("workflows", fmt.Errorf("array is empty"))
	}

	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]bool)

	for i, w := range s.Workflows {
		field := fmt.Sprintf("workflows[%d]", i)

		if strings.TrimSpace(w.Name) == "" {
			errs = errs.Append(field+".name", fmt.Errorf("name is required"))
		} else if seen[w.Name] {
			errs = errs.Append(field+".name", fmt.Errorf("duplicate name %q", w.Name))
		}
		seen[w.Name] = true

		if len(w.Sessions) == 0 && len(w.Confirm) == 0 {
			errs = errs.Append(field, fmt.Errorf("workflow needs at least one session or confirm line"))
		}
		for j, sess := range w.Sessions {
			if strings.ContainsAny(sess.Title, "\r\n") {
				errs = errs.Append(fmt.Sprintf("%s.sessions[%d].title", field, j), fmt.Errorf("title must be a single line"))
			}
		}
	}

	return errs.ToError()
}

// Find returns the workflow called name
func (s *Script) Find(name string) (*Workflow, error) {
	for i := range s.Workflows {
		if s.Workflows[i].Name == name {
			return &s.Workflows[i], nil
		}
	}
	return nil, fmt.Errorf("workflow %q not found", name)
}

// Names returns the workflow names in file order
func (s *Script) Names() []string {
	names := make([]string, len(s.Workflows))
	for i, w := range s.Workflows {
		names[i] = w.Name
	}
	return names
}

// PromptSessions converts the workflow sessions for the prompt core
func (w *Workflow) PromptSessions() []prompt.Session {
	sessions := make([]prompt.Session, len(w.Sessions))
	for i, s := range w.Sessions {
		sessions[i] = prompt.Session{Title: s.Title, Text: s.Text}
	}
	return sessions
}
