package config

import (
	"fmt"
	"sort"

	"github.com/muurk/scrollprompt/internal/prompt"
)

// CurrentVersion is the registry file format version
const CurrentVersion = 1

// FallbackProfile is used when neither a flag nor the registry names one
const FallbackProfile = "nanos"

// Registry represents the entire user configuration file
type Registry struct {
	Version        int                 `yaml:"version"`
	DefaultProfile string              `yaml:"default_profile,omitempty"`
	Profiles       map[string]*Profile `yaml:"profiles,omitempty"` // User profiles, keyed by name
	Panel          *PanelPrefs         `yaml:"panel,omitempty"`
}

// Profile is a named screen geometry
type Profile struct {
	Description  string `yaml:"description,omitempty"`
	CharsPerLine int    `yaml:"chars_per_line"`
	LinesPerPage int    `yaml:"lines_per_page"`
	ShowIndex    bool   `yaml:"show_index"`
	MaxPages     int    `yaml:"max_pages,omitempty"` // 0 uses the prompt default
}

// PanelPrefs are defaults for the websocket panel server
type PanelPrefs struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Advertise bool   `yaml:"advertise"`
	Instance  string `yaml:"instance,omitempty"` // mDNS instance name, hostname if empty
}

// Layout converts the profile to a prompt layout
func (p *Profile) Layout() prompt.Layout {
	return prompt.Layout{
		CharsPerLine: p.CharsPerLine,
		LinesPerPage: p.LinesPerPage,
		ShowIndex:    p.ShowIndex,
		MaxPages:     p.MaxPages,
	}
}

// BuiltinProfiles returns the profiles every installation has
func BuiltinProfiles() map[string]*Profile {
	return map[string]*Profile{
		"nanos": {
			Description:  "Two-button device, one line",
			CharsPerLine: 16,
			LinesPerPage: 1,
			ShowIndex:    true,
		},
		"nanox": {
			Description:  "Two-button device, three lines",
			CharsPerLine: 16,
			LinesPerPage: 3,
			ShowIndex:    true,
		},
		"wide": {
			Description:  "Four line character LCD",
			CharsPerLine: 20,
			LinesPerPage: 4,
		},
	}
}

// NewRegistry creates a new Registry with default values
func NewRegistry() *Registry {
	return &Registry{
		Version:  CurrentVersion,
		Profiles: make(map[string]*Profile),
		Panel:    defaultPanelPrefs(),
	}
}

func defaultPanelPrefs() *PanelPrefs {
	return &PanelPrefs{
		Host: "127.0.0.1",
		Port: 8765,
	}
}

// GetProfile looks up a profile. User profiles shadow built-in ones. An
// empty name resolves to the default profile.
func (r *Registry) GetProfile(name string) (*Profile, error) {
	if name == "" {
		name = r.DefaultProfileName()
	}
	if p, ok := r.Profiles[name]; ok {
		return p, nil
	}
	if p, ok := BuiltinProfiles()[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown profile %q", name)
}

// Layout resolves a profile name to a validated layout
func (r *Registry) Layout(name string) (prompt.Layout, error) {
	p, err := r.GetProfile(name)
	if err != nil {
		return prompt.Layout{}, err
	}
	layout := p.Layout()
	if err := layout.Validate(); err != nil {
		return prompt.Layout{}, fmt.Errorf("profile %q: %w", name, err)
	}
	return layout, nil
}

// DefaultProfileName returns the configured default or FallbackProfile
func (r *Registry) DefaultProfileName() string {
	if r.DefaultProfile != "" {
		return r.DefaultProfile
	}
	return FallbackProfile
}

// SetProfile adds or replaces a user profile after validating it
func (r *Registry) SetProfile(name string, p *Profile) error {
	if err := validateProfile(name, p); err != nil {
		return err
	}
	if r.Profiles == nil {
		r.Profiles = make(map[string]*Profile)
	}
	r.Profiles[name] = p
	return nil
}

// SetDefault makes name the default profile. The profile must exist.
func (r *Registry) SetDefault(name string) error {
	if _, err := r.GetProfile(name); err != nil {
		return err
	}
	r.DefaultProfile = name
	return nil
}

// IsBuiltin reports whether name is a built-in profile not shadowed by the user
func (r *Registry) IsBuiltin(name string) bool {
	if _, ok := r.Profiles[name]; ok {
		return false
	}
	_, ok := BuiltinProfiles()[name]
	return ok
}

// ProfileNames returns built-in and user profile names, sorted
func (r *Registry) ProfileNames() []string {
	seen := make(map[string]bool)
	var names []string
	for name := range BuiltinProfiles() {
		seen[name] = true
		names = append(names, name)
	}
	for name := range r.Profiles {
		if !seen[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// PanelPrefs returns the panel preferences, never nil
func (r *Registry) PanelPrefs() *PanelPrefs {
	if r.Panel == nil {
		r.Panel = defaultPanelPrefs()
	}
	return r.Panel
}
