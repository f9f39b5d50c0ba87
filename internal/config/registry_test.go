package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS != "windows" && runtime.GOOS != "darwin" {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/tmp/xdg", "scrollprompt"), dir)
	}

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Contains(t, dir, "scrollprompt")
}

func TestGetConfigPath(t *testing.T) {
	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, "config.yaml", filepath.Base(path))
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, CurrentVersion, reg.Version)
	assert.Empty(t, reg.Profiles)
	assert.Equal(t, FallbackProfile, reg.DefaultProfileName())
	assert.Equal(t, 8765, reg.PanelPrefs().Port)
	require.NoError(t, reg.Validate())
}

func TestRegistry_BuiltinLayouts(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name      string
		chars     int
		lines     int
		showIndex bool
	}{
		{"nanos", 16, 1, true},
		{"nanox", 16, 3, true},
		{"wide", 20, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := reg.Layout(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.chars, layout.CharsPerLine)
			assert.Equal(t, tt.lines, layout.LinesPerPage)
			assert.Equal(t, tt.showIndex, layout.ShowIndex)
			assert.True(t, reg.IsBuiltin(tt.name))
		})
	}

	_, err := reg.Layout("unknown")
	assert.ErrorContains(t, err, "unknown profile")
}

func TestRegistry_UserProfileShadowsBuiltin(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.SetProfile("nanos", &Profile{CharsPerLine: 18, LinesPerPage: 2}))

	layout, err := reg.Layout("")
	require.NoError(t, err)
	assert.Equal(t, 18, layout.CharsPerLine)
	assert.False(t, reg.IsBuiltin("nanos"))
}

func TestRegistry_SetProfileValidation(t *testing.T) {
	reg := NewRegistry()

	err := reg.SetProfile("Bad Name", &Profile{CharsPerLine: 0, LinesPerPage: 1, MaxPages: -1})

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 3)
	assert.Equal(t, "name", fieldErrs[0].Field)
	assert.Equal(t, "chars_per_line", fieldErrs[1].Field)
	assert.Equal(t, "max_pages", fieldErrs[2].Field)
	assert.Empty(t, reg.Profiles)
}

func TestRegistry_SetProfileCannotConfirm(t *testing.T) {
	reg := NewRegistry()

	err := reg.SetProfile("tiny", &Profile{CharsPerLine: 4, LinesPerPage: 1})

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "layout", fieldErrs[0].Field)
	assert.ErrorContains(t, err, "does not fit")
	assert.Empty(t, reg.Profiles)

	require.NoError(t, reg.SetProfile("tiny", &Profile{CharsPerLine: 4, LinesPerPage: 2}))
}

func TestRegistry_SetDefault(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.SetDefault("nanox"))
	assert.Equal(t, "nanox", reg.DefaultProfileName())

	assert.Error(t, reg.SetDefault("missing"))
	assert.Equal(t, "nanox", reg.DefaultProfileName())
}

func TestRegistry_ProfileNames(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.SetProfile("kiosk", &Profile{CharsPerLine: 40, LinesPerPage: 2}))
	require.NoError(t, reg.SetProfile("wide", &Profile{CharsPerLine: 24, LinesPerPage: 4}))

	assert.Equal(t, []string{"kiosk", "nanos", "nanox", "wide"}, reg.ProfileNames())
}

func TestRegistry_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	reg := NewRegistry()
	require.NoError(t, reg.SetProfile("kiosk", &Profile{
		Description:  "Lobby kiosk",
		CharsPerLine: 40,
		LinesPerPage: 2,
		ShowIndex:    true,
		MaxPages:     50,
	}))
	require.NoError(t, reg.SetDefault("kiosk"))
	reg.PanelPrefs().Advertise = true

	require.NoError(t, reg.Save(path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file should be renamed away")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# scrollprompt configuration file"))

	loaded, err := LoadRegistry(path)
	require.NoError(t, err)
	assert.Equal(t, "kiosk", loaded.DefaultProfileName())
	assert.True(t, loaded.PanelPrefs().Advertise)

	layout, err := loaded.Layout("")
	require.NoError(t, err)
	assert.Equal(t, 40, layout.CharsPerLine)
	assert.Equal(t, 50, layout.MaxPages)
}

func TestLoadRegistry_Missing(t *testing.T) {
	reg, err := LoadRegistry(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, reg.Version)
}

func TestLoadRegistry_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "version: [", "failed to parse"},
		{"wrong version", "version: 2\n", "unsupported config version"},
		{"bad profile", "version: 1\nprofiles:\n  tiny:\n    chars_per_line: 0\n    lines_per_page: 1\n", "must be at least 1"},
		{"unknown default", "version: 1\ndefault_profile: ghost\n", "unknown profile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))

			_, err := LoadRegistry(path)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRegistry_SaveRejectsInvalid(t *testing.T) {
	reg := NewRegistry()
	reg.Profiles["broken"] = &Profile{CharsPerLine: 16}

	err := reg.Save(filepath.Join(t.TempDir(), "config.yaml"))
	assert.ErrorContains(t, err, "refusing to save")
}
