package config

import (
	"fmt"
	"regexp"

	"github.com/hay-kot/criterio"
)

var profileNamePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Validate checks the registry structure
func (r *Registry) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if r.Version != CurrentVersion {
		errs = errs.Append("version", fmt.Errorf("unsupported config version: %d (expected %d)", r.Version, CurrentVersion))
	}

	for name, p := range r.Profiles {
		if err := validateProfile(name, p); err != nil {
			errs = errs.Append(fmt.Sprintf("profiles[%q]", name), err)
		}
	}

	if r.DefaultProfile != "" {
		if _, err := r.GetProfile(r.DefaultProfile); err != nil {
			errs = errs.Append("default_profile", err)
		}
	}

	if r.Panel != nil {
		if r.Panel.Port < 0 || r.Panel.Port > 65535 {
			errs = errs.Append("panel.port", fmt.Errorf("port %d out of range", r.Panel.Port))
		}
	}

	return errs.ToError()
}

func validateProfile(name string, p *Profile) error {
	if p == nil {
		return criterio.NewFieldErrors("profile", fmt.Errorf("profile %q is empty", name))
	}
	if err := criterio.ValidateStruct(
		criterio.Run("name", name, profileName),
		criterio.Run("chars_per_line", p.CharsPerLine, atLeastOne),
		criterio.Run("lines_per_page", p.LinesPerPage, atLeastOne),
		criterio.Run("max_pages", p.MaxPages, notNegative),
	); err != nil {
		return err
	}

	if err := p.Layout().ValidateConfirmation(); err != nil {
		return criterio.NewFieldErrors("layout", err)
	}
	return nil
}

func profileName(name string) error {
	if !profileNamePattern.MatchString(name) {
		return fmt.Errorf("invalid profile name %q: use lowercase letters, digits, '-' and '_'", name)
	}
	return nil
}

func atLeastOne(n int) error {
	if n < 1 {
		return fmt.Errorf("must be at least 1, got %d", n)
	}
	return nil
}

func notNegative(n int) error {
	if n < 0 {
		return fmt.Errorf("must not be negative, got %d", n)
	}
	return nil
}
