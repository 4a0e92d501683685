package selector

import tea "github.com/charmbracelet/bubbletea"

// Name is the form field name the value is submitted under.
func (s *Select) Name() string {
	return s.opts.Name
}

func (s *Select) Required() bool {
	return s.opts.Required
}

func (s *Select) Disabled() bool {
	return s.opts.Disabled
}

// SetDisabled enables or disables the field. Disabling closes an open menu.
func (s *Select) SetDisabled(v bool) tea.Cmd {
	s.opts.Disabled = v
	if v {
		return s.menu.Close()
	}
	return nil
}

// FormValue returns the submitted name and value. A disabled field submits
// nothing.
func (s *Select) FormValue() (string, string, bool) {
	if s.opts.Disabled || s.opts.Name == "" {
		return "", "", false
	}
	return s.opts.Name, s.Value(), true
}

// Validate reports ErrValueMissing for a required field with no value.
func (s *Select) Validate() error {
	if s.opts.Required && !s.opts.Disabled && s.Value() == "" {
		return ErrValueMissing
	}
	return nil
}

// CheckValidity reports whether Validate passes.
func (s *Select) CheckValidity() bool {
	return s.Validate() == nil
}

// RestoreState restores a previously submitted value.
func (s *Select) RestoreState(value string) {
	s.SetValue(value)
}

// FormReset restores the default selection.
func (s *Select) FormReset() {
	s.Reset()
}
