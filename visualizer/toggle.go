package visualizer

// ToggleState holds whether body part labels are drawn.  It is changed by the
// UI control bound to it or by the host, and read once per compose pass.
type ToggleState struct {
	enabled bool
	control ToggleControl
}

// NewToggleState returns a toggle with the given initial state
func NewToggleState(enabled bool) *ToggleState {
	return &ToggleState{enabled: enabled}
}

// Enabled returns the current state
func (t *ToggleState) Enabled() bool {
	return t.enabled
}

// Set changes the state
func (t *ToggleState) Set(enabled bool) {
	t.enabled = enabled
}

// Apply changes the state and updates the bound control to match
func (t *ToggleState) Apply(enabled bool) {
	t.enabled = enabled

	if t.control != nil {
		t.control.SetChecked(enabled)
	}
}

// Toggle flips the state and returns the new value
func (t *ToggleState) Toggle() bool {
	t.enabled = !t.enabled
	return t.enabled
}

// Bind makes control reflect the toggle state and routes the control's
// changes back into it
func (t *ToggleState) Bind(control ToggleControl) {
	if control == nil {
		return
	}
	t.control = control
	control.SetChecked(t.enabled)
	control.OnChanged(t.Set)
}
