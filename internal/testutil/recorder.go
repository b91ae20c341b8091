package testutil

import "github.com/atomicstack/segmented-pager/internal/pager"

// Recorder is a pager.Host that keeps every command it receives.
type Recorder struct {
	commands []pager.Command
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Apply implements pager.Host.
func (r *Recorder) Apply(cmd pager.Command) {
	r.commands = append(r.commands, cmd)
}

// Commands returns a copy of the recorded commands in emission order.
func (r *Recorder) Commands() []pager.Command {
	out := make([]pager.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Last returns the most recent command, or nil.
func (r *Recorder) Last() pager.Command {
	if len(r.commands) == 0 {
		return nil
	}
	return r.commands[len(r.commands)-1]
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.commands = nil
}

// Names lists command names in order.
func (r *Recorder) Names() []string {
	names := make([]string, len(r.commands))
	for i, cmd := range r.commands {
		names[i] = cmd.Name()
	}
	return names
}

// Indicators returns the recorded PlaceIndicator commands.
func (r *Recorder) Indicators() []pager.PlaceIndicator {
	var out []pager.PlaceIndicator
	for _, cmd := range r.commands {
		if c, ok := cmd.(pager.PlaceIndicator); ok {
			out = append(out, c)
		}
	}
	return out
}

// Scrolls returns the recorded SetScrollFraction commands.
func (r *Recorder) Scrolls() []pager.SetScrollFraction {
	var out []pager.SetScrollFraction
	for _, cmd := range r.commands {
		if c, ok := cmd.(pager.SetScrollFraction); ok {
			out = append(out, c)
		}
	}
	return out
}

// Buttons returns the recorded RenderButtons commands.
func (r *Recorder) Buttons() []pager.RenderButtons {
	var out []pager.RenderButtons
	for _, cmd := range r.commands {
		if c, ok := cmd.(pager.RenderButtons); ok {
			out = append(out, c)
		}
	}
	return out
}

// Layouts returns the recorded LayoutPages commands.
func (r *Recorder) Layouts() []pager.LayoutPages {
	var out []pager.LayoutPages
	for _, cmd := range r.commands {
		if c, ok := cmd.(pager.LayoutPages); ok {
			out = append(out, c)
		}
	}
	return out
}
