package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// maxSteps bounds one Send so that self-scheduling commands cannot hang a test.
const maxSteps = 1000

// Driver runs a model the way the Bubble Tea runtime does, but synchronously:
// every command returned by Update is executed and its messages are fed back
// in until the queue drains.
type Driver struct {
	model  tea.Model
	ignore func(tea.Msg) bool
	Seen   []tea.Msg
	Quit   bool
}

// NewDriver wraps m. Messages for which ignore returns true are dropped
// before reaching the model; use it for animation ticks.
func NewDriver(m tea.Model, ignore func(tea.Msg) bool) *Driver {
	if ignore == nil {
		ignore = func(tea.Msg) bool { return false }
	}
	return &Driver{model: m, ignore: ignore}
}

// Init runs the model's Init command.
func (d *Driver) Init() *Driver {
	d.drain(Collect(d.model.Init()))
	return d
}

// Send delivers msgs one at a time, draining commands after each.
func (d *Driver) Send(msgs ...tea.Msg) *Driver {
	for _, msg := range msgs {
		d.drain([]tea.Msg{msg})
	}
	return d
}

// Type sends one key press per rune of text.
func (d *Driver) Type(text string) *Driver {
	return d.Send(Type(text)...)
}

// Model returns the current model.
func (d *Driver) Model() tea.Model {
	return d.model
}

// View returns the current view without ANSI codes.
func (d *Driver) View() string {
	return StripANSI(d.model.View())
}

func (d *Driver) drain(queue []tea.Msg) {
	for steps := 0; len(queue) > 0 && steps < maxSteps; steps++ {
		msg := queue[0]
		queue = queue[1:]

		if d.ignore(msg) {
			continue
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			d.Quit = true
			continue
		}

		d.Seen = append(d.Seen, msg)
		var cmd tea.Cmd
		d.model, cmd = d.model.Update(msg)
		queue = append(queue, Collect(cmd)...)
	}
}
