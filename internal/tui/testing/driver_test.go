package testing

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg struct{ n int }

// counter echoes pings back until n reaches zero.
type counter struct {
	received []int
}

func (c counter) Init() tea.Cmd {
	return func() tea.Msg { return pingMsg{n: 2} }
}

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pingMsg:
		c.received = append(c.received, msg.n)
		if msg.n == 0 {
			return c, tea.Quit
		}
		next := msg.n - 1
		return c, tea.Batch(
			func() tea.Msg { return pingMsg{n: next} },
			func() tea.Msg { return nil },
		)
	case tea.KeyMsg:
		c.received = append(c.received, -1)
	}
	return c, nil
}

func (c counter) View() string {
	return "\x1b[1mcounter\x1b[0m"
}

func TestDriver_DrainsCommands(t *testing.T) {
	d := NewDriver(counter{}, nil).Init()

	assert.Equal(t, []int{2, 1, 0}, d.Model().(counter).received)
	assert.True(t, d.Quit)
	assert.Equal(t, "counter", d.View())
}

func TestDriver_Ignore(t *testing.T) {
	ignore := func(msg tea.Msg) bool {
		_, ok := msg.(pingMsg)
		return ok
	}
	d := NewDriver(counter{}, ignore).Init().Type("ab")

	assert.Equal(t, []int{-1, -1}, d.Model().(counter).received)
	assert.False(t, d.Quit)
	assert.Len(t, d.Seen, 2)
}

func TestCollect(t *testing.T) {
	assert.Nil(t, Collect(nil))

	msgs := Collect(tea.Batch(
		func() tea.Msg { return pingMsg{n: 1} },
		tea.Batch(
			func() tea.Msg { return pingMsg{n: 2} },
			func() tea.Msg { return pingMsg{n: 3} },
		),
	))
	assert.Equal(t, []tea.Msg{pingMsg{n: 1}, pingMsg{n: 2}, pingMsg{n: 3}}, msgs)
}

func TestUtils(t *testing.T) {
	assert.Equal(t, "bold", StripANSI("\x1b[1mbold\x1b[0m"))
	assert.Equal(t, "a b c", NormalizeWhitespace("  a \n b\t c "))
	assert.True(t, ContainsInOrder("one two three", "one", "three"))
	assert.False(t, ContainsInOrder("one two three", "three", "one"))
}
