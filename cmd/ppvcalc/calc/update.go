package calc

import (
	"math"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"ppvcalc/cmd/ppvcalc/ui"
	"ppvcalc/internal/format"
)

// Update implements tea.Model. Every mutation path funnels through
// the parameter store; derived values are recomputed on the next
// View, so the data flow is strictly edit -> store -> recompute ->
// render, all within the same message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		for i := range m.rows {
			m.rows[i].slider.SetWidth(ui.FitSliderWidth(msg.Width))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q", "esc", "?":
			m.showHelp = false
		}
		return m, nil
	}

	if m.editing {
		return m.handleEditingKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "?":
		m.showHelp = true

	case "up", "shift+tab", "k":
		m.focus = (m.focus + len(m.rows) - 1) % len(m.rows)

	case "down", "tab", "j":
		m.focus = (m.focus + 1) % len(m.rows)

	case "left", "h":
		r := m.rows[m.focus]
		m.store.Set(r.field, r.slider.Decrement(m.store.Get(r.field)))

	case "right", "l":
		r := m.rows[m.focus]
		m.store.Set(r.field, r.slider.Increment(m.store.Get(r.field)))

	case "enter", "e":
		return m.beginEditing()
	}

	return m, nil
}

// beginEditing opens the focused row's numeric entry, pre-filled with
// the current value at display precision.
func (m Model) beginEditing() (tea.Model, tea.Cmd) {
	m.editing = true

	r := &m.rows[m.focus]
	r.input.SetValue(format.Percent1(m.store.Get(r.field)))
	r.input.CursorEnd()
	cmd := r.input.Focus()
	return m, cmd
}

func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		m.commitEntry()
		m.editing = false
		m.rows[m.focus].input.Blur()
		return m, nil

	case "esc":
		// Abandon the edit; the store keeps its previous value.
		m.editing = false
		m.rows[m.focus].input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	r := &m.rows[m.focus]
	r.input, cmd = r.input.Update(msg)
	return m, cmd
}

// commitEntry stores whatever the user typed. Entry is deliberately
// unvalidated: out-of-range values pass through unmodified and
// non-numeric text becomes NaN, which every readout downstream
// renders as the n/a marker.
func (m *Model) commitEntry() {
	r := m.rows[m.focus]
	v, err := strconv.ParseFloat(strings.TrimSpace(r.input.Value()), 64)
	if err != nil {
		v = math.NaN()
	}
	m.store.Set(r.field, v)
}
