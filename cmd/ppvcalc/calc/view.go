package calc

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ppvcalc/cmd/ppvcalc/ui"
	"ppvcalc/internal/bayes"
	"ppvcalc/internal/format"
	"ppvcalc/internal/population"
)

// View implements tea.Model. All derived values are recomputed here
// from the store, so the screen can never show stale results.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.helpView()
	}

	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("PPV Calculator"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Subtitle.Render("Positive predictive value of a diagnostic test, by Bayes' theorem"))
	sb.WriteString("\n\n")

	for i := range m.rows {
		sb.WriteString(m.renderRow(i))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderResult())
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Title.Render(
		"Breakdown over a population of " + format.Count(m.population)))
	sb.WriteString("\n")
	sb.WriteString(m.renderCards())
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(min(m.width-2, 72)))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render("↑/↓ select · ←/→ adjust · enter edit · ? help · q quit"))

	return sb.String()
}

func (m Model) renderRow(i int) string {
	r := m.rows[i]
	value := m.store.Get(r.field)

	var label string
	if i == m.focus {
		label = m.styles.LabelFocused.Render("▸ " + r.field.Label())
	} else {
		label = m.styles.Label.Render("  " + r.field.Label())
	}

	var entry string
	if m.editing && i == m.focus {
		entry = m.styles.Editing.Render(r.input.View())
	} else {
		txt := format.Percent1(value)
		if txt != format.NotApplicable {
			txt += " %"
		}
		entry = m.styles.Value.Render(txt)
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		label,
		r.slider.View(value),
		strings.Repeat(" ", ui.RowGutter),
		entry,
	)
}

func (m Model) renderResult() string {
	sens, spec, prev := m.store.Fractions()

	ppv := m.renderReadout("PPV", bayes.PPV(sens, spec, prev))
	npv := m.renderReadout("NPV", bayes.NPV(sens, spec, prev))

	line := lipgloss.JoinHorizontal(lipgloss.Center, ppv, "    ", npv)
	return m.styles.ResultPanel.Render(line)
}

// renderReadout formats one derived probability. The finiteness
// decision belongs to the formatter; the view only picks a color for
// the marker it gets back.
func (m Model) renderReadout(name string, frac float64) string {
	txt := format.Percent2(frac)
	style := m.styles.ResultValue
	if txt == format.NotApplicable {
		style = m.styles.NotANumber
	}
	return m.styles.Bold.Render(name+" ") + style.Render(txt)
}

func (m Model) renderCards() string {
	sens, spec, prev := m.store.Fractions()
	cells, ok := population.Project(sens, spec, prev, m.population)

	count := func(n int) string {
		if !ok {
			return format.NotApplicable
		}
		return format.Count(n)
	}

	cards := []ui.Card{
		{Title: "True Pos", Count: count(cells.TP), Color: ui.TruePositive},
		{Title: "False Pos", Count: count(cells.FP), Color: ui.FalsePositive},
		{Title: "True Neg", Count: count(cells.TN), Color: ui.TrueNegative},
		{Title: "False Neg", Count: count(cells.FN), Color: ui.FalseNegative},
	}
	return ui.RenderCards(cards, m.styles, m.width)
}
