package ui

import "github.com/charmbracelet/lipgloss"

// Card is one labeled count in the confusion-matrix breakdown.
type Card struct {
	Title string
	Count string
	Color lipgloss.Color
}

// RenderCards lays the cards out for the given terminal width: a
// single row of four on wide layouts, a 2x2 grid on narrow ones.
func RenderCards(cards []Card, styles Styles, terminalWidth int) string {
	perRow := CardsPerRow(terminalWidth)

	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rendered := make([]string, 0, perRow)
		for _, c := range cards[i:end] {
			title := styles.CardTitle.Foreground(c.Color).Render(c.Title)
			count := styles.CardCount.Render(c.Count)
			body := lipgloss.JoinVertical(lipgloss.Center, title, count)
			rendered = append(rendered, styles.Card.Width(CardWidth).Render(body))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
