package calc

import "strings"

// helpMarkdown is the explainer shown on the "?" overlay.
const helpMarkdown = `# How this calculator works

The screen computes the **positive predictive value (PPV)** of a
diagnostic test: the probability that a person who tests positive
actually has the disease.

## Inputs

- **Sensitivity** — P(test positive | disease present)
- **Specificity** — P(test negative | disease absent)
- **Prevalence** — P(disease present) in the tested population

## Bayes' theorem

    PPV = (sens × prev) / (sens × prev + (1 − spec) × (1 − prev))

When the denominator is zero (for example prevalence 0% with
specificity 100%, where nobody can test positive) the value is
undefined and shown as *n/a*.

## The breakdown

The four cards project the same probabilities onto a hypothetical
population. The diseased group is sized first, each group's expected
cell is rounded once, and the sibling cell is the exact complement,
so the four counts always sum to the population.

## Keys

| Key | Action |
| --- | ------ |
| ↑/↓ | select a parameter |
| ←/→ | adjust by 0.1 |
| enter | type an exact value |
| esc | cancel typing |
| q | quit |
`

// helpView renders the markdown overlay. Falls back to the raw
// markdown when the renderer is unavailable or panics.
func (m Model) helpView() string {
	body := m.safeRenderMarkdown(helpMarkdown)
	return body + "\n" + m.styles.Footer.Render("? or esc to close")
}

// safeRenderMarkdown renders markdown with panic recovery.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return strings.TrimRight(rendered, "\n")
		}
	}
	return content
}
