// Package calc implements the interactive PPV calculator screen.
// The screen is split across files in the usual Bubble Tea shape:
//   - model.go: types, construction, Init
//   - update.go: key handling and parameter mutation
//   - view.go: rendering (all derived values recomputed here)
//   - help.go: the markdown explainer overlay
package calc

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"ppvcalc/cmd/ppvcalc/ui"
	"ppvcalc/internal/params"
	"ppvcalc/internal/population"
)

// row pairs one parameter field with its slider gauge and numeric
// entry box. Both controls are bound to the same store value.
type row struct {
	field  params.Field
	slider ui.Slider
	input  textinput.Model
}

// Model is the single-screen calculator. The parameter store is the
// only state the screen owns; PPV, NPV, and the population cells are
// derived from it on every render and never cached.
type Model struct {
	store      *params.Store
	population int

	rows    [params.FieldCount]row
	focus   int
	editing bool

	styles   ui.Styles
	renderer *glamour.TermRenderer
	showHelp bool

	width int

	quitting bool
}

// Options configure the screen at startup.
type Options struct {
	Theme       ui.Theme
	Population  int
	Sensitivity float64
	Specificity float64
	Prevalence  float64
}

// DefaultOptions returns the stock screen configuration: detected
// theme, 10,000 people, 90/95/5.
func DefaultOptions() Options {
	return Options{
		Theme:       ui.DetectTheme(),
		Population:  population.DefaultSize,
		Sensitivity: params.DefaultSensitivity,
		Specificity: params.DefaultSpecificity,
		Prevalence:  params.DefaultPrevalence,
	}
}

// NewModel creates the calculator screen.
func NewModel(opts Options) Model {
	if opts.Population <= 0 {
		opts.Population = population.DefaultSize
	}

	store := params.NewStore()
	store.Set(params.Sensitivity, opts.Sensitivity)
	store.Set(params.Specificity, opts.Specificity)
	store.Set(params.Prevalence, opts.Prevalence)

	styles := ui.NewStyles(opts.Theme)

	var renderer *glamour.TermRenderer
	if opts.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
	} else {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(80),
		)
	}

	m := Model{
		store:      store,
		population: opts.Population,
		styles:     styles,
		renderer:   renderer,
		width:      ui.DefaultWidth,
	}

	for f := params.Field(0); f < params.FieldCount; f++ {
		input := textinput.New()
		input.Prompt = ""
		input.CharLimit = 8
		input.Width = ui.EntryWidth

		m.rows[f] = row{
			field:  f,
			slider: ui.NewSlider(opts.Theme),
			input:  input,
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
