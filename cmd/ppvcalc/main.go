package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"ppvcalc/cmd/ppvcalc/calc"
	"ppvcalc/cmd/ppvcalc/config"
	"ppvcalc/cmd/ppvcalc/ui"
	"ppvcalc/internal/bayes"
	"ppvcalc/internal/format"
	"ppvcalc/internal/population"
)

var (
	// Global flags
	verbose   bool
	themeName string
	popSize   int

	// compute flags, in percent to match the screen. compute binds
	// its own population variable: the root flag's zero value is the
	// "unset" sentinel that lets the config file win, and a shared
	// variable would destroy it at flag-registration time.
	sensPct    float64
	specPct    float64
	prevPct    float64
	computePop int

	logger *zap.Logger
)

// rootCmd launches the interactive calculator screen.
var rootCmd = &cobra.Command{
	Use:   "ppvcalc",
	Short: "Interactive positive-predictive-value calculator",
	Long: `ppvcalc computes the positive predictive value (PPV) of a diagnostic
test from its sensitivity, its specificity, and the disease prevalence,
using Bayes' theorem, and breaks the result down over a hypothetical
population.

Run without arguments to open the interactive screen. Use "compute"
for a one-shot evaluation suitable for scripts.`,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// computeCmd evaluates once and prints to stdout.
var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "One-shot PPV evaluation for scripting",
	Long: `Computes PPV, NPV, and the population breakdown for the given test
characteristics and prints them to stdout.

Example:
  ppvcalc compute --sensitivity 90 --specificity 95 --prevalence 5`,
	RunE: runCompute,
}

func init() {
	// Assigned here rather than in the literal: referring to rootCmd
	// inside its own initializer is an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The interactive screen owns the terminal; no logger there.
		if cmd == rootCmd {
			return nil
		}

		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "color theme: light or dark (default: auto)")
	rootCmd.Flags().IntVar(&popSize, "population", 0, "population size for the breakdown (default: 10000)")

	computeCmd.Flags().Float64Var(&sensPct, "sensitivity", 90, "test sensitivity, percent")
	computeCmd.Flags().Float64Var(&specPct, "specificity", 95, "test specificity, percent")
	computeCmd.Flags().Float64Var(&prevPct, "prevalence", 5, "disease prevalence, percent")
	computeCmd.Flags().IntVar(&computePop, "population", population.DefaultSize, "population size for the breakdown")

	rootCmd.AddCommand(computeCmd)
}

// runInteractive opens the calculator screen with config-file
// defaults, letting flags override them.
func runInteractive() error {
	cfg, _ := config.Load()
	if themeName != "" {
		cfg.Theme = themeName
	}
	if popSize > 0 {
		cfg.Population = popSize
	}

	model := calc.NewModel(calc.Options{
		Theme:       ui.ThemeByName(cfg.Theme),
		Population:  cfg.Population,
		Sensitivity: cfg.Sensitivity,
		Specificity: cfg.Specificity,
		Prevalence:  cfg.Prevalence,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running calculator screen: %w", err)
	}
	return nil
}

func runCompute(cmd *cobra.Command, args []string) error {
	sens, spec, prev := sensPct/100, specPct/100, prevPct/100

	logger.Debug("computing predictive values",
		zap.Float64("sensitivity", sens),
		zap.Float64("specificity", spec),
		zap.Float64("prevalence", prev),
		zap.Int("population", computePop),
	)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "PPV         %s\n", format.Percent2(bayes.PPV(sens, spec, prev)))
	fmt.Fprintf(out, "NPV         %s\n", format.Percent2(bayes.NPV(sens, spec, prev)))
	fmt.Fprintf(out, "Population  %s\n", format.Count(computePop))

	cells, ok := population.Project(sens, spec, prev, computePop)
	if !ok {
		fmt.Fprintf(out, "Breakdown   %s\n", format.NotApplicable)
		return nil
	}
	fmt.Fprintf(out, "TP %s   FP %s   TN %s   FN %s\n",
		format.Count(cells.TP), format.Count(cells.FP),
		format.Count(cells.TN), format.Count(cells.FN))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
