package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) failed: %v", args, err)
	}
	return out.String()
}

func TestComputeDefaults(t *testing.T) {
	got := runCommand(t, "compute")

	for _, want := range []string{
		"PPV         48.65%",
		"Population  10,000",
		"TP 450", "FP 475", "TN 9,025", "FN 50",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

// The interactive --population flag uses zero as its "unset" sentinel
// so the config file's population survives when the flag is omitted.
// compute's flag must not share its variable, or registering the
// 10,000 default would destroy the sentinel during init.
func TestPopulationFlagsAreIndependent(t *testing.T) {
	if popSize != 0 {
		t.Fatalf("interactive population flag value = %d, want 0 (unset sentinel)", popSize)
	}

	runCommand(t, "compute", "--population", "2000")

	if popSize != 0 {
		t.Errorf("compute --population leaked into the interactive flag value: %d", popSize)
	}
	if computePop != 2000 {
		t.Errorf("compute population = %d, want 2000", computePop)
	}
}

// The bare root command must never build a logger: the calculator
// screen owns the terminal. Subcommands still get one.
func TestLoggerSkippedForInteractiveRoot(t *testing.T) {
	logger = nil

	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Fatalf("PersistentPreRunE(root) failed: %v", err)
	}
	if logger != nil {
		t.Error("root command should not initialize a logger")
	}

	if err := rootCmd.PersistentPreRunE(computeCmd, nil); err != nil {
		t.Fatalf("PersistentPreRunE(compute) failed: %v", err)
	}
	if logger == nil {
		t.Error("subcommands should initialize a logger")
	}
}

func TestComputeUndefined(t *testing.T) {
	got := runCommand(t, "compute", "--prevalence", "0", "--specificity", "100")

	if !strings.Contains(got, "PPV         n/a") {
		t.Errorf("output should mark PPV as n/a:\n%s", got)
	}
}
