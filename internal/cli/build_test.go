package cli

import (
	"testing"

	"github.com/regkit-labs/regkit/internal/config"
	"github.com/spf13/cobra"
)

func newSettingCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("output", "", "")
	return cmd
}

func TestSettingFlagWins(t *testing.T) {
	cmd := newSettingCmd()
	if err := cmd.Flags().Set("output", "custom.json"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}

	got := setting(cmd, "output", config.KeyOutput, "registry.json")
	if got != "custom.json" {
		t.Errorf("setting() = %q, want %q", got, "custom.json")
	}
}

func TestSettingFallsBackToDefault(t *testing.T) {
	cmd := newSettingCmd()

	// A key nothing configures, so the fallback must win.
	got := setting(cmd, "output", "no_such_key", "registry.json")
	if got != "registry.json" {
		t.Errorf("setting() = %q, want %q", got, "registry.json")
	}
}

func TestSettingReadsEnvironment(t *testing.T) {
	t.Setenv("REGKIT_OUTPUT", "env.json")
	config.Load()

	cmd := newSettingCmd()
	got := setting(cmd, "output", config.KeyOutput, "registry.json")
	if got != "env.json" {
		t.Errorf("setting() = %q, want %q", got, "env.json")
	}
}
