package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestDisplayValue(t *testing.T) {
	if got := displayValue(""); got != "-" {
		t.Errorf("displayValue(empty) = %q, want %q", got, "-")
	}
	if got := displayValue("registry.json"); got != "registry.json" {
		t.Errorf("displayValue = %q, want %q", got, "registry.json")
	}
}

func TestConfigListShowsEveryKey(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := configListCmd.RunE(cmd, nil); err != nil {
		t.Fatalf("config list: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "KEY") || !strings.Contains(out, "VALUE") {
		t.Errorf("output missing table header:\n%s", out)
	}
	for _, key := range settingKeys {
		if !strings.Contains(out, key) {
			t.Errorf("output missing %s:\n%s", key, out)
		}
	}
}
