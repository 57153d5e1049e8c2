// ABOUTME: Tests for the version command
// ABOUTME: Verifies version output and SetVersion wiring

package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	if cmd.Use != "version" {
		t.Errorf("Use = %q, want %q", cmd.Use, "version")
	}
	if cmd.Short == "" {
		t.Error("Short description should not be empty")
	}
}

func TestVersionCmd_Output(t *testing.T) {
	SetVersion("1.2.3", "abc1234", "2026-08-28")
	defer SetVersion("dev", "none", "unknown")

	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	outputStr := output.String()
	if !strings.Contains(outputStr, "cfarag 1.2.3") {
		t.Errorf("output should contain version, got %q", outputStr)
	}
	if !strings.Contains(outputStr, "abc1234") {
		t.Errorf("output should contain commit, got %q", outputStr)
	}
	if !strings.Contains(outputStr, "2026-08-28") {
		t.Errorf("output should contain build date, got %q", outputStr)
	}
}

func TestVersionCmd_Defaults(t *testing.T) {
	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(output.String(), "cfarag dev") {
		t.Errorf("default output should show dev version, got %q", output.String())
	}
}
