package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInitWritesSample(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, []string{"config", "init", "--path", target})
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, "Wrote sample configuration") {
		t.Fatalf("unexpected output: %q", out)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[render]") {
		t.Fatal("sample config missing [render] section")
	}
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(target, []byte("# existing"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if _, err := runCLI(t, []string{"config", "init", "--path", target}); err == nil {
		t.Fatal("expected error without --overwrite")
	}
	if _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowPrintsResolvedValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCLI(t, []string{"config", "show"})
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "file absent; showing defaults") {
		t.Fatalf("expected defaults note, got %q", out)
	}
	if !strings.Contains(out, "ffe600") {
		t.Fatalf("expected default color in output: %q", out)
	}
}

func TestRenderRequiresTarget(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := runCLI(t, []string{"render"}); err == nil {
		t.Fatal("expected error when --target is missing")
	}
}

func TestRenderTableFormatsRows(t *testing.T) {
	out := renderTable(
		[]string{"Output", "Frames"},
		[][]string{{"/tmp/x.gif", "30"}},
		[]columnAlignment{alignLeft, alignRight},
	)
	if !strings.Contains(out, "/tmp/x.gif") || !strings.Contains(out, "30") {
		t.Fatalf("unexpected table: %q", out)
	}
}
