package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muurk/scrollprompt/internal/prompt"
)

// execute runs the root command with args and returns its output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Package-level flag variables survive between runs
	logLevel, configPath, profileName = "", "", ""
	workflowName, promptTitle, promptText = "", "", ""
	eventList, plain, center, strict = "", false, false, false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "scrollprompt ") {
		t.Errorf("Expected version line, got %q", out)
	}
}

func TestSimulate_PlainTranscript(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "simulate",
		"--config", cfg, "--profile", "nanos",
		"--title", "Send", "--text", "Send 12.5 ETH to 0x12ab",
		"--events", "next,next,select", "--plain")
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	expected := "[1/2] Send (1/2) | Send 12.5 ETH to\n" +
		"[2/2] Send (2/2) | 0x12ab\n" +
		"[1/2] ✓ | Confirm\n" +
		"accepted\n"
	if out != expected {
		t.Errorf("Transcript mismatch:\nwant %q\ngot  %q", expected, out)
	}
}

func TestSimulate_Centered(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "simulate",
		"--config", cfg, "--text", "hi",
		"--events", "next,confirm", "--center")
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	if !strings.Contains(out, "Confirm") || !strings.HasSuffix(out, "accepted\n") {
		t.Errorf("Expected drawn screens and decision, got %q", out)
	}
	if !strings.HasPrefix(out, " ") {
		t.Errorf("Expected centered screen, got %q", out)
	}
}

func TestSimulate_StrictRejection(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "simulate",
		"--config", cfg, "--text", "hi",
		"--events", "next reject", "--plain", "--strict")
	if err != errRejected {
		t.Fatalf("Expected errRejected, got %v", err)
	}
	if !strings.HasSuffix(out, "rejected\n") {
		t.Errorf("Expected decision in output, got %q", out)
	}
}

func TestSimulate_EventsExhausted(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	_, err := execute(t, "simulate", "--config", cfg, "--text", "hi", "--events", "next", "--plain")
	if !prompt.IsInputError(err) {
		t.Errorf("Expected input error, got %v", err)
	}
}

func TestSimulate_NothingToShow(t *testing.T) {
	_, err := execute(t, "simulate", "--events", "next")
	if err == nil || !strings.Contains(err.Error(), "nothing to show") {
		t.Errorf("Expected 'nothing to show' error, got %v", err)
	}
}

func TestProfiles_AddDefaultList(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.yaml")

	if _, err := execute(t, "profiles", "add", "lcd2004", "--config", cfg, "--chars", "20", "--lines", "4"); err != nil {
		t.Fatalf("profiles add failed: %v", err)
	}
	if _, err := execute(t, "profiles", "default", "lcd2004", "--config", cfg); err != nil {
		t.Fatalf("profiles default failed: %v", err)
	}

	out, err := execute(t, "profiles", "list", "--config", cfg)
	if err != nil {
		t.Fatalf("profiles list failed: %v", err)
	}
	for _, want := range []string{"lcd2004 *", "20x4", "nanos", "builtin", "user"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in list output:\n%s", want, out)
		}
	}

	if _, err := execute(t, "profiles", "default", "ghost", "--config", cfg); err == nil {
		t.Error("Expected error for unknown profile")
	}
}
