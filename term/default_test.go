package term

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeScript drops an executable shell script into dir and returns its path.
func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestDefaultLaunchInTerminalAlwaysFails(t *testing.T) {
	svc := newDefaultService()
	proc, err := svc.LaunchInTerminal(context.Background(), t.TempDir(), []string{"node", "x.js"}, nil)
	if proc != nil {
		t.Errorf("got process handle %v, want nil", proc)
	}
	var terr *Error
	if !errors.As(err, &terr) {
		t.Fatalf("got %T (%v), want *term.Error", err, err)
	}
	if terr.LinkID != 0 {
		t.Errorf("LinkID = %d, want 0 for the unsupported-platform error", terr.LinkID)
	}
	if !strings.Contains(terr.Message, runtime.GOOS) {
		t.Errorf("message %q does not name the platform %q", terr.Message, runtime.GOOS)
	}
}

func TestKillTreeFailsWhenScriptMissing(t *testing.T) {
	svc := &defaultService{
		killScript: filepath.Join(t.TempDir(), "nope.sh"),
		whichPath:  defaultWhichPath,
	}
	if err := svc.KillTree(context.Background(), 1234); err == nil {
		t.Error("KillTree succeeded with a nonexistent termination script")
	}
}

func TestKillTreeIgnoresScriptExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	svc := &defaultService{
		killScript: writeScript(t, t.TempDir(), "terminateProcess.sh", "exit 3"),
	}
	if err := svc.KillTree(context.Background(), 1234); err != nil {
		t.Errorf("KillTree returned %v for a script exit code, want nil (only spawn errors fail)", err)
	}
}

func TestKillTreePassesPidToScript(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()
	outFile := filepath.Join(dir, "got-pid")
	svc := &defaultService{
		killScript: writeScript(t, dir, "terminateProcess.sh", `printf '%s' "$1" > `+QuoteBash([]string{outFile})),
	}
	if err := svc.KillTree(context.Background(), 4321); err != nil {
		t.Fatalf("KillTree failed: %v", err)
	}
	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("script did not run: %v", err)
	}
	if string(got) != "4321" {
		t.Errorf("script received %q, want %q", got, "4321")
	}
}

// The probe deliberately answers true when the which utility itself is
// missing from its fixed path: a missing prober says nothing about the
// program. Recorded here so the trade-off is not "fixed" by accident.
func TestIsOnPathOptimisticWhenWhichMissing(t *testing.T) {
	svc := &defaultService{
		whichPath: filepath.Join(t.TempDir(), "which"),
	}
	if !svc.IsOnPath("definitely-not-a-real-program-12345") {
		t.Error("IsOnPath = false with a missing which utility, want the optimistic true")
	}
}

func TestIsOnPathNeverPanics(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	dir := t.TempDir()
	failing := &defaultService{whichPath: writeScript(t, dir, "which-fail", "exit 1")}
	succeeding := &defaultService{whichPath: writeScript(t, dir, "which-ok", "exit 0")}

	inputs := []string{
		"",
		"node",
		"no such program",
		"$(touch /tmp/pwned)",
		"a;b|c&d",
		"../../etc/passwd",
		strings.Repeat("x", 4096),
	}
	for _, input := range inputs {
		if failing.IsOnPath(input) {
			t.Errorf("IsOnPath(%.20q) = true with a failing probe, want false", input)
		}
		if !succeeding.IsOnPath(input) {
			t.Errorf("IsOnPath(%.20q) = false with a succeeding probe, want true", input)
		}
	}
}
