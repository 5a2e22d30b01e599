package which

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// lookPathService probes through the local resolver, standing in for the
// platform service so the test controls the outcome via PATH alone.
type lookPathService struct{}

func (lookPathService) LaunchInTerminal(ctx context.Context, dir string, args []string, env map[string]string) (*os.Process, error) {
	return nil, nil
}

func (lookPathService) KillTree(ctx context.Context, pid int) error { return nil }

func (lookPathService) IsOnPath(program string) bool {
	_, err := exec.LookPath(program)
	return err == nil
}

func TestRunWhich(t *testing.T) {
	tempDir := t.TempDir()

	exeName := "mytestexe"
	if runtime.GOOS == "windows" {
		exeName += ".exe"
	}
	exePath := filepath.Join(tempDir, exeName)
	if err := os.WriteFile(exePath, nil, 0o755); err != nil {
		t.Fatalf("failed to create executable: %v", err)
	}

	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	tests := []struct {
		name         string
		programs     []string
		wantExitCode int
		wantStdout   string
		wantStderr   string
	}{
		{
			name:         "existing executable",
			programs:     []string{exeName},
			wantExitCode: 0,
			wantStdout:   exePath,
		},
		{
			name:         "nonexistent executable",
			programs:     []string{"nonexistentcmd_12345"},
			wantExitCode: 1,
			wantStderr:   "not found",
		},
		{
			name:         "mixed existing and nonexistent",
			programs:     []string{exeName, "nonexistentcmd_12345"},
			wantExitCode: 1,
			wantStdout:   exePath,
			wantStderr:   "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			exitCode := runWhich(lookPathService{}, &Params{Programs: tt.programs}, &stdout, &stderr)

			if exitCode != tt.wantExitCode {
				t.Errorf("runWhich() exitCode = %v, want %v", exitCode, tt.wantExitCode)
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want substring %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want substring %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
