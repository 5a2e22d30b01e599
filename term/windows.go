package term

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/GiGurra/cmder"

	"github.com/dai/vscode-node-debug/term/nls"
)

// windowsService opens a fresh console window through cmd.exe's start
// builtin and terminates trees with taskkill.
type windowsService struct {
	shell string
	start func(*exec.Cmd) error
}

func newWindowsService() *windowsService {
	return &windowsService{
		shell: defaultWindowsShell,
		start: (*exec.Cmd).Start,
	}
}

// LaunchInTerminal spawns
//
//	cmd.exe /c start "<dir> - <title>" /wait cmd.exe /c "<command> & pause"
//
// The outer cmd.exe opens the window, the inner one runs the program, and
// the pause keeps the window alive after the program exits. The command
// line is pre-quoted here and handed to CreateProcess verbatim. Returns the
// outer cmd.exe handle immediately; the window closing is not awaited.
func (s *windowsService) LaunchInTerminal(ctx context.Context, dir string, args []string, env map[string]string) (*os.Process, error) {
	title := `"` + dir + ` - ` + nls.Localize(nls.ConsoleTitle) + `"`
	command := `"` + QuoteWindows(args) + ` & pause"`
	shellArgs := []string{"/c", "start", title, "/wait", s.shell, "/c", command}

	cmd := exec.CommandContext(ctx, s.shell, shellArgs...)
	cmd.Dir = dir
	cmd.Env = MergeEnv(os.Environ(), env)
	setVerbatimArgs(cmd, s.shell+" "+strings.Join(shellArgs, " "))
	if err := s.start(cmd); err != nil {
		return nil, err
	}
	return cmd.Process, nil
}

// KillTree shells out to taskkill; /T covers the whole tree, /F forces
// termination. Any non-zero exit is a failure, reported together with the
// utility's combined output when there is any.
func (s *windowsService) KillTree(ctx context.Context, pid int) error {
	result := cmder.New("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run(ctx)
	if result.Err != nil {
		if combined := strings.TrimSpace(result.Combined); combined != "" {
			return fmt.Errorf("taskkill pid %d: %w\n%s", pid, result.Err, combined)
		}
		return fmt.Errorf("taskkill pid %d: %w", pid, result.Err)
	}
	return nil
}

// IsOnPath probes through the where utility; anything but a clean zero
// exit collapses to false.
func (s *windowsService) IsOnPath(program string) bool {
	result := cmder.New("where", program).Run(context.Background())
	return result.Err == nil
}
