package term

import (
	"context"
	"errors"
	"os"
	"os/exec"

	"github.com/dai/vscode-node-debug/term/nls"
)

// linuxService opens the program in a gnome-terminal window; tree
// termination and PATH probing come from the shared POSIX baseline.
type linuxService struct {
	*defaultService
	emulator string
}

func newLinuxService() *linuxService {
	return &linuxService{
		defaultService: newDefaultService(),
		emulator:       defaultLinuxTerminal,
	}
}

// LaunchInTerminal requires the terminal emulator at its fixed location and
// fails with a remediation link id when it is missing. The window runs the
// quoted command through bash, then waits for a keypress so the output
// survives the program's exit. The emulator process is awaited: it exits as
// soon as the window is up, so there is no useful handle to return.
func (s *linuxService) LaunchInTerminal(ctx context.Context, dir string, args []string, env map[string]string) (*os.Process, error) {
	if _, err := os.Stat(s.emulator); err != nil {
		return nil, &Error{
			Message: nls.Localize(nls.ProgramNotFound, s.emulator),
			LinkID:  LinkIDProgramNotFound,
		}
	}

	bashCommand := QuoteBash(args) + `; echo; read -p "` + nls.Localize(nls.PressAnyKey) + `" -n1;`
	title := dir + " - " + nls.Localize(nls.ConsoleTitle)

	cmd := exec.CommandContext(ctx, s.emulator, "--title", title, "-x", "bash", "-c", bashCommand)
	cmd.Dir = dir
	cmd.Env = MergeEnv(os.Environ(), env)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &Error{Message: nls.Localize(nls.ProgramFailed, s.emulator, exitErr.ExitCode())}
		}
		return nil, err
	}
	return nil, nil
}
