package term

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/GiGurra/cmder"

	"github.com/dai/vscode-node-debug/term/nls"
)

const (
	defaultWhichPath     = "/usr/bin/which"
	terminateScriptName  = "terminateProcess.sh"
	terminalHelperName   = "terminalHelper.applescript"
	defaultOsascriptPath = "/usr/bin/osascript"
	defaultLinuxTerminal = "/usr/bin/gnome-terminal"
	defaultWindowsShell  = "cmd.exe"
)

// defaultService is the fallback strategy for platforms without a real
// terminal implementation, and the shared POSIX baseline the Linux and
// macOS strategies reuse for tree termination and PATH probing.
type defaultService struct {
	killScript string
	whichPath  string
}

func newDefaultService() *defaultService {
	return &defaultService{
		killScript: companionScript(terminateScriptName),
		whichPath:  defaultWhichPath,
	}
}

// LaunchInTerminal always fails: rather than silently doing nothing on an
// unsupported platform, callers get an explicit, catchable error.
func (s *defaultService) LaunchInTerminal(ctx context.Context, dir string, args []string, env map[string]string) (*os.Process, error) {
	return nil, &Error{Message: nls.Localize(nls.NotImplemented, runtime.GOOS)}
}

// KillTree hands the pid to the companion termination script, which walks
// and kills the entire descendant tree. POSIX process groups do not
// propagate kill signals to grandchildren on their own, hence the script.
// Its exit code is not interpreted; only a failure to start it is an error.
func (s *defaultService) KillTree(ctx context.Context, pid int) error {
	cmd := exec.CommandContext(ctx, s.killScript, strconv.Itoa(pid))
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return err
	}
	return nil
}

// IsOnPath resolves program through which. When which itself is missing
// from its fixed location the probe answers true rather than false: a
// missing prober says nothing about the program, and a false negative
// would disable otherwise working setups.
func (s *defaultService) IsOnPath(program string) bool {
	if _, err := os.Stat(s.whichPath); err != nil {
		return true
	}
	result := cmder.New(s.whichPath, program).Run(context.Background())
	return result.Err == nil
}
