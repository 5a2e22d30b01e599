package term

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/dai/vscode-node-debug/term/nls"
)

// macService drives Terminal.app through an AppleScript helper invoked via
// osascript. Arguments and environment entries travel as individually
// flagged osascript parameters, so the helper reconstructs argv and env
// without any shell quoting involved.
type macService struct {
	*defaultService
	osascript string
	helper    string
}

func newMacService() *macService {
	return &macService{
		defaultService: newDefaultService(),
		osascript:      defaultOsascriptPath,
		helper:         companionScript(terminalHelperName),
	}
}

// LaunchInTerminal awaits the osascript run. On a non-zero exit whatever
// the helper wrote to stderr is preferred over the generic exit-code
// message. The helper is only a launcher, so no handle is returned.
func (s *macService) LaunchInTerminal(ctx context.Context, dir string, args []string, env map[string]string) (*os.Process, error) {
	osaArgs := osaLaunchArgs(s.helper, dir+" - "+nls.Localize(nls.ConsoleTitle), dir, args, env)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.osascript, osaArgs...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, &Error{Message: msg}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &Error{Message: nls.Localize(nls.ProgramFailed, s.osascript, exitErr.ExitCode())}
		}
		return nil, err
	}
	return nil, nil
}

// osaLaunchArgs builds the helper invocation: -t title, -w workdir, one -pa
// per argument in caller order, one -e per KEY=VALUE in sorted key order.
func osaLaunchArgs(helper, title, dir string, args []string, env map[string]string) []string {
	osaArgs := []string{helper, "-t", title, "-w", dir}
	for _, arg := range args {
		osaArgs = append(osaArgs, "-pa", arg)
	}
	keys := lo.Keys(env)
	sort.Strings(keys)
	for _, key := range keys {
		osaArgs = append(osaArgs, "-e", key+"="+env[key])
	}
	return osaArgs
}
