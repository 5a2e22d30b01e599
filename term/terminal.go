// Package term launches user programs inside a visible interactive terminal
// window and terminates whole process trees rooted at a given pid. Neither
// operation has a portable native equivalent: the command shell, the
// automation layer and the process-group semantics differ per operating
// system, so the package ships one strategy per supported platform behind a
// single Service contract.
package term

import (
	"context"
	"os"
	"runtime"
	"sync"
)

// Service is the platform-neutral contract for terminal launching, tree
// termination and PATH probing. All implementations are stateless between
// calls; concurrent calls produce independent external processes with no
// mutual ordering.
type Service interface {
	// LaunchInTerminal runs args (program first, its arguments after) inside
	// a new interactive terminal window with dir as working directory and
	// env merged over the ambient environment. It blocks until the platform
	// launcher has been started or, on platforms that await the launcher,
	// until it exits. The returned process handle is the launcher process
	// where the platform surfaces one, nil otherwise. Failures are either a
	// *Error or the native spawn error; the call never partially succeeds.
	LaunchInTerminal(ctx context.Context, dir string, args []string, env map[string]string) (*os.Process, error)

	// KillTree terminates the process identified by pid together with every
	// direct and transitive descendant. The pid is caller-supplied and not
	// tracked by this package.
	KillTree(ctx context.Context, pid int) error

	// IsOnPath reports whether program can be resolved through the user's
	// PATH. It is total: any probing failure collapses to false and no
	// input makes it panic.
	IsOnPath(program string) bool
}

// Error describes a failed terminal operation. LinkID, when non-zero, is an
// opaque code a caller can use to look up a remediation help topic.
type Error struct {
	Message string
	LinkID  int
}

func (e *Error) Error() string { return e.Message }

// LinkIDProgramNotFound marks launch failures caused by a missing terminal
// emulator, so callers can offer installation guidance instead of a generic
// error dialog.
const LinkIDProgramNotFound = 20002

var (
	defaultOnce sync.Once
	defaultSvc  Service
)

// Default returns the Service for the running operating system. The strategy
// is selected once per process and reused; it holds no resources between
// calls, so there is nothing to tear down.
func Default() Service {
	defaultOnce.Do(func() {
		defaultSvc = newService(runtime.GOOS)
	})
	return defaultSvc
}

var (
	_ Service = (*defaultService)(nil)
	_ Service = (*windowsService)(nil)
	_ Service = (*linuxService)(nil)
	_ Service = (*macService)(nil)
)

// newService maps a GOOS identifier to a strategy. The mapping is total:
// systems without a real implementation get the default service, which
// cannot open terminal windows but still kills trees and probes PATH.
func newService(goos string) Service {
	switch goos {
	case "windows":
		return newWindowsService()
	case "darwin":
		return newMacService()
	case "linux":
		return newLinuxService()
	default:
		return newDefaultService()
	}
}
