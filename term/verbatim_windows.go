//go:build windows

package term

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// setVerbatimArgs hands the prebuilt command line to CreateProcess as-is.
// The strategy has already quoted every argument; letting the runtime
// escape the vector again would double the quoting. The new process group
// keeps Ctrl+C in the calling console away from the launched window.
func setVerbatimArgs(cmd *exec.Cmd, cmdLine string) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine:       cmdLine,
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP,
	}
}
