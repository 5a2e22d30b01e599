//go:build !windows

package term

import "os/exec"

// setVerbatimArgs is only meaningful on Windows, where argument vectors
// are flattened into a single command line. Elsewhere exec passes the
// vector through untouched.
func setVerbatimArgs(cmd *exec.Cmd, cmdLine string) {}
