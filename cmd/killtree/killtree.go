// Package killtree implements the subcommand that terminates whole process
// trees.
package killtree

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/spf13/cobra"

	"github.com/dai/vscode-node-debug/cmd/common"
	"github.com/dai/vscode-node-debug/term"
)

type Params struct {
	Pids []int32 `pos:"true" help:"Process ids whose trees should be terminated"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "kill-tree",
		Short:       "Terminate processes together with all their descendants",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if len(params.Pids) == 0 {
				_ = cmd.Help()
				os.Exit(1)
			}
			os.Exit(runKillTree(term.Default(), params, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func runKillTree(svc term.Service, params *Params, stdout, stderr io.Writer) int {
	exitCode := 0
	for _, pid := range params.Pids {
		fmt.Fprintf(stdout, "killing %s and descendants\n", describePid(pid))
		if err := svc.KillTree(context.Background(), int(pid)); err != nil {
			fmt.Fprintf(stderr, "failed to kill tree of pid %d: %v\n", pid, err)
			exitCode = 1
		}
	}
	return exitCode
}

// describePid names the target when it is still inspectable; killing a pid
// that already exited is not an error, so a bare pid is fine too.
func describePid(pid int32) string {
	if proc, err := process.NewProcess(pid); err == nil {
		if name, err := proc.Name(); err == nil && name != "" {
			return fmt.Sprintf("%s (pid %d)", name, pid)
		}
	}
	return fmt.Sprintf("pid %d", pid)
}
