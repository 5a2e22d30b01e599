// Package which implements the subcommand that probes the user's PATH.
package which

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"github.com/dai/vscode-node-debug/cmd/common"
	"github.com/dai/vscode-node-debug/term"
)

type Params struct {
	Programs []string `pos:"true" help:"Program names to locate."`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "which",
		Short:       "Locate programs in the user's PATH",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if len(params.Programs) == 0 {
				_ = cmd.Help()
				os.Exit(1)
			}
			os.Exit(runWhich(term.Default(), params, os.Stdout, os.Stderr))
		},
	}.ToCobra()
}

func runWhich(svc term.Service, params *Params, stdout, stderr io.Writer) int {
	exitCode := 0
	for _, program := range params.Programs {
		if !svc.IsOnPath(program) {
			_, _ = fmt.Fprintf(stderr, "%s not found\n", program)
			exitCode = 1
			continue
		}
		if path, err := exec.LookPath(program); err == nil {
			_, _ = fmt.Fprintln(stdout, path)
		} else {
			// The platform probe answered true but the local resolver
			// disagrees (e.g. the which fallback quirk); report the name.
			_, _ = fmt.Fprintln(stdout, program)
		}
	}
	return exitCode
}
