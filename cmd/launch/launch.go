// Package launch implements the subcommand that runs a program inside a
// new interactive terminal window.
package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/dai/vscode-node-debug/cmd/common"
	"github.com/dai/vscode-node-debug/term"
)

type Params struct {
	Cwd  string   `short:"C" optional:"true" help:"Working directory for the program (default: current directory)"`
	Env  []string `short:"e" optional:"true" help:"Extra environment variables as KEY=VALUE, overriding the ambient environment"`
	Args []string `pos:"true" help:"Program to run followed by its arguments"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "launch",
		Short:       "Run a program inside a new interactive terminal window",
		Long:        "Opens a visible terminal window attached to the program's stdin/stdout, instead of running it as a silent background process. Prints the launcher pid on platforms that surface one.",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := runLaunch(term.Default(), params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runLaunch(svc term.Service, params *Params, stdout io.Writer) error {
	if len(params.Args) == 0 {
		return fmt.Errorf("no program given")
	}

	cwd := params.Cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to determine working directory: %w", err)
		}
		cwd = wd
	}

	env, err := parseEnv(params.Env)
	if err != nil {
		return err
	}

	proc, err := svc.LaunchInTerminal(context.Background(), cwd, params.Args, env)
	if err != nil {
		return err
	}
	if proc != nil {
		fmt.Fprintln(stdout, proc.Pid)
	}
	return nil
}

func parseEnv(pairs []string) (map[string]string, error) {
	for _, pair := range pairs {
		if !strings.Contains(pair, "=") {
			return nil, fmt.Errorf("invalid environment entry %q, expected KEY=VALUE", pair)
		}
	}
	return lo.Associate(pairs, func(pair string) (string, string) {
		key, value, _ := strings.Cut(pair, "=")
		return key, value
	}), nil
}
