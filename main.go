package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/spf13/cobra"

	"github.com/dai/vscode-node-debug/cmd/killtree"
	"github.com/dai/vscode-node-debug/cmd/launch"
	"github.com/dai/vscode-node-debug/cmd/pstree"
	"github.com/dai/vscode-node-debug/cmd/which"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "dbgterm",
		Short:   "Run programs in an interactive terminal window and manage their process trees",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			launch.Cmd(),
			killtree.Cmd(),
			pstree.Cmd(),
			which.Cmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, hasBuildInfo := debug.ReadBuildInfo()
	if !hasBuildInfo {
		return "unknown-(no build info)"
	}

	versionString := bi.Main.Version
	if versionString == "" {
		versionString = "unknown-(no version)"
	}

	return versionString
}
