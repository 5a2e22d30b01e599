// Package pstree implements the subcommand that renders a process tree,
// showing what kill-tree would terminate for a given root pid.
package pstree

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shirou/gopsutil/v3/process"
	"github.com/spf13/cobra"

	"github.com/dai/vscode-node-debug/cmd/common"
)

const maxCommandWidth = 80

type Params struct {
	Pid int32 `pos:"true" optional:"true" help:"Root process id (default: the current process)"`
}

func Cmd() *cobra.Command {
	return boa.CmdT[Params]{
		Use:         "ps-tree",
		Short:       "Show a process and all its descendants",
		ParamEnrich: common.DefaultParamEnricher(),
		RunFunc: func(params *Params, cmd *cobra.Command, args []string) {
			if err := runPsTree(params, os.Stdout); err != nil {
				fmt.Fprintf(os.Stderr, "ps-tree: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

// row is one process in the rendered tree. Depth is relative to the root.
type row struct {
	pid     int32
	ppid    int32
	name    string
	command string
	depth   int
}

func runPsTree(params *Params, stdout io.Writer) error {
	root := params.Pid
	if root == 0 {
		root = int32(os.Getpid())
	}

	procs, err := process.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	rows := snapshot(procs)
	tree := flattenTree(root, rows)
	if len(tree) == 0 {
		return fmt.Errorf("no such process: %d", root)
	}

	render(tree, stdout)
	return nil
}

// snapshot extracts the fields we render from the live process list.
// Processes that exit mid-walk are skipped rather than reported.
func snapshot(procs []*process.Process) []row {
	rows := make([]row, 0, len(procs))
	for _, p := range procs {
		ppid, err := p.Ppid()
		if err != nil {
			continue
		}
		name, _ := p.Name()
		command, _ := p.Cmdline()
		rows = append(rows, row{pid: p.Pid, ppid: ppid, name: name, command: command})
	}
	return rows
}

// flattenTree returns the root and its descendants in depth-first order
// with depths filled in, or nil when the root pid is not in rows.
func flattenTree(root int32, rows []row) []row {
	byPid := make(map[int32]row, len(rows))
	children := make(map[int32][]int32, len(rows))
	for _, r := range rows {
		byPid[r.pid] = r
		children[r.ppid] = append(children[r.ppid], r.pid)
	}
	for _, pids := range children {
		sort.Slice(pids, func(i, j int) bool { return pids[i] < pids[j] })
	}

	rootRow, ok := byPid[root]
	if !ok {
		return nil
	}

	var tree []row
	var walk func(r row, depth int)
	walk = func(r row, depth int) {
		r.depth = depth
		tree = append(tree, r)
		for _, child := range children[r.pid] {
			if child == r.pid {
				continue
			}
			walk(byPid[child], depth+1)
		}
	}
	walk(rootRow, 0)
	return tree
}

func render(tree []row, stdout io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"PID", "PPID", "NAME", "COMMAND"})
	for _, r := range tree {
		command := r.command
		if len(command) > maxCommandWidth {
			command = command[:maxCommandWidth-3] + "..."
		}
		indent := strings.Repeat("  ", r.depth)
		t.AppendRow(table.Row{r.pid, r.ppid, indent + r.name, command})
	}
	t.Render()
}
