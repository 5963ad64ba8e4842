/*
Command kvtree loads key/value files into a B-tree and prints the resulting
tree structure.

Usage:

	kvtree load [flags] <file>
	kvtree version
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/kvtree/btree"
	"github.com/npillmayer/kvtree/kvload"
	"github.com/npillmayer/kvtree/render"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
)

type loadFlags struct {
	order     int
	maxNodes  int
	format    string
	separator string
	trim      bool
	strict    bool
	trace     string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "kvtree",
		Short:        "Load key/value files into a B-tree and inspect its structure",
		SilenceUsage: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetOut(out)

	var flags loadFlags
	loadCmd := &cobra.Command{
		Use:   "load <file>",
		Short: "Insert all entries of a file into a B-tree and print the tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoad(cmd.Context(), cmd.OutOrStdout(), args[0], flags)
		},
	}
	loadCmd.Flags().IntVarP(&flags.order, "order", "n", btree.DefaultOrder, "maximum number of entries per node")
	loadCmd.Flags().IntVar(&flags.maxNodes, "max-nodes", 0, "node budget of the tree (0 = unlimited)")
	loadCmd.Flags().StringVarP(&flags.format, "format", "f", "outline", "output format: outline, dot, html, console or none")
	loadCmd.Flags().StringVar(&flags.separator, "sep", "\t", "separator between key and value")
	loadCmd.Flags().BoolVar(&flags.trim, "trim", false, "trim white space around keys and values")
	loadCmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on lines without separator")
	loadCmd.Flags().StringVar(&flags.trace, "trace", "error", "trace level: error, info or debug")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kvtree %s (%s)\n", Version, Commit)
		},
	}
	rootCmd.AddCommand(loadCmd, versionCmd)
	return rootCmd
}

func runLoad(ctx context.Context, out io.Writer, name string, flags loadFlags) error {
	level, err := traceLevel(flags.trace)
	if err != nil {
		return err
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	if ctx == nil {
		ctx = context.Background()
	}
	tree, err := btree.New[string, string](btree.Config[string]{
		Order:    flags.order,
		Compare:  strings.Compare,
		MaxNodes: flags.maxNodes,
	})
	if err != nil {
		return err
	}
	stats, err := kvload.LoadFile(ctx, name, tree, &kvload.Options{
		Separator: flags.separator,
		TrimSpace: flags.trim,
		Strict:    flags.strict,
	})
	if err != nil {
		return err
	}
	if err := tree.Check(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d entries in %d nodes, height %d, order %d (%d lines, %d skipped)\n",
		tree.Len(), tree.NodeCount(), tree.Height(), tree.Order(), stats.Lines, stats.Skipped)
	if lo, ok := tree.MinKey(); ok {
		hi, _ := tree.MaxKey()
		fmt.Fprintf(out, "keys from %q to %q\n", lo, hi)
	}
	switch flags.format {
	case "outline":
		_, err = io.WriteString(out, render.OutlineString(tree))
	case "dot":
		err = render.Dot(tree, out)
	case "html":
		err = render.HTML(tree, out)
		if err == nil {
			_, err = io.WriteString(out, "\n")
		}
	case "console":
		err = render.Console(tree, out, nil)
	case "none":
	default:
		err = fmt.Errorf("unknown output format %q", flags.format)
	}
	return err
}

func traceLevel(name string) (tracing.TraceLevel, error) {
	switch strings.ToLower(name) {
	case "error":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q", name)
}
