// File: check.go
// Title: scenelang check Command
// Description: Parses one or more scene files and reports structured
//              syntax errors with positions. Supports fragment mode,
//              include expansion, statistics output, and a watch mode
//              that re-checks files when they change on disk.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial check command

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	slerror "github.com/candela-render/scenelang/core/error"
	"github.com/candela-render/scenelang/scene"
	slfilex "github.com/candela-render/scenelang/utils/filex"
	"github.com/candela-render/scenelang/utils/slicex"
)

var (
	checkFragment     bool
	checkExpand       bool
	checkIncludePaths []string
	checkWatch        bool
	checkStats        bool
)

var checkCmd = &cobra.Command{
	Use:   "check [files...]",
	Short: "Parse scene files and report syntax errors",
	Long: `Parses each given scene file and reports the first syntax error
with its line, column, and error code. Files check independently; the
command exits non-zero if any file fails.

With --expand, Include directives are resolved against the include
search paths and the expanded document is checked as a whole.

With --watch, the command keeps running and re-checks a file whenever
it changes on disk. Stop with Ctrl+C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkFragment, "fragment", false,
		"Check as an include fragment instead of a full scene")
	checkCmd.Flags().BoolVar(&checkExpand, "expand", false,
		"Resolve and check Include directives")
	checkCmd.Flags().StringArrayVarP(&checkIncludePaths, "include-path", "I", nil,
		"Additional include search path (repeatable)")
	checkCmd.Flags().BoolVar(&checkWatch, "watch", false,
		"Re-check files whenever they change")
	checkCmd.Flags().BoolVar(&checkStats, "stats", false,
		"Print statement tallies for files that check cleanly")
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(checkIncludePaths)
	if err != nil {
		return err
	}

	if checkWatch {
		return watchFiles(cmd, engine, args)
	}

	var firstErr error
	for _, path := range args {
		if err := checkFile(cmd, engine, path); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// checkFile checks one file and prints the verdict
func checkFile(cmd *cobra.Command, engine *scene.Engine, path string) error {
	input, err := slfilex.ReadString(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		return slerror.Wrap(err, fmt.Sprintf("failed to read %s", path)).
			WithCode(slerror.CodeIOError)
	}

	parse := engine.ParseScene
	if checkFragment {
		parse = engine.ParseFragment
	}

	document, err := parse(input)
	if err != nil {
		if pe, ok := underlyingParseError(err); ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d:%d: [%s] %s\n",
				path, pe.Pos.Line, pe.Pos.Column, pe.Code, pe.Message)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		}
		return err
	}

	if checkExpand {
		result, err := engine.Expand(cmd.Context(), document)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			return err
		}
		document = result.Document
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", path)
	if checkStats {
		printStats(cmd, engine.Stats(document))
	}
	return nil
}

// watchFiles re-checks each file whenever it changes on disk
func watchFiles(cmd *cobra.Command, engine *scene.Engine, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return slerror.Wrap(err, "failed to create file watcher").
			WithCode(slerror.CodeIOError)
	}
	defer watcher.Close()

	// Watch directories, not files: editors replace files on save and the
	// direct watch dies with the old inode
	dirs := make([]string, 0, len(paths))
	for _, path := range paths {
		dir := slfilex.Dir(path)
		if !slicex.Contains(dirs, dir) {
			dirs = append(dirs, dir)
		}
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return slerror.Wrap(err, fmt.Sprintf("failed to watch %s", dir)).
				WithCode(slerror.CodeIOError)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for _, path := range paths {
		checkFile(cmd, engine, path) //nolint:errcheck // watch mode reports, never aborts
	}
	fmt.Fprintf(cmd.OutOrStdout(), "watching %d files, Ctrl+C to stop\n", len(paths))

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			for _, path := range paths {
				if slfilex.Clean(event.Name) == slfilex.Clean(path) {
					checkFile(cmd, engine, path) //nolint:errcheck
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		}
	}
}
