// File: browse.go
// Title: scenelang browse Command
// Description: Starts the interactive terminal viewer over the canonical
//              form of a scene file.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial browse command

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/candela-render/scenelang/internal/tui"
)

var (
	browseFragment     bool
	browseExpand       bool
	browseIncludePaths []string
)

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Browse a scene in an interactive viewer",
	Long: `Opens a scene file in an interactive terminal viewer showing the
canonical form of the document with per-depth coloring.

Key bindings:
  Up/Down/PgUp/PgDn   Scroll
  g / G               Jump to top / bottom
  r                   Reload the file
  q / Ctrl+C          Quit`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().BoolVar(&browseFragment, "fragment", false,
		"Read as an include fragment instead of a full scene")
	browseCmd.Flags().BoolVar(&browseExpand, "expand", false,
		"Expand Include directives before display")
	browseCmd.Flags().StringArrayVarP(&browseIncludePaths, "include-path", "I", nil,
		"Additional include search path (repeatable)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(browseIncludePaths)
	if err != nil {
		return err
	}

	return tui.Run(tui.Config{
		Path:     args[0],
		Engine:   engine,
		Fragment: browseFragment,
		Expand:   browseExpand,
	})
}
