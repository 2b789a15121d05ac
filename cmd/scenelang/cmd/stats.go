// File: stats.go
// Title: scenelang stats Command
// Description: Prints statement, directive, and parameter tallies for a
//              scene file, optionally after include expansion.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial stats command

package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	slerror "github.com/candela-render/scenelang/core/error"
	slast "github.com/candela-render/scenelang/scene/ast"
	slfilex "github.com/candela-render/scenelang/utils/filex"
	"github.com/candela-render/scenelang/utils/mapx"
	"github.com/candela-render/scenelang/utils/slicex"
)

var (
	statsFragment     bool
	statsExpand       bool
	statsIncludePaths []string
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Show statement and parameter tallies",
	Long: `Parses a scene file and prints how many statements, directives,
parameters, and values it contains, and how deeply its scopes nest.

With --expand the tallies cover the document after include expansion.`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsFragment, "fragment", false,
		"Read as an include fragment instead of a full scene")
	statsCmd.Flags().BoolVar(&statsExpand, "expand", false,
		"Expand Include directives before counting")
	statsCmd.Flags().StringArrayVarP(&statsIncludePaths, "include-path", "I", nil,
		"Additional include search path (repeatable)")
}

var (
	statsTitleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#06B6D4"))
	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).Width(14)
	statsValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8FAFC")).Bold(true)
	statsKeywordStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8B5CF6"))
)

func runStats(cmd *cobra.Command, args []string) error {
	path := args[0]

	engine, err := newEngine(statsIncludePaths)
	if err != nil {
		return err
	}

	input, err := slfilex.ReadString(path)
	if err != nil {
		return slerror.Wrap(err, fmt.Sprintf("failed to read %s", path)).
			WithCode(slerror.CodeIOError)
	}

	parse := engine.ParseScene
	if statsFragment {
		parse = engine.ParseFragment
	}
	doc, err := parse(input)
	if err != nil {
		return err
	}

	if statsExpand {
		result, err := engine.Expand(cmd.Context(), doc)
		if err != nil {
			return err
		}
		doc = result.Document
	}

	fmt.Fprintln(cmd.OutOrStdout(), statsTitleStyle.Render(path))
	printStats(cmd, engine.Stats(doc))
	return nil
}

// printStats renders one tally block
func printStats(cmd *cobra.Command, stats *slast.Stats) {
	out := cmd.OutOrStdout()

	row := func(label string, value int) {
		fmt.Fprintf(out, "%s %s\n",
			statsLabelStyle.Render(label),
			statsValueStyle.Render(fmt.Sprintf("%d", value)))
	}

	row("Statements", stats.Statements)
	row("Transforms", stats.Transforms)
	row("Textures", stats.Textures)
	row("References", stats.References)
	row("Blocks", stats.Blocks)
	row("Includes", stats.Includes)
	row("Comments", stats.Comments)
	row("Parameters", stats.Parameters)
	row("Values", stats.Values)
	row("Max depth", stats.MaxDepth)

	if len(stats.Directives) > 0 {
		fmt.Fprintln(out, statsLabelStyle.Render("Directives"))
		for _, keyword := range slicex.Sort(mapx.Keys(stats.Directives)) {
			fmt.Fprintf(out, "  %s %s\n",
				statsKeywordStyle.Render(fmt.Sprintf("%-18s", keyword)),
				statsValueStyle.Render(fmt.Sprintf("%d", stats.Directives[keyword])))
		}
	}
}
