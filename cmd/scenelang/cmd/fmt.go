// File: fmt.go
// Title: scenelang fmt Command
// Description: Rewrites a scene file in canonical form: one statement per
//              line, two-space block indentation, bracketed parameter
//              values, normalized type tags. Prints to stdout or rewrites
//              the file in place.
// Version: v0.1.0
// Created: 2025-11-19
// Modified: 2025-11-19
//
// Change History:
// - 2025-11-19 v0.1.0: Initial fmt command

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	slerror "github.com/candela-render/scenelang/core/error"
	sllog "github.com/candela-render/scenelang/core/log"
	"github.com/candela-render/scenelang/scene"
	slast "github.com/candela-render/scenelang/scene/ast"
	slfilex "github.com/candela-render/scenelang/utils/filex"
)

var (
	fmtFragment      bool
	fmtWrite         bool
	fmtStripComments bool
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Rewrite a scene in canonical form",
	Long: `Parses a scene file and prints it back in canonical form. The
output parses to a document structurally equal to the input.

With --write the file is rewritten in place instead of printed.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVar(&fmtFragment, "fragment", false,
		"Format as an include fragment instead of a full scene")
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false,
		"Rewrite the file instead of printing to stdout")
	fmtCmd.Flags().BoolVar(&fmtStripComments, "strip-comments", false,
		"Drop comments from the output")
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]

	input, err := slfilex.ReadString(path)
	if err != nil {
		return slerror.Wrap(err, fmt.Sprintf("failed to read %s", path)).
			WithCode(slerror.CodeIOError)
	}

	engine, err := scene.NewEngine(scene.Options{
		Logger:          sllog.GetDefault(),
		DiscardComments: fmtStripComments,
	})
	if err != nil {
		return err
	}

	parse := engine.ParseScene
	if fmtFragment {
		parse = engine.ParseFragment
	}
	doc, err := parse(input)
	if err != nil {
		return err
	}

	// DiscardComments drops statement comments at parse time; the visitor
	// flag also drops the embedded LookAt comment
	visitor := slast.NewFormatVisitor()
	visitor.SkipComments = fmtStripComments
	doc.Accept(visitor)
	formatted := visitor.String()

	if fmtWrite {
		if err := slfilex.WriteString(path, formatted, 0o644); err != nil {
			return slerror.Wrap(err, fmt.Sprintf("failed to rewrite %s", path)).
				WithCode(slerror.CodeIOError)
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), formatted)
	return nil
}
