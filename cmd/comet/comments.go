package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"comet/internal/diagfmt"
	"comet/internal/driver"
	"comet/internal/lexer"
)

var commentsCmd = &cobra.Command{
	Use:   "comments [flags] file",
	Short: "List a file's comments in document order",
	Long:  `Comments extracts every comment of a source file and marks the ones that sit on their own line`,
	Args:  cobra.ExactArgs(1),
	RunE:  runComments,
}

func init() {
	commentsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	commentsCmd.Flags().Bool("own-line", false, "only list comments that start their line")
}

func runComments(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	ownLineOnly, err := cmd.Flags().GetBool("own-line")
	if err != nil {
		return fmt.Errorf("failed to get own-line flag: %w", err)
	}

	result, err := driver.Classify(args[0], lexer.DefaultStyles(), maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), Context: 2}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	switch format {
	case "pretty":
		return diagfmt.FormatCommentsPretty(os.Stdout, result.Comments, result.FileSet, ownLineOnly)
	case "json":
		return diagfmt.FormatCommentsJSON(os.Stdout, result.Comments, result.FileSet, ownLineOnly)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
