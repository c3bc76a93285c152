package main

import (
	"fmt"
	"strings"

	"github.com/chuhta/php-ide-serenata/php"
	"github.com/chuhta/php-ide-serenata/php/reader"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newChainCmd() *cobra.Command {
	var offset int
	var line, column int

	cmd := &cobra.Command{
		Use:   "chain <file>",
		Short: "Print the access chain of the expression ending at a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := reader.FromFile(args[0])
			if err != nil {
				return err
			}
			source := string(content)

			cursor := offset
			if line > 0 {
				cursor, err = offsetForLineColumn(source, line, column)
				if err != nil {
					return err
				}
			}
			if cursor < 0 || cursor > len(source) {
				cursor = len(source)
			}

			start, err := php.FindExpressionStart(source, cursor)
			if err != nil {
				return fmt.Errorf("find expression start: %w", err)
			}
			chain := php.SanitizeCallStack(source[start:cursor])

			heading := color.New(color.FgCyan)
			heading.Printf("boundary: ")
			fmt.Printf("byte %d (line %d)\n", start, php.LineAt(source, start))
			heading.Printf("chain:\n")
			segment := color.New(color.FgGreen)
			for i, s := range chain {
				fmt.Printf("  %d: ", i)
				segment.Printf("%q\n", s)
			}
			if len(chain) == 0 {
				fmt.Println("  (empty)")
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&offset, "offset", -1, "cursor byte offset (defaults to end of file)")
	cmd.Flags().IntVar(&line, "line", 0, "cursor line, 1-indexed (overrides --offset)")
	cmd.Flags().IntVar(&column, "column", 0, "cursor column in characters, 0-indexed")
	return cmd
}

// offsetForLineColumn converts a 1-indexed line and 0-indexed character column
// to a byte offset into source.
func offsetForLineColumn(source string, line, column int) (int, error) {
	start := 0
	for l := 1; l < line; l++ {
		next := strings.IndexByte(source[start:], '\n')
		if next < 0 {
			return 0, fmt.Errorf("line %d out of range", line)
		}
		start += next + 1
	}
	lineText := source[start:]
	if end := strings.IndexByte(lineText, '\n'); end >= 0 {
		lineText = lineText[:end]
	}
	return start + php.CharOffsetToByteOffset(column, lineText), nil
}
