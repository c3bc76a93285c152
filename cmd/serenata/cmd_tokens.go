package main

import (
	"fmt"

	"github.com/chuhta/php-ide-serenata/php/parser"
	"github.com/chuhta/php-ide-serenata/php/reader"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	var includeWhitespace bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a PHP file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := reader.FromFile(args[0])
			if err != nil {
				return err
			}

			kindColor := color.New(color.FgYellow)
			for _, tok := range parser.TokenizeFile(content, args[0]) {
				if tok.Kind == parser.TokenWhitespace && !includeWhitespace {
					continue
				}
				fmt.Printf("%4d:%-3d ", tok.Span.Start.Line, tok.Span.Start.Column)
				kindColor.Printf("%-16s", tok.Kind)
				fmt.Printf(" %q\n", tok.Literal)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeWhitespace, "whitespace", false, "include whitespace tokens")
	return cmd
}
