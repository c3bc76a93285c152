package main

import (
	"fmt"
	"time"

	"github.com/chuhta/php-ide-serenata/php/indexer"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newIndexCmd() *cobra.Command {
	var extensions []string

	cmd := &cobra.Command{
		Use:   "index <dir>",
		Short: "Index a directory of PHP files and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix := indexer.New()
			id := ix.Submit(indexer.Request{
				Path:       args[0],
				Extensions: extensions,
			})

			var result *indexer.Result
			for {
				r, ok := ix.Get(id)
				if !ok {
					return fmt.Errorf("index %s disappeared", id)
				}
				if r.Status == indexer.StatusCompleted || r.Status == indexer.StatusFailed {
					result = r
					break
				}
				time.Sleep(50 * time.Millisecond)
			}

			if result.Status == indexer.StatusFailed {
				return fmt.Errorf("indexing failed: %s", result.Error)
			}

			totalTokens := 0
			totalErrors := 0
			for _, f := range result.Files {
				totalTokens += f.Tokens
				totalErrors += f.LexErrors
			}

			heading := color.New(color.FgCyan)
			heading.Printf("indexed: ")
			fmt.Printf("%d files, %d tokens in %s\n",
				len(result.Files), totalTokens, result.EndedAt.Sub(result.StartedAt).Round(time.Millisecond))
			if totalErrors > 0 {
				color.New(color.FgRed).Printf("lex errors: ")
				fmt.Printf("%d\n", totalErrors)
			}
			for _, msg := range result.Errors {
				fmt.Printf("  %s\n", msg)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&extensions, "ext", []string{".php"}, "file extensions to index")
	return cmd
}
