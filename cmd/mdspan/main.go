// MIT License

// Copyright (c) 2018 Akhil Indurti

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Command mdspan renders a lightly marked-up text document to HTML.
//
// Usage:
//   mdspan render [input] [-o output] [-t timeout]
//
// If no input file is given, input is read from standard input. If no
// output file is given, output is written to standard output.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/google/renameio"
	"github.com/spf13/cobra"

	"github.com/huydao/mdspan/block"
	"github.com/huydao/mdspan/gen/html"
)

func prefix(msg string, err error) error {
	return errors.New(msg + err.Error())
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "mdspan",
		Short: "render lightly marked-up text to HTML",
	}

	var outputfile string
	var timeout time.Duration
	const errPrefix = "(render) "
	renderCmd := &cobra.Command{
		Use:                   "render [input] [-o output]",
		Short:                 "render a source file (or stdin) to HTML",
		Args:                  cobra.MaximumNArgs(1),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := os.Stdin
			var err error
			if len(args) != 0 {
				src, err = os.Open(args[0])
				if err != nil {
					return prefix(errPrefix, err)
				}
				defer src.Close()
			}

			f, err := block.Parse(src)
			if err != nil {
				return prefix(errPrefix, err)
			}

			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			if outputfile == "" {
				return html.Generate(ctx, f, os.Stdout)
			}

			out, err := renameio.TempFile("", outputfile)
			if err != nil {
				return prefix(errPrefix, err)
			}
			defer out.Cleanup()
			if err := html.Generate(ctx, f, out); err != nil {
				return prefix(errPrefix, err)
			}
			if err := out.CloseAtomicallyReplace(); err != nil {
				return prefix(errPrefix, err)
			}
			return nil
		},
	}
	renderCmd.Flags().StringVarP(&outputfile, "output", "o", "", "``name of the output file")
	renderCmd.Flags().DurationVarP(&timeout, "timeout", "t", 0, "``timeout used to halt rendering for very large documents")

	rootCmd.AddCommand(renderCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err)
	}
}
