// Command rico8c translates a rico8 source file (and its module tree)
// into the target retro-console scripting dialect.
//
// Unlike go-mix's REPL-first entry point (main/main.go), rico8c is
// file-first and single-shot: one input path in, one rendered source
// file out, no suspension points. See runFile's panic-recovery /
// color-coded diagnostics for the style this borrows.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rico8ls/rico8c/codegen"
	"github.com/rico8ls/rico8c/loader"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

const version = "v0.1.0"

var (
	outputPath string
	verbose    bool
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rico8c <input.rico8>",
		Short:   "Translate rico8 source to the retro-console scripting dialect",
		Version: version,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default: input with .lua extension)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print progress to stderr")
	return cmd
}

func run(inputPath string) error {
	out := outputPath
	if out == "" {
		out = defaultOutputPath(inputPath)
	}

	if verbose {
		cyanColor.Fprintf(os.Stderr, "loading %s\n", inputPath)
	}

	baseDir := filepath.Dir(inputPath)
	ld := loader.New(baseDir)
	prog, err := ld.LoadProgram(inputPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[LOAD ERROR] %v\n", err)
		return err
	}

	if verbose {
		cyanColor.Fprintf(os.Stderr, "generating %s\n", out)
	}

	rendered := codegen.Generate(prog)

	if err := os.WriteFile(out, []byte(rendered), 0644); err != nil {
		redColor.Fprintf(os.Stderr, "[WRITE ERROR] could not write '%s': %v\n", out, err)
		return fmt.Errorf("write output: %w", err)
	}

	if verbose {
		cyanColor.Fprintf(os.Stderr, "wrote %s\n", out)
	}
	return nil
}

func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	return base + ".lua"
}
