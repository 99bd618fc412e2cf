package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pstuifzand/tui-diffview/internal/diff"
)

// fileJSON is the JSON shape for one changed file.
type fileJSON struct {
	Filename  string      `json:"filename"`
	Additions int         `json:"additions"`
	Deletions int         `json:"deletions"`
	Blocks    []blockJSON `json:"blocks,omitempty"`
}

type blockJSON struct {
	Kind      string     `json:"kind"`
	Text      string     `json:"text,omitempty"`
	Label     string     `json:"label,omitempty"`
	StartLine int        `json:"start_line,omitempty"`
	EndLine   int        `json:"end_line,omitempty"`
	Lines     []lineJSON `json:"lines,omitempty"`
}

type lineJSON struct {
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	OldLine int    `json:"old_line,omitempty"`
	NewLine int    `json:"new_line,omitempty"`
}

func main() {
	includeBlocks := flag.Bool("blocks", false, "Include parsed display blocks for each file")
	indent := flag.Bool("indent", false, "Indent the JSON output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: diff-to-json [options] [input.diff] [output.json]

Parses a unified git diff and emits the per-file summary as JSON.

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Arguments:
  input.diff   Path to the diff to convert (stdin if omitted)
  output.json  Path to write the JSON output (stdout if omitted)

Examples:
  # Summary of the working tree changes
  git diff | diff-to-json -indent

  # Full block structure to a file
  diff-to-json -blocks changes.patch changes.json
`)
	}

	flag.Parse()
	args := flag.Args()

	var raw []byte
	var err error
	if len(args) > 0 {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	summary := diff.ParseSummary(string(raw))

	files := make([]fileJSON, 0, len(summary.Files))
	for _, f := range summary.Files {
		fj := fileJSON{
			Filename:  f.Filename,
			Additions: f.Additions,
			Deletions: f.Deletions,
		}
		if *includeBlocks {
			for _, b := range diff.ParseBlocks(f.Content) {
				fj.Blocks = append(fj.Blocks, convertBlock(b))
			}
		}
		files = append(files, fj)
	}

	var data []byte
	if *indent {
		data, err = json.MarshalIndent(files, "", "  ")
	} else {
		data, err = json.Marshal(files)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling to JSON: %v\n", err)
		os.Exit(1)
	}

	if len(args) > 1 {
		outputPath := args[1]
		outDir := filepath.Dir(outputPath)
		if outDir != "." && outDir != "" {
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
				os.Exit(1)
			}
		}
		if err := os.WriteFile(outputPath, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(string(data))
}

func convertBlock(b diff.Block) blockJSON {
	bj := blockJSON{
		Kind:      blockKindName(b.Kind),
		Text:      b.Text,
		Label:     b.Label,
		StartLine: b.StartLine,
		EndLine:   b.EndLine,
	}
	for _, l := range b.Lines {
		bj.Lines = append(bj.Lines, lineJSON{
			Kind:    lineKindName(l.Kind),
			Text:    l.Text,
			OldLine: l.OldLine,
			NewLine: l.NewLine,
		})
	}
	return bj
}

func blockKindName(k diff.BlockKind) string {
	switch k {
	case diff.BlockHeader:
		return "header"
	case diff.BlockHunk:
		return "hunk"
	case diff.BlockCollapsed:
		return "collapsed"
	}
	return "unknown"
}

func lineKindName(k diff.LineKind) string {
	switch k {
	case diff.LineAddition:
		return "addition"
	case diff.LineDeletion:
		return "deletion"
	}
	return "context"
}
