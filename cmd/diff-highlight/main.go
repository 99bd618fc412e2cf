package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pstuifzand/tui-diffview/internal/diff"
	"github.com/pstuifzand/tui-diffview/internal/highlight"
)

// ANSI SGR sequences for the non-interactive rendering path. Kept to the
// basic 16-color palette so output survives any terminal.
const (
	reset     = "\x1b[0m"
	bold      = "\x1b[1m"
	italic    = "\x1b[3m"
	fgRed     = "\x1b[31m"
	fgGreen   = "\x1b[32m"
	fgYellow  = "\x1b[33m"
	fgBlue    = "\x1b[34m"
	fgMagenta = "\x1b[35m"
	fgCyan    = "\x1b[36m"
	fgGray    = "\x1b[90m"
)

func main() {
	noColor := flag.Bool("no-color", false, "Disable ANSI colors")
	noSyntax := flag.Bool("no-syntax", false, "Disable syntax highlighting inside lines")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: diff-highlight [options] [input.diff]

Renders a unified git diff to stdout with ANSI colors, collapsed
unchanged regions included. Reads stdin when no file is given.

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	var raw []byte
	var err error
	if args := flag.Args(); len(args) > 0 {
		raw, err = os.ReadFile(args[0])
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	r := renderer{out: out, color: !*noColor, syntax: !*noSyntax}
	summary := diff.ParseSummary(string(raw))
	for i := range summary.Files {
		r.renderFile(&summary.Files[i])
	}
}

type renderer struct {
	out    *bufio.Writer
	color  bool
	syntax bool
}

func (r *renderer) renderFile(f *diff.FileDiff) {
	r.printStyled(bold+fgMagenta, fmt.Sprintf("%s  +%d -%d", f.Filename, f.Additions, f.Deletions))
	r.out.WriteByte('\n')

	for _, b := range diff.ParseBlocks(f.Content) {
		switch b.Kind {
		case diff.BlockHeader:
			r.printStyled(fgCyan, b.Text)
			r.out.WriteByte('\n')
		case diff.BlockCollapsed:
			r.printStyled(italic+fgGray, fmt.Sprintf("··· %s (%d-%d)", b.Label, b.StartLine, b.EndLine))
			r.out.WriteByte('\n')
		case diff.BlockHunk:
			for _, l := range b.Lines {
				r.renderLine(f.Filename, l)
			}
		}
	}
	r.out.WriteByte('\n')
}

func (r *renderer) renderLine(filename string, l diff.Line) {
	marker := byte(' ')
	base := ""
	switch l.Kind {
	case diff.LineAddition:
		marker = '+'
		base = fgGreen
	case diff.LineDeletion:
		marker = '-'
		base = fgRed
	}

	gutter := fmt.Sprintf("%4s %4s %c ", lineNumber(l.OldLine), lineNumber(l.NewLine), marker)
	r.printStyled(fgGray, gutter)

	if !r.syntax || l.Kind != diff.LineContext {
		// Changed lines keep a uniform color so the +/- state stays
		// readable at a glance.
		r.printStyled(base, l.Text)
		r.out.WriteByte('\n')
		return
	}

	for _, span := range highlight.Line(l.Text, filename) {
		r.printStyled(syntaxStyle(span.Category), span.Text)
	}
	r.out.WriteByte('\n')
}

func (r *renderer) printStyled(style, text string) {
	if !r.color || style == "" {
		r.out.WriteString(text)
		return
	}
	r.out.WriteString(style)
	r.out.WriteString(text)
	r.out.WriteString(reset)
}

func syntaxStyle(c highlight.Category) string {
	switch c {
	case highlight.CategoryString:
		return fgGreen
	case highlight.CategoryKeyword:
		return fgMagenta
	case highlight.CategoryComment:
		return fgGray
	case highlight.CategoryNumber:
		return fgYellow
	case highlight.CategoryFunction:
		return fgBlue
	case highlight.CategoryProperty:
		return fgCyan
	case highlight.CategoryOperator:
		return fgYellow
	}
	return ""
}

func lineNumber(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%d", n)
}
