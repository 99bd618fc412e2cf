package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pstuifzand/tui-diffview/internal/app"
	"github.com/pstuifzand/tui-diffview/internal/diff"
)

func main() {
	logFile, err := os.Create("tdv.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	debug := flag.Bool("debug", false, "Enable debug mode (shows key events in status)")
	dump := flag.Bool("dump", false, "Dump the parsed diff to stdout instead of starting the viewer")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: tdv [options] [diff-file]

Interactive viewer for unified git diffs.

Reads a diff from the given file, or from stdin when no file is given:

  git diff | tdv
  tdv changes.patch

Options:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	diffText, source, err := readDiff(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *dump {
		summary := diff.ParseSummary(diffText)
		spew.Fdump(os.Stdout, summary)
		return
	}

	application, err := app.NewApp(diffText, source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		application.SetDebugMode(true)
		log.Printf("parsed summary:\n%s", spew.Sdump(diff.ParseSummary(diffText)))
	}

	log.Printf("Loaded %d file(s) from %s", application.FileCount(), source)

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}

// readDiff reads the diff text from the first argument, or from stdin when
// no argument is given.
func readDiff(args []string) (string, string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), args[0], nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && stat.Mode()&os.ModeCharDevice != 0 {
		return "", "", fmt.Errorf("no diff file given and stdin is a terminal")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), "stdin", nil
}
