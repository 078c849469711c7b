// edittrace: terminal and HTML visualization of the Levenshtein
// dynamic-programming fill. Computes the full decision trace for two
// strings, then replays it step by step, auto-plays it on a timer, or
// exports a standalone HTML page of the table.
//
// Usage:
//
//	edittrace -a kitten -b sitting -mode play -delay 150ms
//	edittrace -a intention -b execution -mode html -out trace.html
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/katalvlaran/edittrace"
)

type config struct {
	A, B     string
	Mode     string
	Delay    time.Duration
	ShowPath bool
	Out      string
}

func parseFlags() config {
	var cfg config
	flag.StringVar(&cfg.A, "a", "kitten", "source string")
	flag.StringVar(&cfg.B, "b", "sitting", "target string")
	flag.StringVar(&cfg.Mode, "mode", "table", "table | steps | play | html")
	flag.DurationVar(&cfg.Delay, "delay", 300*time.Millisecond, "delay between steps in play mode")
	flag.BoolVar(&cfg.ShowPath, "path", true, "highlight one optimal backtrace path")
	flag.StringVar(&cfg.Out, "out", "edittrace.html", "output file for -mode html")
	flag.Parse()

	return cfg
}

func main() {
	cfg := parseFlags()

	// One build per run: the trace is recomputed wholesale whenever the
	// inputs change, never patched.
	tr := edittrace.BuildStrings(cfg.A, cfg.B)

	var path map[edittrace.Coord]struct{}
	if cfg.ShowPath {
		var err error
		path, err = tr.Backtrace(tr.Final())
		if err != nil {
			log.Fatalf("backtrace: %v", err)
		}
	}

	switch cfg.Mode {
	case "table":
		fmt.Print(renderGrid(tr, len(tr.Steps), path))
		printSummary(cfg, tr)
	case "steps":
		stepThrough(tr, path)
		printSummary(cfg, tr)
	case "play":
		autoPlay(tr, path, cfg.Delay)
		printSummary(cfg, tr)
	case "html":
		if err := exportHTML(cfg.Out, tr, path); err != nil {
			log.Fatalf("html export: %v", err)
		}
		fmt.Printf("wrote %s\n", cfg.Out)
	default:
		log.Fatalf("unknown mode %q", cfg.Mode)
	}
}

// stepThrough replays the trace one Step per Enter keypress. The
// cursor lives here, in the consumer; the trace itself is immutable.
func stepThrough(tr *edittrace.Trace[rune], path map[edittrace.Coord]struct{}) {
	in := bufio.NewScanner(os.Stdin)
	for cursor := 1; cursor <= len(tr.Steps); cursor++ {
		fmt.Print("\033[H\033[2J") // clear screen
		fmt.Print(renderGrid(tr, cursor, path))
		fmt.Println(describeStep(tr.Steps[cursor-1]))
		if cursor < len(tr.Steps) {
			fmt.Print("press Enter for next step...")
			if !in.Scan() {
				break
			}
		}
	}
}

// autoPlay replays the trace on a fixed timer instead of keypresses.
func autoPlay(tr *edittrace.Trace[rune], path map[edittrace.Coord]struct{}, delay time.Duration) {
	for cursor := 1; cursor <= len(tr.Steps); cursor++ {
		fmt.Print("\033[H\033[2J")
		fmt.Print(renderGrid(tr, cursor, path))
		fmt.Println(describeStep(tr.Steps[cursor-1]))
		if cursor < len(tr.Steps) {
			time.Sleep(delay)
		}
	}
}

// printSummary prints the distance plus a character-level diff of the
// two inputs, so the edit count can be eyeballed against the table.
func printSummary(cfg config, tr *edittrace.Trace[rune]) {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(cfg.A, cfg.B, false)

	fmt.Printf("\ndistance(%q → %q) = %d\n", cfg.A, cfg.B, tr.Distance())
	fmt.Printf("diff: %s\n", dmp.DiffPrettyText(diffs))
}
