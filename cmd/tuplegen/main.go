package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/sys/unix"

	tuplegeninternal "github.com/sublee/tuplegen/internal/tuplegen"
)

var Version = "dev"

var (
	bFlag = flag.String("b", "", "comma-separated build tags")
	tFlag = flag.Bool("t", false, "include tests")
	oFlag = flag.String("o", "tuplegen_gen.go", "output file name")
	cFlag = flag.String("c", "auto", "colorize (auto|always|never)")
)

func init() {
	tuplegeninternal.Version = Version
}

func main() {
	flag.Parse()

	color, ok := colorMode(*cFlag)
	if !ok {
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outs, err := tuplegeninternal.Main(context.Background(), wd, os.Environ(), *bFlag, *tFlag, *oFlag, flag.Args())
	if err != nil {
		msg := err.Error()
		if color {
			msg = colorize(msg)
		}
		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}

	for out, code := range outs.All() {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if rel, err := filepath.Rel(wd, out); err == nil {
			out = rel
		}
		fmt.Println("Generated:", out)
	}
}

// colorMode resolves the -c flag. auto turns color on only in a terminal.
func colorMode(v string) (color, ok bool) {
	switch v {
	case "auto":
		return isatty(), true
	case "always":
		return true, true
	case "never":
		return false, true
	}
	return false, false
}

// isatty reports whether stdout is a terminal, where ANSI color codes are
// safe to use.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

var (
	rePos = regexp.MustCompile(`(?m)^\S+\.go:\d+(:\d+)?`)
	reTab = regexp.MustCompile(`(?m)^\t.+`)
)

// colorize adds ANSI color codes to the message. Positions turn red and
// indented continuation lines dim.
func colorize(msg string) string {
	const (
		red   = "\033[31m"
		dim   = "\033[2m"
		reset = "\033[0m"
	)
	paint := func(color string) func([]byte) []byte {
		return func(b []byte) []byte {
			return []byte(color + string(b) + reset)
		}
	}
	m := rePos.ReplaceAllFunc([]byte(msg), paint(red))
	m = reTab.ReplaceAllFunc(m, paint(dim))
	return string(m)
}
