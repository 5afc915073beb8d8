package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

type config struct {
	Path        string
	Debug       bool
	ShowVersion bool
}

func parseArgs(args []string, errOut io.Writer) (config, error) {
	fs := flag.NewFlagSet(programTitle, flag.ContinueOnError)
	fs.SetOutput(errOut)
	debugFlag := fs.Bool("debug", false, "Enable debug logging")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	fs.Usage = func() {
		printUsage(fs.Output())
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if *versionFlag {
		return config{ShowVersion: true}, nil
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return config{}, fmt.Errorf("path argument is required")
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return config{}, fmt.Errorf("expected exactly one path argument")
	}

	return config{
		Path:  fs.Arg(0),
		Debug: *debugFlag,
	}, nil
}

// baseName returns the final non-empty "/"-separated segment of path, or
// "" when the path has none. The result is the notification title.
func baseName(path string) string {
	base := ""
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			base = segment
		}
	}
	return base
}

func printUsage(out io.Writer) {
	fmt.Fprintf(out, "Usage: %s [flags] PATH\n", programTitle)
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Watch one filesystem path and show a desktop notification per event.")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  -debug    Enable debug logging")
	fmt.Fprintln(out, "  -version  Print version and exit")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Exit codes:")
	fmt.Fprintln(out, "  0  Graceful shutdown")
	fmt.Fprintln(out, "  1  Usage error")
	fmt.Fprintln(out, "  2  Event channel init failure")
	fmt.Fprintln(out, "  3  Watch registration failure")
	fmt.Fprintln(out, "  4  Empty base name")
	fmt.Fprintln(out, "  5  Event channel read failure")
	fmt.Fprintln(out, "  6  Notification subsystem init failure")
}
