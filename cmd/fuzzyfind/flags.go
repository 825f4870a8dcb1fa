// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports --file, --delim, --field, --lines, --config, --theme, --verbose, --version

package main

import "flag"

type cliArgs struct {
	file    string
	delim   string
	field   int
	lines   int
	config  string
	theme   string
	verbose bool
	version bool
}

func parseFlags() cliArgs {
	var args cliArgs

	flag.StringVar(&args.file, "file", "", "Read candidates from this file instead of stdin")
	flag.StringVar(&args.delim, "delim", "", "Split each line on this delimiter")
	flag.IntVar(&args.field, "field", 0, "With -delim, print this field of the chosen line (0 = whole line)")
	flag.IntVar(&args.lines, "lines", 0, "Match window height in rows (0 = config or default)")
	flag.StringVar(&args.config, "config", "", "Config file path (default: ~/.config/fuzzyfind/config.yaml)")
	flag.StringVar(&args.theme, "theme", "", "Built-in theme name or theme JSON file")
	flag.BoolVar(&args.verbose, "verbose", false, "Enable debug logging on stderr")
	flag.BoolVar(&args.version, "version", false, "Show version and exit")

	flag.Parse()
	return args
}

// remaining returns the non-flag command-line arguments.
func (a cliArgs) remaining() []string {
	return flag.Args()
}
