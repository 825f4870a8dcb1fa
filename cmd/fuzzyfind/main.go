// ABOUTME: CLI entry point: fuzzy-pick one line from stdin or a file.
// ABOUTME: Prints the selection on stdout; exit 0 picked, 1 cancelled, 2 unusable terminal.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	xterm "golang.org/x/term"

	"fuzzyfind/internal/config"
	"fuzzyfind/internal/log"
	"fuzzyfind/pkg/finder"
	"fuzzyfind/pkg/term"
	"fuzzyfind/pkg/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes: 1 is reserved for the user declining to pick; every failure
// to even run the selector (bad input, bad config, no usable terminal)
// reports 2 so callers can fall back.
const (
	exitPicked    = 0
	exitCancelled = 1
	exitUnusable  = 2
)

func main() {
	args := parseFlags()

	if args.version {
		fmt.Printf("fuzzyfind %s (%s) built %s\n", version, commit, date)
		os.Exit(exitPicked)
	}
	if args.verbose {
		log.SetLevel(log.LevelDebug)
	}

	code, err := run(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fuzzyfind: %v\n", err)
	}
	os.Exit(code)
}

func run(args cliArgs) (int, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return exitUnusable, err
	}

	lines := cfg.Lines
	if args.lines > 0 {
		lines = args.lines
	}
	if err := applyTheme(args, cfg); err != nil {
		return exitUnusable, err
	}

	items, err := readItems(args)
	if err != nil {
		return exitUnusable, err
	}
	if len(items) == 0 {
		return exitUnusable, fmt.Errorf("no candidates to select from")
	}

	t, err := openTerminal()
	if err != nil {
		return exitUnusable, err
	}

	choice, ok, err := finder.FindWith(items, finder.Options{
		Lines:      lines,
		Terminal:   t,
		Input:      t.Input(),
		EscTimeout: cfg.EscTimeout(),
	})
	if err != nil {
		return exitUnusable, err
	}
	if !ok {
		return exitCancelled, nil
	}

	fmt.Println(choice)
	return exitPicked, nil
}

func loadConfig(args cliArgs) (config.Config, error) {
	path := args.config
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// applyTheme resolves the -theme flag or config value: a built-in name
// first, then a path to a theme JSON file.
func applyTheme(args cliArgs, cfg config.Config) error {
	name := cfg.Theme
	if args.theme != "" {
		name = args.theme
	}
	if name == "" {
		return nil
	}

	if th := theme.Builtin(name); th != nil {
		theme.Set(th)
		return nil
	}
	th, err := theme.LoadFile(name)
	if err != nil {
		return fmt.Errorf("theme %q is not a built-in (%s) and could not be loaded as a file: %w",
			name, strings.Join(theme.BuiltinNames(), ", "), err)
	}
	theme.Set(th)
	return nil
}

// readItems collects candidates from positional arguments, -file, or piped
// stdin, in that order of preference. With
// -delim and -field set, the whole line stays visible but the selection
// prints only the requested field.
func readItems(args cliArgs) ([]finder.Item[string], error) {
	if rest := args.remaining(); len(rest) > 0 {
		items := make([]finder.Item[string], len(rest))
		for i, arg := range rest {
			items[i] = finder.NewItem(arg, payloadFor(arg, args))
		}
		return items, nil
	}

	var src *os.File
	switch {
	case args.file != "":
		f, err := os.Open(args.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		src = f
	case !xterm.IsTerminal(int(os.Stdin.Fd())):
		src = os.Stdin
	default:
		return nil, fmt.Errorf("no input: pipe candidates on stdin or pass -file")
	}

	var items []finder.Item[string]
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		items = append(items, finder.NewItem(line, payloadFor(line, args)))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading candidates: %w", err)
	}

	log.Debug("read %d candidate(s)", len(items))
	return items, nil
}

func payloadFor(line string, args cliArgs) string {
	if args.delim == "" || args.field < 1 {
		return line
	}
	fields := strings.Split(line, args.delim)
	if args.field > len(fields) {
		return line
	}
	return strings.TrimSpace(fields[args.field-1])
}

// openTerminal picks the interactive terminal. When stdin carries piped
// data the keyboard is reached through /dev/tty instead.
func openTerminal() (*term.ProcessTerminal, error) {
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return nil, fmt.Errorf("terminal %q cannot run an interactive selector", t)
	}

	if xterm.IsTerminal(int(os.Stdin.Fd())) {
		return term.NewProcessTerminal(), nil
	}
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("stdin is piped and /dev/tty is unavailable: %w", err)
	}
	return term.NewTTYTerminal(tty), nil
}
