// Command nmwire translates NetworkManager and ModemManager D-Bus wire codes.
//
// Usage:
//
//	nmwire <command> [flags] [args]
//
// Commands:
//
//	list       List translation tables
//	decode     Translate wire values into names
//	encode     Translate names into a wire value
//	location   Plan a ModemManager Location.Setup call
//	snapshot   Create, show or decode property snapshots
//	log        View, export, filter or summarize event logs
//	shell      Start an interactive shell
//
// Examples:
//
//	# Decode a device state
//	nmwire decode nm.device-state 100
//
//	# Decode by property key
//	nmwire decode org.freedesktop.ModemManager1.Modem.AccessTechnologies 0x4000
//
//	# Encode flags
//	nmwire encode nm.wifi-capabilities 'WPA|RSN'
//
//	# Decode captured objects, logging every translation
//	nmwire snapshot decode -log-file run.nlog capture.snap
//
//	# Show which codes were not recognized
//	nmwire log view -unknown-only run.nlog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nmwire/nmwire-go/cmd/nmwire/commands"
)

const usage = `nmwire - NetworkManager/ModemManager wire code translator

Usage:
  nmwire <command> [flags] [args]

Commands:
  list       List translation tables
  decode     Translate wire values into names
  encode     Translate names into a wire value
  location   Plan a ModemManager Location.Setup call
  snapshot   Create, show or decode property snapshots (create, show, decode)
  log        View, export, filter or summarize event logs (view, export, filter, stats)
  shell      Start an interactive shell

Use "nmwire <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "list":
		runList(args)
	case "decode":
		runDecode(args)
	case "encode":
		runEncode(args)
	case "location":
		runLocation(args)
	case "snapshot":
		runSnapshot(args)
	case "log":
		runLog(args)
	case "shell":
		runShell(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// globalFlags are the flags shared by every command that translates codes.
type globalFlags struct {
	fs       *flag.FlagSet
	config   *string
	format   *string
	logFile  *string
	logLevel *string
}

func newFlagSet(name, synopsis, args string) (*flag.FlagSet, *globalFlags) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `nmwire %s - %s

Usage:
  nmwire %s [flags] %s

Flags:
`, name, synopsis, name, args)
		fs.PrintDefaults()
	}
	return fs, &globalFlags{
		fs:       fs,
		config:   fs.String("config", "", "YAML configuration file"),
		format:   fs.String("format", "", "Output format (text, json, yaml)"),
		logFile:  fs.String("log-file", "", "Append translation events to this file"),
		logLevel: fs.String("log-level", "", "Console event level (debug, info, warn, error)"),
	}
}

// setup loads the configuration, applies flags given explicitly and
// creates the command environment. The returned function closes the log.
func (g *globalFlags) setup() (*commands.Env, commands.Config, func()) {
	cfg, err := commands.LoadConfig(*g.config)
	if err != nil {
		fatal(err)
	}
	g.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *g.format
		case "log-file":
			cfg.LogFile = *g.logFile
		case "log-level":
			cfg.LogLevel = *g.logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	format, _ := commands.ParseFormat(cfg.Format)

	logger, closeLog, err := commands.NewLogger(cfg, os.Stderr)
	if err != nil {
		fatal(err)
	}
	env := commands.NewEnv(os.Stdout, format, logger)
	return env, cfg, func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
}

func parse(fs *flag.FlagSet, args []string, nargs int, what string) {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < nargs {
		fmt.Fprintf(os.Stderr, "Error: %s required\n", what)
		fs.Usage()
		os.Exit(1)
	}
}

func runList(args []string) {
	fs, g := newFlagSet("list", "List translation tables", "[prefix]")
	verbose := fs.Bool("v", false, "Show the names of every table")
	parse(fs, args, 0, "")

	env, _, done := g.setup()
	defer done()
	if err := commands.RunList(env, fs.Arg(0), *verbose); err != nil {
		fatal(err)
	}
}

func runDecode(args []string) {
	fs, g := newFlagSet("decode", "Translate wire values into names", "<table> <wire>...")
	parse(fs, args, 2, "table and wire value")

	env, _, done := g.setup()
	defer done()
	if err := commands.RunDecode(env, fs.Arg(0), fs.Args()[1:]); err != nil {
		done()
		fatal(err)
	}
}

func runEncode(args []string) {
	fs, g := newFlagSet("encode", "Translate names into a wire value", "<table> <name>...")
	parse(fs, args, 1, "table")

	env, _, done := g.setup()
	defer done()
	if err := commands.RunEncode(env, fs.Arg(0), fs.Args()[1:]); err != nil {
		done()
		fatal(err)
	}
}

func runLocation(args []string) {
	fs, g := newFlagSet("location", "Plan a ModemManager Location.Setup call", "<capabilities> <enabled>")
	gps := fs.Bool("gps", false, "Enable GPS sources as well")
	parse(fs, args, 2, "capabilities and enabled masks")

	env, _, done := g.setup()
	defer done()
	if err := commands.RunLocation(env, fs.Arg(0), fs.Arg(1), *gps); err != nil {
		done()
		fatal(err)
	}
}

func runSnapshot(args []string) {
	const sub = "create, show or decode"
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: snapshot subcommand required (%s)\n", sub)
		os.Exit(1)
	}

	switch args[0] {
	case "create":
		fs, g := newFlagSet("snapshot create", "Convert YAML captures into a snapshot file", "<capture.yaml>...")
		output := fs.String("o", "", "Output file (required)")
		parse(fs, args[1:], 1, "capture file")
		if *output == "" {
			fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
			fs.Usage()
			os.Exit(1)
		}
		env, _, done := g.setup()
		defer done()
		if err := commands.RunSnapshotCreate(env, fs.Args(), *output); err != nil {
			done()
			fatal(err)
		}

	case "show":
		fs, g := newFlagSet("snapshot show", "Print the properties of a snapshot file", "<file>")
		parse(fs, args[1:], 1, "snapshot file")
		env, _, done := g.setup()
		defer done()
		if err := commands.RunSnapshotShow(env, fs.Arg(0)); err != nil {
			done()
			fatal(err)
		}

	case "decode":
		fs, g := newFlagSet("snapshot decode", "Decode the devices and modems of a snapshot file", "<file>")
		parse(fs, args[1:], 1, "snapshot file")
		env, _, done := g.setup()
		defer done()
		if err := commands.RunSnapshotDecode(env, fs.Arg(0)); err != nil {
			done()
			fatal(err)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown snapshot subcommand: %s (%s)\n", args[0], sub)
		os.Exit(1)
	}
}

func logFlagSet(name, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet("log "+name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `nmwire log %s - %s

Usage:
  nmwire log %s [flags] <file.nlog>

Flags:
`, name, synopsis, name)
		fs.PrintDefaults()
	}
	return fs
}

func filterFlags(fs *flag.FlagSet) *commands.FilterOptions {
	opts := &commands.FilterOptions{}
	fs.StringVar(&opts.Session, "session", "", "Filter by session ID")
	fs.StringVar(&opts.Table, "table", "", "Filter by table name")
	fs.StringVar(&opts.Object, "object", "", "Filter by D-Bus object path")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (decode, unknown, encode, error)")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	fs.BoolVar(&opts.UnknownOnly, "unknown-only", false, "Only codes that were not fully recognized")
	return opts
}

func runLog(args []string) {
	const sub = "view, export, filter or stats"
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "Error: log subcommand required (%s)\n", sub)
		os.Exit(1)
	}

	switch args[0] {
	case "view":
		fs := logFlagSet("view", "View log file in human-readable format")
		opts := filterFlags(fs)
		parse(fs, args[1:], 1, "log file path")
		filter, err := opts.Filter()
		if err != nil {
			fatal(err)
		}
		if err := commands.RunView(fs.Arg(0), filter, os.Stdout); err != nil {
			fatal(err)
		}

	case "export":
		fs := logFlagSet("export", "Export log file to JSON or CSV format")
		format := fs.String("format", commands.ExportJSONL, "Output format (jsonl, csv)")
		output := fs.String("o", "", "Output file (default: stdout)")
		parse(fs, args[1:], 1, "log file path")
		if err := commands.RunExport(fs.Arg(0), *format, *output, os.Stdout); err != nil {
			fatal(err)
		}

	case "filter":
		fs := logFlagSet("filter", "Filter log file and write to new file")
		opts := filterFlags(fs)
		fs.StringVar(&opts.Output, "o", "", "Output file (required)")
		parse(fs, args[1:], 1, "log file path")
		if opts.Output == "" {
			fmt.Fprintln(os.Stderr, "Error: output file (-o) required")
			fs.Usage()
			os.Exit(1)
		}
		if err := commands.RunFilter(fs.Arg(0), *opts, os.Stdout); err != nil {
			fatal(err)
		}

	case "stats":
		fs := logFlagSet("stats", "Show statistics about the log file")
		parse(fs, args[1:], 1, "log file path")
		if err := commands.RunStats(fs.Arg(0), os.Stdout); err != nil {
			fatal(err)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown log subcommand: %s (%s)\n", args[0], sub)
		os.Exit(1)
	}
}

func runShell(args []string) {
	fs, g := newFlagSet("shell", "Start an interactive shell", "")
	parse(fs, args, 0, "")

	env, cfg, done := g.setup()
	defer done()
	if err := commands.RunShell(env, cfg.Prompt); err != nil {
		done()
		fatal(err)
	}
}
