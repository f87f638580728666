package commands

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
)

// Shell runs commands typed at an interactive prompt.
type Shell struct {
	env *Env
}

// NewShell creates a shell writing through env.
func NewShell(env *Env) *Shell {
	return &Shell{env: env}
}

// RunShell reads commands from the terminal until quit or EOF.
func RunShell(env *Env, prompt string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	shellEnv := *env
	shellEnv.Out = rl.Stdout()
	sh := NewShell(&shellEnv)
	sh.printHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			return nil
		}
		if !sh.Exec(line) {
			return nil
		}
	}
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("list"),
		readline.PcItem("decode"),
		readline.PcItem("encode"),
		readline.PcItem("location"),
		readline.PcItem("format",
			readline.PcItem(FormatText),
			readline.PcItem(FormatJSON),
			readline.PcItem(FormatYAML),
		),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Exec runs one input line. It returns false when the shell should exit.
func (s *Shell) Exec(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]
	w := s.env.Out

	var err error
	switch cmd {
	case "help", "?":
		s.printHelp()

	case "list", "ls":
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		err = RunList(s.env, prefix, false)

	case "decode", "d":
		if len(args) < 2 {
			fmt.Fprintln(w, "Usage: decode <table> <wire>...")
			return true
		}
		err = RunDecode(s.env, args[0], args[1:])

	case "encode", "e":
		if len(args) < 1 {
			fmt.Fprintln(w, "Usage: encode <table> <name>...")
			return true
		}
		err = RunEncode(s.env, args[0], args[1:])

	case "location", "loc":
		if len(args) < 2 {
			fmt.Fprintln(w, "Usage: location <capabilities> <enabled> [gps]")
			return true
		}
		gps := len(args) > 2 && strings.EqualFold(args[2], "gps")
		err = RunLocation(s.env, args[0], args[1], gps)

	case "format":
		if len(args) != 1 {
			fmt.Fprintf(w, "Format: %s\n", s.env.Format)
			return true
		}
		var f string
		if f, err = ParseFormat(args[0]); err == nil {
			s.env.Format = f
		}

	case "quit", "exit", "q":
		fmt.Fprintln(w, "Exiting...")
		return false

	default:
		fmt.Fprintf(w, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.env.Out, `Commands:
  list [prefix]                        List translation tables
  decode <table> <wire>...             Translate wire values
  encode <table> <name>...             Encode names (or A|B) into a wire value
  location <caps> <enabled> [gps]      Plan a Location.Setup call
  format [text|json|yaml]              Show or set the output format
  help                                 Show this help
  quit                                 Exit`)
}
