package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nmwire/nmwire-go/pkg/codes"
	"github.com/nmwire/nmwire-go/pkg/log"
	"github.com/nmwire/nmwire-go/pkg/registry"
)

// Translation is the decoded form of one wire value.
type Translation struct {
	Table    string   `json:"table"`
	Wire     uint32   `json:"wire"`
	Names    []string `json:"names"`
	Single   string   `json:"single,omitempty"`
	Status   []string `json:"status"`
	Known    bool     `json:"known"`
	Residual uint32   `json:"residual,omitempty"`
}

type singleNamer interface {
	SingleName(mask uint32) string
}

type residualer interface {
	Residual(mask uint32) uint32
}

// Translate decodes wire with the table of entry.
func Translate(entry registry.Entry, wire uint32) Translation {
	t := Translation{
		Table:  entry.Name,
		Wire:   wire,
		Names:  entry.Table.Describe(wire),
		Status: entry.Status(wire),
		Known:  entry.Table.Known(wire),
	}
	if s, ok := entry.Table.(singleNamer); ok {
		t.Single = s.SingleName(wire)
	}
	if r, ok := entry.Table.(residualer); ok {
		t.Residual = r.Residual(wire)
	}
	return t
}

// ParseWire parses a wire value given in decimal, hex (0x), octal (0o) or
// binary (0b). A run of plain digits is always decimal, so "010" is 10 and
// octal needs the 0o prefix. Negative values are taken as int32 and keep
// their two's complement pattern, so -1 is 0xFFFFFFFF.
func ParseWire(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	digits := strings.TrimPrefix(s, "-")
	base := 0
	if digits != "" && strings.Trim(digits, "0123456789") == "" {
		base = 10
	}
	if len(digits) != len(s) {
		n, err := strconv.ParseInt(s, base, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid wire value %q: %w", s, err)
		}
		return uint32(int32(n)), nil
	}
	n, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid wire value %q: %w", s, err)
	}
	return uint32(n), nil
}

// RunDecode translates wire values with the table named by table, which may
// be a registry name or an "Interface.Property" key.
func RunDecode(env *Env, table string, values []string) error {
	entry, err := registry.Resolve(table)
	if err != nil {
		return err
	}

	out := make([]Translation, 0, len(values))
	for _, v := range values {
		wire, err := ParseWire(v)
		if err != nil {
			return err
		}
		t := Translate(entry, wire)
		out = append(out, t)

		event := log.Translation(entry.Name, entry.Table, wire)
		env.record(event)
	}

	if env.Format != FormatText {
		return env.structured(out)
	}
	for _, t := range out {
		formatTranslation(env, t)
	}
	return nil
}

func formatTranslation(env *Env, t Translation) {
	fmt.Fprintf(env.Out, "%s 0x%08x (%d): %s\n", t.Table, t.Wire, t.Wire, strings.Join(t.Names, "|"))
	fmt.Fprintf(env.Out, "  status:   %s\n", strings.Join(t.Status, "|"))
	if t.Single != "" {
		fmt.Fprintf(env.Out, "  single:   %s\n", t.Single)
	}
	if !t.Known {
		if t.Residual != 0 {
			fmt.Fprintf(env.Out, "  unknown:  0x%08x\n", t.Residual)
		} else {
			fmt.Fprintln(env.Out, "  unknown:  no row for this value")
		}
	}
}

// Encoding is the wire form of a list of names.
type Encoding struct {
	Table string   `json:"table"`
	Names []string `json:"names"`
	Wire  uint32   `json:"wire"`
}

// RunEncode returns the wire value of names. Names may also be joined with
// "|" in a single argument.
func RunEncode(env *Env, table string, names []string) error {
	entry, err := registry.Resolve(table)
	if err != nil {
		return err
	}

	var split []string
	for _, n := range names {
		for _, part := range strings.Split(n, "|") {
			if part = strings.TrimSpace(part); part != "" {
				split = append(split, part)
			}
		}
	}

	wire, err := entry.Table.EncodeNames(split...)
	if err != nil {
		env.record(log.Event{
			Category: log.CategoryError,
			Table:    entry.Name,
			Names:    split,
			Message:  err.Error(),
		})
		return fmt.Errorf("%s: %w", entry.Name, err)
	}

	event := log.Translation(entry.Name, entry.Table, wire)
	event.Category = log.CategoryEncode
	event.Names = split
	env.record(event)

	enc := Encoding{Table: entry.Name, Names: split, Wire: wire}
	if env.Format != FormatText {
		return env.structured(enc)
	}
	if entry.Table.Kind() == codes.KindBitmask {
		fmt.Fprintf(env.Out, "0x%08x\n", wire)
	} else {
		fmt.Fprintf(env.Out, "%d\n", wire)
	}
	return nil
}
