package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/nmwire/nmwire-go/pkg/registry"
)

// TableInfo describes one registered table.
type TableInfo struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	DBus       string   `json:"dbus"`
	Properties []string `json:"properties"`
	Names      []string `json:"names,omitempty"`
}

// RunList prints every registered table. With verbose set the variant names
// are included. A non-empty prefix keeps only tables whose name starts
// with it, e.g. "mm.".
func RunList(env *Env, prefix string, verbose bool) error {
	var infos []TableInfo
	for _, e := range registry.All() {
		if !strings.HasPrefix(e.Name, prefix) {
			continue
		}
		info := TableInfo{
			Name:       e.Name,
			Kind:       e.Table.Kind().String(),
			DBus:       e.DBus,
			Properties: e.Properties,
		}
		if verbose {
			info.Names = e.Table.Names()
		}
		infos = append(infos, info)
	}

	if env.Format != FormatText {
		return env.structured(infos)
	}

	tw := tabwriter.NewWriter(env.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tD-BUS\tPROPERTIES")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Name, info.Kind, info.DBus, strings.Join(info.Properties, ", "))
		if verbose {
			fmt.Fprintf(tw, "\t\t\t%s\n", strings.Join(info.Names, " "))
		}
	}
	return tw.Flush()
}
