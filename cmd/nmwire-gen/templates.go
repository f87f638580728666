package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote": func(s string) string { return fmt.Sprintf("%q", s) },
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		enumTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

// fileData holds data for the file header template.
type fileData struct {
	Source     string
	Package    string
	HasBitmask bool
}

// enumData holds pre-computed data for the enum template.
type enumData struct {
	Name        string
	DBus        string
	Description string
	Label       string
	Bitmask     bool
	Values      []valueData

	// Fallback is set for ordinal enums; None, Flags and Any for bitmasks.
	Fallback *valueData
	None     *valueData
	Flags    []valueData
	Any      *valueData
}

type valueData struct {
	Const   string
	Literal string
	Entry   string
}

// --- Template definitions ---

const headerTmpl = `{{define "header" -}}
// Code generated by nmwire-gen. DO NOT EDIT.
// Source: {{.Source}}

package {{.Package}}

import (
{{- if .HasBitmask}}
"strings"
{{end}}
"github.com/nmwire/nmwire-go/pkg/codes"
)
{{end}}`

const enumTmpl = `{{define "enum"}}
// {{.Name}} mirrors {{.DBus}}. Values equal the wire codes.
{{- if .Description}}
//
// {{.Description}}
{{- end}}
type {{.Name}} uint32

const (
{{- range .Values}}
{{.Const}} {{$.Name}} = {{.Literal}}
{{- end}}
)

// {{.Name}}Table translates {{.Name}} wire codes.
{{- if .Bitmask}}
var {{.Name}}Table = codes.NewBitmaskTable(
{{.None.Entry}},
{{- range .Flags}}
{{.Entry}},
{{- end}}
){{if .Any}}.WithAny({{.Any.Entry}}){{end}}
{{- else}}
var {{.Name}}Table = codes.NewOrdinalTable({{.Fallback.Const}},
{{- range .Values}}
{{.Entry}},
{{- end}}
)
{{- end}}

// String returns the {{.Label}} name.
{{- if .Bitmask}} Combined flags are joined with "|".{{end}}
func (v {{.Name}}) String() string {
{{- if .Bitmask}}
return strings.Join({{.Name}}Table.Describe(uint32(v)), "|")
{{- else}}
return {{.Name}}Table.Name(v)
{{- end}}
}
{{end}}`
