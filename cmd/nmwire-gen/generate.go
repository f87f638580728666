package main

import (
	"fmt"
	"strings"
	"unicode"
)

// Generate renders the Go source for one definitions file. The result is
// not formatted; writeFormatted runs it through goimports.
func Generate(defs *RawDefs, source string) (string, error) {
	var b strings.Builder

	file := fileData{Source: source, Package: defs.Package}
	enums := make([]enumData, 0, len(defs.Enums))
	for i := range defs.Enums {
		e, err := buildEnumData(&defs.Enums[i])
		if err != nil {
			return "", err
		}
		file.HasBitmask = file.HasBitmask || e.Bitmask
		enums = append(enums, e)
	}

	renderTemplate(&b, "header", file)
	for _, e := range enums {
		renderTemplate(&b, "enum", e)
	}
	return b.String(), nil
}

func buildEnumData(def *RawEnumDef) (enumData, error) {
	e := enumData{
		Name:        def.Name,
		DBus:        def.DBus,
		Description: strings.TrimSpace(def.Description),
		Label:       label(def.Name),
		Bitmask:     def.Kind == KindBitmask,
	}
	if e.DBus == "" {
		e.DBus = def.Name
	}

	for _, v := range def.Values {
		vd := buildValueData(def, v)
		e.Values = append(e.Values, vd)

		switch {
		case !e.Bitmask:
			if v.Name == def.Fallback {
				e.Fallback = &vd
			}
		case v.Name == def.None:
			e.None = &vd
		case v.Name == def.Any:
			e.Any = &vd
		default:
			e.Flags = append(e.Flags, vd)
		}
	}

	if !e.Bitmask && e.Fallback == nil {
		return enumData{}, fmt.Errorf("enum %s: fallback %q not found", def.Name, def.Fallback)
	}
	if e.Bitmask && e.None == nil {
		return enumData{}, fmt.Errorf("enum %s: none %q not found", def.Name, def.None)
	}
	return e, nil
}

func buildValueData(def *RawEnumDef, v RawEnumValue) valueData {
	constName := def.Name + goSuffix(v)
	literal := fmt.Sprintf("%d", v.Value)
	if def.Kind == KindBitmask {
		literal = fmt.Sprintf("0x%08X", v.Value)
	}
	return valueData{
		Const:   constName,
		Literal: literal,
		Entry: fmt.Sprintf("codes.Entry[%s]{Wire: %s, Value: %s, Name: %q}",
			def.Name, literal, constName, v.Name),
	}
}

// goSuffix returns the identifier suffix for a value: the explicit override
// or the title-cased name ("NEED_AUTH" -> "NeedAuth").
func goSuffix(v RawEnumValue) string {
	if v.Go != "" {
		return v.Go
	}
	var b strings.Builder
	for _, part := range strings.Split(v.Name, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	return b.String()
}

// label converts "BearerIPFamily" to "bearer ip family".
func label(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
