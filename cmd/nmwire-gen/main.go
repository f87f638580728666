package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/tools/imports"
)

func main() {
	defsDir := flag.String("defs", "defs", "Directory holding the enum definition YAMLs")
	rootDir := flag.String("root", ".", "Module root; each defs file names its output path relative to it")
	check := flag.Bool("check", false, "Report stale generated files instead of writing them")
	flag.Parse()

	stale, err := run(*defsDir, *rootDir, *check)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(stale) > 0 {
		for _, p := range stale {
			fmt.Fprintf(os.Stderr, "stale: %s\n", p)
		}
		os.Exit(1)
	}
}

// run generates one codes_gen.go per definitions file. With check set it
// writes nothing and returns the paths whose content would change.
func run(defsDir, rootDir string, check bool) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(defsDir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing defs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no definitions found in %s", defsDir)
	}
	sort.Strings(paths)

	var stale []string
	for _, path := range paths {
		defs, err := LoadDefs(path)
		if err != nil {
			return nil, err
		}

		code, err := Generate(defs, filepath.Base(path))
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", path, err)
		}

		outDir := filepath.Join(rootDir, filepath.FromSlash(defs.Path))
		outPath := filepath.Join(outDir, "codes_gen.go")

		if check {
			changed, err := differs(outPath, code)
			if err != nil {
				return nil, err
			}
			if changed {
				stale = append(stale, outPath)
			}
			continue
		}

		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return nil, fmt.Errorf("creating output dir: %w", err)
		}
		if err := writeFormatted(outPath, code); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		fmt.Printf("  generated %s\n", outPath)
	}
	return stale, nil
}

// goimportsFormat runs goimports over generated source.
func goimportsFormat(path, code string) ([]byte, error) {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		return nil, fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return formatted, nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := goimportsFormat(path, code)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return err
	}
	return os.WriteFile(path, formatted, 0o644)
}

// differs reports whether the formatted code differs from the file at path.
func differs(path, code string) (bool, error) {
	formatted, err := goimportsFormat(path, code)
	if err != nil {
		return false, err
	}
	current, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return string(current) != string(formatted), nil
}
