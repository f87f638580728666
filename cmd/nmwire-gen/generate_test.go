package main

import (
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func demoDefs() *RawDefs {
	return &RawDefs{
		Package: "demo",
		Path:    "pkg/demo",
		Enums: []RawEnumDef{
			{
				Name:        "LinkState",
				DBus:        "DemoLinkState",
				Kind:        KindOrdinal,
				Description: "State of a link.",
				Fallback:    "UNKNOWN",
				Values: []RawEnumValue{
					{Name: "UNKNOWN", Value: 0},
					{Name: "NEED_AUTH", Value: 60},
					{Name: "IP_CONFIG", Value: 70, Go: "IPConfig"},
				},
			},
			{
				Name: "RadioTech",
				DBus: "DemoRadioTech",
				Kind: KindBitmask,
				None: "UNKNOWN",
				Any:  "ANY",
				Values: []RawEnumValue{
					{Name: "UNKNOWN", Value: 0},
					{Name: "GSM", Value: 0x2, Go: "GSM"},
					{Name: "LTE", Value: 0x4000, Go: "LTE"},
					{Name: "ANY", Value: 0xFFFFFFFF},
				},
			},
		},
	}
}

func mustContain(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Errorf("output does not contain %q", want)
	}
}

func mustNotContain(t *testing.T, output, unwanted string) {
	t.Helper()
	if strings.Contains(output, unwanted) {
		t.Errorf("output unexpectedly contains %q", unwanted)
	}
}

func TestGenerateHeader(t *testing.T) {
	output, err := Generate(demoDefs(), "demo.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	mustContain(t, output, "// Code generated by nmwire-gen. DO NOT EDIT.")
	mustContain(t, output, "// Source: demo.yaml")
	mustContain(t, output, "package demo")
	mustContain(t, output, `"github.com/nmwire/nmwire-go/pkg/codes"`)
	mustContain(t, output, `"strings"`)
}

func TestGenerateOrdinalEnum(t *testing.T) {
	output, err := Generate(demoDefs(), "demo.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	mustContain(t, output, "// LinkState mirrors DemoLinkState. Values equal the wire codes.")
	mustContain(t, output, "type LinkState uint32")
	mustContain(t, output, "LinkStateNeedAuth LinkState = 60")
	mustContain(t, output, "LinkStateIPConfig LinkState = 70")
	mustContain(t, output, "var LinkStateTable = codes.NewOrdinalTable(LinkStateUnknown,")
	mustContain(t, output, `codes.Entry[LinkState]{Wire: 60, Value: LinkStateNeedAuth, Name: "NEED_AUTH"},`)
	mustContain(t, output, "// String returns the link state name.")
	mustContain(t, output, "return LinkStateTable.Name(v)")
}

func TestGenerateBitmaskEnum(t *testing.T) {
	output, err := Generate(demoDefs(), "demo.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	mustContain(t, output, "RadioTechLTE RadioTech = 0x00004000")
	mustContain(t, output, "var RadioTechTable = codes.NewBitmaskTable(\n"+
		`codes.Entry[RadioTech]{Wire: 0x00000000, Value: RadioTechUnknown, Name: "UNKNOWN"},`)
	mustContain(t, output, `).WithAny(codes.Entry[RadioTech]{Wire: 0xFFFFFFFF, Value: RadioTechAny, Name: "ANY"})`)
	mustContain(t, output, `return strings.Join(RadioTechTable.Describe(uint32(v)), "|")`)
}

func TestGenerateBitmaskWithoutAny(t *testing.T) {
	defs := demoDefs()
	defs.Enums = defs.Enums[1:]
	defs.Enums[0].Any = ""
	defs.Enums[0].Values = defs.Enums[0].Values[:3]

	output, err := Generate(defs, "demo.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	mustNotContain(t, output, "WithAny")
}

func TestGenerateOrdinalOnlyOmitsStrings(t *testing.T) {
	defs := demoDefs()
	defs.Enums = defs.Enums[:1]

	output, err := Generate(defs, "demo.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	mustNotContain(t, output, `"strings"`)
}

func TestGenerateIsValidGo(t *testing.T) {
	for _, file := range []string{"nm.yaml", "mm.yaml"} {
		t.Run(file, func(t *testing.T) {
			defs, err := LoadDefs(defsDir(t) + "/" + file)
			if err != nil {
				t.Fatalf("LoadDefs failed: %v", err)
			}
			output, err := Generate(defs, file)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if _, err := format.Source([]byte(output)); err != nil {
				t.Fatalf("generated code does not parse: %v", err)
			}
		})
	}
}

func TestWriteFormattedAndDiffers(t *testing.T) {
	output, err := Generate(demoDefs(), "demo.yaml")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "codes_gen.go")

	stale, err := differs(path, output)
	if err != nil {
		t.Fatalf("differs failed: %v", err)
	}
	if !stale {
		t.Error("missing file should be stale")
	}

	if err := writeFormatted(path, output); err != nil {
		t.Fatalf("writeFormatted failed: %v", err)
	}
	stale, err = differs(path, output)
	if err != nil {
		t.Fatalf("differs failed: %v", err)
	}
	if stale {
		t.Error("freshly written file should not be stale")
	}

	if err := os.WriteFile(path, []byte("package demo\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if stale, _ = differs(path, output); !stale {
		t.Error("edited file should be stale")
	}
}

func TestWriteFormattedKeepsBrokenOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken_gen.go")
	if err := writeFormatted(path, "package demo\nfunc {"); err == nil {
		t.Fatal("expected goimports error")
	}
	if _, err := os.Stat(path + ".broken"); err != nil {
		t.Errorf("expected unformatted output next to the target: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("target should not be written on error")
	}
}

func TestGoSuffix(t *testing.T) {
	tests := []struct {
		in   RawEnumValue
		want string
	}{
		{RawEnumValue{Name: "UNKNOWN"}, "Unknown"},
		{RawEnumValue{Name: "NEED_AUTH"}, "NeedAuth"},
		{RawEnumValue{Name: "2G"}, "2g"},
		{RawEnumValue{Name: "2G", Go: "2G"}, "2G"},
		{RawEnumValue{Name: "EUTRAN_71"}, "Eutran71"},
	}
	for _, tt := range tests {
		if got := goSuffix(tt.in); got != tt.want {
			t.Errorf("goSuffix(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := map[string]string{
		"DeviceState":            "device state",
		"BearerIPFamily":         "bearer ip family",
		"DeviceWifiCapabilities": "device wifi capabilities",
	}
	for in, want := range tests {
		if got := label(in); got != want {
			t.Errorf("label(%q) = %q, want %q", in, got, want)
		}
	}
}
