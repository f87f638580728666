package log

import "testing"

func TestCategoryString(t *testing.T) {
	tests := []struct {
		cat  Category
		want string
	}{
		{CategoryDecode, "DECODE"},
		{CategoryUnknown, "UNKNOWN"},
		{CategoryEncode, "ENCODE"},
		{CategoryError, "ERROR"},
		{Category(99), "INVALID"},
	}

	for _, tt := range tests {
		if got := tt.cat.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.cat, got, tt.want)
		}
	}
}

func TestCategoryValues(t *testing.T) {
	// Values are persisted in log files and must not change.
	if CategoryDecode != 0 || CategoryUnknown != 1 || CategoryEncode != 2 || CategoryError != 3 {
		t.Error("category values changed")
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		if err != nil {
			t.Errorf("ParseCategory(%q) failed: %v", c.String(), err)
			continue
		}
		if got != c {
			t.Errorf("ParseCategory(%q) = %v, want %v", c.String(), got, c)
		}
	}

	if got, err := ParseCategory("unknown"); err != nil || got != CategoryUnknown {
		t.Errorf("lower case: got %v, %v", got, err)
	}
	if _, err := ParseCategory("state"); err == nil {
		t.Error("expected error for unknown category")
	}
}
