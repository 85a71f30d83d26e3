package utils

import (
	"regexp"
	"strings"
	"testing"
)

func TestMakeReferenceID_Shape(t *testing.T) {
	ref := MakeReferenceID("EPRD-100500")

	pattern := regexp.MustCompile(`^EPRD-100500-[0-9A-Z]{5}[0-9A-Z]{4}$`)
	if !pattern.MatchString(ref) {
		t.Fatalf("reference id %q does not match expected shape", ref)
	}
}

func TestMakeReferenceID_FreshPerCall(t *testing.T) {
	a := MakeReferenceID("EPRD-100500")
	b := MakeReferenceID("EPRD-100500")
	if a == b {
		t.Errorf("two reference ids generated back to back are identical: %q", a)
	}
}

func TestMakeReferenceID_UpperCase(t *testing.T) {
	ref := MakeReferenceID("EPRD-100500")
	suffix := strings.TrimPrefix(ref, "EPRD-100500-")
	if suffix != strings.ToUpper(suffix) {
		t.Errorf("dynamic part not upper-cased: %q", suffix)
	}
	if len(suffix) != 9 {
		t.Errorf("dynamic part length = %d, want 9", len(suffix))
	}
}

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Arabic Gum — Grade One", "arabic-gum-grade-one"},
		{"Myrrh  Gum!!", "myrrh-gum"},
		{"Café Résine", "cafe-resine"},
		{"--already-slugged--", "already-slugged"},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseIntDefault(t *testing.T) {
	if got := ParseIntDefault("", 20); got != 20 {
		t.Errorf("empty value: got %d, want 20", got)
	}
	if got := ParseIntDefault("7", 20); got != 7 {
		t.Errorf("valid value: got %d, want 7", got)
	}
	if got := ParseIntDefault("seven", 20); got != 20 {
		t.Errorf("invalid value: got %d, want 20", got)
	}
}

func TestParseBoolQuery(t *testing.T) {
	b, err := ParseBoolQuery("")
	if b != nil || err != nil {
		t.Errorf("empty value: got (%v, %v), want (nil, nil)", b, err)
	}
	b, err = ParseBoolQuery("true")
	if err != nil || b == nil || !*b {
		t.Errorf("true value: got (%v, %v)", b, err)
	}
	if _, err := ParseBoolQuery("maybe"); err == nil {
		t.Error("invalid value: expected error")
	}
}
