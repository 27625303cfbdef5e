package charset

import "testing"

func TestDecodeNumericReference(t *testing.T) {
	cases := []struct {
		digits string
		radix  int
		want   string
	}{
		{"123", 10, "{"},
		{"9", 16, "\t"},
		{"0", 10, "�"},
		{"D800", 16, "�"},   // lone surrogate
		{"110000", 16, "�"}, // out of range
		{"7F", 16, "�"},     // DEL
	}
	for _, c := range cases {
		if got := DecodeNumericReference(c.digits, c.radix); got != c.want {
			t.Errorf("DecodeNumericReference(%q, %d) = %q, want %q", c.digits, c.radix, got, c.want)
		}
	}
}

func TestDecodeNamedReference(t *testing.T) {
	v, ok := DecodeNamedReference("amp")
	if !ok || v != "&" {
		t.Fatalf("DecodeNamedReference(amp) = %q, %v", v, ok)
	}
	if _, ok := DecodeNamedReference("not-a-real-name"); ok {
		t.Fatalf("expected unknown reference to fail")
	}
}

func TestSuggestNamedReference(t *testing.T) {
	name, ok := SuggestNamedReference("amq")
	if !ok {
		t.Fatalf("expected a suggestion for a near-miss")
	}
	if name != "amp" {
		t.Fatalf("SuggestNamedReference(amq) = %q, want amp", name)
	}
}
