package xbel

import (
	"errors"
	"testing"
)

func TestUnescapeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "  \n  ", "  \n  "},
		{"named_entities", "&lt;a&gt; &amp; &apos;b&apos; &quot;c&quot;", `<a> & 'b' "c"`},
		{"decimal_ref", "&#65;&#32;", "A "},
		{"hex_ref", "&#x41;&#x20;&#xA;", "A \n"},
		{"mixed", "a&amp;b&#x20;c", "a&b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unescapeText([]byte(tt.in))
			if err != nil {
				t.Fatalf("unescapeText() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("unescapeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnescapeText_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unterminated", "a&ampb"},
		{"unknown_entity", "&nbsp;"},
		{"empty_ref", "&;"},
		{"bad_number", "&#xZZ;"},
		{"out_of_range", "&#x110000;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := unescapeText([]byte(tt.in))
			if !errors.Is(err, errInvalidEntity) {
				t.Errorf("unescapeText(%q) error = %v, want %v", tt.in, err, errInvalidEntity)
			}
		})
	}
}
