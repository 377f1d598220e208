package utils

import (
	"testing"
)

func TestSanitizeText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain text stays", "plain text stays"},
		{"<script>alert(1)</script>hello", "hello"},
		{"<b>bold</b> day", "bold day"},
		{"  padded  ", "padded"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := SanitizeText(tc.in); got != tc.want {
			t.Errorf("SanitizeText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
