package notify

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"already international", "+1234567890", "+1234567890"},
		{"local with leading zero", "0912345678", "+56912345678"},
		{"formatted local", "09 1234-5678", "+56912345678"},
		{"bare local", "912345678", "+56912345678"},
		{"parenthesised", "(09) 1234 5678", "+56912345678"},
		{"international with spaces", "+56 9 1234 5678", "+56912345678"},
		{"empty", "", ""},
		{"only punctuation", "--", ""},
		{"only zeros", "000", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePhone(tc.raw, "56"); got != tc.want {
				t.Fatalf("NormalizePhone(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}
