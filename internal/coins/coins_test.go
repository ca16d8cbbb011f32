package coins

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		value int64
		want  string
	}{
		{0, "0"},
		{50, "50"},
		{100, "100"},
		{1500, "1,500"},
		{2000000, "2,000,000"},
		{-1500, "-1,500"},
	}
	for _, tc := range cases {
		if got := Format(tc.value); got != tc.want {
			t.Errorf("Format(%d) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		input string
		want  int64
	}{
		{"100", 100},
		{"1,500", 1500},
		{" 50 ", 50},
		{"-20", -20},
	}
	for _, tc := range cases {
		got, err := Parse(tc.input)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, input := range []string{"", "  ", "abc", "12.5"} {
		if _, err := Parse(input); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Parse(%q) expected ErrInvalidAmount, got %v", input, err)
		}
	}
}
