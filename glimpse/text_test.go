package glimpse

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestDecodeText(t *testing.T) {
	cases := []struct {
		name     string
		payload  []byte
		expected []rune
	}{
		{"ascii", []byte("abc"), []rune("abc")},
		{"two bytes", []byte{0xC3, 0xA4}, []rune{'ä'}},
		{"three bytes", []byte{0xE2, 0x82, 0xAC}, []rune{0x20AC}},
		{"four bytes are dropped", []byte{0xF0, 0x9F, 0x98, 0x80}, nil},
		{"four bytes between others", []byte("a\xF0\x9F\x98\x80b"), []rune("ab")},
		{"nul terminated", []byte("hi\x00garbage"), []rune("hi")},
		{"invalid sequence", []byte{'x', 0xC3, 'y'}, []rune("xy")},
		{"combining mark kept", []byte("e\u0301"), []rune{'e', 0x301}},
		{"decomposable kept", []byte("\u0958"), []rune{0x958}},
		{"singleton kept", []byte("\u2126"), []rune{0x2126}},
		{"empty", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actual := DecodeText(tc.payload)
			if !slices.Equal(actual, tc.expected) {
				t.Fatalf("expected %q, got %q", tc.expected, actual)
			}
		})
	}
}

func TestDecodeTextProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)

	properties.Property("never returns code points above U+FFFF", prop.ForAll(
		func(runes []rune) bool {
			for _, r := range DecodeText([]byte(string(runes))) {
				if r > 0xFFFF {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.Rune()),
	))

	properties.Property("keeps ascii letters", prop.ForAll(
		func(runes []rune) bool {
			return slices.Equal(DecodeText([]byte(string(runes))), runes)
		},
		gen.SliceOf(gen.AlphaChar()),
	))

	properties.Property("returns typed bmp runes unchanged", prop.ForAll(
		func(runes []rune) bool {
			return slices.Equal(DecodeText([]byte(string(runes))), runes)
		},
		gen.SliceOf(gen.OneGenOf(
			gen.RuneRange(0x01, 0xD7FF),
			gen.RuneRange(0xE000, 0xFFFC),
		)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFilterTextRune(t *testing.T) {
	for _, r := range []rune{'\r', '\t', 0x7F, 0x1F600, -1} {
		if _, ok := filterTextRune(r); ok {
			t.Errorf("expected %U to be filtered", r)
		}
	}

	for _, r := range []rune{'a', ' ', 'ß', 0xFFFD - 1} {
		if _, ok := filterTextRune(r); !ok {
			t.Errorf("expected %U to pass", r)
		}
	}
}
