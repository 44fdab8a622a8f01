package glimpse

import (
	"unicode/utf8"
)

// maxTextRune is the largest code point delivered as text input. Larger code
// points would need a surrogate pair in the 16 bit character model games
// are written against, they are dropped instead.
const maxTextRune = 0xFFFF

// DecodeText decodes the UTF-8 payload of a native text input event. The
// payload may be NUL terminated. Runes are delivered exactly as typed,
// without normalization. Invalid sequences and code points above U+FFFF
// are dropped.
func DecodeText(payload []byte) []rune {
	for idx, b := range payload {
		if b == 0 {
			payload = payload[:idx]
			break
		}
	}

	if len(payload) == 0 {
		return nil
	}

	runes := make([]rune, 0, len(payload))
	for len(payload) > 0 {
		r, size := utf8.DecodeRune(payload)
		payload = payload[size:]

		if r == utf8.RuneError && size <= 1 {
			continue
		}

		if r > maxTextRune {
			continue
		}

		runes = append(runes, r)
	}

	return runes
}

// filterTextRune applies the same rules as DecodeText to a single rune
// reported by a layer that delivers decoded characters.
func filterTextRune(r rune) (rune, bool) {
	if r < 0 || r > maxTextRune || r == utf8.RuneError {
		return 0, false
	}

	// control characters are reported as key events, not as text
	if r < 0x20 || r == 0x7F {
		return 0, false
	}

	return r, true
}
