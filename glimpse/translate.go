package glimpse

import (
	"log/slog"

	"github.com/hashicorp/golang-lru/v2"
)

type unknownKey struct {
	backend string
	code    int
}

// reportedKeys remembers the unknown codes that were already logged, so that
// a held key with auto repeat does not flood the log.
var reportedKeys, _ = lru.New[unknownKey, struct{}](64)

// lookupKey translates code using table. Unknown codes resolve to KeyNone.
func lookupKey[C comparable](backend string, table map[C]Key, code C, native int) Key {
	if key, ok := table[code]; ok {
		return key
	}

	reportUnknownKey(backend, native)
	return KeyNone
}

func reportUnknownKey(backend string, native int) {
	if ok, _ := reportedKeys.ContainsOrAdd(unknownKey{backend, native}, struct{}{}); ok {
		return
	}

	slog.Warn("Unknown key code",
		slog.String("backend", backend),
		slog.Int("code", native),
	)
}

// keyEvent returns a KeyPressed or KeyReleased event for key.
func keyEvent(key Key, native int, down bool) Event {
	if down {
		return KeyPressed{Key: key, Native: native}
	}

	return KeyReleased{Key: key, Native: native}
}
