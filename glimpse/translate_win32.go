package glimpse

const (
	vkShift   = 0x10
	vkControl = 0x11
	vkMenu    = 0x12

	// scan code of the right shift key; both shift keys share VK_SHIFT and
	// do not set the extended bit
	scanRightShift = 0x36
)

// Win32KeyMessage is the payload of WM_KEYDOWN, WM_KEYUP, WM_SYSKEYDOWN and
// WM_SYSKEYUP.
type Win32KeyMessage struct {
	VirtualKey uint16
	LParam     uint32
	Down       bool
}

func (m Win32KeyMessage) ScanCode() uint8 {
	return uint8(m.LParam >> 16)
}

// Extended reports bit 24 of lParam, set for the right hand control and
// alt keys, the navigation block and the numpad enter key.
func (m Win32KeyMessage) Extended() bool {
	return m.LParam&(1<<24) != 0
}

// Repeat reports whether the key was already down before this message.
func (m Win32KeyMessage) Repeat() bool {
	return m.Down && m.LParam&(1<<30) != 0
}

// TranslateWin32Key maps a virtual key code to a Key. The generic modifier
// codes are resolved to their left or right variant using the scan code and
// the extended bit, as Windows reports only "shift changed" otherwise.
func TranslateWin32Key(virtualKey uint16, scanCode uint8, extended bool) Key {
	switch virtualKey {
	case vkShift:
		if scanCode == scanRightShift {
			return KeyRightShift
		}
		return KeyLeftShift

	case vkControl:
		if extended {
			return KeyRightControl
		}
		return KeyLeftControl

	case vkMenu:
		if extended {
			return KeyRightAlt
		}
		return KeyLeftAlt
	}

	if virtualKey > 0xFF {
		reportUnknownKey("win32", int(virtualKey))
		return KeyNone
	}

	key := Key(virtualKey)
	if key == KeyNone || !key.IsValid() {
		reportUnknownKey("win32", int(virtualKey))
		return KeyNone
	}

	return key
}

// Win32KeyEvents translates a key message. Auto repeated key downs produce
// no event.
func Win32KeyEvents(msg Win32KeyMessage, dst []Event) []Event {
	if msg.Repeat() {
		return dst
	}

	key := TranslateWin32Key(msg.VirtualKey, msg.ScanCode(), msg.Extended())
	return append(dst, keyEvent(key, int(msg.VirtualKey), msg.Down))
}

// Win32Char translates one UTF-16 code unit of a WM_CHAR message. Surrogate
// halves are dropped instead of being combined.
func Win32Char(unit uint16, dst []Event) []Event {
	if unit >= 0xD800 && unit <= 0xDFFF {
		return dst
	}

	if r, ok := filterTextRune(rune(unit)); ok {
		dst = append(dst, TextInput{Rune: r})
	}

	return dst
}
