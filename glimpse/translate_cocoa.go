package glimpse

import "unicode"

// modifier flags of NSEvent
const (
	cocoaFlagCapsLock = 1 << 16
	cocoaFlagFunction = 1 << 23

	// device dependent bits in the low word of the modifier flags, these
	// tell the left and right modifier keys apart
	cocoaDeviceLeftControl  = 0x0001
	cocoaDeviceLeftShift    = 0x0002
	cocoaDeviceRightShift   = 0x0004
	cocoaDeviceLeftCommand  = 0x0008
	cocoaDeviceRightCommand = 0x0010
	cocoaDeviceLeftAlt      = 0x0020
	cocoaDeviceRightAlt     = 0x0040
	cocoaDeviceRightControl = 0x2000
)

// CocoaKeyEvent is the relevant part of an NSEvent of type keyDown or keyUp.
type CocoaKeyEvent struct {
	KeyCode       uint16
	Characters    string
	ModifierFlags uint64
	Down          bool
	Repeat        bool
}

// cocoaCharKeys translates the characters of a key event. Using the
// characters respects the active keyboard layout.
var cocoaCharKeys = map[rune]Key{
	'a': KeyA, 'b': KeyB, 'c': KeyC, 'd': KeyD, 'e': KeyE, 'f': KeyF, 'g': KeyG,
	'h': KeyH, 'i': KeyI, 'j': KeyJ, 'k': KeyK, 'l': KeyL, 'm': KeyM, 'n': KeyN,
	'o': KeyO, 'p': KeyP, 'q': KeyQ, 'r': KeyR, 's': KeyS, 't': KeyT, 'u': KeyU,
	'v': KeyV, 'w': KeyW, 'x': KeyX, 'y': KeyY, 'z': KeyZ,
	'0': Key0, '1': Key1, '2': Key2, '3': Key3, '4': Key4,
	'5': Key5, '6': Key6, '7': Key7, '8': Key8, '9': Key9,
	' ': KeySpace, '\r': KeyEnter, '\t': KeyTab, 0x19: KeyTab, 0x1B: KeyEscape, 0x7F: KeyBack,
	'-': KeyOemMinus, '=': KeyOemPlus, '[': KeyOemOpenBrackets, ']': KeyOemCloseBrackets,
	'\\': KeyOemPipe, ';': KeyOemSemicolon, '\'': KeyOemQuotes, '`': KeyOemTilde,
	',': KeyOemComma, '.': KeyOemPeriod, '/': KeyOemQuestion,
}

// cocoaFunctionKeys is consulted when the function key flag is set. The
// characters of such events live in the private use area starting at 0xF700
// and do not denote printable characters.
var cocoaFunctionKeys = map[rune]Key{
	0xF700: KeyUp, 0xF701: KeyDown, 0xF702: KeyLeft, 0xF703: KeyRight,
	0xF704: KeyF1, 0xF705: KeyF2, 0xF706: KeyF3, 0xF707: KeyF4, 0xF708: KeyF5, 0xF709: KeyF6,
	0xF70A: KeyF7, 0xF70B: KeyF8, 0xF70C: KeyF9, 0xF70D: KeyF10, 0xF70E: KeyF11, 0xF70F: KeyF12,
	0xF710: KeyF13, 0xF711: KeyF14, 0xF712: KeyF15, 0xF713: KeyF16, 0xF714: KeyF17, 0xF715: KeyF18,
	0xF716: KeyF19, 0xF717: KeyF20, 0xF718: KeyF21, 0xF719: KeyF22, 0xF71A: KeyF23, 0xF71B: KeyF24,
	0xF727: KeyInsert, 0xF728: KeyDelete, 0xF729: KeyHome, 0xF72B: KeyEnd,
	0xF72C: KeyPageUp, 0xF72D: KeyPageDown, 0xF72E: KeyPrintScreen, 0xF72F: KeyScroll,
	0xF730: KeyPause, 0xF735: KeyApps, 0xF738: KeyPrint, 0xF741: KeySelect, 0xF742: KeyExecute,
	0xF746: KeyHelp,
}

// cocoaKeyCodes translates the layout independent virtual key codes.
var cocoaKeyCodes = map[uint16]Key{
	0x00: KeyA, 0x01: KeyS, 0x02: KeyD, 0x03: KeyF, 0x04: KeyH, 0x05: KeyG, 0x06: KeyZ,
	0x07: KeyX, 0x08: KeyC, 0x09: KeyV, 0x0A: KeyOemBackslash, 0x0B: KeyB, 0x0C: KeyQ,
	0x0D: KeyW, 0x0E: KeyE, 0x0F: KeyR, 0x10: KeyY, 0x11: KeyT, 0x12: Key1, 0x13: Key2,
	0x14: Key3, 0x15: Key4, 0x16: Key6, 0x17: Key5, 0x18: KeyOemPlus, 0x19: Key9,
	0x1A: Key7, 0x1B: KeyOemMinus, 0x1C: Key8, 0x1D: Key0, 0x1E: KeyOemCloseBrackets,
	0x1F: KeyO, 0x20: KeyU, 0x21: KeyOemOpenBrackets, 0x22: KeyI, 0x23: KeyP, 0x24: KeyEnter,
	0x25: KeyL, 0x26: KeyJ, 0x27: KeyOemQuotes, 0x28: KeyK, 0x29: KeyOemSemicolon,
	0x2A: KeyOemPipe, 0x2B: KeyOemComma, 0x2C: KeyOemQuestion, 0x2D: KeyN, 0x2E: KeyM,
	0x2F: KeyOemPeriod, 0x30: KeyTab, 0x31: KeySpace, 0x32: KeyOemTilde, 0x33: KeyBack,
	0x35: KeyEscape, 0x36: KeyRightWindows, 0x37: KeyLeftWindows, 0x38: KeyLeftShift,
	0x39: KeyCapsLock, 0x3A: KeyLeftAlt, 0x3B: KeyLeftControl, 0x3C: KeyRightShift,
	0x3D: KeyRightAlt, 0x3E: KeyRightControl, 0x40: KeyF17, 0x41: KeyDecimal,
	0x43: KeyMultiply, 0x45: KeyAdd, 0x47: KeyNumLock, 0x48: KeyVolumeUp, 0x49: KeyVolumeDown,
	0x4A: KeyVolumeMute, 0x4B: KeyDivide, 0x4C: KeyEnter, 0x4E: KeySubtract, 0x4F: KeyF18,
	0x50: KeyF19, 0x51: KeyOemPlus, 0x52: KeyNumPad0, 0x53: KeyNumPad1, 0x54: KeyNumPad2,
	0x55: KeyNumPad3, 0x56: KeyNumPad4, 0x57: KeyNumPad5, 0x58: KeyNumPad6, 0x59: KeyNumPad7,
	0x5A: KeyF20, 0x5B: KeyNumPad8, 0x5C: KeyNumPad9, 0x60: KeyF5, 0x61: KeyF6, 0x62: KeyF7,
	0x63: KeyF3, 0x64: KeyF8, 0x65: KeyF9, 0x67: KeyF11, 0x69: KeyF13, 0x6A: KeyF16,
	0x6B: KeyF14, 0x6D: KeyF10, 0x6F: KeyF12, 0x71: KeyF15, 0x72: KeyInsert, 0x73: KeyHome,
	0x74: KeyPageUp, 0x75: KeyDelete, 0x76: KeyF4, 0x77: KeyEnd, 0x78: KeyF2, 0x79: KeyPageDown,
	0x7A: KeyF1, 0x7B: KeyLeft, 0x7C: KeyRight, 0x7D: KeyDown, 0x7E: KeyUp,
}

// TranslateCocoaKey maps a key event to a Key. Function keys are resolved
// through their character when the function flag is set, printable keys
// through their character in the active layout, everything else through the
// virtual key code.
func TranslateCocoaKey(keyCode uint16, character rune, flags uint64) Key {
	if flags&cocoaFlagFunction != 0 {
		if key, ok := cocoaFunctionKeys[character]; ok {
			return key
		}
	}

	if key, ok := cocoaCharKeys[unicode.ToLower(character)]; ok {
		return key
	}

	return lookupKey("cocoa", cocoaKeyCodes, keyCode, int(keyCode))
}

// CocoaKeyEvents translates a keyDown or keyUp event. Key downs also
// produce text input for their printable characters.
func CocoaKeyEvents(ev CocoaKeyEvent, dst []Event) []Event {
	var character rune
	for _, r := range ev.Characters {
		character = r
		break
	}

	if !ev.Repeat {
		key := TranslateCocoaKey(ev.KeyCode, character, ev.ModifierFlags)
		dst = append(dst, keyEvent(key, int(ev.KeyCode), ev.Down))
	}

	if ev.Down && ev.ModifierFlags&cocoaFlagFunction == 0 {
		for _, r := range DecodeText([]byte(ev.Characters)) {
			if r, ok := filterTextRune(r); ok {
				dst = append(dst, TextInput{Rune: r})
			}
		}
	}

	return dst
}

type cocoaModifier struct {
	mask uint64
	key  Key
}

var cocoaModifiers = []cocoaModifier{
	{cocoaDeviceLeftShift, KeyLeftShift},
	{cocoaDeviceRightShift, KeyRightShift},
	{cocoaDeviceLeftControl, KeyLeftControl},
	{cocoaDeviceRightControl, KeyRightControl},
	{cocoaDeviceLeftAlt, KeyLeftAlt},
	{cocoaDeviceRightAlt, KeyRightAlt},
	{cocoaDeviceLeftCommand, KeyLeftWindows},
	{cocoaDeviceRightCommand, KeyRightWindows},
}

// CocoaModifierTracker turns flagsChanged events into key events. Cocoa
// only reports that the modifier flags changed, the tracker compares the
// device dependent bits with the previously seen flags to find out which
// physical key moved.
type CocoaModifierTracker struct {
	flags uint64
}

func (t *CocoaModifierTracker) FlagsChanged(flags uint64, dst []Event) []Event {
	for _, mod := range cocoaModifiers {
		wasDown := t.flags&mod.mask != 0
		isDown := flags&mod.mask != 0

		if wasDown != isDown {
			dst = append(dst, keyEvent(mod.key, int(mod.mask), isDown))
		}
	}

	// caps lock reports its toggle state, not the key position
	if (t.flags^flags)&cocoaFlagCapsLock != 0 {
		dst = append(dst,
			KeyPressed{Key: KeyCapsLock, Native: cocoaFlagCapsLock},
			KeyReleased{Key: KeyCapsLock, Native: cocoaFlagCapsLock},
		)
	}

	t.flags = flags
	return dst
}
