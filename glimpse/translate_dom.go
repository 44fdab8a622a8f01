package glimpse

// domCodes maps KeyboardEvent.code values. The code names the physical key,
// including the side of modifier keys.
var domCodes = map[string]Key{
	"KeyA": KeyA, "KeyB": KeyB, "KeyC": KeyC, "KeyD": KeyD, "KeyE": KeyE, "KeyF": KeyF,
	"KeyG": KeyG, "KeyH": KeyH, "KeyI": KeyI, "KeyJ": KeyJ, "KeyK": KeyK, "KeyL": KeyL,
	"KeyM": KeyM, "KeyN": KeyN, "KeyO": KeyO, "KeyP": KeyP, "KeyQ": KeyQ, "KeyR": KeyR,
	"KeyS": KeyS, "KeyT": KeyT, "KeyU": KeyU, "KeyV": KeyV, "KeyW": KeyW, "KeyX": KeyX,
	"KeyY": KeyY, "KeyZ": KeyZ,

	"Digit0": Key0, "Digit1": Key1, "Digit2": Key2, "Digit3": Key3, "Digit4": Key4,
	"Digit5": Key5, "Digit6": Key6, "Digit7": Key7, "Digit8": Key8, "Digit9": Key9,

	"Numpad0": KeyNumPad0, "Numpad1": KeyNumPad1, "Numpad2": KeyNumPad2, "Numpad3": KeyNumPad3,
	"Numpad4": KeyNumPad4, "Numpad5": KeyNumPad5, "Numpad6": KeyNumPad6, "Numpad7": KeyNumPad7,
	"Numpad8": KeyNumPad8, "Numpad9": KeyNumPad9,
	"NumpadMultiply": KeyMultiply, "NumpadAdd": KeyAdd, "NumpadSubtract": KeySubtract,
	"NumpadDecimal": KeyDecimal, "NumpadDivide": KeyDivide, "NumpadEnter": KeyEnter,
	"NumpadComma": KeySeparator,

	"F1": KeyF1, "F2": KeyF2, "F3": KeyF3, "F4": KeyF4, "F5": KeyF5, "F6": KeyF6,
	"F7": KeyF7, "F8": KeyF8, "F9": KeyF9, "F10": KeyF10, "F11": KeyF11, "F12": KeyF12,
	"F13": KeyF13, "F14": KeyF14, "F15": KeyF15, "F16": KeyF16, "F17": KeyF17, "F18": KeyF18,
	"F19": KeyF19, "F20": KeyF20, "F21": KeyF21, "F22": KeyF22, "F23": KeyF23, "F24": KeyF24,

	"ShiftLeft": KeyLeftShift, "ShiftRight": KeyRightShift,
	"ControlLeft": KeyLeftControl, "ControlRight": KeyRightControl,
	"AltLeft": KeyLeftAlt, "AltRight": KeyRightAlt,
	"MetaLeft": KeyLeftWindows, "MetaRight": KeyRightWindows,
	"OSLeft": KeyLeftWindows, "OSRight": KeyRightWindows,
	"ContextMenu": KeyApps,

	"Escape": KeyEscape, "Enter": KeyEnter, "Tab": KeyTab, "Backspace": KeyBack, "Space": KeySpace,
	"CapsLock": KeyCapsLock, "NumLock": KeyNumLock, "ScrollLock": KeyScroll,
	"PrintScreen": KeyPrintScreen, "Pause": KeyPause, "Insert": KeyInsert, "Delete": KeyDelete,
	"Home": KeyHome, "End": KeyEnd, "PageUp": KeyPageUp, "PageDown": KeyPageDown,
	"ArrowLeft": KeyLeft, "ArrowRight": KeyRight, "ArrowUp": KeyUp, "ArrowDown": KeyDown,

	"Minus": KeyOemMinus, "Equal": KeyOemPlus, "BracketLeft": KeyOemOpenBrackets,
	"BracketRight": KeyOemCloseBrackets, "Backslash": KeyOemPipe, "Semicolon": KeyOemSemicolon,
	"Quote": KeyOemQuotes, "Backquote": KeyOemTilde, "Comma": KeyOemComma, "Period": KeyOemPeriod,
	"Slash": KeyOemQuestion, "IntlBackslash": KeyOemBackslash,

	"AudioVolumeMute": KeyVolumeMute, "AudioVolumeDown": KeyVolumeDown, "AudioVolumeUp": KeyVolumeUp,
	"MediaTrackNext": KeyMediaNextTrack, "MediaTrackPrevious": KeyMediaPreviousTrack,
	"MediaStop": KeyMediaStop, "MediaPlayPause": KeyMediaPlayPause,
	"BrowserBack": KeyBrowserBack, "BrowserForward": KeyBrowserForward,
}

// TranslateDOMKey maps the code property of a DOM KeyboardEvent.
func TranslateDOMKey(code string) Key {
	if key, ok := domCodes[code]; ok {
		return key
	}

	// codes are strings, there is no numeric value worth logging
	reportUnknownKey("js:"+code, 0)
	return KeyNone
}

// DOMText returns the text input for the key property of a DOM
// KeyboardEvent. Named keys like "Enter" produce no text.
func DOMText(key string, dst []Event) []Event {
	runes := []rune(key)
	if len(runes) != 1 {
		return dst
	}

	if r, ok := filterTextRune(runes[0]); ok {
		dst = append(dst, TextInput{Rune: r})
	}

	return dst
}
