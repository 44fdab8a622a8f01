package glimpse

import "strconv"

// Key identifies a physical key independent of the native windowing layer.
// The values follow the virtual key numbering of the Windows platform, which
// keeps every key within [0, 256) and lets KeyboardState be a fixed bitset.
type Key uint8

const (
	KeyNone Key = 0

	KeyBack     Key = 8
	KeyTab      Key = 9
	KeyEnter    Key = 13
	KeyPause    Key = 19
	KeyCapsLock Key = 20
	KeyKana     Key = 21
	KeyKanji    Key = 25
	KeyEscape   Key = 27

	KeyImeConvert   Key = 28
	KeyImeNoConvert Key = 29

	KeySpace       Key = 32
	KeyPageUp      Key = 33
	KeyPageDown    Key = 34
	KeyEnd         Key = 35
	KeyHome        Key = 36
	KeyLeft        Key = 37
	KeyUp          Key = 38
	KeyRight       Key = 39
	KeyDown        Key = 40
	KeySelect      Key = 41
	KeyPrint       Key = 42
	KeyExecute     Key = 43
	KeyPrintScreen Key = 44
	KeyInsert      Key = 45
	KeyDelete      Key = 46
	KeyHelp        Key = 47

	Key0 Key = 48
	Key1 Key = 49
	Key2 Key = 50
	Key3 Key = 51
	Key4 Key = 52
	Key5 Key = 53
	Key6 Key = 54
	Key7 Key = 55
	Key8 Key = 56
	Key9 Key = 57

	KeyA Key = 65
	KeyB Key = 66
	KeyC Key = 67
	KeyD Key = 68
	KeyE Key = 69
	KeyF Key = 70
	KeyG Key = 71
	KeyH Key = 72
	KeyI Key = 73
	KeyJ Key = 74
	KeyK Key = 75
	KeyL Key = 76
	KeyM Key = 77
	KeyN Key = 78
	KeyO Key = 79
	KeyP Key = 80
	KeyQ Key = 81
	KeyR Key = 82
	KeyS Key = 83
	KeyT Key = 84
	KeyU Key = 85
	KeyV Key = 86
	KeyW Key = 87
	KeyX Key = 88
	KeyY Key = 89
	KeyZ Key = 90

	KeyLeftWindows  Key = 91
	KeyRightWindows Key = 92
	KeyApps         Key = 93
	KeySleep        Key = 95

	KeyNumPad0   Key = 96
	KeyNumPad1   Key = 97
	KeyNumPad2   Key = 98
	KeyNumPad3   Key = 99
	KeyNumPad4   Key = 100
	KeyNumPad5   Key = 101
	KeyNumPad6   Key = 102
	KeyNumPad7   Key = 103
	KeyNumPad8   Key = 104
	KeyNumPad9   Key = 105
	KeyMultiply  Key = 106
	KeyAdd       Key = 107
	KeySeparator Key = 108
	KeySubtract  Key = 109
	KeyDecimal   Key = 110
	KeyDivide    Key = 111

	KeyF1  Key = 112
	KeyF2  Key = 113
	KeyF3  Key = 114
	KeyF4  Key = 115
	KeyF5  Key = 116
	KeyF6  Key = 117
	KeyF7  Key = 118
	KeyF8  Key = 119
	KeyF9  Key = 120
	KeyF10 Key = 121
	KeyF11 Key = 122
	KeyF12 Key = 123
	KeyF13 Key = 124
	KeyF14 Key = 125
	KeyF15 Key = 126
	KeyF16 Key = 127
	KeyF17 Key = 128
	KeyF18 Key = 129
	KeyF19 Key = 130
	KeyF20 Key = 131
	KeyF21 Key = 132
	KeyF22 Key = 133
	KeyF23 Key = 134
	KeyF24 Key = 135

	KeyNumLock Key = 144
	KeyScroll  Key = 145

	KeyLeftShift    Key = 160
	KeyRightShift   Key = 161
	KeyLeftControl  Key = 162
	KeyRightControl Key = 163
	KeyLeftAlt      Key = 164
	KeyRightAlt     Key = 165

	KeyBrowserBack      Key = 166
	KeyBrowserForward   Key = 167
	KeyBrowserRefresh   Key = 168
	KeyBrowserStop      Key = 169
	KeyBrowserSearch    Key = 170
	KeyBrowserFavorites Key = 171
	KeyBrowserHome      Key = 172

	KeyVolumeMute         Key = 173
	KeyVolumeDown         Key = 174
	KeyVolumeUp           Key = 175
	KeyMediaNextTrack     Key = 176
	KeyMediaPreviousTrack Key = 177
	KeyMediaStop          Key = 178
	KeyMediaPlayPause     Key = 179

	KeyLaunchMail         Key = 180
	KeySelectMedia        Key = 181
	KeyLaunchApplication1 Key = 182
	KeyLaunchApplication2 Key = 183

	KeyOemSemicolon     Key = 186
	KeyOemPlus          Key = 187
	KeyOemComma         Key = 188
	KeyOemMinus         Key = 189
	KeyOemPeriod        Key = 190
	KeyOemQuestion      Key = 191
	KeyOemTilde         Key = 192
	KeyOemOpenBrackets  Key = 219
	KeyOemPipe          Key = 220
	KeyOemCloseBrackets Key = 221
	KeyOemQuotes        Key = 222
	KeyOem8             Key = 223
	KeyOemBackslash     Key = 226

	KeyProcessKey Key = 229
	KeyAttn       Key = 246
	KeyCrsel      Key = 247
	KeyExsel      Key = 248
	KeyEraseEof   Key = 249
	KeyPlay       Key = 250
	KeyZoom       Key = 251
	KeyPa1        Key = 253
	KeyOemClear   Key = 254
)

var keyNames = map[Key]string{
	KeyNone: "None", KeyBack: "Back", KeyTab: "Tab", KeyEnter: "Enter", KeyPause: "Pause",
	KeyCapsLock: "CapsLock", KeyKana: "Kana", KeyKanji: "Kanji", KeyEscape: "Escape",
	KeyImeConvert: "ImeConvert", KeyImeNoConvert: "ImeNoConvert",
	KeySpace: "Space", KeyPageUp: "PageUp", KeyPageDown: "PageDown", KeyEnd: "End", KeyHome: "Home",
	KeyLeft: "Left", KeyUp: "Up", KeyRight: "Right", KeyDown: "Down",
	KeySelect: "Select", KeyPrint: "Print", KeyExecute: "Execute", KeyPrintScreen: "PrintScreen",
	KeyInsert: "Insert", KeyDelete: "Delete", KeyHelp: "Help",
	Key0: "D0", Key1: "D1", Key2: "D2", Key3: "D3", Key4: "D4",
	Key5: "D5", Key6: "D6", Key7: "D7", Key8: "D8", Key9: "D9",
	KeyA: "A", KeyB: "B", KeyC: "C", KeyD: "D", KeyE: "E", KeyF: "F", KeyG: "G", KeyH: "H",
	KeyI: "I", KeyJ: "J", KeyK: "K", KeyL: "L", KeyM: "M", KeyN: "N", KeyO: "O", KeyP: "P",
	KeyQ: "Q", KeyR: "R", KeyS: "S", KeyT: "T", KeyU: "U", KeyV: "V", KeyW: "W", KeyX: "X",
	KeyY: "Y", KeyZ: "Z",
	KeyLeftWindows: "LeftWindows", KeyRightWindows: "RightWindows", KeyApps: "Apps", KeySleep: "Sleep",
	KeyNumPad0: "NumPad0", KeyNumPad1: "NumPad1", KeyNumPad2: "NumPad2", KeyNumPad3: "NumPad3",
	KeyNumPad4: "NumPad4", KeyNumPad5: "NumPad5", KeyNumPad6: "NumPad6", KeyNumPad7: "NumPad7",
	KeyNumPad8: "NumPad8", KeyNumPad9: "NumPad9",
	KeyMultiply: "Multiply", KeyAdd: "Add", KeySeparator: "Separator", KeySubtract: "Subtract",
	KeyDecimal: "Decimal", KeyDivide: "Divide",
	KeyF1: "F1", KeyF2: "F2", KeyF3: "F3", KeyF4: "F4", KeyF5: "F5", KeyF6: "F6",
	KeyF7: "F7", KeyF8: "F8", KeyF9: "F9", KeyF10: "F10", KeyF11: "F11", KeyF12: "F12",
	KeyF13: "F13", KeyF14: "F14", KeyF15: "F15", KeyF16: "F16", KeyF17: "F17", KeyF18: "F18",
	KeyF19: "F19", KeyF20: "F20", KeyF21: "F21", KeyF22: "F22", KeyF23: "F23", KeyF24: "F24",
	KeyNumLock: "NumLock", KeyScroll: "Scroll",
	KeyLeftShift: "LeftShift", KeyRightShift: "RightShift",
	KeyLeftControl: "LeftControl", KeyRightControl: "RightControl",
	KeyLeftAlt: "LeftAlt", KeyRightAlt: "RightAlt",
	KeyBrowserBack: "BrowserBack", KeyBrowserForward: "BrowserForward", KeyBrowserRefresh: "BrowserRefresh",
	KeyBrowserStop: "BrowserStop", KeyBrowserSearch: "BrowserSearch", KeyBrowserFavorites: "BrowserFavorites",
	KeyBrowserHome: "BrowserHome",
	KeyVolumeMute: "VolumeMute", KeyVolumeDown: "VolumeDown", KeyVolumeUp: "VolumeUp",
	KeyMediaNextTrack: "MediaNextTrack", KeyMediaPreviousTrack: "MediaPreviousTrack",
	KeyMediaStop: "MediaStop", KeyMediaPlayPause: "MediaPlayPause",
	KeyLaunchMail: "LaunchMail", KeySelectMedia: "SelectMedia",
	KeyLaunchApplication1: "LaunchApplication1", KeyLaunchApplication2: "LaunchApplication2",
	KeyOemSemicolon: "OemSemicolon", KeyOemPlus: "OemPlus", KeyOemComma: "OemComma",
	KeyOemMinus: "OemMinus", KeyOemPeriod: "OemPeriod", KeyOemQuestion: "OemQuestion",
	KeyOemTilde: "OemTilde", KeyOemOpenBrackets: "OemOpenBrackets", KeyOemPipe: "OemPipe",
	KeyOemCloseBrackets: "OemCloseBrackets", KeyOemQuotes: "OemQuotes", KeyOem8: "Oem8",
	KeyOemBackslash: "OemBackslash",
	KeyProcessKey: "ProcessKey", KeyAttn: "Attn", KeyCrsel: "Crsel", KeyExsel: "Exsel",
	KeyEraseEof: "EraseEof", KeyPlay: "Play", KeyZoom: "Zoom", KeyPa1: "Pa1", KeyOemClear: "OemClear",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}

	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// IsValid reports whether k is a member of the key enumeration. KeyNone is
// valid but never part of a KeyboardState.
func (k Key) IsValid() bool {
	_, ok := keyNames[k]
	return ok
}

// IsModifier reports whether k is one of the handed shift, control, alt or
// windows keys.
func (k Key) IsModifier() bool {
	switch k {
	case KeyLeftShift, KeyRightShift,
		KeyLeftControl, KeyRightControl,
		KeyLeftAlt, KeyRightAlt,
		KeyLeftWindows, KeyRightWindows:
		return true
	}

	return false
}
