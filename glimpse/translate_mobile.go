//go:build android || ios

package glimpse

import (
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/size"
)

var mobileToKey = map[key.Code]Key{
	key.CodeA: KeyA,
	key.CodeB: KeyB,
	key.CodeC: KeyC,
	key.CodeD: KeyD,
	key.CodeE: KeyE,
	key.CodeF: KeyF,
	key.CodeG: KeyG,
	key.CodeH: KeyH,
	key.CodeI: KeyI,
	key.CodeJ: KeyJ,
	key.CodeK: KeyK,
	key.CodeL: KeyL,
	key.CodeM: KeyM,
	key.CodeN: KeyN,
	key.CodeO: KeyO,
	key.CodeP: KeyP,
	key.CodeQ: KeyQ,
	key.CodeR: KeyR,
	key.CodeS: KeyS,
	key.CodeT: KeyT,
	key.CodeU: KeyU,
	key.CodeV: KeyV,
	key.CodeW: KeyW,
	key.CodeX: KeyX,
	key.CodeY: KeyY,
	key.CodeZ: KeyZ,

	key.Code0: Key0,
	key.Code1: Key1,
	key.Code2: Key2,
	key.Code3: Key3,
	key.Code4: Key4,
	key.Code5: Key5,
	key.Code6: Key6,
	key.Code7: Key7,
	key.Code8: Key8,
	key.Code9: Key9,

	key.CodeReturnEnter:        KeyEnter,
	key.CodeEscape:             KeyEscape,
	key.CodeDeleteBackspace:    KeyBack,
	key.CodeTab:                KeyTab,
	key.CodeSpacebar:           KeySpace,
	key.CodeHyphenMinus:        KeyOemMinus,
	key.CodeEqualSign:          KeyOemPlus,
	key.CodeLeftSquareBracket:  KeyOemOpenBrackets,
	key.CodeRightSquareBracket: KeyOemCloseBrackets,
	key.CodeBackslash:          KeyOemPipe,
	key.CodeSemicolon:          KeyOemSemicolon,
	key.CodeApostrophe:         KeyOemQuotes,
	key.CodeGraveAccent:        KeyOemTilde,
	key.CodeComma:              KeyOemComma,
	key.CodeFullStop:           KeyOemPeriod,
	key.CodeSlash:              KeyOemQuestion,
	key.CodeCapsLock:           KeyCapsLock,
	key.CodePause:              KeyPause,
	key.CodeInsert:             KeyInsert,
	key.CodeHome:               KeyHome,
	key.CodePageUp:             KeyPageUp,
	key.CodeDeleteForward:      KeyDelete,
	key.CodeEnd:                KeyEnd,
	key.CodePageDown:           KeyPageDown,
	key.CodeRightArrow:         KeyRight,
	key.CodeLeftArrow:          KeyLeft,
	key.CodeDownArrow:          KeyDown,
	key.CodeUpArrow:            KeyUp,
	key.CodeHelp:               KeyHelp,
	key.CodeMute:               KeyVolumeMute,
	key.CodeVolumeUp:           KeyVolumeUp,
	key.CodeVolumeDown:         KeyVolumeDown,

	key.CodeF1:  KeyF1,
	key.CodeF2:  KeyF2,
	key.CodeF3:  KeyF3,
	key.CodeF4:  KeyF4,
	key.CodeF5:  KeyF5,
	key.CodeF6:  KeyF6,
	key.CodeF7:  KeyF7,
	key.CodeF8:  KeyF8,
	key.CodeF9:  KeyF9,
	key.CodeF10: KeyF10,
	key.CodeF11: KeyF11,
	key.CodeF12: KeyF12,
	key.CodeF13: KeyF13,
	key.CodeF14: KeyF14,
	key.CodeF15: KeyF15,
	key.CodeF16: KeyF16,
	key.CodeF17: KeyF17,
	key.CodeF18: KeyF18,
	key.CodeF19: KeyF19,
	key.CodeF20: KeyF20,
	key.CodeF21: KeyF21,
	key.CodeF22: KeyF22,
	key.CodeF23: KeyF23,
	key.CodeF24: KeyF24,

	key.CodeKeypadNumLock:     KeyNumLock,
	key.CodeKeypadSlash:       KeyDivide,
	key.CodeKeypadAsterisk:    KeyMultiply,
	key.CodeKeypadHyphenMinus: KeySubtract,
	key.CodeKeypadPlusSign:    KeyAdd,
	key.CodeKeypadEnter:       KeyEnter,
	key.CodeKeypad0:           KeyNumPad0,
	key.CodeKeypad1:           KeyNumPad1,
	key.CodeKeypad2:           KeyNumPad2,
	key.CodeKeypad3:           KeyNumPad3,
	key.CodeKeypad4:           KeyNumPad4,
	key.CodeKeypad5:           KeyNumPad5,
	key.CodeKeypad6:           KeyNumPad6,
	key.CodeKeypad7:           KeyNumPad7,
	key.CodeKeypad8:           KeyNumPad8,
	key.CodeKeypad9:           KeyNumPad9,
	key.CodeKeypadFullStop:    KeyDecimal,
	key.CodeKeypadEqualSign:   KeyOemPlus,

	key.CodeLeftControl:  KeyLeftControl,
	key.CodeLeftShift:    KeyLeftShift,
	key.CodeLeftAlt:      KeyLeftAlt,
	key.CodeLeftGUI:      KeyLeftWindows,
	key.CodeRightControl: KeyRightControl,
	key.CodeRightShift:   KeyRightShift,
	key.CodeRightAlt:     KeyRightAlt,
	key.CodeRightGUI:     KeyRightWindows,
}

func keyOfMobile(code key.Code) Key {
	return lookupKey("mobile", mobileToKey, code, int(code))
}

func orientationOfMobile(orientation size.Orientation) DisplayOrientation {
	switch orientation {
	case size.OrientationPortrait:
		return OrientationPortrait
	case size.OrientationLandscape:
		return OrientationLandscapeLeft
	default:
		return OrientationDefault
	}
}
