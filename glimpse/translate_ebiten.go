//go:build ebiten

package glimpse

import "github.com/hajimehoshi/ebiten/v2"

var ebitenToKey = map[ebiten.Key]Key{
	ebiten.KeyA: KeyA,
	ebiten.KeyB: KeyB,
	ebiten.KeyC: KeyC,
	ebiten.KeyD: KeyD,
	ebiten.KeyE: KeyE,
	ebiten.KeyF: KeyF,
	ebiten.KeyG: KeyG,
	ebiten.KeyH: KeyH,
	ebiten.KeyI: KeyI,
	ebiten.KeyJ: KeyJ,
	ebiten.KeyK: KeyK,
	ebiten.KeyL: KeyL,
	ebiten.KeyM: KeyM,
	ebiten.KeyN: KeyN,
	ebiten.KeyO: KeyO,
	ebiten.KeyP: KeyP,
	ebiten.KeyQ: KeyQ,
	ebiten.KeyR: KeyR,
	ebiten.KeyS: KeyS,
	ebiten.KeyT: KeyT,
	ebiten.KeyU: KeyU,
	ebiten.KeyV: KeyV,
	ebiten.KeyW: KeyW,
	ebiten.KeyX: KeyX,
	ebiten.KeyY: KeyY,
	ebiten.KeyZ: KeyZ,

	ebiten.KeyDigit0: Key0,
	ebiten.KeyDigit1: Key1,
	ebiten.KeyDigit2: Key2,
	ebiten.KeyDigit3: Key3,
	ebiten.KeyDigit4: Key4,
	ebiten.KeyDigit5: Key5,
	ebiten.KeyDigit6: Key6,
	ebiten.KeyDigit7: Key7,
	ebiten.KeyDigit8: Key8,
	ebiten.KeyDigit9: Key9,

	ebiten.KeyF1:  KeyF1,
	ebiten.KeyF2:  KeyF2,
	ebiten.KeyF3:  KeyF3,
	ebiten.KeyF4:  KeyF4,
	ebiten.KeyF5:  KeyF5,
	ebiten.KeyF6:  KeyF6,
	ebiten.KeyF7:  KeyF7,
	ebiten.KeyF8:  KeyF8,
	ebiten.KeyF9:  KeyF9,
	ebiten.KeyF10: KeyF10,
	ebiten.KeyF11: KeyF11,
	ebiten.KeyF12: KeyF12,
	ebiten.KeyF13: KeyF13,
	ebiten.KeyF14: KeyF14,
	ebiten.KeyF15: KeyF15,
	ebiten.KeyF16: KeyF16,
	ebiten.KeyF17: KeyF17,
	ebiten.KeyF18: KeyF18,
	ebiten.KeyF19: KeyF19,
	ebiten.KeyF20: KeyF20,
	ebiten.KeyF21: KeyF21,
	ebiten.KeyF22: KeyF22,
	ebiten.KeyF23: KeyF23,
	ebiten.KeyF24: KeyF24,

	ebiten.KeyArrowUp:    KeyUp,
	ebiten.KeyArrowDown:  KeyDown,
	ebiten.KeyArrowLeft:  KeyLeft,
	ebiten.KeyArrowRight: KeyRight,

	ebiten.KeyShiftLeft:    KeyLeftShift,
	ebiten.KeyShiftRight:   KeyRightShift,
	ebiten.KeyControlLeft:  KeyLeftControl,
	ebiten.KeyControlRight: KeyRightControl,
	ebiten.KeyAltLeft:      KeyLeftAlt,
	ebiten.KeyAltRight:     KeyRightAlt,
	ebiten.KeyMetaLeft:     KeyLeftWindows,
	ebiten.KeyMetaRight:    KeyRightWindows,
	ebiten.KeyContextMenu:  KeyApps,

	ebiten.KeyBackspace:    KeyBack,
	ebiten.KeyTab:          KeyTab,
	ebiten.KeyEnter:        KeyEnter,
	ebiten.KeyEscape:       KeyEscape,
	ebiten.KeySpace:        KeySpace,
	ebiten.KeyCapsLock:     KeyCapsLock,
	ebiten.KeyNumLock:      KeyNumLock,
	ebiten.KeyScrollLock:   KeyScroll,
	ebiten.KeyPrintScreen:  KeyPrintScreen,
	ebiten.KeyPause:        KeyPause,
	ebiten.KeyInsert:       KeyInsert,
	ebiten.KeyDelete:       KeyDelete,
	ebiten.KeyHome:         KeyHome,
	ebiten.KeyEnd:          KeyEnd,
	ebiten.KeyPageUp:       KeyPageUp,
	ebiten.KeyPageDown:     KeyPageDown,
	ebiten.KeyMinus:        KeyOemMinus,
	ebiten.KeyEqual:        KeyOemPlus,
	ebiten.KeyBracketLeft:  KeyOemOpenBrackets,
	ebiten.KeyBracketRight: KeyOemCloseBrackets,
	ebiten.KeyBackslash:    KeyOemPipe,
	ebiten.KeySemicolon:    KeyOemSemicolon,
	ebiten.KeyQuote:        KeyOemQuotes,
	ebiten.KeyBackquote:    KeyOemTilde,
	ebiten.KeyComma:        KeyOemComma,
	ebiten.KeyPeriod:       KeyOemPeriod,
	ebiten.KeySlash:        KeyOemQuestion,

	ebiten.KeyIntlBackslash: KeyOemBackslash,

	ebiten.KeyNumpad0:        KeyNumPad0,
	ebiten.KeyNumpad1:        KeyNumPad1,
	ebiten.KeyNumpad2:        KeyNumPad2,
	ebiten.KeyNumpad3:        KeyNumPad3,
	ebiten.KeyNumpad4:        KeyNumPad4,
	ebiten.KeyNumpad5:        KeyNumPad5,
	ebiten.KeyNumpad6:        KeyNumPad6,
	ebiten.KeyNumpad7:        KeyNumPad7,
	ebiten.KeyNumpad8:        KeyNumPad8,
	ebiten.KeyNumpad9:        KeyNumPad9,
	ebiten.KeyNumpadDecimal:  KeyDecimal,
	ebiten.KeyNumpadDivide:   KeyDivide,
	ebiten.KeyNumpadMultiply: KeyMultiply,
	ebiten.KeyNumpadSubtract: KeySubtract,
	ebiten.KeyNumpadAdd:      KeyAdd,
	ebiten.KeyNumpadEnter:    KeyEnter,
	ebiten.KeyNumpadEqual:    KeyOemPlus,
}

var ebitenToMouseButton = map[ebiten.MouseButton]MouseButton{
	ebiten.MouseButtonLeft:   MouseButtonLeft,
	ebiten.MouseButtonRight:  MouseButtonRight,
	ebiten.MouseButtonMiddle: MouseButtonMiddle,
	ebiten.MouseButton3:      MouseButtonX1,
	ebiten.MouseButton4:      MouseButtonX2,
}

func keyOfEbiten(key ebiten.Key) Key {
	return lookupKey("ebiten", ebitenToKey, key, int(key))
}
